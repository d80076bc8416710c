package routers

import (
	"interviewdeck/internal/handlers"
	"interviewdeck/internal/middleware"
	"interviewdeck/internal/models"

	"github.com/go-chi/chi/v5"
)

// APIRoutes mounts the session scoped dashboard and playground endpoints.
func APIRoutes(r *chi.Mux, sessions middleware.SessionProvider, dashboardHandler *handlers.DashboardHandler, playgroundHandler *handlers.PlaygroundHandler) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(sessions))

		r.With(middleware.ValidateRequest[*models.SearchRequest]()).Post("/search", dashboardHandler.SearchHandler)
		r.Get("/questions", dashboardHandler.GetQuestionsHandler)
		r.Get("/insights", dashboardHandler.GetInsightsHandler)
		r.Get("/filters", dashboardHandler.GetFilterOptionsHandler)
		r.Get("/ticks", dashboardHandler.GetTicksHandler)
		r.Post("/ticks/{key}/toggle", dashboardHandler.ToggleTickHandler)
		r.Get("/export/{format}", dashboardHandler.ExportHandler)

		r.Get("/languages", playgroundHandler.GetLanguagesHandler)
		r.Route("/playground", func(r chi.Router) {
			r.Get("/", playgroundHandler.GetPlaygroundHandler)
			r.With(middleware.ValidateRequest[*models.SelectQuestionRequest]()).Post("/select", playgroundHandler.SelectQuestionHandler)
			r.With(middleware.ValidateRequest[*models.LanguageRequest]()).Put("/language", playgroundHandler.SetLanguageHandler)
			r.With(middleware.ValidateRequest[*models.CodeRequest]()).Put("/code", playgroundHandler.SetCodeHandler)
			r.Post("/run", playgroundHandler.RunHandler)
		})
	})
}

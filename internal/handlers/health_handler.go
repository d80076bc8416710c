package handlers

import (
	"net/http"

	"interviewdeck/internal/config"
	"interviewdeck/internal/insights"
	"interviewdeck/internal/playground"
	"interviewdeck/internal/utils"
)

const serviceName = "interviewdeck"

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"` // "ready" | "not_ready"
	Service string                    `json:"service"`
	Checks  map[string]ReadinessCheck `json:"checks"`
}

type HealthHandler struct {
	starters *playground.Starters
	cache    *insights.Cache
	config   *config.Config
}

func NewHealthHandler(starters *playground.Starters, cache *insights.Cache, cfg *config.Config) *HealthHandler {
	return &HealthHandler{starters: starters, cache: cache, config: cfg}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": serviceName,
	})
}

func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	checks := map[string]ReadinessCheck{
		"starters":      check(handler.starters != nil && len(handler.starters.Languages()) > 0, "Language starters not loaded"),
		"insights":      check(handler.cache != nil, "Insights cache not initialized"),
		"configuration": check(handler.config != nil, "Configuration not loaded"),
	}

	response := ReadinessResponse{
		Status:  "ready",
		Service: serviceName,
		Checks:  checks,
	}
	for _, c := range checks {
		if c.Status != "ok" {
			response.Status = "not_ready"
			utils.JSON(writer, http.StatusServiceUnavailable, response)
			return
		}
	}
	utils.JSON(writer, http.StatusOK, response)
}

func check(ok bool, failure string) ReadinessCheck {
	if ok {
		return ReadinessCheck{Status: "ok"}
	}
	return ReadinessCheck{Status: "failed", Message: failure}
}

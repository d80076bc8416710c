package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interviewdeck/internal/exports"
	"interviewdeck/internal/insights"
	"interviewdeck/internal/middleware"
	"interviewdeck/internal/models"
	"interviewdeck/internal/search"
	"interviewdeck/internal/utils"
)

type Searcher interface {
	Search(ctx context.Context, state *search.State, company string, filters models.Filters) search.Result
}

type DashboardHandler struct {
	searcher Searcher
	cache    *insights.Cache
	logger   *zap.Logger
}

func NewDashboardHandler(searcher Searcher, cache *insights.Cache, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{searcher: searcher, cache: cache, logger: logger}
}

// InsightsResponse is the insight panel for the current result set.
type InsightsResponse struct {
	insights.Insights
	Company           string `json:"company"`
	Role              string `json:"role"`
	AssessmentType    string `json:"assessmentType"`
	Headline          string `json:"headline"`
	ShowYearFrequency bool   `json:"showYearFrequency"`
}

// POST /search
func (h *DashboardHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SearchRequest](r)
	sess := middleware.GetSession(r)

	var res search.Result
	state := sess.UpdateSearch(func(state *search.State) {
		res = h.searcher.Search(r.Context(), state, req.Company, req.Filters)
	})

	resp := models.SearchResponse{
		Company:    state.Company,
		Filters:    state.Filters,
		Dispatched: res.Dispatched,
		NoResults:  res.NoResults,
		Total:      len(res.Questions),
	}
	if res.Err != nil {
		resp.Error = "Failed to fetch questions"
	}
	utils.JSON(w, http.StatusOK, resp)
}

// GET /questions
func (h *DashboardHandler) GetQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	state := sess.Search()

	items := make([]models.QuestionItem, len(state.Questions))
	solved := 0
	for i, q := range state.Questions {
		id := q.ID()
		ticked := sess.Ticks.IsTicked(string(id))
		if ticked {
			solved++
		}
		title := q.DisplayTitle(i)
		items[i] = models.QuestionItem{
			Index:      i,
			ID:         id,
			Key:        q.IdentityKey(i),
			Title:      title,
			Topic:      q.ListTopic(),
			Difficulty: q.DisplayDifficulty(),
			Type:       q.Type,
			Year:       q.Year,
			Link:       q.Link,
			Ticked:     ticked,
			Playground: "/playground/" + url.PathEscape(title),
		}
	}

	utils.JSON(w, http.StatusOK, models.QuestionsResponse{
		Company:   state.Previous,
		NoResults: state.NoResults,
		Total:     len(items),
		Solved:    solved,
		Items:     items,
	})
}

// GET /insights
func (h *DashboardHandler) GetInsightsHandler(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetSession(r).Search()
	computed := h.cache.Get(state.SetID, state.Questions)

	utils.JSON(w, http.StatusOK, InsightsResponse{
		Insights:          computed,
		Company:           state.Company,
		Role:              state.Filters.Role,
		AssessmentType:    state.Filters.AssessmentType,
		Headline:          insights.Headline(state.Company, state.Filters.Role, state.Filters.AssessmentType, computed.Summary),
		ShowYearFrequency: insights.ShowYearFrequency(state.Filters.AssessmentType),
	})
}

// POST /ticks/{key}/toggle
func (h *DashboardHandler) ToggleTickHandler(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}
	ticked := middleware.GetSession(r).Ticks.Toggle(key)
	utils.JSON(w, http.StatusOK, models.TickResponse{Key: key, Ticked: ticked})
}

// GET /ticks
func (h *DashboardHandler) GetTicksHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, middleware.GetSession(r).Ticks.Snapshot())
}

// GET /filters
func (h *DashboardHandler) GetFilterOptionsHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, models.DefaultFilterOptions())
}

// GET /export/{format}
func (h *DashboardHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	exporter, err := exports.Lookup(chi.URLParam(r, "format"))
	if errors.Is(err, exports.ErrUnsupportedFormat) {
		utils.Error(w, http.StatusNotFound, "unsupported_format", "Export format must be csv, md or pdf")
		return
	}

	state := middleware.GetSession(r).Search()
	var buf bytes.Buffer
	if err := exporter.Write(&buf, state.Questions); err != nil {
		h.logger.Error("export failed", zap.String("format", exporter.Format), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "internal_error", "Failed to export questions")
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"interviewdeck/internal/middleware"
	"interviewdeck/internal/models"
	"interviewdeck/internal/playground"
	"interviewdeck/internal/utils"
)

type PlaygroundHandler struct {
	orchestrator  *playground.Orchestrator
	dashboardPath string
	logger        *zap.Logger
}

func NewPlaygroundHandler(orchestrator *playground.Orchestrator, dashboardPath string, logger *zap.Logger) *PlaygroundHandler {
	return &PlaygroundHandler{
		orchestrator:  orchestrator,
		dashboardPath: dashboardPath,
		logger:        logger,
	}
}

// GET /languages
func (h *PlaygroundHandler) GetLanguagesHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.orchestrator.Starters().Languages())
}

// POST /playground/select
func (h *PlaygroundHandler) SelectQuestionHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SelectQuestionRequest](r)
	sess := middleware.GetSession(r)

	questions := sess.Search().Questions
	if *req.Index >= len(questions) {
		utils.Error(w, http.StatusNotFound, "question_not_found", "No question at that position in the current results")
		return
	}

	h.orchestrator.Select(sess.Playground, questions[*req.Index])
	utils.JSON(w, http.StatusOK, playgroundResponse(sess.Playground.Snapshot()))
}

// GET /playground
// Without a selected question the caller is sent back to the dashboard.
func (h *PlaygroundHandler) GetPlaygroundHandler(w http.ResponseWriter, r *http.Request) {
	snap := middleware.GetSession(r).Playground.Snapshot()
	if snap.Question == nil {
		http.Redirect(w, r, h.dashboardPath, http.StatusSeeOther)
		return
	}
	utils.JSON(w, http.StatusOK, playgroundResponse(snap))
}

// PUT /playground/language
func (h *PlaygroundHandler) SetLanguageHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.LanguageRequest](r)
	ws := middleware.GetSession(r).Playground

	if err := h.orchestrator.SelectLanguage(ws, req.Language); err != nil {
		if errors.Is(err, playground.ErrUnsupportedLanguage) {
			utils.Error(w, http.StatusBadRequest, "unsupported_language", err.Error())
			return
		}
		utils.Error(w, http.StatusInternalServerError, "internal_error", "Failed to switch language")
		return
	}
	snap := ws.Snapshot()
	utils.JSON(w, http.StatusOK, map[string]string{
		"language": string(snap.Language),
		"code":     snap.Code,
	})
}

// PUT /playground/code
func (h *PlaygroundHandler) SetCodeHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CodeRequest](r)
	h.orchestrator.SetCode(middleware.GetSession(r).Playground, req.Code)
	w.WriteHeader(http.StatusNoContent)
}

// POST /playground/run
func (h *PlaygroundHandler) RunHandler(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	out, err := h.orchestrator.Run(r.Context(), sess.Playground)
	if errors.Is(err, playground.ErrNoQuestionSelected) {
		utils.Error(w, http.StatusConflict, "no_question_selected", "Select a question before running code")
		return
	}
	if err != nil {
		h.logger.Error("run failed unexpectedly", zap.String("session_id", sess.ID), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "internal_error", "Failed to run code")
		return
	}

	items := verdictItems(out.Snapshot.Verdicts)
	utils.JSON(w, http.StatusOK, models.RunResponse{
		RunID:      out.RunID,
		State:      string(out.Snapshot.State),
		Superseded: out.Superseded,
		Passed:     playground.CountPassing(out.Snapshot.Verdicts),
		Total:      len(items),
		Verdicts:   items,
	})
}

func playgroundResponse(snap playground.Snapshot) models.PlaygroundResponse {
	q := *snap.Question
	year := q.Year
	if year == "" {
		year = "N/A"
	}
	return models.PlaygroundResponse{
		Question:   q,
		Difficulty: q.DisplayDifficulty(),
		Language:   snap.Language,
		Code:       snap.Code,
		State:      string(snap.State),
		TestCases:  len(playground.NormalizeTestCases(q)),
		Year:       year,
		Verdicts:   verdictItems(snap.Verdicts),
	}
}

func verdictItems(verdicts []models.Verdict) []models.VerdictItem {
	items := make([]models.VerdictItem, len(verdicts))
	for i, v := range verdicts {
		items[i] = models.VerdictItem{Verdict: v, Passing: v.Passing()}
	}
	return items
}

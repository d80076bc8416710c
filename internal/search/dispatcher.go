// Package search runs company searches against the question service and
// keeps the per session result set.
package search

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"interviewdeck/internal/metrics"
	"interviewdeck/internal/models"
)

type Fetcher interface {
	FetchQuestions(ctx context.Context, company string, filters models.Filters) ([]models.Question, error)
}

// State is the search state of one session. The zero value is a session that
// has not searched yet.
type State struct {
	// Company and Filters are the most recent inputs, applied or not.
	Company string
	Filters models.Filters

	// Previous is the last company that was searched successfully.
	Previous        string
	PreviousFilters models.Filters

	Questions []models.Question
	NoResults bool
	// SetID changes every time Questions is replaced.
	SetID     string
	LastError string
}

type Result struct {
	Questions  []models.Question
	NoResults  bool
	Dispatched bool
	SetID      string
	Err        error
}

type Options struct {
	// GuardIncludesFilters lets a filter change re-run a search for the same company.
	GuardIncludesFilters bool
}

type Dispatcher struct {
	fetcher Fetcher
	logger  *zap.Logger
	opts    Options
}

func NewDispatcher(fetcher Fetcher, logger *zap.Logger, opts Options) *Dispatcher {
	return &Dispatcher{fetcher: fetcher, logger: logger, opts: opts}
}

// Search runs one search unless the trimmed company is empty or repeats the
// last successful one. Failures clear the result set and are reported on the
// Result, never returned.
func (d *Dispatcher) Search(ctx context.Context, state *State, company string, filters models.Filters) Result {
	company = strings.TrimSpace(company)
	state.Company = company
	state.Filters = filters

	if d.suppressed(state, company, filters) {
		metrics.RecordSearch(metrics.OutcomeSuppressed)
		d.logger.Debug("search suppressed",
			zap.String("company", company),
			zap.String("previous", state.Previous))
		return Result{
			Questions: state.Questions,
			NoResults: state.NoResults,
			SetID:     state.SetID,
		}
	}

	questions, err := d.fetcher.FetchQuestions(ctx, company, filters)
	state.SetID = uuid.NewString()
	if err != nil {
		metrics.RecordSearch(metrics.OutcomeFailed)
		d.logger.Warn("search failed",
			zap.String("company", company),
			zap.Error(err))
		state.Questions = []models.Question{}
		state.NoResults = true
		state.LastError = err.Error()
		return Result{
			Questions:  state.Questions,
			NoResults:  true,
			Dispatched: true,
			SetID:      state.SetID,
			Err:        err,
		}
	}

	metrics.RecordSearch(metrics.OutcomeOK)
	d.logger.Info("search applied",
		zap.String("company", company),
		zap.Int("results", len(questions)))
	state.Questions = questions
	state.NoResults = len(questions) == 0
	state.Previous = company
	state.PreviousFilters = filters
	state.LastError = ""
	return Result{
		Questions:  questions,
		NoResults:  state.NoResults,
		Dispatched: true,
		SetID:      state.SetID,
	}
}

func (d *Dispatcher) suppressed(state *State, company string, filters models.Filters) bool {
	if company == "" {
		return true
	}
	if company != state.Previous {
		return false
	}
	if d.opts.GuardIncludesFilters {
		return filters == state.PreviousFilters
	}
	return true
}

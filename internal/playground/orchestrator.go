// Package playground runs user code for a selected question against its
// test cases and keeps the resulting verdicts.
package playground

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"interviewdeck/internal/metrics"
	"interviewdeck/internal/models"
)

var ErrNoQuestionSelected = errors.New("no question selected")

type RunState string

const (
	StateIdle      RunState = "idle"
	StateRunning   RunState = "running"
	StateCompleted RunState = "completed"
	StateFailed    RunState = "failed"
)

type Executor interface {
	Execute(ctx context.Context, run models.ExecuteRequest) ([]models.Verdict, error)
}

// Workspace is the playground of one session. All methods are safe for
// concurrent use.
type Workspace struct {
	mu       sync.Mutex
	question *models.Question
	language models.Language
	code     string
	state    RunState
	verdicts []models.Verdict

	// dispatched is the id of the most recent run or selection; a run only
	// applies its result while it is still the latest.
	dispatched uint64
}

// Snapshot is a consistent copy of a Workspace.
type Snapshot struct {
	Question *models.Question
	Language models.Language
	Code     string
	State    RunState
	Verdicts []models.Verdict
	RunID    uint64
}

// RunOutcome describes what a Run call did.
type RunOutcome struct {
	RunID      uint64
	Superseded bool
	Err        error
	Snapshot   Snapshot
}

type Orchestrator struct {
	executor Executor
	starters *Starters
	logger   *zap.Logger
}

func NewOrchestrator(executor Executor, starters *Starters, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{executor: executor, starters: starters, logger: logger}
}

func (o *Orchestrator) Starters() *Starters {
	return o.starters
}

// NewWorkspace returns an idle workspace in the default language.
func (o *Orchestrator) NewWorkspace() *Workspace {
	code, _ := o.starters.Starter(models.DefaultLanguage)
	return &Workspace{
		language: models.DefaultLanguage,
		code:     code,
		state:    StateIdle,
	}
}

// Select hands a copy of q to the workspace. Verdicts from an earlier
// question are dropped and any run in flight will not be applied.
func (o *Orchestrator) Select(w *Workspace, q models.Question) {
	w.mu.Lock()
	defer w.mu.Unlock()

	selected := q
	w.question = &selected
	w.state = StateIdle
	w.verdicts = nil
	w.dispatched++
}

// SelectLanguage switches language and replaces the code with its starter.
// Unsaved edits are discarded.
func (o *Orchestrator) SelectLanguage(w *Workspace, lang models.Language) error {
	starter, err := o.starters.Starter(lang)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.language = lang
	w.code = starter
	return nil
}

func (o *Orchestrator) SetCode(w *Workspace, code string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.code = code
}

// Run submits the workspace code in one batched request. A transport or
// decode failure becomes a single "Error" verdict. If another run or a new
// selection was dispatched meanwhile, the result is discarded and the
// outcome is marked superseded.
func (o *Orchestrator) Run(ctx context.Context, w *Workspace) (RunOutcome, error) {
	w.mu.Lock()
	if w.question == nil {
		w.mu.Unlock()
		return RunOutcome{}, ErrNoQuestionSelected
	}
	w.dispatched++
	runID := w.dispatched
	w.state = StateRunning
	req := models.ExecuteRequest{
		Language:  w.language,
		Code:      w.code,
		TestCases: NormalizeTestCases(*w.question),
	}
	title := w.question.Title
	w.mu.Unlock()

	o.logger.Info("dispatching run",
		zap.Uint64("run_id", runID),
		zap.String("question", title),
		zap.String("language", string(req.Language)),
		zap.Int("test_cases", len(req.TestCases)))

	verdicts, err := o.executor.Execute(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	if runID != w.dispatched {
		metrics.RecordRun(metrics.OutcomeStale)
		o.logger.Info("discarding stale run",
			zap.Uint64("run_id", runID),
			zap.Uint64("latest", w.dispatched))
		return RunOutcome{RunID: runID, Superseded: true, Err: err, Snapshot: w.snapshotLocked()}, nil
	}

	if err != nil {
		metrics.RecordRun(metrics.OutcomeFailed)
		o.logger.Warn("run failed", zap.Uint64("run_id", runID), zap.Error(err))
		w.verdicts = []models.Verdict{{Status: models.StatusError, ActualOutput: err.Error()}}
		w.state = StateFailed
		return RunOutcome{RunID: runID, Err: err, Snapshot: w.snapshotLocked()}, nil
	}

	passed := CountPassing(verdicts)
	metrics.RecordRun(metrics.OutcomeOK)
	metrics.RecordVerdicts(passed, len(verdicts)-passed)
	o.logger.Info("run completed",
		zap.Uint64("run_id", runID),
		zap.String("result", Describe(verdicts)))
	w.verdicts = verdicts
	w.state = StateCompleted
	return RunOutcome{RunID: runID, Snapshot: w.snapshotLocked()}, nil
}

func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.snapshotLocked()
}

func (w *Workspace) snapshotLocked() Snapshot {
	s := Snapshot{
		Language: w.language,
		Code:     w.code,
		State:    w.state,
		RunID:    w.dispatched,
	}
	if w.question != nil {
		q := *w.question
		s.Question = &q
	}
	if w.verdicts != nil {
		s.Verdicts = make([]models.Verdict, len(w.verdicts))
		copy(s.Verdicts, w.verdicts)
	}
	return s
}

func CountPassing(verdicts []models.Verdict) int {
	n := 0
	for _, v := range verdicts {
		if v.Passing() {
			n++
		}
	}
	return n
}

// Describe renders a short status line such as "2/3 passed".
func Describe(verdicts []models.Verdict) string {
	return fmt.Sprintf("%d/%d passed", CountPassing(verdicts), len(verdicts))
}

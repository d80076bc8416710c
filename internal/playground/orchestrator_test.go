package playground

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"interviewdeck/internal/models"
)

type fakeExecutor struct {
	requests  []models.ExecuteRequest
	executeFn func(ctx context.Context, run models.ExecuteRequest) ([]models.Verdict, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, run models.ExecuteRequest) ([]models.Verdict, error) {
	f.requests = append(f.requests, run)
	if f.executeFn != nil {
		return f.executeFn(ctx, run)
	}
	return []models.Verdict{}, nil
}

func newTestOrchestrator(t *testing.T, exec Executor) *Orchestrator {
	t.Helper()
	starters, err := LoadStarters()
	require.NoError(t, err)
	return NewOrchestrator(exec, starters, zap.NewNop())
}

var twoCaseQuestion = models.Question{
	Title: "Add",
	TestCases: []models.TestCase{
		{Input: "1 1", ExpectedOutput: "2"},
		{Input: "2 2", Output: "4"},
	},
}

func TestNewWorkspace_DefaultsToCPP(t *testing.T) {
	o := newTestOrchestrator(t, &fakeExecutor{})
	snap := o.NewWorkspace().Snapshot()

	assert.Equal(t, models.LangCPP, snap.Language)
	assert.Contains(t, snap.Code, "#include <iostream>")
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Question)
}

func TestRun_WithoutSelection(t *testing.T) {
	exec := &fakeExecutor{}
	o := newTestOrchestrator(t, exec)

	_, err := o.Run(context.Background(), o.NewWorkspace())
	assert.ErrorIs(t, err, ErrNoQuestionSelected)
	assert.Empty(t, exec.requests)
}

func TestRun_ClassifiesVerdicts(t *testing.T) {
	exec := &fakeExecutor{executeFn: func(context.Context, models.ExecuteRequest) ([]models.Verdict, error) {
		return []models.Verdict{
			{Input: "1 1", Status: "Accepted"},
			{Input: "2 2", Status: "Wrong Answer"},
		}, nil
	}}
	o := newTestOrchestrator(t, exec)
	w := o.NewWorkspace()
	o.Select(w, twoCaseQuestion)
	require.NoError(t, o.SelectLanguage(w, models.LangPython))
	o.SetCode(w, "print(sum(map(int, input().split())))")

	out, err := o.Run(context.Background(), w)
	require.NoError(t, err)

	require.Len(t, exec.requests, 1)
	sent := exec.requests[0]
	assert.Equal(t, models.LangPython, sent.Language)
	assert.Equal(t, "print(sum(map(int, input().split())))", sent.Code)
	assert.Equal(t, []models.NormalizedTestCase{
		{Input: "1 1", ExpectedOutput: "2"},
		{Input: "2 2", ExpectedOutput: "4"},
	}, sent.TestCases)

	assert.False(t, out.Superseded)
	assert.Equal(t, StateCompleted, out.Snapshot.State)
	require.Len(t, out.Snapshot.Verdicts, 2)
	assert.True(t, out.Snapshot.Verdicts[0].Passing())
	assert.False(t, out.Snapshot.Verdicts[1].Passing())
	assert.Equal(t, "1/2 passed", Describe(out.Snapshot.Verdicts))
}

func TestRun_TransportErrorBecomesSingleVerdict(t *testing.T) {
	calls := 0
	exec := &fakeExecutor{executeFn: func(context.Context, models.ExecuteRequest) ([]models.Verdict, error) {
		calls++
		if calls == 1 {
			return []models.Verdict{{Status: "Accepted"}, {Status: "Accepted"}}, nil
		}
		return nil, errors.New("dial tcp: connection refused")
	}}
	o := newTestOrchestrator(t, exec)
	w := o.NewWorkspace()
	o.Select(w, twoCaseQuestion)

	_, err := o.Run(context.Background(), w)
	require.NoError(t, err)

	out, err := o.Run(context.Background(), w)
	require.NoError(t, err)
	assert.Error(t, out.Err)
	assert.Equal(t, StateFailed, out.Snapshot.State)
	assert.Equal(t, []models.Verdict{{Status: "Error", ActualOutput: "dial tcp: connection refused"}}, out.Snapshot.Verdicts)
}

func TestRun_StaleCompletionIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	exec := &fakeExecutor{}
	exec.executeFn = func(_ context.Context, run models.ExecuteRequest) ([]models.Verdict, error) {
		if run.Code == "slow" {
			close(started)
			<-release
			return []models.Verdict{{Status: "Wrong Answer"}}, nil
		}
		return []models.Verdict{{Status: "Accepted"}}, nil
	}
	o := newTestOrchestrator(t, exec)
	w := o.NewWorkspace()
	o.Select(w, models.Question{Title: "Q", Examples: []models.Example{{Input: "1", Output: "1"}}})

	o.SetCode(w, "slow")
	slowDone := make(chan RunOutcome)
	go func() {
		out, _ := o.Run(context.Background(), w)
		slowDone <- out
	}()
	<-started

	o.SetCode(w, "fast")
	fast, err := o.Run(context.Background(), w)
	require.NoError(t, err)
	assert.False(t, fast.Superseded)

	close(release)
	slow := <-slowDone
	assert.True(t, slow.Superseded)
	assert.Less(t, slow.RunID, fast.RunID)

	snap := w.Snapshot()
	assert.Equal(t, StateCompleted, snap.State)
	assert.Equal(t, []models.Verdict{{Status: "Accepted"}}, snap.Verdicts)
}

func TestSelect_ResetsVerdicts(t *testing.T) {
	exec := &fakeExecutor{executeFn: func(context.Context, models.ExecuteRequest) ([]models.Verdict, error) {
		return []models.Verdict{{Status: "Accepted"}}, nil
	}}
	o := newTestOrchestrator(t, exec)
	w := o.NewWorkspace()
	o.Select(w, twoCaseQuestion)
	_, _ = o.Run(context.Background(), w)

	o.Select(w, models.Question{Title: "Other"})
	snap := w.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Verdicts)
	assert.Equal(t, "Other", snap.Question.Title)
}

func TestSelect_CopiesQuestion(t *testing.T) {
	o := newTestOrchestrator(t, &fakeExecutor{})
	w := o.NewWorkspace()
	q := models.Question{Title: "Original"}
	o.Select(w, q)
	q.Title = "Changed"

	assert.Equal(t, "Original", w.Snapshot().Question.Title)
}

func TestSelectLanguage_ResetsCode(t *testing.T) {
	o := newTestOrchestrator(t, &fakeExecutor{})
	w := o.NewWorkspace()
	o.SetCode(w, "int main() { return 1; }")

	require.NoError(t, o.SelectLanguage(w, models.LangJavaScript))
	snap := w.Snapshot()
	assert.Equal(t, models.LangJavaScript, snap.Language)
	assert.Equal(t, "// Write your code here.", snap.Code)

	err := o.SelectLanguage(w, "go")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Equal(t, models.LangJavaScript, w.Snapshot().Language)
}

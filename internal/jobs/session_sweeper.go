package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper removes expired entries and reports how many it dropped.
type Sweeper interface {
	Sweep() int
	Len() int
}

// SessionSweeperJob evicts idle sessions on a cron schedule.
type SessionSweeperJob struct {
	store    Sweeper
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewSessionSweeperJob(store Sweeper, schedule string, logger *zap.Logger) *SessionSweeperJob {
	return &SessionSweeperJob{
		store:    store,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start schedules the sweep. An empty schedule disables the job.
func (j *SessionSweeperJob) Start() error {
	if j.schedule == "" {
		j.logger.Info("session sweep disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunSweep() }); err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	j.cron.Start()
	j.logger.Info("session sweeper started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running sweep to finish.
func (j *SessionSweeperJob) Stop() {
	if j.cron != nil {
		<-j.cron.Stop().Done()
		j.logger.Info("session sweeper stopped")
	}
}

// RunSweep performs a single sweep.
func (j *SessionSweeperJob) RunSweep() int {
	removed := j.store.Sweep()
	if removed > 0 {
		j.logger.Info("expired sessions removed",
			zap.Int("removed", removed),
			zap.Int("remaining", j.store.Len()))
	}
	return removed
}

package sched

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler drives the sweeps on their cadences: outbreak alerts hourly,
// vaccination reminders once daily at a fixed local hour. The two jobs run
// on independent cron entries and never block each other or the inbound
// path.
type Scheduler struct {
	cron    *cron.Cron
	sweeper *Sweeper
	logger  *zap.Logger
}

// NewScheduler wires the sweeps onto a cron instance. reminderHour is the
// local hour (0-23) for the daily reminder sweep.
func NewScheduler(sweeper *Sweeper, reminderHour int, logger *zap.Logger) (*Scheduler, error) {
	if reminderHour < 0 || reminderHour > 23 {
		return nil, fmt.Errorf("reminder hour %d out of range", reminderHour)
	}
	c := cron.New()
	s := &Scheduler{cron: c, sweeper: sweeper, logger: logger}

	if _, err := c.AddFunc("0 * * * *", func() {
		s.logger.Info("outbreak sweep starting")
		s.sweeper.OutbreakSweep(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("schedule outbreak sweep: %w", err)
	}
	if _, err := c.AddFunc(fmt.Sprintf("0 %d * * *", reminderHour), func() {
		s.logger.Info("reminder sweep starting")
		s.sweeper.ReminderSweep(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("schedule reminder sweep: %w", err)
	}
	return s, nil
}

// Start begins firing the cron entries.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts the timers; running sweeps finish their cycle.
func (s *Scheduler) Stop() { s.cron.Stop() }

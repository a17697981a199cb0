// Package sched runs the two periodic notification sweeps: hourly outbreak
// alerts for subscribed users and daily vaccination reminders with per-day
// dedup. Sweeps iterate a snapshot of the profile store and isolate
// per-user failures; a slow or failing external call never stalls the rest
// of a cycle.
package sched

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"swasthya-bot/internal/advisory"
	"swasthya-bot/internal/audit"
	"swasthya-bot/internal/content"
	"swasthya-bot/internal/store"
	"swasthya-bot/internal/whatsapp"
)

// dueWindowDays is the number of days past the schedule offset during
// which a dose is still considered due (inclusive).
const dueWindowDays = 3

// outbreakConcurrency bounds parallel advisory fetches and sends within
// one outbreak cycle.
const outbreakConcurrency = 8

// Sweeper runs both notification sweeps over the profile store.
type Sweeper struct {
	store    *store.Store
	advisory advisory.Source
	sender   whatsapp.Sender
	auditLog audit.Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewSweeper constructs a Sweeper from its injected collaborators.
func NewSweeper(st *store.Store, src advisory.Source, sender whatsapp.Sender, auditLog audit.Recorder, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		store:    st,
		advisory: src,
		sender:   sender,
		auditLog: auditLog,
		logger:   logger,
		now:      time.Now,
	}
}

// OutbreakSweep sends the current area advisory to every subscribed user
// with a location. Per-user failures are logged and skipped; the next
// scheduled run is the retry mechanism.
func (s *Sweeper) OutbreakSweep(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(outbreakConcurrency)

	date := s.now().Format("Mon Jan 2 2006")
	s.store.ForEach(func(identity string, p *store.UserProfile) {
		if !p.Subscribed() || p.Location() == "" {
			return
		}
		area := p.Location()
		t := content.ForLanguage(p.Language())
		pseudoID := p.PseudoID
		g.Go(func() error {
			adv, err := s.advisory.Fetch(ctx, area)
			if err != nil {
				s.logger.Warn("advisory fetch failed",
					zap.String("pseudo_id", pseudoID),
					zap.Error(err))
				return nil
			}
			alert := t.OutbreakAlertText(area, date) + "\n" + adv.Message
			if err := s.sender.Send(ctx, identity, alert); err != nil {
				s.logger.Warn("outbreak alert send failed",
					zap.String("pseudo_id", pseudoID),
					zap.Error(err))
				return nil
			}
			ev := audit.NewEvent(pseudoID, audit.TypeAlert, adv.Message, "outbreak_alert")
			if err := s.auditLog.Record(ctx, ev); err != nil {
				s.logger.Error("audit append failed", zap.Error(err))
			}
			return nil
		})
	})
	_ = g.Wait()
}

// ReminderSweep sends vaccination reminders for every dependent with doses
// inside their due window. The dedup key embeds the current calendar date,
// so a reminder goes out at most once per day per (dependent, dose) pair
// but repeats on later days inside the window.
func (s *Sweeper) ReminderSweep(ctx context.Context) {
	now := s.now()
	today := now.Format("2006-01-02")

	s.store.ForEach(func(identity string, p *store.UserProfile) {
		deps := p.Dependents()
		if len(deps) == 0 {
			return
		}
		t := content.ForLanguage(p.Language())
		for _, dep := range deps {
			for _, entry := range dueEntries(dep.DateOfBirth, now) {
				key := fmt.Sprintf("%s:%s:%s", dep.Name, entry.Name, today)
				if !p.MarkReminder(dep.Name, key) {
					continue
				}
				msg := t.ReminderText(dep.Name, entry.Name)
				if err := s.sender.Send(ctx, identity, msg); err != nil {
					s.logger.Warn("reminder send failed",
						zap.String("pseudo_id", p.PseudoID),
						zap.Error(err))
					continue
				}
				ev := audit.NewEvent(p.PseudoID, audit.TypeReminder, entry.Name, "vaccination_reminder")
				if err := s.auditLog.Record(ctx, ev); err != nil {
					s.logger.Error("audit append failed", zap.Error(err))
				}
			}
		}
	})
}

// dueEntries returns the schedule entries currently inside their due
// window for a child born on dob.
func dueEntries(dob, now time.Time) []content.ScheduleEntry {
	days := calendarDays(dob, now)
	var due []content.ScheduleEntry
	for _, entry := range content.VaccinationSchedule {
		if days >= entry.DueOffsetDays && days <= entry.DueOffsetDays+dueWindowDays {
			due = append(due, entry)
		}
	}
	return due
}

// calendarDays counts whole calendar days between two instants with both
// ends truncated to local midnight, so time of day never shifts the due
// window.
func calendarDays(from, to time.Time) int {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	// Round absorbs DST offsets of up to an hour either way.
	return int(math.Round(end.Sub(start).Hours() / 24))
}

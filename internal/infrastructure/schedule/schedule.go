// Package schedule runs the recurring newsletter rebuild.
package schedule

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers a job once a day at a fixed wall-clock time.
type Scheduler struct {
	cron *cron.Cron

	mu      sync.Mutex
	entryID cron.EntryID
	started bool
}

// New creates a scheduler evaluating clock times in loc. A nil location
// uses the local zone.
func New(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{cron: cron.New(cron.WithLocation(loc))}
}

// Daily schedules job at the given "HH:MM" time, replacing any job
// scheduled before.
func (s *Scheduler) Daily(at string, job func()) error {
	hour, minute, err := parseClock(at)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
	}

	entryID, err := s.cron.AddFunc(dailySpec(hour, minute), job)
	if err != nil {
		return fmt.Errorf("schedule daily job: %w", err)
	}
	s.entryID = entryID
	return nil
}

// Start begins running scheduled jobs. Calling it again is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		s.cron.Start()
		s.started = true
	}
}

// Stop halts the scheduler without interrupting a running job.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.cron.Stop()
		s.started = false
	}
}

// Next reports when the scheduled job fires next; false when nothing is
// scheduled or the scheduler has not started.
func (s *Scheduler) Next() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entryID == 0 {
		return time.Time{}, false
	}
	next := s.cron.Entry(s.entryID).Next
	if next.IsZero() {
		return time.Time{}, false
	}
	return next, true
}

func parseClock(at string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (expected HH:MM): %w", at, err)
	}
	return t.Hour(), t.Minute(), nil
}

// dailySpec builds the cron line: minute hour day month weekday.
func dailySpec(hour, minute int) string {
	return fmt.Sprintf("%d %d * * *", minute, hour)
}

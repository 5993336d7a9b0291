// Package schedule owns the daily trigger. It replaces an ambient job
// registry with an explicit scheduler object held by main.
package schedule

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/robfig/cron/v3"
)

// Scheduler runs one task daily at a configured HH:MM wall-clock time.
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
}

func New(lg *slog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  lg,
	}
}

// Daily registers task to run every day at the given HH:MM time.
func (s *Scheduler) Daily(at string, task func()) error {
	spec, err := CronSpec(at)
	if err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(spec, task); err != nil {
		return fmt.Errorf("schedule: failed to register job: %w", err)
	}
	s.log.Info("daily job scheduled", slog.String("at", at), slog.String("cron", spec))
	return nil
}

// Start begins the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler. A task already running is not interrupted.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// CronSpec converts an HH:MM time-of-day into a standard cron expression.
func CronSpec(at string) (string, error) {
	hour, minute, err := parseTime(at)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}

func parseTime(at string) (hour, minute int, err error) {
	if len(at) != 5 || at[2] != ':' {
		return 0, 0, fmt.Errorf("schedule: invalid time %q: must be HH:MM", at)
	}
	hour, herr := strconv.Atoi(at[:2])
	minute, merr := strconv.Atoi(at[3:])
	if herr != nil || merr != nil {
		return 0, 0, fmt.Errorf("schedule: invalid time %q: must be HH:MM", at)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("schedule: invalid time %q: hour 0-23, minute 0-59", at)
	}
	return hour, minute, nil
}

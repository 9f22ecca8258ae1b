// Package reminder schedules daily habit reminders. It reads nothing from the
// habit core except titles, and delivery is fire-and-forget: a failed
// notification is logged and dropped.
package reminder

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/habitlab/habitlab/internal/constants"
	"github.com/habitlab/habitlab/internal/logger"
)

// Notifier delivers a reminder message. Satisfied by notify.Notifier.
type Notifier interface {
	Notify(text string) error
}

// Scheduler owns the cron runner for reminder delivery.
type Scheduler struct {
	cron     *cron.Cron
	notifier Notifier
}

func NewScheduler(notifier Notifier) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		notifier: notifier,
	}
}

// ParseClock validates a local time of day in HH:MM form.
func ParseClock(at string) (hour, minute int, err error) {
	if _, err := fmt.Sscanf(at, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid reminder time %q (expected %s)", at, constants.TimeFormat)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid reminder time %q (expected %s)", at, constants.TimeFormat)
	}
	return hour, minute, nil
}

// ScheduleDaily registers a reminder for a habit title at the given local
// time of day (HH:MM). Returns an id usable with Cancel.
func (s *Scheduler) ScheduleDaily(habitTitle, at string) (int, error) {
	hour, minute, err := ParseClock(at)
	if err != nil {
		return 0, err
	}

	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	id, err := s.cron.AddFunc(spec, func() {
		text := fmt.Sprintf("Time for your habit: %s", habitTitle)
		if err := s.notifier.Notify(text); err != nil {
			logger.Warn("Reminder delivery failed", "habit", habitTitle, "error", err)
		}
	})
	if err != nil {
		return 0, fmt.Errorf("failed to schedule reminder: %w", err)
	}

	logger.Debug("Scheduled reminder", "habit", habitTitle, "at", at)
	return int(id), nil
}

// Cancel removes a scheduled reminder. Unknown ids are ignored.
func (s *Scheduler) Cancel(id int) {
	s.cron.Remove(cron.EntryID(id))
}

// Entries returns the number of scheduled reminders.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Start begins reminder delivery in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts reminder delivery, waiting for in-flight deliveries.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

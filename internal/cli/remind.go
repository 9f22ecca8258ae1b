package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/habitlab/habitlab/internal/apperr"
	"github.com/habitlab/habitlab/internal/notify"
	"github.com/habitlab/habitlab/internal/reminder"
)

type RemindCmd struct {
	Add   RemindAddCmd   `cmd:"" help:"Save a daily reminder time for a habit."`
	Serve RemindServeCmd `cmd:"" help:"Run the reminder scheduler in the foreground."`
	Send  RemindSendCmd  `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

// reminderPrefKey keys the saved reminder time for a habit in the prefs table.
func reminderPrefKey(habitID string) string {
	return "reminder:" + habitID
}

type RemindAddCmd struct {
	Title string `arg:"" help:"Habit title."`
	At    string `help:"Daily reminder time (HH:MM)." default:"09:00"`
}

func (c *RemindAddCmd) Run(ctx *Context) error {
	habit, err := findHabitByTitle(ctx, c.Title)
	if err != nil {
		return err
	}
	if _, _, err := reminder.ParseClock(c.At); err != nil {
		return err
	}

	if err := ctx.Store.SetPref(reminderPrefKey(habit.ID), c.At); err != nil {
		return err
	}

	fmt.Printf("Will remind about %q daily at %s. Run 'habitlab remind serve' to deliver.\n", habit.Title, c.At)
	return nil
}

type RemindServeCmd struct {
	At string `help:"Fallback reminder time for habits without a saved one (HH:MM)." default:""`
}

func (c *RemindServeCmd) Run(ctx *Context) error {
	// Reminders see habit titles only
	habits, err := ctx.Repo.List()
	if err != nil {
		return err
	}

	scheduler := reminder.NewScheduler(notify.New())
	scheduled := 0
	for _, habit := range habits {
		at, err := ctx.Store.GetPref(reminderPrefKey(habit.ID))
		if apperr.IsNotFound(err) {
			at = c.At
		} else if err != nil {
			return err
		}
		if at == "" {
			continue
		}
		if _, err := scheduler.ScheduleDaily(habit.Title, at); err != nil {
			return err
		}
		scheduled++
	}

	if scheduled == 0 {
		fmt.Println("No reminders saved. Use 'habitlab remind add TITLE --at HH:MM' first.")
		return nil
	}

	scheduler.Start()
	defer scheduler.Stop()

	fmt.Printf("Serving %d reminder(s). Press Ctrl+C to stop.\n", scheduled)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return nil
}

type RemindSendCmd struct {
	Text string `arg:"" help:"Notification text."`
}

func (c *RemindSendCmd) Run(ctx *Context) error {
	return notify.New().Notify(c.Text)
}

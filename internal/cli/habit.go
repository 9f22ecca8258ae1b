package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/habitlab/habitlab/internal/dateutil"
	"github.com/habitlab/habitlab/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle completion for a day."`
	Today  HabitTodayCmd  `cmd:"" help:"Show today's completion status."`
}

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Description string `help:"Optional description." default:""`
	Bad         bool   `help:"Track as a bad habit to avoid."`
	Color       string `help:"Display color." default:"blue"`
	Icon        string `help:"Display icon." default:"star"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Repo.Add(c.Title, c.Description, !c.Bad, c.Color, c.Icon)
	if err != nil {
		return err
	}

	kind := "good"
	if !habit.IsGood {
		kind = "bad"
	}
	fmt.Printf("Added %s habit: %s\n", kind, habit.Title)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Repo.List()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		marker := "+"
		if !habit.IsGood {
			marker = "-"
		}
		line := fmt.Sprintf("%s %s", marker, habit.Title)
		if habit.Description != "" {
			line += fmt.Sprintf(" (%s)", habit.Description)
		}
		fmt.Println(line)
	}

	return nil
}

type HabitDeleteCmd struct {
	Title string `arg:"" help:"Habit title to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := findHabitByTitle(ctx, c.Title)
	if err != nil {
		return err
	}

	if err := ctx.Repo.Delete(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (and all its records)\n", c.Title)
	return nil
}

type HabitToggleCmd struct {
	Title string `arg:"" help:"Habit title."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	habit, err := findHabitByTitle(ctx, c.Title)
	if err != nil {
		return err
	}

	at := time.Now()
	day := dateutil.Today()
	if c.Date != "" {
		day, err = dateutil.Parse(c.Date)
		if err != nil {
			return err
		}
		at, err = dateutil.Time(day)
		if err != nil {
			return err
		}
	}

	if err := ctx.Repo.Toggle(habit.ID, at); err != nil {
		return err
	}

	// Re-read so the printed state reflects the write
	habit, err = ctx.Repo.Get(habit.ID)
	if err != nil {
		return err
	}
	if ctx.Repo.Completed(habit, at) {
		fmt.Printf("Marked habit %q done for %s\n", c.Title, day)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", c.Title, day)
	}
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *Context) error {
	habits, err := ctx.Repo.List()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now := time.Now()
	fmt.Printf("Habits for %s:\n\n", dateutil.Today())
	done := 0
	for _, habit := range habits {
		status := "[ ]"
		if ctx.Repo.Completed(habit, now) {
			status = "[x]"
			done++
		}
		fmt.Printf("%s %s\n", status, habit.Title)
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, len(habits))
	return nil
}

func findHabitByTitle(ctx *Context, title string) (models.Habit, error) {
	habits, err := ctx.Repo.List()
	if err != nil {
		return models.Habit{}, err
	}
	for _, h := range habits {
		if strings.EqualFold(h.Title, title) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", title)
}

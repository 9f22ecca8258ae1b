package cli

import (
	"fmt"

	"github.com/habitlab/habitlab/internal/constants"
	"github.com/habitlab/habitlab/internal/dateutil"
	"github.com/habitlab/habitlab/internal/stats"
)

type StatsCmd struct {
	Window int `help:"Completion rate window in days." default:"30"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	habits, err := ctx.Repo.List()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No statistics yet. Add habits to see your progress.")
		return nil
	}

	window := c.Window
	if window <= 0 {
		window = constants.DefaultRateWindowDays
	}

	today := dateutil.Today()
	for _, habit := range habits {
		streak := stats.CurrentStreak(habit, today)
		rate := stats.CompletionRate(habit, window, today)
		fmt.Printf("%-24s streak: %3d days   rate: %3.0f%% (last %d days)\n",
			habit.Title, streak, rate*100, window)
	}

	summary := stats.Aggregate(habits)
	fmt.Printf("\nTotal: %d habits (%d good, %d bad)\n", summary.Total, summary.Good, summary.Bad)
	return nil
}

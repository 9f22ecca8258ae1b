// Package stats derives summary statistics from habit snapshots. All
// functions are pure: they read the records already loaded on the habit and
// never touch storage.
package stats

import (
	"github.com/habitlab/habitlab/internal/constants"
	"github.com/habitlab/habitlab/internal/dateutil"
	"github.com/habitlab/habitlab/internal/models"
)

// Summary is the aggregate partition of a habit collection.
type Summary struct {
	Total int
	Good  int
	Bad   int
}

// CurrentStreak returns the number of consecutive completed days ending at
// (and including) asOf. A day with no record and a day with an uncompleted
// record both break the streak, so the streak is 0 whenever asOf itself is
// not completed. The walk is capped at constants.MaxStreakDays days.
func CurrentStreak(habit models.Habit, asOf string) int {
	completed := make(map[string]bool, len(habit.Records))
	for _, record := range habit.Records {
		if record.IsCompleted {
			completed[record.Day] = true
		}
	}

	streak := 0
	day := asOf
	for i := 0; i < constants.MaxStreakDays; i++ {
		if !completed[day] {
			break
		}
		streak++
		day = dateutil.AddDays(day, -1)
	}

	return streak
}

// CompletionRate returns the ratio of completed to tracked days among the
// records whose day falls within [asOf-windowDays, asOf]. A window with no
// records rates exactly 0: "no tracked days yet", never NaN.
func CompletionRate(habit models.Habit, windowDays int, asOf string) float64 {
	start := dateutil.AddDays(asOf, -windowDays)

	total := 0
	completed := 0
	for _, record := range habit.Records {
		if record.Day < start || record.Day > asOf {
			continue
		}
		total++
		if record.IsCompleted {
			completed++
		}
	}

	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// Aggregate partitions habits by their good/bad classification.
// Good+Bad always equals Total.
func Aggregate(habits []models.Habit) Summary {
	s := Summary{Total: len(habits)}
	for _, h := range habits {
		if h.IsGood {
			s.Good++
		} else {
			s.Bad++
		}
	}
	return s
}

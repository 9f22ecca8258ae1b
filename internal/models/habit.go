package models

import "time"

// Habit represents a tracked practice, either one to build (good) or one to
// avoid (bad). A habit owns its records: deleting the habit deletes them.
type Habit struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	IsGood      bool          `json:"is_good"`
	CreatedAt   time.Time     `json:"created_at"`
	Color       string        `json:"color"`
	Icon        string        `json:"icon"`
	Records     []HabitRecord `json:"records,omitempty"`
}

// HabitRecord is a single day's completion state for a habit. At most one
// record exists per (habit, day) pair. A record's existence does not imply
// completion: toggling a completed day off flips IsCompleted in place rather
// than deleting the row, so the record id stays stable.
type HabitRecord struct {
	ID          string `json:"id"`
	HabitID     string `json:"habit_id"`
	Day         string `json:"day"` // YYYY-MM-DD format
	IsCompleted bool   `json:"is_completed"`
}

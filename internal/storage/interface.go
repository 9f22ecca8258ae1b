package storage

import "github.com/habitlab/habitlab/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	InsertHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	// GetAllHabits returns habits ordered by creation time, newest first.
	// Every returned habit carries its full record set. This is the
	// canonical order for every view of the data.
	GetAllHabits() ([]models.Habit, error)
	// DeleteHabit removes the habit and cascades to its records in a single
	// transaction. Returns apperr.ErrNotFound for an unknown id.
	DeleteHabit(id string) error

	// Habit Records
	// FindRecord looks a record up by the unique (habit, day) key.
	// Returns apperr.ErrNotFound when no record exists for the pair.
	FindRecord(habitID, day string) (models.HabitRecord, error)
	// UpsertRecord inserts the record, or if one already exists for the
	// (habit, day) pair, updates its completion state in place. The
	// existing row keeps its original id.
	UpsertRecord(models.HabitRecord) error

	// Preference flags (get/set only, no invariants)
	GetPref(key string) (string, error)
	SetPref(key, value string) error
	DeletePref(key string) error

	// Utils
	GetConfigPath() string
}

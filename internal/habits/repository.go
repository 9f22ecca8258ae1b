// Package habits is the orchestration layer over the entity store. It is the
// only writer of habit data; statistics and presentation consume the
// snapshots it returns.
package habits

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/habitlab/habitlab/internal/apperr"
	"github.com/habitlab/habitlab/internal/constants"
	"github.com/habitlab/habitlab/internal/dateutil"
	"github.com/habitlab/habitlab/internal/logger"
	"github.com/habitlab/habitlab/internal/models"
	"github.com/habitlab/habitlab/internal/storage"
)

// Repository enforces the record invariants on top of a storage.Provider.
// All mutations are serialized through a single mutex: one in-process writer,
// read-after-write consistency for sequential callers. Construct it with New
// and pass it down explicitly; there is no package singleton.
type Repository struct {
	mu    sync.Mutex
	store storage.Provider
}

func New(store storage.Provider) *Repository {
	return &Repository{store: store}
}

// Add creates and persists a new habit. The title must be non-empty; color
// and icon keys outside the known palettes fall back to the defaults.
func (r *Repository) Add(title, description string, isGood bool, color, icon string) (models.Habit, error) {
	if strings.TrimSpace(title) == "" {
		return models.Habit{}, fmt.Errorf("%w: habit title must not be empty", apperr.ErrInvalidArgument)
	}
	if !slices.Contains(constants.Colors, color) {
		color = constants.DefaultColor
	}
	if !slices.Contains(constants.Icons, icon) {
		icon = constants.DefaultIcon
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		IsGood:      isGood,
		CreatedAt:   time.Now(),
		Color:       color,
		Icon:        icon,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.InsertHabit(habit); err != nil {
		return models.Habit{}, err
	}

	logger.Debug("Added habit", "id", habit.ID, "title", habit.Title)
	return habit, nil
}

// Delete removes a habit and cascades to all its records. An unknown id is
// apperr.ErrNotFound.
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.DeleteHabit(id)
}

// Toggle flips the completion state of the habit for the day the timestamp
// falls in. The first toggle for a day creates a completed record; further
// toggles flip the existing record in place, preserving its id. Records are
// never deleted here, only via habit deletion.
func (r *Repository) Toggle(habitID string, at time.Time) error {
	day := dateutil.BucketOf(at)

	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := r.store.FindRecord(habitID, day)
	switch {
	case err == nil:
		record.IsCompleted = !record.IsCompleted
	case apperr.IsNotFound(err):
		record = models.HabitRecord{
			ID:          uuid.New().String(),
			HabitID:     habitID,
			Day:         day,
			IsCompleted: true,
		}
	default:
		return err
	}

	return r.store.UpsertRecord(record)
}

// Completed reports whether the habit has a completed record for the day the
// timestamp falls in. A missing record and an uncompleted record both read as
// false; this call does not distinguish "never tracked" from "tracked but
// unmarked".
func (r *Repository) Completed(habit models.Habit, at time.Time) bool {
	day := dateutil.BucketOf(at)
	for _, record := range habit.Records {
		if dateutil.Same(record.Day, day) && record.IsCompleted {
			return true
		}
	}
	return false
}

// List returns all habits with their records, newest-created first.
func (r *Repository) List() ([]models.Habit, error) {
	return r.store.GetAllHabits()
}

// Get returns a single habit with its records.
func (r *Repository) Get(id string) (models.Habit, error) {
	return r.store.GetHabit(id)
}

// Titles returns the habit titles in canonical order. This is the only
// surface exposed to the reminder collaborator.
func (r *Repository) Titles() ([]string, error) {
	all, err := r.store.GetAllHabits()
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(all))
	for _, h := range all {
		titles = append(titles, h.Title)
	}
	return titles, nil
}

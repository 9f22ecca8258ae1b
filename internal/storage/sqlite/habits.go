package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/habitlab/habitlab/internal/apperr"
	"github.com/habitlab/habitlab/internal/models"
)

func (s *Store) InsertHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (id, title, description, is_good, created_at, color, icon)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Title, habit.Description, boolToInt(habit.IsGood),
		habit.CreatedAt.Format(time.RFC3339Nano), habit.Color, habit.Icon)
	if err != nil {
		return apperr.Persistence("insert habit", err)
	}
	return nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, is_good, created_at, color, icon
		FROM habits WHERE id = ?`, id)

	h, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, fmt.Errorf("habit %s: %w", id, apperr.ErrNotFound)
		}
		return models.Habit{}, apperr.Persistence("get habit", err)
	}

	records, err := s.recordsForHabit(h.ID)
	if err != nil {
		return models.Habit{}, err
	}
	h.Records = records

	return h, nil
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, is_good, created_at, color, icon
		FROM habits ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, apperr.Persistence("list habits", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, apperr.Persistence("list habits", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("list habits", err)
	}

	for i := range habits {
		records, err := s.recordsForHabit(habits[i].ID)
		if err != nil {
			return nil, err
		}
		habits[i].Records = records
	}

	return habits, nil
}

// DeleteHabit removes the habit and all records owned by it in one
// transaction. An unknown id is reported as apperr.ErrNotFound.
func (s *Store) DeleteHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return apperr.Persistence("delete habit", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habit_records WHERE habit_id = ?`, id); err != nil {
		return apperr.Persistence("delete habit", err)
	}

	result, err := tx.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return apperr.Persistence("delete habit", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperr.Persistence("delete habit", err)
	}
	if rows == 0 {
		return fmt.Errorf("habit %s: %w", id, apperr.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return apperr.Persistence("delete habit", err)
	}
	return nil
}

// Habit Records

func (s *Store) FindRecord(habitID, day string) (models.HabitRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, day, is_completed
		FROM habit_records WHERE habit_id = ? AND day = ?`,
		habitID, day)

	var r models.HabitRecord
	var completed int
	err := row.Scan(&r.ID, &r.HabitID, &r.Day, &completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HabitRecord{}, fmt.Errorf("record (%s, %s): %w", habitID, day, apperr.ErrNotFound)
		}
		return models.HabitRecord{}, apperr.Persistence("find record", err)
	}
	r.IsCompleted = completed != 0

	return r, nil
}

func (s *Store) UpsertRecord(record models.HabitRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO habit_records (id, habit_id, day, is_completed)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO UPDATE SET
			is_completed = excluded.is_completed`,
		record.ID, record.HabitID, record.Day, boolToInt(record.IsCompleted))
	if err != nil {
		return apperr.Persistence("upsert record", err)
	}
	return nil
}

func (s *Store) recordsForHabit(habitID string) ([]models.HabitRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, is_completed
		FROM habit_records WHERE habit_id = ?
		ORDER BY day`, habitID)
	if err != nil {
		return nil, apperr.Persistence("load records", err)
	}
	defer rows.Close()

	var records []models.HabitRecord
	for rows.Next() {
		var r models.HabitRecord
		var completed int
		if err := rows.Scan(&r.ID, &r.HabitID, &r.Day, &completed); err != nil {
			return nil, apperr.Persistence("load records", err)
		}
		r.IsCompleted = completed != 0
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("load records", err)
	}

	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHabit(row scanner) (models.Habit, error) {
	var h models.Habit
	var isGood int
	var createdAt string

	if err := row.Scan(&h.ID, &h.Title, &h.Description, &isGood, &createdAt, &h.Color, &h.Icon); err != nil {
		return models.Habit{}, err
	}
	h.IsGood = isGood != 0

	var err error
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return h, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

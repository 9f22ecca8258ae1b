package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/habitlab/habitlab/internal/apperr"
)

func (s *Store) GetPref(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("pref %s: %w", key, apperr.ErrNotFound)
		}
		return "", apperr.Persistence("get pref", err)
	}
	return value, nil
}

func (s *Store) SetPref(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)", key, value)
	if err != nil {
		return apperr.Persistence("set pref", err)
	}
	return nil
}

func (s *Store) DeletePref(key string) error {
	_, err := s.db.Exec("DELETE FROM prefs WHERE key = ?", key)
	if err != nil {
		return apperr.Persistence("delete pref", err)
	}
	return nil
}

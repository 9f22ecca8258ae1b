package sqlite

import (
	"testing"

	"github.com/habitlab/habitlab/internal/apperr"
)

func TestPrefsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.GetPref("theme"); !apperr.IsNotFound(err) {
		t.Errorf("unset pref error = %v, want ErrNotFound", err)
	}

	if err := store.SetPref("theme", "dark"); err != nil {
		t.Fatalf("failed to set pref: %v", err)
	}
	value, err := store.GetPref("theme")
	if err != nil {
		t.Fatalf("failed to get pref: %v", err)
	}
	if value != "dark" {
		t.Errorf("expected %q, got %q", "dark", value)
	}

	// Overwrite
	if err := store.SetPref("theme", "light"); err != nil {
		t.Fatalf("failed to overwrite pref: %v", err)
	}
	value, _ = store.GetPref("theme")
	if value != "light" {
		t.Errorf("expected %q after overwrite, got %q", "light", value)
	}

	if err := store.DeletePref("theme"); err != nil {
		t.Fatalf("failed to delete pref: %v", err)
	}
	if _, err := store.GetPref("theme"); !apperr.IsNotFound(err) {
		t.Errorf("deleted pref error = %v, want ErrNotFound", err)
	}

	// Deleting a missing pref is a no-op
	if err := store.DeletePref("theme"); err != nil {
		t.Errorf("deleting a missing pref should not fail: %v", err)
	}
}

package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"simple error", errors.New("something failed"), "Error: something failed"},
		{"wrapped error", fmt.Errorf("outer: %w", errors.New("inner")), "Error: outer: inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPersistence(t *testing.T) {
	if Persistence("noop", nil) != nil {
		t.Error("Persistence(nil) should be nil")
	}

	cause := errors.New("disk full")
	err := Persistence("insert habit", cause)

	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PersistenceError, got %T", err)
	}
	if pe.Op != "insert habit" {
		t.Errorf("Op = %q, want %q", pe.Op, "insert habit")
	}
	if !errors.Is(err, cause) {
		t.Error("PersistenceError should unwrap to its cause")
	}
	if !IsPersistence(err) {
		t.Error("IsPersistence() = false, want true")
	}
	if !IsPersistence(fmt.Errorf("context: %w", err)) {
		t.Error("IsPersistence() should see through wrapping")
	}
}

func TestSentinels(t *testing.T) {
	notFound := fmt.Errorf("habit abc: %w", ErrNotFound)
	if !IsNotFound(notFound) {
		t.Error("IsNotFound() = false, want true")
	}
	if IsNotFound(ErrInvalidArgument) {
		t.Error("IsNotFound(ErrInvalidArgument) = true, want false")
	}

	invalid := fmt.Errorf("%w: empty title", ErrInvalidArgument)
	if !IsInvalidArgument(invalid) {
		t.Error("IsInvalidArgument() = false, want true")
	}
	if IsInvalidArgument(notFound) {
		t.Error("IsInvalidArgument(notFound) = true, want false")
	}
}

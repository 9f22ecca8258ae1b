package reminder

import (
	"sync"
	"testing"
)

type fakeNotifier struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (f *fakeNotifier) Notify(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	return f.err
}

func TestScheduleDaily(t *testing.T) {
	s := NewScheduler(&fakeNotifier{})

	id, err := s.ScheduleDaily("Drink water", "09:00")
	if err != nil {
		t.Fatalf("ScheduleDaily() error = %v", err)
	}
	if s.Entries() != 1 {
		t.Errorf("Entries() = %d, want 1", s.Entries())
	}

	if _, err := s.ScheduleDaily("Read", "21:30"); err != nil {
		t.Fatalf("ScheduleDaily() error = %v", err)
	}
	if s.Entries() != 2 {
		t.Errorf("Entries() = %d, want 2", s.Entries())
	}

	s.Cancel(id)
	if s.Entries() != 1 {
		t.Errorf("Entries() after Cancel = %d, want 1", s.Entries())
	}

	// Cancelling an unknown id is a no-op
	s.Cancel(9999)
	if s.Entries() != 1 {
		t.Errorf("Entries() after bogus Cancel = %d, want 1", s.Entries())
	}
}

func TestScheduleDailyInvalidTime(t *testing.T) {
	s := NewScheduler(&fakeNotifier{})

	tests := []struct {
		name string
		at   string
	}{
		{"empty", ""},
		{"no colon", "0900"},
		{"hour out of range", "24:00"},
		{"minute out of range", "09:60"},
		{"negative hour", "-1:30"},
		{"words", "nine am"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.ScheduleDaily("Drink water", tt.at); err == nil {
				t.Errorf("ScheduleDaily(%q) expected error", tt.at)
			}
		})
	}

	if s.Entries() != 0 {
		t.Errorf("Entries() = %d after only invalid schedules, want 0", s.Entries())
	}
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("07:45")
	if err != nil {
		t.Fatalf("ParseClock() error = %v", err)
	}
	if hour != 7 || minute != 45 {
		t.Errorf("ParseClock() = %d:%d, want 7:45", hour, minute)
	}

	if _, _, err := ParseClock("25:00"); err == nil {
		t.Error("ParseClock(25:00) expected error")
	}
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(&fakeNotifier{})
	if _, err := s.ScheduleDaily("Stretch", "12:00"); err != nil {
		t.Fatalf("ScheduleDaily() error = %v", err)
	}

	s.Start()
	// Stop waits for in-flight jobs, so it must return promptly when none ran.
	s.Stop()
}

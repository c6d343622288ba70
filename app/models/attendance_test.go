package models

import (
	"testing"
	"time"
)

func clock(h, m int) time.Time {
	return time.Date(2026, time.May, 15, h, m, 0, 0, time.UTC)
}

func TestAttendanceTimeSettingsContains(t *testing.T) {
	window := AttendanceTimeSettings{StartTime: "09:00", EndTime: "17:00"}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before window", clock(8, 59), false},
		{"at start", clock(9, 0), true},
		{"inside", clock(12, 30), true},
		{"last minute", clock(16, 59), true},
		{"at end is excluded", clock(17, 0), false},
		{"after window", clock(20, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := window.Contains(tt.at); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.at.Format("15:04"), got, tt.want)
			}
		})
	}

	t.Run("malformed times fail closed", func(t *testing.T) {
		broken := AttendanceTimeSettings{StartTime: "nine", EndTime: "17:00"}
		if broken.Contains(clock(12, 0)) {
			t.Error("malformed window accepted a check-in")
		}
	})
}

func TestAttendanceTimeSettingsValidate(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		s := AttendanceTimeSettings{StartTime: "09:00", EndTime: "17:00"}
		if err := s.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("inverted window", func(t *testing.T) {
		s := AttendanceTimeSettings{StartTime: "17:00", EndTime: "09:00"}
		if err := s.Validate(); err == nil {
			t.Error("inverted window accepted")
		}
	})

	t.Run("zero-length window", func(t *testing.T) {
		s := AttendanceTimeSettings{StartTime: "09:00", EndTime: "09:00"}
		if err := s.Validate(); err == nil {
			t.Error("zero-length window accepted")
		}
	})

	t.Run("unparseable time", func(t *testing.T) {
		s := AttendanceTimeSettings{StartTime: "25:99", EndTime: "17:00"}
		if err := s.Validate(); err == nil {
			t.Error("unparseable start time accepted")
		}
	})
}

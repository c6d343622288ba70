package models

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	t.Run("accepts mixed case and padding", func(t *testing.T) {
		for _, input := range []string{"friday", "Friday", "FRIDAY", "  friday  "} {
			got, err := ParseWeekday(input)
			if err != nil || got != Friday {
				t.Errorf("ParseWeekday(%q) = (%v, %v), want friday", input, got, err)
			}
		}
	})

	t.Run("rejects unknown day", func(t *testing.T) {
		if _, err := ParseWeekday("someday"); err == nil {
			t.Error("expected error for unknown weekday")
		}
	})
}

func TestWeekdayOf(t *testing.T) {
	// 2026-04-03 is a Friday.
	if got := WeekdayOf(time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC)); got != Friday {
		t.Errorf("WeekdayOf = %v, want friday", got)
	}
	if got := WeekdayOf(time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)); got != Sunday {
		t.Errorf("WeekdayOf = %v, want sunday", got)
	}
}

func TestUserFullName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"first and last", User{FirstName: "Jane", LastName: "Doe"}, "Jane Doe"},
		{"first only", User{FirstName: "Jane"}, "Jane"},
		{"falls back to email", User{Email: "jane@example.com"}, "jane@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.FullName(); got != tt.want {
				t.Errorf("FullName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMonthSummaryTotalAbsentDays(t *testing.T) {
	s := &MonthSummary{TotalWorkdays: 26, TotalPresentDays: 20}
	if got := s.TotalAbsentDays(); got != 6 {
		t.Errorf("TotalAbsentDays = %d, want 6", got)
	}
}

func TestSystemStateAlreadyProcessed(t *testing.T) {
	s := SystemState{LastProcessedMonth: "March", LastProcessedYear: 2026}
	if !s.AlreadyProcessed("March", 2026) {
		t.Error("same month and year should report processed")
	}
	if s.AlreadyProcessed("April", 2026) {
		t.Error("different month should not report processed")
	}
	if s.AlreadyProcessed("March", 2027) {
		t.Error("different year should not report processed")
	}
	if (SystemState{}).AlreadyProcessed("March", 2026) {
		t.Error("empty state should never report processed")
	}
}

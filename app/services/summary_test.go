package services

import (
	"reflect"
	"testing"
	"time"
)

func TestSplitTaskList(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		want   []string
	}{
		{"empty string", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"single entry", "1: First task", []string{"1: First task"}},
		{
			"multiple entries",
			"1: First task, 2: Second task, 3: Third",
			[]string{"1: First task", "2: Second task", "3: Third"},
		},
		{"stray commas", "1: Only, , ", []string{"1: Only"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTaskList(tt.joined)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTaskList(%q) = %#v, want %#v", tt.joined, got, tt.want)
			}
		})
	}
}

func TestMonthYear(t *testing.T) {
	month, year := MonthYear(time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC))
	if month != "March" || year != 2026 {
		t.Errorf("MonthYear = (%q, %d), want (March, 2026)", month, year)
	}
}

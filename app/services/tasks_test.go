package services

import (
	"testing"
	"time"

	"stafflog/app/models"
)

func TestTaskRef(t *testing.T) {
	got := TaskRef("42", "Write report")
	if got != "42: Write report" {
		t.Errorf("TaskRef = %q, want %q", got, "42: Write report")
	}
}

func TestValidateTaskDates(t *testing.T) {
	t.Run("start before end", func(t *testing.T) {
		if err := ValidateTaskDates(date(2026, time.May, 1), date(2026, time.May, 10)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("same day is allowed", func(t *testing.T) {
		if err := ValidateTaskDates(date(2026, time.May, 1), date(2026, time.May, 1)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("start after end", func(t *testing.T) {
		err := ValidateTaskDates(date(2026, time.May, 10), date(2026, time.May, 1))
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("compares dates not timestamps", func(t *testing.T) {
		start := time.Date(2026, time.May, 1, 23, 0, 0, 0, time.UTC)
		end := time.Date(2026, time.May, 1, 1, 0, 0, 0, time.UTC)
		if err := ValidateTaskDates(start, end); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestValidateExtension(t *testing.T) {
	today := date(2026, time.May, 15)
	currentEnd := date(2026, time.May, 20)

	t.Run("valid extension", func(t *testing.T) {
		if err := ValidateExtension(currentEnd, date(2026, time.May, 25), today); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("new end before today", func(t *testing.T) {
		err := ValidateExtension(currentEnd, date(2026, time.May, 14), today)
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if err.Error() != "Extended date must be greater than or equal to today." {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("new end equal to current end", func(t *testing.T) {
		err := ValidateExtension(currentEnd, currentEnd, today)
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if err.Error() != "Extended date must be greater than the current end date." {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("new end before current end", func(t *testing.T) {
		// Deadline already past today, extension lands between the two.
		err := ValidateExtension(date(2026, time.May, 30), date(2026, time.May, 25), today)
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("extending to today when deadline already passed", func(t *testing.T) {
		if err := ValidateExtension(date(2026, time.May, 10), today, today); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestCountTasksByStatus(t *testing.T) {
	today := date(2026, time.May, 15)
	future := date(2026, time.May, 20)
	past := date(2026, time.May, 10)

	tasks := []*models.Task{
		{StartDate: past, EndDate: future, IsCompleted: true},
		{StartDate: past, EndDate: future, IsDelivered: true},
		{StartDate: past, EndDate: future},
		{StartDate: past, EndDate: past},
		{StartDate: past, EndDate: future, ExtendedDate: &future, RevisionCount: 2},
	}

	counts := CountTasksByStatus(tasks, today)

	if counts.Total != 5 {
		t.Errorf("Total = %d, want 5", counts.Total)
	}
	if counts.Completed != 1 || counts.Pending != 1 || counts.InProcess != 1 ||
		counts.DateOver != 1 || counts.InRevision != 1 {
		t.Errorf("counts = %+v, want one of each", counts)
	}
}

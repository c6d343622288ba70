package models

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTaskStatus(t *testing.T) {
	today := day(2026, time.May, 15)
	yesterday := day(2026, time.May, 14)
	tomorrow := day(2026, time.May, 16)

	tests := []struct {
		name string
		task Task
		want TaskStatus
	}{
		{
			"completed wins over everything",
			Task{IsCompleted: true, IsDelivered: true, EndDate: yesterday},
			TaskStatus{Kind: TaskCompleted},
		},
		{
			"delivered awaits approval",
			Task{IsDelivered: true, EndDate: yesterday},
			TaskStatus{Kind: TaskPendingApproval},
		},
		{
			"extended with revisions",
			Task{EndDate: tomorrow, ExtendedDate: &tomorrow, RevisionCount: 3},
			TaskStatus{Kind: TaskInRevision, Revision: 3},
		},
		{
			"deadline passed with no extension",
			Task{EndDate: yesterday},
			TaskStatus{Kind: TaskDateOver},
		},
		{
			"deadline passed but extension shields date-over",
			Task{EndDate: yesterday, ExtendedDate: &yesterday, RevisionCount: 1},
			TaskStatus{Kind: TaskInRevision, Revision: 1},
		},
		{
			"due today is still in process",
			Task{EndDate: today},
			TaskStatus{Kind: TaskInProcess},
		},
		{
			"future deadline",
			Task{EndDate: tomorrow},
			TaskStatus{Kind: TaskInProcess},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Status(today); got != tt.want {
				t.Errorf("Status = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTaskStatusString(t *testing.T) {
	if got := (TaskStatus{Kind: TaskInRevision, Revision: 2}).String(); got != "In Revision (2)" {
		t.Errorf("String = %q, want %q", got, "In Revision (2)")
	}
	if got := (TaskStatus{Kind: TaskCompleted}).String(); got != "Completed" {
		t.Errorf("String = %q, want %q", got, "Completed")
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, time.May, 15, 23, 59, 59, 999, time.UTC)
	if got := DateOnly(in); !got.Equal(day(2026, time.May, 15)) {
		t.Errorf("DateOnly = %v", got)
	}
}

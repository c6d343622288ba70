package services

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"

	"stafflog/app/models"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parsing csv: %v", err)
	}
	return rows
}

func TestMonthSummariesCSV(t *testing.T) {
	summaries := []*models.MonthSummary{
		{
			EmployeeID:              "e1",
			EmployeeName:            "Jane Doe",
			TotalWorkdays:           26,
			TotalPresentDays:        20,
			TotalHolidaysTaken:      2,
			TotalOccasionalHolidays: 1,
			TotalTaskAssigned:       3,
			AssignedTasks:           "1: First, 2: Second, 3: Third",
			TotalTaskCompleted:      1,
			CompletedTasks:          "1: First",
			EmployeePresentStatus:   models.StatusRunning,
		},
	}

	data, err := MonthSummariesCSV(summaries)
	if err != nil {
		t.Fatalf("rendering csv: %v", err)
	}
	rows := parseCSV(t, data)

	wantHeader := []string{
		"Employee Name", "Employee ID", "Total Workdays", "Total Present Days",
		"Total Holidays Taken", "Total Occasional Holidays",
		"Total Task Assigned", "Assigned Tasks",
		"Total Task Completed", "Completed Tasks", "Employee Status",
	}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %#v", rows[0])
	}

	wantRow := []string{
		"Jane Doe", "e1", "26", "20", "2", "1",
		"3", "1: First, 2: Second, 3: Third", "1", "1: First", "Running",
	}
	if len(rows) != 2 || !reflect.DeepEqual(rows[1], wantRow) {
		t.Errorf("row = %#v, want %#v", rows[1:], wantRow)
	}
}

func TestTaskHistoryCSV(t *testing.T) {
	extended := date(2026, time.May, 25)
	records := []*models.TaskHistoryRecord{
		{
			TaskID:        "t1",
			Title:         "Write report",
			Description:   "Quarterly numbers",
			AssignedTo:    "Jane Doe",
			StartDate:     date(2026, time.May, 1),
			EndDate:       date(2026, time.May, 25),
			ExtendedDate:  &extended,
			RevisionCount: 1,
			RejectedCount: 2,
			Status:        "In Revision (1)",
			ActionTaken:   models.ActionDeleted,
			ActionDate:    time.Date(2026, time.May, 26, 9, 15, 0, 0, time.UTC),
		},
		{
			TaskID:      "t2",
			Title:       "Ship release",
			AssignedTo:  "John Smith",
			StartDate:   date(2026, time.May, 2),
			EndDate:     date(2026, time.May, 10),
			Status:      "Completed",
			ActionTaken: models.ActionApproved,
			ActionDate:  time.Date(2026, time.May, 10, 17, 0, 0, 0, time.UTC),
		},
	}

	data, err := TaskHistoryCSV(records)
	if err != nil {
		t.Fatalf("rendering csv: %v", err)
	}
	rows := parseCSV(t, data)

	wantHeader := []string{
		"Task ID", "Title", "Description", "Assigned To", "Start Date", "End Date",
		"Extended Date", "Revisions", "Rejections", "Status", "Action Taken", "Action Date",
	}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %#v", rows[0])
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[1][6] != "2026-05-25" {
		t.Errorf("extended date = %q, want 2026-05-25", rows[1][6])
	}
	if rows[2][6] != "N/A" {
		t.Errorf("missing extended date = %q, want N/A", rows[2][6])
	}
	if rows[1][11] != "2026-05-26 09:15:00" {
		t.Errorf("action date = %q", rows[1][11])
	}
	if rows[2][10] != "Approved" {
		t.Errorf("action taken = %q, want Approved", rows[2][10])
	}
}

func TestSummaryExportFilename(t *testing.T) {
	got := SummaryExportFilename(time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC))
	want := "month_summary_March_2026_2026-03-14.csv"
	if got != want {
		t.Errorf("filename = %q, want %q", got, want)
	}
}

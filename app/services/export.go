package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"stafflog/app/models"
)

const (
	exportDateLayout     = "2006-01-02"
	exportDateTimeLayout = "2006-01-02 15:04:05"
)

// MonthSummariesCSV renders the month rollups as a downloadable table.
func MonthSummariesCSV(summaries []*models.MonthSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Employee Name", "Employee ID", "Total Workdays", "Total Present Days",
		"Total Holidays Taken", "Total Occasional Holidays",
		"Total Task Assigned", "Assigned Tasks",
		"Total Task Completed", "Completed Tasks", "Employee Status",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, s := range summaries {
		row := []string{
			s.EmployeeName,
			s.EmployeeID,
			strconv.Itoa(s.TotalWorkdays),
			strconv.Itoa(s.TotalPresentDays),
			strconv.Itoa(s.TotalHolidaysTaken),
			strconv.Itoa(s.TotalOccasionalHolidays),
			strconv.Itoa(s.TotalTaskAssigned),
			s.AssignedTasks,
			strconv.Itoa(s.TotalTaskCompleted),
			s.CompletedTasks,
			string(s.EmployeePresentStatus),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// TaskHistoryCSV renders the task archive as a downloadable table.
func TaskHistoryCSV(records []*models.TaskHistoryRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Task ID", "Title", "Description", "Assigned To", "Start Date", "End Date",
		"Extended Date", "Revisions", "Rejections", "Status", "Action Taken", "Action Date",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range records {
		extended := "N/A"
		if r.ExtendedDate != nil {
			extended = r.ExtendedDate.Format(exportDateLayout)
		}
		row := []string{
			r.TaskID,
			r.Title,
			r.Description,
			r.AssignedTo,
			r.StartDate.Format(exportDateLayout),
			r.EndDate.Format(exportDateLayout),
			extended,
			strconv.Itoa(r.RevisionCount),
			strconv.Itoa(r.RejectedCount),
			r.Status,
			string(r.ActionTaken),
			r.ActionDate.Format(exportDateTimeLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// SummaryExportFilename names the month summary download, e.g.
// "month_summary_March_2026_2026-03-14.csv".
func SummaryExportFilename(now time.Time) string {
	month, year := MonthYear(now)
	return "month_summary_" + month + "_" + strconv.Itoa(year) + "_" + now.Format(exportDateLayout) + ".csv"
}

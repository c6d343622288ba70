package database

import (
	"database/sql"
	"time"

	"stafflog/app/models"
)

const summaryColumns = `id, month, year, employee_id, employee_name,
	total_workdays, total_present_days, total_holidays_taken, total_occasional_holidays,
	total_task_assigned, assigned_tasks, total_task_completed, completed_tasks,
	joining_date, leaving_date, employee_present_status`

func scanSummary(row *sql.Row) (*models.MonthSummary, error) {
	s := &models.MonthSummary{}
	err := row.Scan(
		&s.ID, &s.Month, &s.Year, &s.EmployeeID, &s.EmployeeName,
		&s.TotalWorkdays, &s.TotalPresentDays, &s.TotalHolidaysTaken, &s.TotalOccasionalHolidays,
		&s.TotalTaskAssigned, &s.AssignedTasks, &s.TotalTaskCompleted, &s.CompletedTasks,
		&s.JoiningDate, &s.LeavingDate, &s.EmployeePresentStatus,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetOrCreateMonthSummary returns the (employee, month, year) row,
// inserting a zeroed one on first touch. The unique key makes the
// insert race-safe: a concurrent insert turns into a no-op conflict
// and the existing row is read back.
func GetOrCreateMonthSummary(db *sql.DB, employeeID, employeeName, month string, year int) (*models.MonthSummary, error) {
	query := `INSERT INTO month_summaries (month, year, employee_id, employee_name)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (employee_id, month, year) DO NOTHING`
	if _, err := db.Exec(query, month, year, employeeID, employeeName); err != nil {
		return nil, err
	}
	return GetMonthSummary(db, employeeID, month, year)
}

func GetMonthSummary(db *sql.DB, employeeID, month string, year int) (*models.MonthSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM month_summaries
			  WHERE employee_id = $1 AND month = $2 AND year = $3`
	return scanSummary(db.QueryRow(query, employeeID, month, year))
}

func GetMonthSummaryByID(db *sql.DB, id string) (*models.MonthSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM month_summaries WHERE id = $1`
	return scanSummary(db.QueryRow(query, id))
}

func GetMonthSummariesForMonth(db *sql.DB, month string, year int) ([]*models.MonthSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM month_summaries
			  WHERE month = $1 AND year = $2 ORDER BY employee_name`

	rows, err := db.Query(query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]*models.MonthSummary, 0)
	for rows.Next() {
		s := &models.MonthSummary{}
		err := rows.Scan(
			&s.ID, &s.Month, &s.Year, &s.EmployeeID, &s.EmployeeName,
			&s.TotalWorkdays, &s.TotalPresentDays, &s.TotalHolidaysTaken, &s.TotalOccasionalHolidays,
			&s.TotalTaskAssigned, &s.AssignedTasks, &s.TotalTaskCompleted, &s.CompletedTasks,
			&s.JoiningDate, &s.LeavingDate, &s.EmployeePresentStatus,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func IncrementPresentDays(db *sql.DB, summaryID string) error {
	_, err := db.Exec(
		`UPDATE month_summaries SET total_present_days = total_present_days + 1 WHERE id = $1`,
		summaryID,
	)
	return err
}

// RecordAssignedTask appends the "id: title" reference and bumps the
// assigned counter.
func RecordAssignedTask(db *sql.DB, summaryID, taskRef string) error {
	query := `UPDATE month_summaries
			  SET total_task_assigned = total_task_assigned + 1,
			      assigned_tasks = CASE WHEN assigned_tasks = '' THEN $2
			                            ELSE assigned_tasks || ', ' || $2 END
			  WHERE id = $1`
	_, err := db.Exec(query, summaryID, taskRef)
	return err
}

func RecordCompletedTask(db *sql.DB, summaryID, taskRef string) error {
	query := `UPDATE month_summaries
			  SET total_task_completed = total_task_completed + 1,
			      completed_tasks = CASE WHEN completed_tasks = '' THEN $2
			                             ELSE completed_tasks || ', ' || $2 END
			  WHERE id = $1`
	_, err := db.Exec(query, summaryID, taskRef)
	return err
}

func UpdateSummaryHolidayCounts(db *sql.DB, summaryID string, workdays, holidaysTaken, occasional int) error {
	query := `UPDATE month_summaries
			  SET total_workdays = $2, total_holidays_taken = $3, total_occasional_holidays = $4
			  WHERE id = $1`
	_, err := db.Exec(query, summaryID, workdays, holidaysTaken, occasional)
	return err
}

func SetJoiningDate(db *sql.DB, summaryID string, joined time.Time) error {
	_, err := db.Exec(`UPDATE month_summaries SET joining_date = $2 WHERE id = $1`, summaryID, joined)
	return err
}

// MarkEmployeeRemoved flips every summary row for the employee to
// Removed and stamps the leaving date. Historical rows are never deleted.
func MarkEmployeeRemoved(db *sql.DB, employeeID string, left time.Time) error {
	query := `UPDATE month_summaries
			  SET employee_present_status = $2, leaving_date = $3
			  WHERE employee_id = $1`
	_, err := db.Exec(query, employeeID, string(models.StatusRemoved), left)
	return err
}

func DeleteMonthSummary(db *sql.DB, id string) (int64, error) {
	res, err := db.Exec(`DELETE FROM month_summaries WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

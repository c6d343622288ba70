package database

import (
	"database/sql"
	"time"

	"stafflog/app/models"
)

// CreateAttendance inserts a check-in row. The (employee_id, date)
// unique constraint fires when the employee already checked in today;
// callers map that to the "already marked" rejection.
func CreateAttendance(db *sql.DB, a *models.Attendance) error {
	query := `INSERT INTO attendances (employee_id, date, check_in_at)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at`
	return db.QueryRow(query, a.EmployeeID, a.Date, a.CheckInAt).Scan(&a.ID, &a.CreatedAt)
}

func GetAttendanceByEmployeeAndDate(db *sql.DB, employeeID string, date time.Time) (*models.Attendance, error) {
	a := &models.Attendance{}
	query := `SELECT id, employee_id, date, check_in_at, quit_at, created_at
			  FROM attendances WHERE employee_id = $1 AND date = $2`

	err := db.QueryRow(query, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckInAt, &a.QuitAt, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func GetAttendanceByEmployee(db *sql.DB, employeeID string) ([]*models.Attendance, error) {
	query := `SELECT id, employee_id, date, check_in_at, quit_at, created_at
			  FROM attendances WHERE employee_id = $1 ORDER BY date DESC`

	rows, err := db.Query(query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*models.Attendance, 0)
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.CheckInAt, &a.QuitAt, &a.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func CountAttendanceByEmployee(db *sql.DB, employeeID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM attendances WHERE employee_id = $1`, employeeID).Scan(&count)
	return count, err
}

// SetQuitTime stamps quit_at on today's row, only if it is still unset.
// Returns the number of rows updated; 0 means no check-in or already quit.
func SetQuitTime(db *sql.DB, employeeID string, date time.Time, quitAt time.Time) (int64, error) {
	query := `UPDATE attendances SET quit_at = $3
			  WHERE employee_id = $1 AND date = $2 AND quit_at IS NULL`
	res, err := db.Exec(query, employeeID, date, quitAt)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteAllAttendance clears every attendance row system-wide. Used
// only by the guarded monthly reset.
func DeleteAllAttendance(db *sql.DB) (int64, error) {
	res, err := db.Exec(`DELETE FROM attendances`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetAttendanceTimeSettings reads the singleton window, falling back to
// the seeded default when the row is missing.
func GetAttendanceTimeSettings(db *sql.DB) (models.AttendanceTimeSettings, error) {
	s := models.AttendanceTimeSettings{StartTime: "09:00", EndTime: "17:00"}
	err := db.QueryRow(`SELECT start_time, end_time FROM attendance_time_settings WHERE id = 1`).
		Scan(&s.StartTime, &s.EndTime)
	if err == sql.ErrNoRows {
		return s, nil
	}
	return s, err
}

func SetAttendanceTimeSettings(db *sql.DB, s models.AttendanceTimeSettings) error {
	query := `INSERT INTO attendance_time_settings (id, start_time, end_time) VALUES (1, $1, $2)
			  ON CONFLICT (id) DO UPDATE SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time`
	_, err := db.Exec(query, s.StartTime, s.EndTime)
	return err
}

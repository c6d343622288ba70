package database

import (
	"database/sql"
	"time"

	"stafflog/app/models"
)

// GetDefaultHoliday reads the singleton weekly holiday, falling back to
// Friday when the row was never configured.
func GetDefaultHoliday(db *sql.DB) (models.Weekday, error) {
	var day string
	err := db.QueryRow(`SELECT day FROM default_holiday WHERE id = 1`).Scan(&day)
	if err == sql.ErrNoRows {
		return models.DefaultHolidayFallback, nil
	}
	if err != nil {
		return models.DefaultHolidayFallback, err
	}
	parsed, err := models.ParseWeekday(day)
	if err != nil {
		return models.DefaultHolidayFallback, nil
	}
	return parsed, nil
}

func SetDefaultHoliday(db *sql.DB, day models.Weekday) error {
	query := `INSERT INTO default_holiday (id, day) VALUES (1, $1)
			  ON CONFLICT (id) DO UPDATE SET day = EXCLUDED.day`
	_, err := db.Exec(query, string(day))
	return err
}

func CreateOccasionalHoliday(db *sql.DB, date time.Time) error {
	_, err := db.Exec(`INSERT INTO occasional_holidays (date) VALUES ($1)`, date)
	return err
}

func GetAllOccasionalHolidays(db *sql.DB) ([]*models.OccasionalHoliday, error) {
	rows, err := db.Query(`SELECT id, date, created_at FROM occasional_holidays ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]*models.OccasionalHoliday, 0)
	for rows.Next() {
		h := &models.OccasionalHoliday{}
		if err := rows.Scan(&h.ID, &h.Date, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// DeleteOccasionalHolidaysByDate removes every row on the given date
// (duplicates are allowed on insert, so deletion sweeps them all).
func DeleteOccasionalHolidaysByDate(db *sql.DB, date time.Time) (int64, error) {
	res, err := db.Exec(`DELETE FROM occasional_holidays WHERE date = $1`, date)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func CreateEmployeeHoliday(db *sql.DB, employeeID string, date time.Time) error {
	_, err := db.Exec(`INSERT INTO employee_holidays (employee_id, date) VALUES ($1, $2)`, employeeID, date)
	return err
}

func GetEmployeeHolidays(db *sql.DB, employeeID string) ([]*models.EmployeeHoliday, error) {
	query := `SELECT id, employee_id, date, created_at
			  FROM employee_holidays WHERE employee_id = $1 ORDER BY date`

	rows, err := db.Query(query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]*models.EmployeeHoliday, 0)
	for rows.Next() {
		h := &models.EmployeeHoliday{}
		if err := rows.Scan(&h.ID, &h.EmployeeID, &h.Date, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func IsEmployeeHoliday(db *sql.DB, employeeID string, date time.Time) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM employee_holidays WHERE employee_id = $1 AND date = $2)`,
		employeeID, date,
	).Scan(&exists)
	return exists, err
}

func DeleteEmployeeHolidaysByDate(db *sql.DB, employeeID string, date time.Time) (int64, error) {
	res, err := db.Exec(
		`DELETE FROM employee_holidays WHERE employee_id = $1 AND date = $2`,
		employeeID, date,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

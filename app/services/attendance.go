package services

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/lib/pq"

	"stafflog/app/database"
	"stafflog/app/models"
)

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// MarkAttendance records the employee's check-in for today. Rejections
// are checked in order: outside the allowed window, holiday, already
// marked. On success the current month summary's present counter is
// incremented (the summary row is created if this is the first touch).
func MarkAttendance(db *sql.DB, employee *models.Employee, now time.Time) (*models.Attendance, error) {
	settings, err := database.GetAttendanceTimeSettings(db)
	if err != nil {
		return nil, err
	}
	if !settings.Contains(now) {
		return nil, NewPolicyError("You can only mark attendance between %s and %s.", settings.StartTime, settings.EndTime)
	}

	today := models.DateOnly(now)

	defaultDay, err := database.GetDefaultHoliday(db)
	if err != nil {
		return nil, err
	}
	if models.WeekdayOf(today) == defaultDay {
		return nil, NewPolicyError("It's your holiday, enjoy your day!")
	}
	isHoliday, err := database.IsEmployeeHoliday(db, employee.ID, today)
	if err != nil {
		return nil, err
	}
	if isHoliday {
		return nil, NewPolicyError("It's your holiday, enjoy your day!")
	}

	attendance := &models.Attendance{
		EmployeeID: employee.ID,
		Date:       today,
		CheckInAt:  now,
	}
	if err := database.CreateAttendance(db, attendance); err != nil {
		// The unique constraint on (employee_id, date) closes the
		// check-then-create race: a concurrent duplicate is a
		// rejection, not a server error.
		if isUniqueViolation(err) {
			return nil, NewPolicyError("Attendance already given for today!")
		}
		return nil, err
	}

	month, year := MonthYear(now)
	summary, err := database.GetOrCreateMonthSummary(db, employee.ID, employeeName(employee), month, year)
	if err != nil {
		return nil, err
	}
	if err := database.IncrementPresentDays(db, summary.ID); err != nil {
		return nil, err
	}

	return attendance, nil
}

// RecordQuit stamps the check-out time on today's attendance. Strict
// one-shot: a missing check-in or an already-set quit time both reject.
func RecordQuit(db *sql.DB, employee *models.Employee, now time.Time) (*models.Attendance, error) {
	today := models.DateOnly(now)

	updated, err := database.SetQuitTime(db, employee.ID, today, now)
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return nil, NewPolicyError("You have not marked attendance yet or quit time is already recorded.")
	}

	return database.GetAttendanceByEmployeeAndDate(db, employee.ID, today)
}

// ResetAttendance wipes every attendance row for the new month. The
// SystemState marker makes it idempotent per (month, year): a second
// call inside the same month rejects without deleting anything.
func ResetAttendance(db *sql.DB, now time.Time) (int64, error) {
	month, year := MonthYear(now)

	state, err := database.GetSystemState(db)
	if err != nil {
		return 0, err
	}
	if state.AlreadyProcessed(month, year) {
		return 0, NewPolicyError("Attendance has already been reset for this month.")
	}

	deleted, err := database.DeleteAllAttendance(db)
	if err != nil {
		return 0, err
	}
	if err := database.SetSystemState(db, month, year); err != nil {
		return deleted, err
	}

	log.Printf("Attendance reset for %s %d: %d records cleared", month, year, deleted)
	return deleted, nil
}

// MonthYear returns the summary key for a point in time, e.g. ("March", 2026).
func MonthYear(t time.Time) (string, int) {
	return t.Month().String(), t.Year()
}

func employeeName(employee *models.Employee) string {
	if employee.User != nil {
		return employee.User.FullName()
	}
	return employee.ID
}

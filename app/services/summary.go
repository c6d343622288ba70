package services

import (
	"database/sql"
	"log"
	"strings"
	"time"

	"stafflog/app/database"
	"stafflog/app/models"
)

// SeedMonthSummary creates the employee's rollup row for the current
// month with everything zeroed and the joining date stamped. Called at
// registration.
func SeedMonthSummary(db *sql.DB, employee *models.Employee, now time.Time) error {
	month, year := MonthYear(now)
	summary, err := database.GetOrCreateMonthSummary(db, employee.ID, employeeName(employee), month, year)
	if err != nil {
		return err
	}
	if summary.JoiningDate == nil {
		return database.SetJoiningDate(db, summary.ID, now)
	}
	return nil
}

// RefreshMonthSummaries recomputes the holiday-derived columns of every
// employee's current-month summary: workdays from the resolver's union,
// holidays taken as the employee's full extra-holiday count (the legacy
// rollup never month-filtered this figure), and the de-duplicated
// occasional count. Present-day and task counters are event-driven and
// left alone. Idempotent, so the admin dashboard and the nightly job
// can both call it freely.
// LoadHolidaySources gathers one employee's resolver inputs: the
// global default weekday, their extra holiday grants, and every
// occasional holiday.
func LoadHolidaySources(db *sql.DB, employeeID string) (HolidaySources, error) {
	defaultDay, err := database.GetDefaultHoliday(db)
	if err != nil {
		return HolidaySources{}, err
	}

	extras, err := database.GetEmployeeHolidays(db, employeeID)
	if err != nil {
		return HolidaySources{}, err
	}
	extraDates := make([]time.Time, len(extras))
	for i, h := range extras {
		extraDates[i] = h.Date
	}

	occasional, err := database.GetAllOccasionalHolidays(db)
	if err != nil {
		return HolidaySources{}, err
	}
	occasionalDates := make([]time.Time, len(occasional))
	for i, h := range occasional {
		occasionalDates[i] = h.Date
	}

	return HolidaySources{
		Default:    defaultDay,
		Extra:      extraDates,
		Occasional: occasionalDates,
	}, nil
}

func RefreshMonthSummaries(db *sql.DB, now time.Time) error {
	employees, err := database.GetAllEmployees(db, database.EmployeeFilters{})
	if err != nil {
		return err
	}

	defaultDay, err := database.GetDefaultHoliday(db)
	if err != nil {
		return err
	}
	occasional, err := database.GetAllOccasionalHolidays(db)
	if err != nil {
		return err
	}
	occasionalDates := make([]time.Time, len(occasional))
	for i, h := range occasional {
		occasionalDates[i] = h.Date
	}

	month, year := MonthYear(now)

	for _, employee := range employees {
		extras, err := database.GetEmployeeHolidays(db, employee.ID)
		if err != nil {
			return err
		}
		extraDates := make([]time.Time, len(extras))
		for i, h := range extras {
			extraDates[i] = h.Date
		}

		breakdown := ResolveHolidays(now.Year(), now.Month(), HolidaySources{
			Default:    defaultDay,
			Extra:      extraDates,
			Occasional: occasionalDates,
		})

		summary, err := database.GetOrCreateMonthSummary(db, employee.ID, employeeName(employee), month, year)
		if err != nil {
			return err
		}
		err = database.UpdateSummaryHolidayCounts(db, summary.ID,
			breakdown.Workdays, breakdown.ExtraCountAllMonths, breakdown.OccasionalCount)
		if err != nil {
			return err
		}
	}
	return nil
}

// RemoveEmployee soft-retires the employee in every summary row, drops
// the registration allow-list entry, and deletes the live employee and
// user records. History (summaries, task archive) stays behind.
func RemoveEmployee(db *sql.DB, employee *models.Employee, now time.Time) error {
	if err := database.MarkEmployeeRemoved(db, employee.ID, now); err != nil {
		return err
	}
	if employee.User != nil {
		if err := database.DeleteAllowedEmailByAddress(db, employee.User.Email); err != nil {
			return err
		}
	}
	if err := database.DeleteEmployee(db, employee.ID); err != nil {
		return err
	}
	if err := database.DeleteUser(db, employee.UserID); err != nil {
		return err
	}
	log.Printf("Employee %s removed", employee.ID)
	return nil
}

// SplitTaskList expands a comma-joined "id: title" list into its entries.
func SplitTaskList(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return []string{}
	}
	parts := strings.Split(joined, ",")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}

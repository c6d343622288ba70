package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekday defines the days of the week for the recurring default holiday.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// ParseWeekday normalizes user input into a Weekday constant.
func ParseWeekday(s string) (Weekday, error) {
	switch Weekday(strings.ToLower(strings.TrimSpace(s))) {
	case Monday:
		return Monday, nil
	case Tuesday:
		return Tuesday, nil
	case Wednesday:
		return Wednesday, nil
	case Thursday:
		return Thursday, nil
	case Friday:
		return Friday, nil
	case Saturday:
		return Saturday, nil
	case Sunday:
		return Sunday, nil
	}
	return "", fmt.Errorf("invalid weekday: %q", s)
}

// WeekdayOf returns the Weekday a calendar date falls on.
func WeekdayOf(d time.Time) Weekday {
	return Weekday(strings.ToLower(d.Weekday().String()))
}

// EmployeeStatus tracks whether a month summary's employee is still on staff.
type EmployeeStatus string

const (
	StatusRunning EmployeeStatus = "Running"
	StatusRemoved EmployeeStatus = "Removed"
)

// TaskAction defines the archival action recorded in task history.
type TaskAction string

const (
	ActionApproved TaskAction = "Approved"
	ActionDeleted  TaskAction = "Deleted"
)

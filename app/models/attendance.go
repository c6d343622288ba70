package models

import (
	"fmt"
	"time"
)

// Attendance is one check-in per employee per calendar date. The
// database enforces uniqueness on (employee_id, date); quit_at is set
// once and never changed afterwards.
type Attendance struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EmployeeID string     `json:"employee_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date       time.Time  `json:"date" gorm:"not null;type:date" validate:"required"`
	CheckInAt  time.Time  `json:"check_in_at" gorm:"not null"`
	QuitAt     *time.Time `json:"quit_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// AttendanceTimeSettings is the single global check-in window, stored
// as "HH:MM" wall-clock times. The window is half-open: check-ins are
// accepted from StartTime up to but not including EndTime.
type AttendanceTimeSettings struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// minuteOfDay parses "HH:MM" into minutes since midnight.
func minuteOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Validate checks both times parse and the window is not inverted.
func (s AttendanceTimeSettings) Validate() error {
	start, err := minuteOfDay(s.StartTime)
	if err != nil {
		return err
	}
	end, err := minuteOfDay(s.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("end time must be later than start time")
	}
	return nil
}

// Contains reports whether the wall-clock time of now falls inside the
// window. Malformed stored times fail closed.
func (s AttendanceTimeSettings) Contains(now time.Time) bool {
	start, err := minuteOfDay(s.StartTime)
	if err != nil {
		return false
	}
	end, err := minuteOfDay(s.EndTime)
	if err != nil {
		return false
	}
	minute := now.Hour()*60 + now.Minute()
	return minute >= start && minute < end
}

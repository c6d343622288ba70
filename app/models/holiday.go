package models

import "time"

// DefaultHoliday is the single global recurring non-working weekday.
// When no row has been configured the system behaves as if the day
// were Friday.
type DefaultHoliday struct {
	Day Weekday `json:"day" validate:"required"`
}

// DefaultHolidayFallback applies when no default holiday was ever configured.
const DefaultHolidayFallback = Friday

// OccasionalHoliday is an organization-wide one-off non-working date.
// Duplicate dates may exist; readers de-duplicate.
type OccasionalHoliday struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Date      time.Time `json:"date" gorm:"not null;type:date" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// EmployeeHoliday is an extra non-working date granted to one employee.
type EmployeeHoliday struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EmployeeID string    `json:"employee_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date       time.Time `json:"date" gorm:"not null;type:date" validate:"required"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

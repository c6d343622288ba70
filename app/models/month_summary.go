package models

import "time"

// MonthSummary is the denormalized per-employee per-month rollup. The
// employee is referenced by ID and name snapshot only, never by a
// foreign key, so the row outlives the employee it describes. Exactly
// one row exists per (employee_id, month, year).
type MonthSummary struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Month      string `json:"month" gorm:"not null"` // e.g. "January"
	Year       int    `json:"year" gorm:"not null"`
	EmployeeID string `json:"employee_id" gorm:"not null"`

	EmployeeName string `json:"employee_name" gorm:"not null"`

	// TotalWorkdays is signed on purpose: the workday arithmetic can go
	// negative when holidays from other months are counted against the
	// current one, and the stored value must reflect that.
	TotalWorkdays           int `json:"total_workdays"`
	TotalPresentDays        int `json:"total_present_days"`
	TotalHolidaysTaken      int `json:"total_holidays_taken"`
	TotalOccasionalHolidays int `json:"total_occasional_holidays"`

	TotalTaskAssigned int    `json:"total_task_assigned"`
	AssignedTasks     string `json:"assigned_tasks" gorm:"type:text"` // comma-joined "id: title"

	TotalTaskCompleted int    `json:"total_task_completed"`
	CompletedTasks     string `json:"completed_tasks" gorm:"type:text"`

	JoiningDate *time.Time `json:"joining_date,omitempty"`
	LeavingDate *time.Time `json:"leaving_date,omitempty"`

	EmployeePresentStatus EmployeeStatus `json:"employee_present_status" gorm:"not null;default:'Running';type:varchar(20)"`
}

// TotalAbsentDays is derived, never stored.
func (s *MonthSummary) TotalAbsentDays() int {
	return s.TotalWorkdays - s.TotalPresentDays
}

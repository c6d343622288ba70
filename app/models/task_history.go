package models

import "time"

// TaskHistoryRecord is an append-only snapshot of a task taken when it
// is deleted. Everything is denormalized (assigned_to carries the
// employee's name as text) so the record survives employee deletion.
type TaskHistoryRecord struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TaskID        string     `json:"task_id" gorm:"not null"`
	Title         string     `json:"title" gorm:"not null"`
	Description   string     `json:"description" gorm:"type:text"`
	AssignedTo    string     `json:"assigned_to" gorm:"not null"`
	StartDate     time.Time  `json:"start_date" gorm:"not null;type:date"`
	EndDate       time.Time  `json:"end_date" gorm:"not null;type:date"`
	ExtendedDate  *time.Time `json:"extended_date,omitempty" gorm:"type:date"`
	RevisionCount int        `json:"revision_count" gorm:"not null;default:0"`
	RejectedCount int        `json:"rejected_count" gorm:"not null;default:0"`
	Status        string     `json:"status" gorm:"not null"`
	ActionTaken   TaskAction `json:"action_taken" gorm:"not null;type:varchar(20)"`
	ActionDate    time.Time  `json:"action_date" gorm:"autoCreateTime"`
}

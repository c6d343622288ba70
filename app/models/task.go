package models

import (
	"fmt"
	"time"
)

// Task is a unit of work assigned to one employee. is_completed and
// is_delivered drive the derived status; extending the deadline bumps
// revision_count and stamps extended_date.
type Task struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EmployeeID    string     `json:"employee_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Title         string     `json:"title" gorm:"not null" validate:"required"`
	Description   string     `json:"description" gorm:"type:text"`
	StartDate     time.Time  `json:"start_date" gorm:"not null;type:date" validate:"required"`
	EndDate       time.Time  `json:"end_date" gorm:"not null;type:date" validate:"required"`
	ExtendedDate  *time.Time `json:"extended_date,omitempty" gorm:"type:date"`
	RevisionCount int        `json:"revision_count" gorm:"not null;default:0"`
	RejectedCount int        `json:"rejected_count" gorm:"not null;default:0"`
	IsCompleted   bool       `json:"is_completed" gorm:"not null;default:false"`
	IsDelivered   bool       `json:"is_delivered" gorm:"not null;default:false"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:ID"`
}

// TaskStatusKind enumerates the derived task states.
type TaskStatusKind string

const (
	TaskInProcess       TaskStatusKind = "In Process"
	TaskDateOver        TaskStatusKind = "Date Over"
	TaskInRevision      TaskStatusKind = "In Revision"
	TaskPendingApproval TaskStatusKind = "Pending Approval"
	TaskCompleted       TaskStatusKind = "Completed"
)

// TaskStatus is the derived state of a task. Revision is meaningful
// only when Kind is TaskInRevision.
type TaskStatus struct {
	Kind     TaskStatusKind `json:"kind"`
	Revision int            `json:"revision,omitempty"`
}

func (s TaskStatus) String() string {
	if s.Kind == TaskInRevision {
		return fmt.Sprintf("In Revision (%d)", s.Revision)
	}
	return string(s.Kind)
}

// Status derives the task state for the given day. Order matters:
// completion is terminal, delivery awaits approval, an extension with
// revisions shows as in-revision, a passed deadline with no extension
// is date-over, everything else is in-process.
func (t *Task) Status(today time.Time) TaskStatus {
	switch {
	case t.IsCompleted:
		return TaskStatus{Kind: TaskCompleted}
	case t.IsDelivered:
		return TaskStatus{Kind: TaskPendingApproval}
	case t.ExtendedDate != nil && t.RevisionCount > 0:
		return TaskStatus{Kind: TaskInRevision, Revision: t.RevisionCount}
	case DateOnly(today).After(DateOnly(t.EndDate)) && t.ExtendedDate == nil:
		return TaskStatus{Kind: TaskDateOver}
	default:
		return TaskStatus{Kind: TaskInProcess}
	}
}

// DateOnly truncates a timestamp to its calendar date in the same location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package services

import (
	"database/sql"
	"time"

	"stafflog/app/database"
	"stafflog/app/models"
)

// TaskRef is the "id: title" form tasks take inside month summary lists.
func TaskRef(taskID, title string) string {
	return taskID + ": " + title
}

// ValidateTaskDates rejects a task whose start date is after its end date.
func ValidateTaskDates(start, end time.Time) error {
	if models.DateOnly(start).After(models.DateOnly(end)) {
		return NewValidationError("Start date cannot be after end date.")
	}
	return nil
}

// AssignTask creates a task for the employee and records the assignment
// in the current month summary.
func AssignTask(db *sql.DB, employee *models.Employee, task *models.Task, now time.Time) error {
	if err := ValidateTaskDates(task.StartDate, task.EndDate); err != nil {
		return err
	}
	task.EmployeeID = employee.ID

	if err := database.CreateTask(db, task); err != nil {
		return err
	}

	month, year := MonthYear(now)
	summary, err := database.GetOrCreateMonthSummary(db, employee.ID, employeeName(employee), month, year)
	if err != nil {
		return err
	}
	return database.RecordAssignedTask(db, summary.ID, TaskRef(task.ID, task.Title))
}

// DeliverTask marks the task as delivered so an admin can review it.
// Delivering an already-delivered task changes nothing; a completed
// task can no longer be delivered.
func DeliverTask(db *sql.DB, task *models.Task) error {
	if task.IsCompleted {
		return NewPolicyError("Task is already completed.")
	}
	if err := database.SetTaskDelivered(db, task.ID, true); err != nil {
		return err
	}
	task.IsDelivered = true
	return nil
}

// ApproveTask completes a delivered task and credits it to the owning
// month summary. A task that was never delivered is silently left
// untouched, matching the delivery-then-approval flow.
func ApproveTask(db *sql.DB, task *models.Task, now time.Time) error {
	if !task.IsDelivered {
		return nil
	}
	if err := database.MarkTaskCompleted(db, task.ID); err != nil {
		return err
	}
	task.IsCompleted = true
	task.IsDelivered = false

	month, year := MonthYear(now)
	summary, err := database.GetMonthSummary(db, task.EmployeeID, month, year)
	if err == sql.ErrNoRows {
		// No summary row for this month yet; approval still stands.
		return nil
	}
	if err != nil {
		return err
	}
	return database.RecordCompletedTask(db, summary.ID, TaskRef(task.ID, task.Title))
}

// RejectTask bounces a delivered task back to the employee and counts
// the rejection. Not delivered: silent no-op.
func RejectTask(db *sql.DB, task *models.Task) error {
	if !task.IsDelivered {
		return nil
	}
	if err := database.RejectTaskDelivery(db, task.ID); err != nil {
		return err
	}
	task.IsDelivered = false
	task.RejectedCount++
	return nil
}

// ValidateExtension enforces the deadline-extension rules: the new end
// date must be today or later, and strictly after the current end date.
func ValidateExtension(currentEnd, newEnd, today time.Time) error {
	if models.DateOnly(newEnd).Before(models.DateOnly(today)) {
		return NewValidationError("Extended date must be greater than or equal to today.")
	}
	if !models.DateOnly(newEnd).After(models.DateOnly(currentEnd)) {
		return NewValidationError("Extended date must be greater than the current end date.")
	}
	return nil
}

// ExtendTask pushes the deadline out, stamps extended_date, and bumps
// the revision count.
func ExtendTask(db *sql.DB, task *models.Task, newEnd, today time.Time) error {
	if err := ValidateExtension(task.EndDate, newEnd, today); err != nil {
		return err
	}
	if err := database.ExtendTaskDeadline(db, task.ID, models.DateOnly(newEnd)); err != nil {
		return err
	}
	end := models.DateOnly(newEnd)
	task.EndDate = end
	task.ExtendedDate = &end
	task.RevisionCount++
	return nil
}

// DeleteTaskWithHistory archives the task's full state, including the
// derived status string at deletion time, then removes the live row.
func DeleteTaskWithHistory(db *sql.DB, task *models.Task, assignedTo string, now time.Time) error {
	record := &models.TaskHistoryRecord{
		TaskID:        task.ID,
		Title:         task.Title,
		Description:   task.Description,
		AssignedTo:    assignedTo,
		StartDate:     task.StartDate,
		EndDate:       task.EndDate,
		ExtendedDate:  task.ExtendedDate,
		RevisionCount: task.RevisionCount,
		RejectedCount: task.RejectedCount,
		Status:        task.Status(now).String(),
		ActionTaken:   models.ActionDeleted,
	}
	if err := database.CreateTaskHistory(db, record); err != nil {
		return err
	}
	return database.DeleteTask(db, task.ID)
}

// TaskStatusCounts buckets a task list by derived status for summary views.
type TaskStatusCounts struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	InProcess  int `json:"in_process"`
	InRevision int `json:"in_revision"`
	DateOver   int `json:"date_over"`
}

func CountTasksByStatus(tasks []*models.Task, today time.Time) TaskStatusCounts {
	counts := TaskStatusCounts{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status(today).Kind {
		case models.TaskCompleted:
			counts.Completed++
		case models.TaskPendingApproval:
			counts.Pending++
		case models.TaskInProcess:
			counts.InProcess++
		case models.TaskInRevision:
			counts.InRevision++
		case models.TaskDateOver:
			counts.DateOver++
		}
	}
	return counts
}

package database

import (
	"database/sql"
	"time"

	"stafflog/app/models"
)

func CreateTask(db *sql.DB, t *models.Task) error {
	query := `INSERT INTO tasks (employee_id, title, description, start_date, end_date)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, t.EmployeeID, t.Title, t.Description, t.StartDate, t.EndDate).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func GetTaskByID(db *sql.DB, taskID string) (*models.Task, error) {
	t := &models.Task{}
	query := `SELECT id, employee_id, title, description, start_date, end_date, extended_date,
			  revision_count, rejected_count, is_completed, is_delivered, created_at, updated_at
			  FROM tasks WHERE id = $1`

	err := db.QueryRow(query, taskID).Scan(
		&t.ID, &t.EmployeeID, &t.Title, &t.Description, &t.StartDate, &t.EndDate, &t.ExtendedDate,
		&t.RevisionCount, &t.RejectedCount, &t.IsCompleted, &t.IsDelivered, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func scanTaskRows(rows *sql.Rows) ([]*models.Task, error) {
	tasks := make([]*models.Task, 0)
	for rows.Next() {
		t := &models.Task{Employee: &models.Employee{User: &models.User{}}}
		err := rows.Scan(
			&t.ID, &t.EmployeeID, &t.Title, &t.Description, &t.StartDate, &t.EndDate, &t.ExtendedDate,
			&t.RevisionCount, &t.RejectedCount, &t.IsCompleted, &t.IsDelivered, &t.CreatedAt, &t.UpdatedAt,
			&t.Employee.User.FirstName, &t.Employee.User.LastName,
		)
		if err != nil {
			return nil, err
		}
		t.Employee.ID = t.EmployeeID
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

const taskSelect = `
	SELECT t.id, t.employee_id, t.title, t.description, t.start_date, t.end_date, t.extended_date,
		   t.revision_count, t.rejected_count, t.is_completed, t.is_delivered, t.created_at, t.updated_at,
		   u.first_name, u.last_name
	FROM tasks t
	JOIN employees e ON t.employee_id = e.id
	JOIN users u ON e.user_id = u.id`

func GetAllTasks(db *sql.DB) ([]*models.Task, error) {
	rows, err := db.Query(taskSelect + ` ORDER BY t.start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTaskRows(rows)
}

func GetTasksByEmployee(db *sql.DB, employeeID string) ([]*models.Task, error) {
	rows, err := db.Query(taskSelect+` WHERE t.employee_id = $1 ORDER BY t.end_date`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTaskRows(rows)
}

func UpdateTaskDetails(db *sql.DB, taskID, title, description string, startDate, endDate time.Time) error {
	query := `UPDATE tasks SET title = $2, description = $3, start_date = $4, end_date = $5, updated_at = NOW()
			  WHERE id = $1`
	_, err := db.Exec(query, taskID, title, description, startDate, endDate)
	return err
}

func SetTaskDelivered(db *sql.DB, taskID string, delivered bool) error {
	_, err := db.Exec(`UPDATE tasks SET is_delivered = $2, updated_at = NOW() WHERE id = $1`, taskID, delivered)
	return err
}

// MarkTaskCompleted flips a delivered task to completed and clears the
// delivery flag in one statement.
func MarkTaskCompleted(db *sql.DB, taskID string) error {
	query := `UPDATE tasks SET is_completed = true, is_delivered = false, updated_at = NOW()
			  WHERE id = $1`
	_, err := db.Exec(query, taskID)
	return err
}

func RejectTaskDelivery(db *sql.DB, taskID string) error {
	query := `UPDATE tasks SET is_delivered = false, rejected_count = rejected_count + 1, updated_at = NOW()
			  WHERE id = $1`
	_, err := db.Exec(query, taskID)
	return err
}

func ExtendTaskDeadline(db *sql.DB, taskID string, newEndDate time.Time) error {
	query := `UPDATE tasks SET end_date = $2, extended_date = $2, revision_count = revision_count + 1, updated_at = NOW()
			  WHERE id = $1`
	_, err := db.Exec(query, taskID, newEndDate)
	return err
}

func DeleteTask(db *sql.DB, taskID string) error {
	_, err := db.Exec(`DELETE FROM tasks WHERE id = $1`, taskID)
	return err
}

// Task history.

func CreateTaskHistory(db *sql.DB, h *models.TaskHistoryRecord) error {
	query := `INSERT INTO task_history
			  (task_id, title, description, assigned_to, start_date, end_date, extended_date,
			   revision_count, rejected_count, status, action_taken)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id, action_date`
	return db.QueryRow(query,
		h.TaskID, h.Title, h.Description, h.AssignedTo, h.StartDate, h.EndDate, h.ExtendedDate,
		h.RevisionCount, h.RejectedCount, h.Status, string(h.ActionTaken),
	).Scan(&h.ID, &h.ActionDate)
}

func GetAllTaskHistory(db *sql.DB) ([]*models.TaskHistoryRecord, error) {
	query := `SELECT id, task_id, title, description, assigned_to, start_date, end_date, extended_date,
			  revision_count, rejected_count, status, action_taken, action_date
			  FROM task_history ORDER BY action_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*models.TaskHistoryRecord, 0)
	for rows.Next() {
		h := &models.TaskHistoryRecord{}
		err := rows.Scan(
			&h.ID, &h.TaskID, &h.Title, &h.Description, &h.AssignedTo, &h.StartDate, &h.EndDate,
			&h.ExtendedDate, &h.RevisionCount, &h.RejectedCount, &h.Status, &h.ActionTaken, &h.ActionDate,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, h)
	}
	return records, rows.Err()
}

func DeleteTaskHistory(db *sql.DB, historyID string) (int64, error) {
	res, err := db.Exec(`DELETE FROM task_history WHERE id = $1`, historyID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

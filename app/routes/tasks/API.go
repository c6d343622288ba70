package tasks

import (
	"database/sql"
	"errors"
	"time"

	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/models"
	"stafflog/app/services"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case services.IsValidation(err):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case services.IsPolicy(err):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrPermissionDenied):
		return c.Status(403).JSON(fiber.Map{"error": "You can only deliver your own tasks"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
}

func loadTask(c *fiber.Ctx) (*models.Task, error) {
	task, err := database.GetTaskByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, c.Status(404).JSON(fiber.Map{"error": "Task not found"})
		}
		return nil, c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return task, nil
}

func AssignTaskAPI(c *fiber.Ctx) error {
	type AssignRequest struct {
		EmployeeID  string `json:"employee_id" validate:"required,uuid"`
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
		StartDate   string `json:"start_date" validate:"required"`
		EndDate     string `json:"end_date" validate:"required"`
	}

	var req AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start date, expected YYYY-MM-DD"})
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end date, expected YYYY-MM-DD"})
	}

	db := config.GetDB()
	employee, err := database.GetEmployeeByID(db, req.EmployeeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	}
	if err := services.AssignTask(db, employee, task, time.Now()); err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Task assigned",
		"task":    task,
	})
}

func UpdateTaskAPI(c *fiber.Ctx) error {
	type UpdateRequest struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
		StartDate   string `json:"start_date" validate:"required"`
		EndDate     string `json:"end_date" validate:"required"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start date, expected YYYY-MM-DD"})
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end date, expected YYYY-MM-DD"})
	}
	if err := services.ValidateTaskDates(start, end); err != nil {
		return serviceError(c, err)
	}

	task, failure := loadTask(c)
	if task == nil {
		return failure
	}

	if err := database.UpdateTaskDetails(config.GetDB(), task.ID, req.Title, req.Description, start, end); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"message": "Task updated"})
}

// DeliverTaskAPI is the employee-facing transition: only the assignee
// (or an admin) may hand a task in.
func DeliverTaskAPI(c *fiber.Ctx) error {
	task, failure := loadTask(c)
	if task == nil {
		return failure
	}

	user := c.Locals("user").(*models.User)
	if !user.IsAdmin {
		employee, err := database.GetEmployeeByUserID(config.GetDB(), user.ID)
		if err != nil || employee.ID != task.EmployeeID {
			return serviceError(c, services.ErrPermissionDenied)
		}
	}

	if err := services.DeliverTask(config.GetDB(), task); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Task delivered for review",
		"status":  task.Status(time.Now()).String(),
	})
}

func ApproveTaskAPI(c *fiber.Ctx) error {
	task, failure := loadTask(c)
	if task == nil {
		return failure
	}

	if err := services.ApproveTask(config.GetDB(), task, time.Now()); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Task approved",
		"status":  task.Status(time.Now()).String(),
	})
}

func RejectTaskAPI(c *fiber.Ctx) error {
	task, failure := loadTask(c)
	if task == nil {
		return failure
	}

	if err := services.RejectTask(config.GetDB(), task); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Task rejected",
		"status":  task.Status(time.Now()).String(),
	})
}

func ExtendTaskAPI(c *fiber.Ctx) error {
	type ExtendRequest struct {
		NewEndDate string `json:"new_end_date" validate:"required"`
	}

	var req ExtendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	newEnd, err := time.Parse(dateLayout, req.NewEndDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	task, failure := loadTask(c)
	if task == nil {
		return failure
	}

	if err := services.ExtendTask(config.GetDB(), task, newEnd, time.Now()); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Deadline extended",
		"task":    task,
	})
}

// DeleteTaskAPI archives the task into history, then removes it.
func DeleteTaskAPI(c *fiber.Ctx) error {
	task, failure := loadTask(c)
	if task == nil {
		return failure
	}

	db := config.GetDB()

	// Snapshot the assignee's name; the archive keeps it as plain text.
	assignedTo := "Unknown"
	if employee, err := database.GetEmployeeByID(db, task.EmployeeID); err == nil && employee.User != nil {
		assignedTo = employee.User.FullName()
	}

	if err := services.DeleteTaskWithHistory(db, task, assignedTo, time.Now()); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Task deleted and archived"})
}

func DeleteTaskHistoryAPI(c *fiber.Ctx) error {
	deleted, err := database.DeleteTaskHistory(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "History record not found"})
	}
	return c.JSON(fiber.Map{"message": "History record deleted"})
}

func ExportTaskHistoryAPI(c *fiber.Ctx) error {
	records, err := database.GetAllTaskHistory(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	data, err := services.TaskHistoryCSV(records)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render export"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="task_history.csv"`)
	return c.Send(data)
}

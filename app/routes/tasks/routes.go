package tasks

import (
	"database/sql"
	"time"

	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/models"
	"stafflog/app/routes/auth"
	"stafflog/app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTaskRoutes(app *fiber.App) {
	pages := app.Group("/tasks", auth.AuthMiddleware)
	pages.Get("/", ShowMyTasksPage)
	pages.Get("/all", auth.AdminOnly, ShowAllTasksPage)
	pages.Get("/history", auth.AdminOnly, ShowTaskHistoryPage)

	api := app.Group("/api/tasks", auth.AuthMiddleware)
	api.Post("/", auth.AdminOnly, AssignTaskAPI)
	api.Put("/:id", auth.AdminOnly, UpdateTaskAPI)
	api.Post("/:id/deliver", DeliverTaskAPI)
	api.Post("/:id/approve", auth.AdminOnly, ApproveTaskAPI)
	api.Post("/:id/reject", auth.AdminOnly, RejectTaskAPI)
	api.Post("/:id/extend", auth.AdminOnly, ExtendTaskAPI)
	api.Delete("/:id", auth.AdminOnly, DeleteTaskAPI)
	api.Get("/history/export", auth.AdminOnly, ExportTaskHistoryAPI)
	api.Delete("/history/:id", auth.AdminOnly, DeleteTaskHistoryAPI)
}

// statusView pairs a task with its derived status for rendering.
type statusView struct {
	Task   *models.Task `json:"task"`
	Status string       `json:"status"`
}

func withStatuses(tasks []*models.Task, now time.Time) []statusView {
	views := make([]statusView, len(tasks))
	for i, task := range tasks {
		views[i] = statusView{Task: task, Status: task.Status(now).String()}
	}
	return views
}

func ShowMyTasksPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	employee, err := database.GetEmployeeByUserID(db, user.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Redirect("/dashboard")
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	tasks, err := database.GetTasksByEmployee(db, employee.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	now := time.Now()
	return c.Render("tasks/index", fiber.Map{
		"Title":       "My Tasks - Stafflog",
		"CurrentPage": "tasks",
		"user":        user,
		"Tasks":       withStatuses(tasks, now),
		"Counts":      services.CountTasksByStatus(tasks, now),
	})
}

func ShowAllTasksPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	tasks, err := database.GetAllTasks(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	employees, err := database.GetAllEmployees(db, database.EmployeeFilters{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	now := time.Now()
	return c.Render("tasks/all", fiber.Map{
		"Title":       "Tasks - Stafflog",
		"CurrentPage": "tasks",
		"user":        user,
		"Tasks":       withStatuses(tasks, now),
		"Counts":      services.CountTasksByStatus(tasks, now),
		"Employees":   employees,
	})
}

func ShowTaskHistoryPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	records, err := database.GetAllTaskHistory(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Render("tasks/history", fiber.Map{
		"Title":       "Task History - Stafflog",
		"CurrentPage": "tasks",
		"user":        user,
		"Records":     records,
	})
}

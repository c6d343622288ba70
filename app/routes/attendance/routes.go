package attendance

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

func SetupAttendanceRoutes(app *fiber.App) {
	pages := app.Group("/attendance", auth.AuthMiddleware)
	pages.Get("/", ShowMyAttendancePage)
	pages.Get("/employees", auth.AdminOnly, ShowAllAttendancePage)
	pages.Get("/employees/:id", auth.AdminOnly, ShowEmployeeAttendancePage)

	api := app.Group("/api/attendance", auth.AuthMiddleware)
	api.Post("/mark", MarkAttendanceAPI)
	api.Post("/quit", QuitAttendanceAPI)
	api.Post("/reset", auth.AdminOnly, ResetAttendanceAPI)
	api.Get("/settings", auth.AdminOnly, GetTimeSettingsAPI)
	api.Post("/settings", auth.AdminOnly, SetTimeSettingsAPI)
}

// currentEmployee resolves the staff record behind the logged-in user.
func currentEmployee(c *fiber.Ctx) (*models.Employee, error) {
	userID := c.Locals("user_id").(string)
	return database.GetEmployeeByUserID(config.GetDB(), userID)
}

func ShowMyAttendancePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	employee, err := currentEmployee(c)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Redirect("/dashboard")
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	db := config.GetDB()
	records, err := database.GetAttendanceByEmployee(db, employee.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	today, err := database.GetAttendanceByEmployeeAndDate(db, employee.ID, models.DateOnly(time.Now()))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Render("attendance/index", fiber.Map{
		"Title":       "My Attendance - Stafflog",
		"CurrentPage": "attendance",
		"user":        user,
		"Records":     records,
		"Today":       today,
	})
}

// ShowEmployeeAttendancePage is the admin drill-down for one employee:
// the raw check-in rows plus the current month's derived percentages.
func ShowEmployeeAttendancePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	employee, err := database.GetEmployeeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	records, err := database.GetAttendanceByEmployee(db, employee.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	stats, err := employeeStats(db, employee, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	tasks, err := database.GetTasksByEmployee(db, employee.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Render("attendance/employee", fiber.Map{
		"Title":       "Employee Attendance - Stafflog",
		"CurrentPage": "attendance",
		"user":        user,
		"Employee":    employee,
		"Records":     records,
		"Stats":       stats,
		"TaskCounts":  services.CountTasksByStatus(tasks, time.Now()),
	})
}

// ShowAllAttendancePage lists every employee with this month's stats
// and task counts side by side.
func ShowAllAttendancePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()
	now := time.Now()

	employees, err := database.GetAllEmployees(db, database.EmployeeFilters{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	type employeeRow struct {
		Employee   *models.Employee         `json:"employee"`
		Stats      services.AttendanceStats `json:"stats"`
		TaskCounts services.TaskStatusCounts `json:"task_counts"`
	}

	rows := make([]employeeRow, 0, len(employees))
	for _, employee := range employees {
		stats, err := employeeStats(db, employee, now)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		tasks, err := database.GetTasksByEmployee(db, employee.ID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		rows = append(rows, employeeRow{
			Employee:   employee,
			Stats:      stats,
			TaskCounts: services.CountTasksByStatus(tasks, now),
		})
	}

	return c.Render("attendance/all", fiber.Map{
		"Title":       "Attendance Overview - Stafflog",
		"CurrentPage": "attendance",
		"user":        user,
		"Rows":        rows,
	})
}

// employeeStats runs the holiday resolver for the employee's current
// month and folds in their present-day count.
func employeeStats(db *sql.DB, employee *models.Employee, now time.Time) (services.AttendanceStats, error) {
	sources, err := services.LoadHolidaySources(db, employee.ID)
	if err != nil {
		return services.AttendanceStats{}, err
	}

	breakdown := services.ResolveHolidays(now.Year(), now.Month(), sources)

	month, year := services.MonthYear(now)
	presentDays := 0
	if summary, err := database.GetMonthSummary(db, employee.ID, month, year); err == nil {
		presentDays = summary.TotalPresentDays
	} else if err != sql.ErrNoRows {
		return services.AttendanceStats{}, err
	}

	return services.ComputeAttendanceStats(breakdown, presentDays), nil
}

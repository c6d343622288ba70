package dashboard

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

func SetupDashboardRoutes(app *fiber.App) {
	pages := app.Group("/dashboard", auth.AuthMiddleware)
	pages.Get("/", GetDashboard)

	api := app.Group("/api/dashboard", auth.AuthMiddleware)
	api.Get("/stats", GetDashboardStatsAPI)
}

// GetDashboard routes admins to the organization view and everyone
// else to their personal view.
func GetDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if user.IsAdmin {
		return adminDashboard(c, user)
	}
	return employeeDashboard(c, user)
}

// adminDashboard refreshes the current month's summary rows before
// rendering, so workday and holiday figures are never stale.
func adminDashboard(c *fiber.Ctx, user *models.User) error {
	db := config.GetDB()
	now := time.Now()

	if err := services.RefreshMonthSummaries(db, now); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to refresh summaries"})
	}

	month, year := services.MonthYear(now)
	summaries, err := database.GetMonthSummariesForMonth(db, month, year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	tasks, err := database.GetAllTasks(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	inbox, err := database.GetAllMessages(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Render("dashboard/admin", fiber.Map{
		"Title":       "Dashboard - Stafflog",
		"CurrentPage": "dashboard",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Month":       month,
		"Year":        year,
		"Summaries":   summaries,
		"TaskCounts":  services.CountTasksByStatus(tasks, now),
		"Messages":    len(inbox),
	})
}

func employeeDashboard(c *fiber.Ctx, user *models.User) error {
	db := config.GetDB()
	now := time.Now()

	employee, err := database.GetEmployeeByUserID(db, user.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Render("dashboard/index", fiber.Map{
				"Title":     "Dashboard - Stafflog",
				"user":      user,
				"FirstName": user.FirstName,
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	today, err := database.GetAttendanceByEmployeeAndDate(db, employee.ID, models.DateOnly(now))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	window, err := database.GetAttendanceTimeSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	tasks, err := database.GetTasksByEmployee(db, employee.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	stats, err := myStats(db, employee, now)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - Stafflog",
		"CurrentPage": "dashboard",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Employee":    employee,
		"Today":       today,
		"WindowOpen":  window.Contains(now),
		"Window":      window,
		"Stats":       stats,
		"TaskCounts":  services.CountTasksByStatus(tasks, now),
	})
}

func myStats(db *sql.DB, employee *models.Employee, now time.Time) (services.AttendanceStats, error) {
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

// GetDashboardStatsAPI returns the caller's current-month figures as JSON.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()
	now := time.Now()

	if user.IsAdmin {
		tasks, err := database.GetAllTasks(db)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		employees, err := database.GetAllEmployees(db, database.EmployeeFilters{})
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		return c.JSON(fiber.Map{
			"employees":   len(employees),
			"task_counts": services.CountTasksByStatus(tasks, now),
		})
	}

	employee, err := database.GetEmployeeByUserID(db, user.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No employee record for this account"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	stats, err := myStats(db, employee, now)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	tasks, err := database.GetTasksByEmployee(db, employee.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"stats":       stats,
		"task_counts": services.CountTasksByStatus(tasks, now),
	})
}

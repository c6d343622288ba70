package holidays

import (
	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/models"
	"stafflog/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupHolidayRoutes(app *fiber.App) {
	pages := app.Group("/holidays", auth.AuthMiddleware, auth.AdminOnly)
	pages.Get("/", ShowHolidaysPage)

	api := app.Group("/api/holidays", auth.AuthMiddleware, auth.AdminOnly)
	api.Get("/default", GetDefaultHolidayAPI)
	api.Post("/default", SetDefaultHolidayAPI)
	api.Get("/occasional", ListOccasionalHolidaysAPI)
	api.Post("/occasional", AddOccasionalHolidayAPI)
	api.Delete("/occasional", DeleteOccasionalHolidayAPI)
	api.Get("/employee/:id", ListEmployeeHolidaysAPI)
	api.Post("/employee/:id", AddEmployeeHolidayAPI)
	api.Delete("/employee/:id", DeleteEmployeeHolidayAPI)
}

func ShowHolidaysPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	defaultDay, err := database.GetDefaultHoliday(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	occasional, err := database.GetAllOccasionalHolidays(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	employees, err := database.GetAllEmployees(db, database.EmployeeFilters{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Render("holidays/index", fiber.Map{
		"Title":       "Holidays - Stafflog",
		"CurrentPage": "holidays",
		"user":        user,
		"DefaultDay":  defaultDay,
		"Occasional":  occasional,
		"Employees":   employees,
	})
}

package employees

import (
	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/models"
	"stafflog/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupEmployeeRoutes(app *fiber.App) {
	pages := app.Group("/employees", auth.AuthMiddleware, auth.AdminOnly)
	pages.Get("/", ShowEmployeesPage)

	api := app.Group("/api/employees", auth.AuthMiddleware, auth.AdminOnly)
	api.Get("/", ListEmployeesAPI)
	api.Put("/:id", UpdateEmployeeAPI)
	api.Delete("/:id", DeleteEmployeeAPI)

	api.Get("/positions", ListPositionsAPI)
	api.Post("/positions", CreatePositionAPI)
	api.Delete("/positions/:id", DeletePositionAPI)

	api.Get("/sectors", ListSectorsAPI)
	api.Post("/sectors", CreateSectorAPI)
	api.Delete("/sectors/:id", DeleteSectorAPI)

	api.Get("/allowed-emails", ListAllowedEmailsAPI)
	api.Post("/allowed-emails", CreateAllowedEmailAPI)
	api.Delete("/allowed-emails/:id", DeleteAllowedEmailAPI)
}

func ShowEmployeesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	filters := database.EmployeeFilters{
		SectorID:   c.Query("sector_id"),
		PositionID: c.Query("position_id"),
	}

	employees, err := database.GetAllEmployees(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	positions, err := database.GetAllPositions(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	sectors, err := database.GetAllSectors(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Render("employees/index", fiber.Map{
		"Title":       "Employees - Stafflog",
		"CurrentPage": "employees",
		"user":        user,
		"Employees":   employees,
		"Positions":   positions,
		"Sectors":     sectors,
	})
}

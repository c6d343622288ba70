package holidays

import (
	"database/sql"
	"time"

	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/models"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

func parseDateBody(c *fiber.Ctx) (time.Time, error) {
	type DateRequest struct {
		Date string `json:"date" validate:"required"`
	}

	var req DateRequest
	if err := c.BodyParser(&req); err != nil {
		return time.Time{}, err
	}
	if err := models.Validate(req); err != nil {
		return time.Time{}, err
	}
	return time.Parse(dateLayout, req.Date)
}

func GetDefaultHolidayAPI(c *fiber.Ctx) error {
	day, err := database.GetDefaultHoliday(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"day": day})
}

func SetDefaultHolidayAPI(c *fiber.Ctx) error {
	type DayRequest struct {
		Day string `json:"day" validate:"required"`
	}

	var req DayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	day, err := models.ParseWeekday(req.Day)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.SetDefaultHoliday(config.GetDB(), day); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"message": "Default holiday updated",
		"day":     day,
	})
}

func ListOccasionalHolidaysAPI(c *fiber.Ctx) error {
	holidays, err := database.GetAllOccasionalHolidays(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(holidays)
}

func AddOccasionalHolidayAPI(c *fiber.Ctx) error {
	date, err := parseDateBody(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	if err := database.CreateOccasionalHoliday(config.GetDB(), date); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Occasional holiday added"})
}

// DeleteOccasionalHolidayAPI removes every row carrying the date, so
// accidental duplicates disappear in one call.
func DeleteOccasionalHolidayAPI(c *fiber.Ctx) error {
	date, err := parseDateBody(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	deleted, err := database.DeleteOccasionalHolidaysByDate(config.GetDB(), date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "No holiday on that date"})
	}

	return c.JSON(fiber.Map{"message": "Occasional holiday removed", "deleted": deleted})
}

func ListEmployeeHolidaysAPI(c *fiber.Ctx) error {
	holidays, err := database.GetEmployeeHolidays(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(holidays)
}

func AddEmployeeHolidayAPI(c *fiber.Ctx) error {
	date, err := parseDateBody(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	db := config.GetDB()
	employee, err := database.GetEmployeeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if err := database.CreateEmployeeHoliday(db, employee.ID, date); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Employee holiday added"})
}

func DeleteEmployeeHolidayAPI(c *fiber.Ctx) error {
	date, err := parseDateBody(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	deleted, err := database.DeleteEmployeeHolidaysByDate(config.GetDB(), c.Params("id"), date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "No holiday on that date"})
	}

	return c.JSON(fiber.Map{"message": "Employee holiday removed"})
}

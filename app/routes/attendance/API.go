package attendance

import (
	"database/sql"
	"time"

	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/models"
	"stafflog/app/services"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps the typed service errors onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case services.IsValidation(err):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case services.IsPolicy(err):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
}

func MarkAttendanceAPI(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No employee record for this account"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	record, err := services.MarkAttendance(config.GetDB(), employee, time.Now())
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Attendance marked",
		"attendance": record,
	})
}

func QuitAttendanceAPI(c *fiber.Ctx) error {
	employee, err := currentEmployee(c)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No employee record for this account"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	record, err := services.RecordQuit(config.GetDB(), employee, time.Now())
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Quit time recorded",
		"attendance": record,
	})
}

func ResetAttendanceAPI(c *fiber.Ctx) error {
	deleted, err := services.ResetAttendance(config.GetDB(), time.Now())
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Attendance reset for the new month",
		"deleted": deleted,
	})
}

func GetTimeSettingsAPI(c *fiber.Ctx) error {
	settings, err := database.GetAttendanceTimeSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(settings)
}

func SetTimeSettingsAPI(c *fiber.Ctx) error {
	var settings models.AttendanceTimeSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(settings); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := settings.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.SetAttendanceTimeSettings(config.GetDB(), settings); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"message":  "Attendance window updated",
		"settings": settings,
	})
}

package employees

import (
	"database/sql"
	"time"

	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/models"
	"stafflog/app/services"

	"github.com/gofiber/fiber/v2"
)

func ListEmployeesAPI(c *fiber.Ctx) error {
	filters := database.EmployeeFilters{
		SectorID:   c.Query("sector_id"),
		PositionID: c.Query("position_id"),
	}

	employees, err := database.GetAllEmployees(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(employees)
}

// UpdateEmployeeAPI covers both halves of an employee record: the
// staff placement (sector, position) and, when supplied, the account
// profile behind it.
func UpdateEmployeeAPI(c *fiber.Ctx) error {
	type UpdateRequest struct {
		SectorID   *string `json:"sector_id"`
		PositionID *string `json:"position_id"`
		Email      string  `json:"email" validate:"omitempty,email"`
		FirstName  string  `json:"first_name"`
		LastName   string  `json:"last_name"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	employee, err := database.GetEmployeeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if err := database.UpdateEmployee(db, employee.ID, req.SectorID, req.PositionID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if req.Email != "" || req.FirstName != "" {
		email, firstName, lastName := req.Email, req.FirstName, req.LastName
		if employee.User != nil {
			if email == "" {
				email = employee.User.Email
			}
			if firstName == "" {
				firstName = employee.User.FirstName
			}
			if lastName == "" {
				lastName = employee.User.LastName
			}
		}
		if err := database.UpdateUserProfile(db, employee.UserID, email, firstName, lastName); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
	}

	return c.JSON(fiber.Map{"message": "Employee updated"})
}

// DeleteEmployeeAPI retires the employee: summary rows flip to Removed
// and stay, the account and staff record go away.
func DeleteEmployeeAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	employee, err := database.GetEmployeeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if err := services.RemoveEmployee(db, employee, time.Now()); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to remove employee"})
	}

	return c.JSON(fiber.Map{"message": "Employee removed"})
}

// Positions.

func ListPositionsAPI(c *fiber.Ctx) error {
	positions, err := database.GetAllPositions(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(positions)
}

func CreatePositionAPI(c *fiber.Ctx) error {
	var position models.Position
	if err := c.BodyParser(&position); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(position); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreatePosition(config.GetDB(), &position); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create position, name may already exist"})
	}
	return c.Status(201).JSON(position)
}

func DeletePositionAPI(c *fiber.Ctx) error {
	deleted, err := database.DeletePosition(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Position not found"})
	}
	return c.JSON(fiber.Map{"message": "Position deleted"})
}

// Sectors.

func ListSectorsAPI(c *fiber.Ctx) error {
	sectors, err := database.GetAllSectors(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(sectors)
}

func CreateSectorAPI(c *fiber.Ctx) error {
	var sector models.Sector
	if err := c.BodyParser(&sector); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(sector); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateSector(config.GetDB(), &sector); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create sector, name may already exist"})
	}
	return c.Status(201).JSON(sector)
}

func DeleteSectorAPI(c *fiber.Ctx) error {
	deleted, err := database.DeleteSector(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Sector not found"})
	}
	return c.JSON(fiber.Map{"message": "Sector deleted"})
}

// Registration allow list.

func ListAllowedEmailsAPI(c *fiber.Ctx) error {
	emails, err := database.GetAllAllowedEmails(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(emails)
}

func CreateAllowedEmailAPI(c *fiber.Ctx) error {
	type EmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	var req EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateAllowedEmail(config.GetDB(), req.Email); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add email, it may already be listed"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Email allowed"})
}

func DeleteAllowedEmailAPI(c *fiber.Ctx) error {
	deleted, err := database.DeleteAllowedEmailByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Email not found"})
	}
	return c.JSON(fiber.Map{"message": "Email removed from allow list"})
}

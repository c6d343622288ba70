package auth

import (
	"database/sql"
	"time"

	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/models"
	"stafflog/app/services"

	"github.com/gofiber/fiber/v2"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := GenerateJWT(user.ID, user.Email, user.FirstName, user.LastName, user.IsAdmin)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	// Set JWT as HTTP-only cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear JWT cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}

// RegisterAPI signs up a new employee. Only addresses on the allow
// list may register; the account, the staff record and the current
// month's summary row are all created here.
func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Email      string `json:"email" form:"email" validate:"required,email"`
		Password   string `json:"password" form:"password" validate:"required,min=8"`
		FirstName  string `json:"first_name" form:"first_name" validate:"required"`
		LastName   string `json:"last_name" form:"last_name"`
		SectorID   string `json:"sector_id" form:"sector_id" validate:"required,uuid"`
		PositionID string `json:"position_id" form:"position_id" validate:"required,uuid"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()

	allowed, err := database.IsEmailAllowed(db, req.Email)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !allowed {
		return c.Status(400).JSON(fiber.Map{"error": "This email is not allowed to register."})
	}

	if _, err := database.GetUserByEmail(db, req.Email); err == nil {
		return c.Status(400).JSON(fiber.Map{"error": "An account with this email already exists."})
	} else if err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}
	if err := database.CreateUser(db, user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	employee := &models.Employee{
		UserID:     user.ID,
		SectorID:   &req.SectorID,
		PositionID: &req.PositionID,
		User:       user,
	}
	if err := database.CreateEmployee(db, employee); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create employee"})
	}

	if err := services.SeedMonthSummary(db, employee, time.Now()); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create month summary"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Registration successful",
		"employee": employee,
	})
}

func UpdateProfileAPI(c *fiber.Ctx) error {
	type ProfileRequest struct {
		Email     string `json:"email" form:"email" validate:"required,email"`
		FirstName string `json:"first_name" form:"first_name" validate:"required"`
		LastName  string `json:"last_name" form:"last_name"`
	}

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	userID := c.Locals("user_id").(string)
	if err := database.UpdateUserProfile(config.GetDB(), userID, req.Email, req.FirstName, req.LastName); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"message": "Profile updated successfully"})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" form:"current_password"`
		NewPassword     string `json:"new_password" form:"new_password" validate:"required,min=8"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	userID := c.Locals("user_id").(string)

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(400).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

// SetPasswordAPI lets an admin reset any user's password without
// knowing the current one.
func SetPasswordAPI(c *fiber.Ctx) error {
	type SetPasswordRequest struct {
		UserID      string `json:"user_id" form:"user_id" validate:"required,uuid"`
		NewPassword string `json:"new_password" form:"new_password" validate:"required,min=8"`
	}

	var req SetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := database.GetUserByID(config.GetDB(), req.UserID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), req.UserID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password set successfully"})
}

package auth

import (
	"strings"

	"stafflog/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Get("/register", ShowRegisterPage)
	auth.Post("/register", RegisterAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/profile", ShowProfilePage)
	auth.Post("/profile", UpdateProfileAPI)
	auth.Post("/change-password", ChangePasswordAPI)
	auth.Post("/set-password", AdminOnly, SetPasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Stafflog",
	}, "")
}

func ShowRegisterPage(c *fiber.Ctx) error {
	return c.Render("auth/register", fiber.Map{
		"Title": "Register - Stafflog",
	}, "")
}

func ShowProfilePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	return c.Render("auth/profile", fiber.Map{
		"Title":       "Profile - Stafflog",
		"CurrentPage": "profile",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}

func AuthMiddleware(c *fiber.Ctx) error {
	// JWT from cookie, falling back to the Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsAdmin:   claims.IsAdmin,
		IsActive:  true,
	}

	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("is_admin", user.IsAdmin)
	c.Locals("user", user)

	return c.Next()
}

// AdminOnly gates a route to admin accounts. Must run after AuthMiddleware.
func AdminOnly(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if !user.IsAdmin {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(403).JSON(fiber.Map{"error": "Admin access required"})
		}
		return c.Redirect("/dashboard")
	}
	return c.Next()
}

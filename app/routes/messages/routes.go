package messages

import (
	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/models"
	"stafflog/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupMessageRoutes(app *fiber.App) {
	// Contact form is public.
	app.Get("/contact", ShowContactPage)
	app.Post("/api/contact", CreateMessageAPI)

	admin := app.Group("/messages", auth.AuthMiddleware, auth.AdminOnly)
	admin.Get("/", ShowInboxPage)

	api := app.Group("/api/messages", auth.AuthMiddleware, auth.AdminOnly)
	api.Get("/", ListMessagesAPI)
	api.Delete("/:id", DeleteMessageAPI)
}

func ShowContactPage(c *fiber.Ctx) error {
	return c.Render("messages/contact", fiber.Map{
		"Title": "Contact - Stafflog",
	}, "")
}

func ShowInboxPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	inbox, err := database.GetAllMessages(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Render("messages/index", fiber.Map{
		"Title":       "Messages - Stafflog",
		"CurrentPage": "messages",
		"user":        user,
		"Messages":    inbox,
	})
}

func CreateMessageAPI(c *fiber.Ctx) error {
	var message models.Message
	if err := c.BodyParser(&message); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(message); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateMessage(config.GetDB(), &message); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Thanks for reaching out!"})
}

func ListMessagesAPI(c *fiber.Ctx) error {
	inbox, err := database.GetAllMessages(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(inbox)
}

func DeleteMessageAPI(c *fiber.Ctx) error {
	deleted, err := database.DeleteMessage(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Message not found"})
	}
	return c.JSON(fiber.Map{"message": "Message deleted"})
}

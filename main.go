package main

import (
	"encoding/json"
	"log"
	"time"

	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/routes/attendance"
	"stafflog/app/routes/auth"
	"stafflog/app/routes/dashboard"
	"stafflog/app/routes/employees"
	"stafflog/app/routes/holidays"
	"stafflog/app/routes/messages"
	"stafflog/app/routes/summaries"
	"stafflog/app/routes/tasks"
	"stafflog/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// API requests get JSON, web requests get a rendered page
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Stafflog",
			"CurrentPage": "",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - Stafflog",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - Stafflog",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Stafflog",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// All attendance windows and holiday dates are wall-clock local time.
	loc, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Dhaka location, falling back to UTC+6: %v", err)
		time.Local = time.FixedZone("BST", 6*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	config.LoadEnv()
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.Reload(true) // Enable template reloading for development

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	tasks.SetupTaskRoutes(app)
	holidays.SetupHolidayRoutes(app)
	employees.SetupEmployeeRoutes(app)
	summaries.SetupSummaryRoutes(app)
	messages.SetupMessageRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	port := config.AppConfig.Port
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}

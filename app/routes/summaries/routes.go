package summaries

import (
	"time"

	"stafflog/app/config"
	"stafflog/app/database"
	"stafflog/app/models"
	"stafflog/app/routes/auth"
	"stafflog/app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSummaryRoutes(app *fiber.App) {
	pages := app.Group("/summaries", auth.AuthMiddleware, auth.AdminOnly)
	pages.Get("/", ShowSummariesPage)

	api := app.Group("/api/summaries", auth.AuthMiddleware, auth.AdminOnly)
	api.Get("/", ListSummariesAPI)
	api.Get("/export", ExportSummariesAPI)
	api.Delete("/:id", DeleteSummaryAPI)
}

// summaryView expands the comma-joined task lists for rendering.
type summaryView struct {
	Summary        *models.MonthSummary `json:"summary"`
	AssignedTasks  []string             `json:"assigned_tasks"`
	CompletedTasks []string             `json:"completed_tasks"`
	AbsentDays     int                  `json:"absent_days"`
}

func currentMonthSummaries(now time.Time) ([]summaryView, error) {
	month, year := services.MonthYear(now)
	summaries, err := database.GetMonthSummariesForMonth(config.GetDB(), month, year)
	if err != nil {
		return nil, err
	}

	views := make([]summaryView, len(summaries))
	for i, s := range summaries {
		views[i] = summaryView{
			Summary:        s,
			AssignedTasks:  services.SplitTaskList(s.AssignedTasks),
			CompletedTasks: services.SplitTaskList(s.CompletedTasks),
			AbsentDays:     s.TotalAbsentDays(),
		}
	}
	return views, nil
}

func ShowSummariesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	now := time.Now()

	views, err := currentMonthSummaries(now)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	month, year := services.MonthYear(now)
	return c.Render("summaries/index", fiber.Map{
		"Title":       "Month Summaries - Stafflog",
		"CurrentPage": "summaries",
		"user":        user,
		"Month":       month,
		"Year":        year,
		"Summaries":   views,
	})
}

func ListSummariesAPI(c *fiber.Ctx) error {
	views, err := currentMonthSummaries(time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(views)
}

func ExportSummariesAPI(c *fiber.Ctx) error {
	now := time.Now()
	month, year := services.MonthYear(now)

	summaries, err := database.GetMonthSummariesForMonth(config.GetDB(), month, year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	data, err := services.MonthSummariesCSV(summaries)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render export"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="`+services.SummaryExportFilename(now)+`"`)
	return c.Send(data)
}

func DeleteSummaryAPI(c *fiber.Ctx) error {
	deleted, err := database.DeleteMonthSummary(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Summary not found"})
	}
	return c.JSON(fiber.Map{"message": "Summary deleted"})
}

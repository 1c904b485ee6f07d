package dashboard

import (
	"time"

	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, GetDashboard)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetDashboardStatsAPI)
}

// GetDashboard renders the dashboard page.
func GetDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	stats, err := buildStats(config.GetDB(), int(time.Now().Month()))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - CED Training Center",
		"CurrentPage": "dashboard",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"user":        user,
		"Stats":       stats,
	})
}

// GetDashboardStatsAPI returns the dashboard numbers as JSON.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := buildStats(config.GetDB(), int(time.Now().Month()))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

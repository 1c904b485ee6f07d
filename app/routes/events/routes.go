package events

import (
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupEventsRoutes(app *fiber.App) {
	web := app.Group("/events")
	web.Use(auth.AuthMiddleware)
	web.Get("/", renderEventsPage)

	api := app.Group("/api/events")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetCalendarEventsAPI)
	api.Post("/", CreateEventAPI)
	api.Delete("/:id", DeleteEventAPI)
}

func renderEventsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	eventList, err := database.GetAllEvents(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load events")
	}

	return c.Render("events/index", fiber.Map{
		"Title":       "Events Calendar - CED Training Center",
		"CurrentPage": "events",
		"user":        user,
		"Events":      eventList,
	})
}

package events

import (
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/validation"
	"github.com/gofiber/fiber/v2"
)

type eventRequest struct {
	EventName string `json:"event_name" validate:"required"`
	EventDate string `json:"event_date" validate:"required"`
}

func (r eventRequest) toModel() (*models.Event, []validation.FieldError) {
	if fields := validation.Struct(r); fields != nil {
		return nil, fields
	}

	date, err := validation.Date(r.EventDate)
	if err != nil {
		return nil, []validation.FieldError{{
			Field: "event_date",
			Error: "must be a date in YYYY-MM-DD format",
		}}
	}

	return &models.Event{
		EventName: r.EventName,
		EventDate: date,
	}, nil
}

// toCalendarEvents maps stored events to the single-day shape the
// calendar widget renders: start and end are the same date.
func toCalendarEvents(eventList []*models.Event) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(eventList))
	for _, e := range eventList {
		day := e.EventDate.Format("2006-01-02")
		out = append(out, models.CalendarEvent{
			ID:          e.ID,
			Title:       e.EventName,
			Start:       day,
			End:         day,
			Description: "",
		})
	}
	return out
}

func GetCalendarEventsAPI(c *fiber.Ctx) error {
	eventList, err := database.GetAllEvents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load events"})
	}
	return c.JSON(toCalendarEvents(eventList))
}

func CreateEventAPI(c *fiber.Ctx) error {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	event, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.CreateEvent(config.GetDB(), event); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create event"})
	}
	return c.Status(201).JSON(event)
}

func DeleteEventAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid event ID"})
	}

	if err := database.DeleteEvent(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete event"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

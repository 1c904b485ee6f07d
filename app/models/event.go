package models

import "time"

// Event is a calendar entry.
type Event struct {
	ID        int       `json:"id"`
	EventName string    `json:"event_name" validate:"required"`
	EventDate time.Time `json:"event_date" validate:"required"`
}

// CalendarEvent is the shape the calendar widget consumes.
type CalendarEvent struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
}

package events

import (
	"testing"
	"time"

	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/stretchr/testify/assert"
)

func TestToCalendarEvents(t *testing.T) {
	out := toCalendarEvents([]*models.Event{
		{ID: 1, EventName: "Graduation", EventDate: time.Date(2024, 7, 19, 0, 0, 0, 0, time.UTC)},
		{ID: 2, EventName: "Orientation", EventDate: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)},
	})

	assert.Equal(t, []models.CalendarEvent{
		{ID: 1, Title: "Graduation", Start: "2024-07-19", End: "2024-07-19", Description: ""},
		{ID: 2, Title: "Orientation", Start: "2024-09-02", End: "2024-09-02", Description: ""},
	}, out)
}

func TestToCalendarEventsEmpty(t *testing.T) {
	assert.Empty(t, toCalendarEvents(nil))
}

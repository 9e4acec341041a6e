package calendar_test

import (
	"appointly/internal/domains/appointment/calendar"
	"appointly/internal/domains/appointment/model"
	"bytes"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2023, 12, 30, 8, 0, 0, 0, time.UTC)

	appointments := []model.Appointment{
		{ID: "a-1", Date: day, StartTime: "10:00", DurationMinutes: 45, Status: "confirmed", CustomerName: "Dana", CustomerPhone: "050-1234567"},
		{ID: "a-2", Date: day, StartTime: "12:00", DurationMinutes: 60, Status: "blocked"},
		{ID: "a-3", Date: day, StartTime: "14:00", DurationMinutes: 30, Status: "cancelled", CustomerName: "Gone"},
		{ID: "a-4", Date: day, StartTime: "late", DurationMinutes: 30, Status: "pending"},
		{ID: "a-5", Date: day, StartTime: "15:30", DurationMinutes: 30, Status: "pending"},
	}

	body := calendar.Render("Studio Noa", appointments, loc, now)

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 3)

	first := events[0]
	assert.Equal(t, "a-1@appointly", first.GetProperty(ical.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "Dana", first.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "CONFIRMED", first.GetProperty(ical.ComponentPropertyStatus).Value)

	start, err := first.GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	end, err := first.GetEndAt()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, end.Sub(start))

	assert.Equal(t, "Blocked", events[1].GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "TENTATIVE", events[2].GetProperty(ical.ComponentPropertyStatus).Value)
	assert.Contains(t, string(body), "X-WR-CALNAME:Studio Noa")
}

func TestRender_Empty(t *testing.T) {
	body := calendar.Render("", nil, time.UTC, time.Now())

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Empty(t, cal.Events())
}

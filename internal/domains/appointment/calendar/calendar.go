package calendar

import (
	"appointly/internal/availability"
	"appointly/internal/domains/appointment/model"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/rs/zerolog/log"
)

const (
	productID   = "-//appointly//appointments//EN"
	uidDomain   = "appointly"
	blockedName = "Blocked"
)

// Render writes the appointments as an iCalendar document. Cancelled
// appointments are left out; wall-clock times are read in loc.
func Render(name string, appointments []model.Appointment, loc *time.Location, now time.Time) []byte {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	if name != "" {
		cal.SetName(name)
		cal.SetXWRCalName(name)
	}

	for _, appointment := range appointments {
		if appointment.Status == string(availability.StatusCancelled) {
			continue
		}

		start, err := availability.ParseClock(appointment.StartTime)
		if err != nil {
			log.Warn().Err(err).Str("appointmentID", appointment.ID).Msg("skipping appointment with malformed start time")

			continue
		}

		startsAt := time.Date(appointment.Date.Year(), appointment.Date.Month(), appointment.Date.Day(), 0, start, 0, 0, loc)

		event := cal.AddEvent(fmt.Sprintf("%s@%s", appointment.ID, uidDomain))
		event.SetDtStampTime(now)
		event.SetStartAt(startsAt)
		event.SetEndAt(startsAt.Add(time.Duration(appointment.DurationMinutes) * time.Minute))
		event.SetSummary(summary(appointment))
		event.SetStatus(status(appointment.Status))

		if !appointment.CreatedAt.IsZero() {
			event.SetCreatedTime(appointment.CreatedAt)
		}

		if !appointment.ModifiedAt.IsZero() {
			event.SetModifiedAt(appointment.ModifiedAt)
		}

		if description := describe(appointment); description != "" {
			event.SetDescription(description)
		}
	}

	return []byte(cal.Serialize())
}

func summary(appointment model.Appointment) string {
	if appointment.Status == string(availability.StatusBlocked) {
		return blockedName
	}

	if appointment.CustomerName == "" {
		return "Appointment"
	}

	return appointment.CustomerName
}

func status(value string) ical.ObjectStatus {
	switch availability.Status(value) {
	case availability.StatusPending:
		return ical.ObjectStatusTentative
	case availability.StatusCancelled:
		return ical.ObjectStatusCancelled
	default:
		return ical.ObjectStatusConfirmed
	}
}

func describe(appointment model.Appointment) string {
	lines := []string{}

	if appointment.CustomerPhone != "" {
		lines = append(lines, "Phone: "+appointment.CustomerPhone)
	}

	if appointment.CustomerEmail != "" {
		lines = append(lines, "Email: "+appointment.CustomerEmail)
	}

	if appointment.Notes != "" {
		lines = append(lines, appointment.Notes)
	}

	return strings.Join(lines, "\n")
}

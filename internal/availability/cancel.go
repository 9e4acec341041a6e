package availability

import "time"

// CancelRecurrenceGroup cancels every member of groupID dated on or after
// asOfDate whose status is not terminal. It returns the changed appointments
// and how many there were. The input slice is left untouched.
func CancelRecurrenceGroup(appointments []Appointment, groupID string, asOfDate time.Time) ([]Appointment, int) {
	cancelled := []Appointment{}

	if groupID == "" {
		return cancelled, 0
	}

	asOf := civilDay(asOfDate)

	for _, appointment := range appointments {
		if appointment.RecurrenceGroupID != groupID || appointment.Status.IsTerminal() {
			continue
		}

		if civilDay(appointment.Date).Before(asOf) {
			continue
		}

		appointment.Status = StatusCancelled
		cancelled = append(cancelled, appointment)
	}

	return cancelled, len(cancelled)
}

// CancellationAllowed reports whether the appointment may still be cancelled at
// now. The appointment's wall-clock start is read in now's location.
func CancellationAllowed(appointment Appointment, policy CancellationPolicy, now time.Time) bool {
	if !policy.Enabled {
		return true
	}

	start, err := ParseClock(appointment.StartTime)
	if err != nil {
		return false
	}

	startsAt := time.Date(appointment.Date.Year(), appointment.Date.Month(), appointment.Date.Day(), 0, start, 0, 0, now.Location())

	return startsAt.Sub(now) >= time.Duration(policy.HoursBefore)*time.Hour
}

package availability

import "fmt"

// AdmitBooking decides whether candidate may be stored next to existing. It
// returns nil when the booking is accepted, or a *Rejection with reason
// Validation, OutsideWorkingHours or Overlap, checked in that order.
//
// The caller must run AdmitBooking and the following insert under one lock per
// business and date, otherwise two concurrent admissions can both succeed.
func AdmitBooking(hours BusinessHours, candidate Appointment, existing []Appointment) error {
	occupiedByCandidate, err := validateCandidate(candidate)
	if err != nil {
		return err
	}

	if !hours.IsWorkingDay(candidate.Date) {
		return reject(ReasonOutsideWorkingHours, fmt.Sprintf("%s is not a working day", candidate.Date.Weekday()))
	}

	if !hours.Window().Contains(occupiedByCandidate) {
		return reject(ReasonOutsideWorkingHours, fmt.Sprintf("%s-%s is outside business hours %s-%s",
			FormatClock(occupiedByCandidate.Start), FormatClock(occupiedByCandidate.End),
			FormatClock(hours.Window().Start), FormatClock(hours.Window().End)))
	}

	if brk, ok := hours.breakWindow(); ok && occupiedByCandidate.Overlaps(brk) {
		return reject(ReasonOutsideWorkingHours, fmt.Sprintf("%s-%s overlaps the break %s-%s",
			FormatClock(occupiedByCandidate.Start), FormatClock(occupiedByCandidate.End),
			FormatClock(brk.Start), FormatClock(brk.End)))
	}

	busy := occupied(existing, candidate.Date, candidate.StaffID, candidate.ID)
	for _, interval := range busy {
		if occupiedByCandidate.Overlaps(interval) {
			return reject(ReasonOverlap, fmt.Sprintf("%s-%s overlaps an existing appointment at %s-%s",
				FormatClock(occupiedByCandidate.Start), FormatClock(occupiedByCandidate.End),
				FormatClock(interval.Start), FormatClock(interval.End)))
		}
	}

	return nil
}

func validateCandidate(candidate Appointment) (Interval, error) {
	if candidate.Date.IsZero() {
		return Interval{}, reject(ReasonValidation, "date is required")
	}

	if !candidate.Status.Valid() {
		return Interval{}, reject(ReasonValidation, fmt.Sprintf("unknown status %q", candidate.Status))
	}

	if candidate.Status == StatusCancelled {
		return Interval{}, reject(ReasonValidation, "a cancelled appointment cannot be booked")
	}

	if candidate.DurationMinutes <= 0 {
		return Interval{}, reject(ReasonValidation, "duration must be greater than 0")
	}

	if _, err := candidate.EndTime(); err != nil {
		return Interval{}, err
	}

	return candidate.Interval()
}

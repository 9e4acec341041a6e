package availability

import (
	"sort"
	"time"
)

// ComputeAvailableSlots returns the HH:mm start times on date at which a booking of
// durationMinutes fits. Candidates step by SlotInterval from StartHour:00 and are
// dropped when they touch the break, run past EndHour:00, overlap a non-cancelled
// appointment, or would leave a positive gap shorter than MinGapMinutes next to
// a neighbouring appointment.
//
// With a staffID only that staff member's appointments and unassigned ones are
// considered. The result is ascending and never nil.
func ComputeAvailableSlots(hours BusinessHours, appointmentsOnDate []Appointment, date time.Time, durationMinutes int, staffID string) []string {
	slots := []string{}

	if durationMinutes <= 0 || hours.SlotInterval <= 0 || !hours.IsWorkingDay(date) {
		return slots
	}

	window := hours.Window()
	brk, hasBreak := hours.breakWindow()
	busy := occupied(appointmentsOnDate, date, staffID, "")

	for start := window.Start; start < window.End; start += hours.SlotInterval {
		candidate := Interval{Start: start, End: start + durationMinutes}

		if candidate.End > window.End {
			break
		}

		if hasBreak && candidate.Overlaps(brk) {
			continue
		}

		if overlapsAny(candidate, busy) {
			continue
		}

		if leavesShortGap(candidate, busy, hours.MinGapMinutes) {
			continue
		}

		slots = append(slots, FormatClock(start))
	}

	return slots
}

// occupied collects the sorted intervals of the non-cancelled appointments on
// date that are relevant to staffID. excludeID skips the appointment being
// re-admitted. Appointments with an unreadable start time are ignored.
func occupied(appointments []Appointment, date time.Time, staffID, excludeID string) []Interval {
	busy := make([]Interval, 0, len(appointments))

	for _, appointment := range appointments {
		if appointment.Status == StatusCancelled || !sameDay(appointment.Date, date) {
			continue
		}

		if excludeID != "" && appointment.ID == excludeID {
			continue
		}

		if staffID != "" && appointment.StaffID != "" && appointment.StaffID != staffID {
			continue
		}

		interval, err := appointment.Interval()
		if err != nil {
			continue
		}

		busy = append(busy, interval)
	}

	sort.Slice(busy, func(i, j int) bool {
		return busy[i].Start < busy[j].Start
	})

	return busy
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, interval := range busy {
		if candidate.Overlaps(interval) {
			return true
		}
	}

	return false
}

// leavesShortGap reports whether the candidate sits closer than minGap, but not
// flush, to the nearest appointment before or after it.
func leavesShortGap(candidate Interval, busy []Interval, minGap int) bool {
	if minGap <= 0 {
		return false
	}

	prevEnd, hasPrev := -1, false
	nextStart, hasNext := -1, false

	for _, interval := range busy {
		if interval.End <= candidate.Start && (!hasPrev || interval.End > prevEnd) {
			prevEnd, hasPrev = interval.End, true
		}

		if interval.Start >= candidate.End && (!hasNext || interval.Start < nextStart) {
			nextStart, hasNext = interval.Start, true
		}
	}

	if hasPrev {
		if gap := candidate.Start - prevEnd; gap > 0 && gap < minGap {
			return true
		}
	}

	if hasNext {
		if gap := nextStart - candidate.End; gap > 0 && gap < minGap {
			return true
		}
	}

	return false
}

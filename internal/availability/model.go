package availability

import (
	"fmt"
	"slices"
	"time"
)

const (
	clockLayout   = "15:04"
	minutesPerDay = 24 * 60
	daysPerWeek   = 7
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
	StatusBlocked   Status = "blocked"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusNoShow, StatusCancelled},
	StatusBlocked:   {StatusCancelled},
}

// IsTerminal reports whether no further transition is possible from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow, StatusBlocked:
		return true
	default:
		return false
	}
}

// CanTransition reports whether an appointment may move from one status to another.
func CanTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Interval is a half-open range of minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether i and o share any instant. Touching intervals do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// Contains reports whether o lies entirely inside i.
func (i Interval) Contains(o Interval) bool {
	return i.Start <= o.Start && o.End <= i.End
}

type BreakTime struct {
	Enabled     bool
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

func (b BreakTime) Interval() Interval {
	return Interval{
		Start: b.StartHour*60 + b.StartMinute,
		End:   b.EndHour*60 + b.EndMinute,
	}
}

type BusinessHours struct {
	StartHour     int
	EndHour       int
	WorkingDays   []int
	SlotInterval  int
	Break         BreakTime
	MinGapMinutes int
}

// Window is the bookable range [StartHour:00, EndHour:00).
func (h BusinessHours) Window() Interval {
	return Interval{Start: h.StartHour * 60, End: h.EndHour * 60}
}

// IsWorkingDay reports whether the weekday of date (0 = Sunday) is a working day.
func (h BusinessHours) IsWorkingDay(date time.Time) bool {
	return slices.Contains(h.WorkingDays, int(date.Weekday()))
}

func (h BusinessHours) breakWindow() (Interval, bool) {
	if !h.Break.Enabled {
		return Interval{}, false
	}

	return h.Break.Interval(), true
}

// Validate checks the configuration invariants and returns a Validation rejection on the first failure.
func (h BusinessHours) Validate() error {
	if h.StartHour < 0 || h.EndHour > 23 || h.StartHour >= h.EndHour {
		return reject(ReasonValidation, "business hours must satisfy 0 <= start hour < end hour <= 23")
	}

	if h.SlotInterval <= 0 {
		return reject(ReasonValidation, "slot interval must be greater than 0")
	}

	if h.MinGapMinutes < 0 {
		return reject(ReasonValidation, "minimum gap must not be negative")
	}

	for _, day := range h.WorkingDays {
		if day < 0 || day >= daysPerWeek {
			return reject(ReasonValidation, fmt.Sprintf("working day %d is out of range 0-6", day))
		}
	}

	if !h.Break.Enabled {
		return nil
	}

	brk := h.Break
	if brk.StartMinute < 0 || brk.StartMinute > 59 || brk.EndMinute < 0 || brk.EndMinute > 59 {
		return reject(ReasonValidation, "break minutes must be between 0 and 59")
	}

	window := brk.Interval()
	if window.Start >= window.End {
		return reject(ReasonValidation, "break must start before it ends")
	}

	if !h.Window().Contains(window) {
		return reject(ReasonValidation, "break must lie within business hours")
	}

	return nil
}

type CancellationPolicy struct {
	Enabled     bool
	HoursBefore int
}

// Appointment is the slice of a booking the engine reasons about. Date is a
// calendar day; only its year, month and day are read.
type Appointment struct {
	ID                string
	BusinessOwnerID   string
	StaffID           string
	Date              time.Time
	StartTime         string
	DurationMinutes   int
	Status            Status
	IsRecurring       bool
	RecurrenceGroupID string
}

// Interval returns the occupied minutes of the appointment on its date.
func (a Appointment) Interval() (Interval, error) {
	start, err := ParseClock(a.StartTime)
	if err != nil {
		return Interval{}, err
	}

	return Interval{Start: start, End: start + a.DurationMinutes}, nil
}

// EndTime derives the HH:mm end of the appointment from its start and duration.
func (a Appointment) EndTime() (string, error) {
	occupied, err := a.Interval()
	if err != nil {
		return "", err
	}

	if occupied.End > minutesPerDay {
		return "", reject(ReasonValidation, "appointment must end on the day it starts")
	}

	return FormatClock(occupied.End), nil
}

// ParseClock converts a 24-hour HH:mm string into minutes since midnight.
func ParseClock(value string) (int, error) {
	parsed, err := time.Parse(clockLayout, value)
	if err != nil || parsed.Format(clockLayout) != value {
		return 0, reject(ReasonValidation, fmt.Sprintf("time %q must be formatted as HH:mm", value))
	}

	return parsed.Hour()*60 + parsed.Minute(), nil
}

// FormatClock renders minutes since midnight as HH:mm. 1440 renders as 24:00.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// civilDay drops the clock and location of t, keeping its calendar day.
func civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

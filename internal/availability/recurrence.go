package availability

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

const (
	DefaultMaxRecurrenceMonths = 24

	lastMonthDay = 28
)

// ExpandRecurrence generates the occurrences of template from its date up to
// and including untilDate. Every occurrence copies the template, is marked
// recurring and carries groupID. untilDate may lie at most
// DefaultMaxRecurrenceMonths past the template date.
func ExpandRecurrence(template Appointment, frequency Frequency, untilDate time.Time, groupID string) ([]Appointment, error) {
	return ExpandRecurrenceWithin(template, frequency, untilDate, groupID, DefaultMaxRecurrenceMonths)
}

// ExpandRecurrenceWithin is ExpandRecurrence with an explicit horizon in months.
//
// Monthly occurrences keep the template's day of month and clamp to the last
// day of shorter months, so 31 January yields 29 February and then 31 March.
func ExpandRecurrenceWithin(template Appointment, frequency Frequency, untilDate time.Time, groupID string, maxMonths int) ([]Appointment, error) {
	if groupID == "" {
		return nil, reject(ReasonValidation, "recurrence group id is required")
	}

	if _, err := validateCandidate(template); err != nil {
		return nil, err
	}

	start := civilDay(template.Date)
	until := civilDay(untilDate)

	if until.Before(start) {
		return nil, reject(ReasonValidation, "recurrence end date must not be before the first occurrence")
	}

	if maxMonths <= 0 {
		maxMonths = DefaultMaxRecurrenceMonths
	}

	if until.After(start.AddDate(0, maxMonths, 0)) {
		return nil, reject(ReasonValidation, fmt.Sprintf("recurrence end date must be within %d months of the first occurrence", maxMonths))
	}

	option, err := recurrenceRule(frequency, start, until)
	if err != nil {
		return nil, err
	}

	rule, err := rrule.NewRRule(option)
	if err != nil {
		return nil, reject(ReasonValidation, fmt.Sprintf("invalid recurrence rule: %v", err))
	}

	dates := rule.All()
	occurrences := make([]Appointment, 0, len(dates))
	location := template.Date.Location()

	for _, date := range dates {
		occurrence := template
		occurrence.ID = ""
		occurrence.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, location)
		occurrence.IsRecurring = true
		occurrence.RecurrenceGroupID = groupID

		occurrences = append(occurrences, occurrence)
	}

	return occurrences, nil
}

func recurrenceRule(frequency Frequency, start, until time.Time) (rrule.ROption, error) {
	option := rrule.ROption{
		Dtstart: start,
		Until:   until,
	}

	switch frequency {
	case FrequencyWeekly:
		option.Freq = rrule.WEEKLY
		option.Interval = 1
	case FrequencyBiweekly:
		option.Freq = rrule.WEEKLY
		option.Interval = 2
	case FrequencyMonthly:
		option.Freq = rrule.MONTHLY
		option.Interval = 1

		day := start.Day()
		if day <= lastMonthDay {
			option.Bymonthday = []int{day}

			break
		}

		// 28..day and keep the last one that exists in the month.
		for d := lastMonthDay; d <= day; d++ {
			option.Bymonthday = append(option.Bymonthday, d)
		}

		option.Bysetpos = []int{-1}
	default:
		return option, reject(ReasonValidation, fmt.Sprintf("unknown frequency %q", frequency))
	}

	return option, nil
}

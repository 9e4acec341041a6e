package availability_test

import (
	"appointly/internal/availability"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dates(occurrences []availability.Appointment) []string {
	out := make([]string, 0, len(occurrences))
	for _, occurrence := range occurrences {
		out = append(out, occurrence.Date.Format("2006-01-02"))
	}

	return out
}

func TestExpandRecurrence(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		frequency availability.Frequency
		until     time.Time
		expected  []string
	}{
		{
			name:      "weekly, until inclusive",
			start:     day(2024, 1, 1),
			frequency: availability.FrequencyWeekly,
			until:     day(2024, 1, 22),
			expected:  []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"},
		},
		{
			name:      "biweekly",
			start:     day(2024, 1, 1),
			frequency: availability.FrequencyBiweekly,
			until:     day(2024, 2, 11),
			expected:  []string{"2024-01-01", "2024-01-15", "2024-01-29"},
		},
		{
			name:      "monthly same day",
			start:     day(2024, 1, 15),
			frequency: availability.FrequencyMonthly,
			until:     day(2024, 4, 15),
			expected:  []string{"2024-01-15", "2024-02-15", "2024-03-15", "2024-04-15"},
		},
		{
			name:      "monthly clamps to the last day",
			start:     day(2024, 1, 31),
			frequency: availability.FrequencyMonthly,
			until:     day(2024, 5, 1),
			expected:  []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30"},
		},
		{
			name:      "monthly on the 30th in a common year",
			start:     day(2023, 1, 30),
			frequency: availability.FrequencyMonthly,
			until:     day(2023, 3, 30),
			expected:  []string{"2023-01-30", "2023-02-28", "2023-03-30"},
		},
		{
			name:      "single occurrence",
			start:     day(2024, 1, 1),
			frequency: availability.FrequencyWeekly,
			until:     day(2024, 1, 1),
			expected:  []string{"2024-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := availability.Appointment{
				BusinessOwnerID: "owner-1",
				StaffID:         "staff-1",
				Date:            tt.start,
				StartTime:       "10:00",
				DurationMinutes: 45,
				Status:          availability.StatusConfirmed,
			}

			occurrences, err := availability.ExpandRecurrence(template, tt.frequency, tt.until, "grp-1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dates(occurrences))

			for _, occurrence := range occurrences {
				assert.Equal(t, "grp-1", occurrence.RecurrenceGroupID)
				assert.True(t, occurrence.IsRecurring)
				assert.Equal(t, "10:00", occurrence.StartTime)
				assert.Equal(t, 45, occurrence.DurationMinutes)
				assert.Equal(t, "staff-1", occurrence.StaffID)
				assert.Empty(t, occurrence.ID)
			}
		})
	}
}

func TestExpandRecurrence_Rejections(t *testing.T) {
	template := availability.Appointment{
		Date:            day(2024, 1, 1),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          availability.StatusPending,
	}

	tests := []struct {
		name      string
		template  availability.Appointment
		frequency availability.Frequency
		until     time.Time
		groupID   string
	}{
		{name: "until before start", template: template, frequency: availability.FrequencyWeekly, until: day(2023, 12, 31), groupID: "g"},
		{name: "beyond two years", template: template, frequency: availability.FrequencyWeekly, until: day(2026, 1, 2), groupID: "g"},
		{name: "unknown frequency", template: template, frequency: "daily", until: day(2024, 2, 1), groupID: "g"},
		{name: "missing group", template: template, frequency: availability.FrequencyWeekly, until: day(2024, 2, 1)},
		{
			name:      "invalid template",
			template:  availability.Appointment{Date: day(2024, 1, 1), StartTime: "10:00", Status: availability.StatusPending},
			frequency: availability.FrequencyWeekly,
			until:     day(2024, 2, 1),
			groupID:   "g",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := availability.ExpandRecurrence(tt.template, tt.frequency, tt.until, tt.groupID)
			assert.ErrorIs(t, err, availability.ErrValidation)
		})
	}
}

func TestExpandRecurrence_TwoYearHorizonIsInclusive(t *testing.T) {
	template := availability.Appointment{
		Date:            day(2024, 1, 1),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          availability.StatusPending,
	}

	occurrences, err := availability.ExpandRecurrence(template, availability.FrequencyMonthly, day(2026, 1, 1), "g")
	require.NoError(t, err)
	assert.Len(t, occurrences, 25)
}

func TestExpandRecurrenceWithin(t *testing.T) {
	template := availability.Appointment{
		Date:            day(2024, 1, 1),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          availability.StatusPending,
	}

	_, err := availability.ExpandRecurrenceWithin(template, availability.FrequencyWeekly, day(2024, 4, 1), "g", 2)
	assert.ErrorIs(t, err, availability.ErrValidation)

	occurrences, err := availability.ExpandRecurrenceWithin(template, availability.FrequencyWeekly, day(2024, 3, 1), "g", 2)
	require.NoError(t, err)
	assert.Len(t, occurrences, 9)
}

package availability_test

import (
	"appointly/internal/availability"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmitBooking(t *testing.T) {
	existing := []availability.Appointment{
		booked("10:00", 60, availability.StatusConfirmed),
		booked("15:00", 60, availability.StatusCancelled),
		{ID: "staff-2", Date: monday, StaffID: "staff-2", StartTime: "14:00", DurationMinutes: 30, Status: availability.StatusPending},
	}

	tests := []struct {
		name      string
		candidate availability.Appointment
		reason    availability.Reason
	}{
		{
			name:      "free slot",
			candidate: booked("09:00", 60, availability.StatusPending),
		},
		{
			name:      "touching the previous booking",
			candidate: booked("11:00", 30, availability.StatusConfirmed),
		},
		{
			name:      "over a cancelled booking",
			candidate: booked("15:00", 30, availability.StatusConfirmed),
		},
		{
			name:      "overlapping",
			candidate: booked("10:30", 60, availability.StatusPending),
			reason:    availability.ReasonOverlap,
		},
		{
			name:      "containing an existing booking",
			candidate: booked("09:30", 120, availability.StatusPending),
			reason:    availability.ReasonOverlap,
		},
		{
			name:      "another staff member is free",
			candidate: availability.Appointment{Date: monday, StaffID: "staff-1", StartTime: "14:00", DurationMinutes: 30, Status: availability.StatusPending},
		},
		{
			name:      "unassigned candidate collides with staff booking",
			candidate: booked("14:15", 30, availability.StatusPending),
			reason:    availability.ReasonOverlap,
		},
		{
			name:      "blocked candidate overlapping",
			candidate: booked("10:15", 15, availability.StatusBlocked),
			reason:    availability.ReasonOverlap,
		},
		{
			name:      "before opening",
			candidate: booked("08:30", 60, availability.StatusPending),
			reason:    availability.ReasonOutsideWorkingHours,
		},
		{
			name:      "past closing",
			candidate: booked("16:30", 60, availability.StatusPending),
			reason:    availability.ReasonOutsideWorkingHours,
		},
		{
			name:      "inside the break",
			candidate: booked("11:45", 30, availability.StatusPending),
			reason:    availability.ReasonOutsideWorkingHours,
		},
		{
			name: "non working day",
			candidate: availability.Appointment{
				Date: monday.AddDate(0, 0, 5), StartTime: "10:00", DurationMinutes: 30, Status: availability.StatusPending,
			},
			reason: availability.ReasonOutsideWorkingHours,
		},
		{
			name:      "cancelled candidate",
			candidate: booked("09:00", 30, availability.StatusCancelled),
			reason:    availability.ReasonValidation,
		},
		{
			name:      "zero duration",
			candidate: booked("09:00", 0, availability.StatusPending),
			reason:    availability.ReasonValidation,
		},
		{
			name:      "malformed time",
			candidate: booked("9am", 30, availability.StatusPending),
			reason:    availability.ReasonValidation,
		},
		{
			name:      "unknown status",
			candidate: booked("09:00", 30, availability.Status("tentative")),
			reason:    availability.ReasonValidation,
		},
		{
			name:      "runs past midnight",
			candidate: booked("23:30", 60, availability.StatusPending),
			reason:    availability.ReasonValidation,
		},
		{
			name:      "missing date",
			candidate: availability.Appointment{StartTime: "09:00", DurationMinutes: 30, Status: availability.StatusPending},
			reason:    availability.ReasonValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := availability.AdmitBooking(weekdayHours(), tt.candidate, existing)

			if tt.reason == "" {
				assert.NoError(t, err)

				return
			}

			reason, ok := availability.ReasonOf(err)
			require.True(t, ok, "expected a rejection, got %v", err)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestAdmitBooking_IgnoresItself(t *testing.T) {
	current := booked("10:00", 60, availability.StatusConfirmed)

	moved := current
	moved.StartTime = "10:30"

	assert.NoError(t, availability.AdmitBooking(weekdayHours(), moved, []availability.Appointment{current}))
}

func TestAdmitBooking_SentinelErrors(t *testing.T) {
	err := availability.AdmitBooking(weekdayHours(), booked("10:30", 30, availability.StatusPending),
		[]availability.Appointment{booked("10:00", 60, availability.StatusConfirmed)})

	assert.ErrorIs(t, err, availability.ErrOverlap)
	assert.False(t, errors.Is(err, availability.ErrOutsideWorkingHours))
}

// serializedStore mimics a store that runs check and insert under one lock.
type serializedStore struct {
	mu           sync.Mutex
	appointments []availability.Appointment
}

func (s *serializedStore) admit(hours availability.BusinessHours, candidate availability.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := availability.AdmitBooking(hours, candidate, s.appointments); err != nil {
		return err
	}

	s.appointments = append(s.appointments, candidate)

	return nil
}

func TestAdmitBooking_SerializedConcurrentRequests(t *testing.T) {
	store := &serializedStore{}

	const attempts = 16

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)

	for i := range attempts {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			candidate := booked("09:00", 30, availability.StatusPending)
			candidate.ID = strconv.Itoa(i)

			if store.admit(weekdayHours(), candidate) == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Len(t, store.appointments, 1)
}

func TestBusinessHours_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(h *availability.BusinessHours)
		wantErr bool
	}{
		{name: "valid", mutate: func(_ *availability.BusinessHours) {}},
		{name: "start after end", mutate: func(h *availability.BusinessHours) { h.StartHour = 18 }, wantErr: true},
		{name: "end hour 24", mutate: func(h *availability.BusinessHours) { h.EndHour = 24 }, wantErr: true},
		{name: "zero interval", mutate: func(h *availability.BusinessHours) { h.SlotInterval = 0 }, wantErr: true},
		{name: "negative gap", mutate: func(h *availability.BusinessHours) { h.MinGapMinutes = -5 }, wantErr: true},
		{name: "working day 7", mutate: func(h *availability.BusinessHours) { h.WorkingDays = []int{1, 7} }, wantErr: true},
		{name: "break outside hours", mutate: func(h *availability.BusinessHours) { h.Break.StartHour = 8 }, wantErr: true},
		{name: "break reversed", mutate: func(h *availability.BusinessHours) { h.Break.EndHour = 11 }, wantErr: true},
		{name: "break until closing", mutate: func(h *availability.BusinessHours) { h.Break.StartHour, h.Break.EndHour = 16, 17 }},
		{
			name: "disabled break is not checked",
			mutate: func(h *availability.BusinessHours) {
				h.Break = availability.BreakTime{Enabled: false, StartHour: 20, EndHour: 3}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours := weekdayHours()
			tt.mutate(&hours)

			err := hours.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, availability.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package model

import (
	"appointly/internal/availability"
	"appointly/shared/constant"
	"appointly/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID                = "id"
	FieldBusinessOwnerID   = "business_owner_id"
	FieldStaffID           = "staff_id"
	FieldAppointmentTypeID = "appointment_type_id"
	FieldCustomerName      = "customer_name"
	FieldDate              = "date"
	FieldStartTime         = "start_time"
	FieldStatus            = "status"
	FieldRecurrenceGroupID = "recurrence_group_id"
)

type Appointment struct {
	ID                string          `db:"id"`
	BusinessOwnerID   string          `db:"business_owner_id"`
	StaffID           string          `db:"staff_id"`
	AppointmentTypeID *string         `db:"appointment_type_id"`
	CustomerName      string          `db:"customer_name"`
	CustomerEmail     string          `db:"customer_email"`
	CustomerPhone     string          `db:"customer_phone"`
	Date              time.Time       `db:"date"`
	StartTime         string          `db:"start_time"`
	EndTime           string          `db:"end_time"`
	DurationMinutes   int             `db:"duration_minutes"`
	Price             decimal.Decimal `db:"price"`
	Status            string          `db:"status"`
	IsRecurring       bool            `db:"is_recurring"`
	RecurrenceGroupID string          `db:"recurrence_group_id"`
	Notes             string          `db:"notes"`
	model.Metadata
}

// Day is the calendar date of the appointment as stored, e.g. 2024-01-31.
func (a Appointment) Day() string {
	return a.Date.Format(constant.DayFormat)
}

func (a Appointment) ToAvailability() availability.Appointment {
	return availability.Appointment{
		ID:                a.ID,
		BusinessOwnerID:   a.BusinessOwnerID,
		StaffID:           a.StaffID,
		Date:              a.Date,
		StartTime:         a.StartTime,
		DurationMinutes:   a.DurationMinutes,
		Status:            availability.Status(a.Status),
		IsRecurring:       a.IsRecurring,
		RecurrenceGroupID: a.RecurrenceGroupID,
	}
}

// WithSchedule returns a copy of a carrying the schedule of occurrence.
func (a Appointment) WithSchedule(occurrence availability.Appointment) Appointment {
	a.Date = occurrence.Date
	a.StartTime = occurrence.StartTime
	a.DurationMinutes = occurrence.DurationMinutes
	a.Status = string(occurrence.Status)
	a.IsRecurring = occurrence.IsRecurring
	a.RecurrenceGroupID = occurrence.RecurrenceGroupID

	return a
}

func ToAvailability(appointments []Appointment) []availability.Appointment {
	out := make([]availability.Appointment, len(appointments))
	for i, appointment := range appointments {
		out[i] = appointment.ToAvailability()
	}

	return out
}

package event

import (
	"appointly/infras/kafka"
	"appointly/internal/domains/appointment/model"
	"appointly/shared/timezone"
	"time"
)

const (
	TypeCreated       = "appointment.created"
	TypeCancelled     = "appointment.cancelled"
	TypeStatusChanged = "appointment.status_changed"
	TypeReminder      = "appointment.reminder"
)

type Appointment struct {
	ID                string `json:"id"`
	BusinessOwnerID   string `json:"business_owner_id"`
	StaffID           string `json:"staff_id,omitempty"`
	CustomerName      string `json:"customer_name,omitempty"`
	CustomerEmail     string `json:"customer_email,omitempty"`
	CustomerPhone     string `json:"customer_phone,omitempty"`
	Date              string `json:"date"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	Status            string `json:"status"`
	RecurrenceGroupID string `json:"recurrence_group_id,omitempty"`
}

type Event struct {
	Type           string      `json:"type"`
	OccurredAt     time.Time   `json:"occurred_at"`
	PreviousStatus string      `json:"previous_status,omitempty"`
	Appointment    Appointment `json:"appointment"`
}

func New(eventType string, appointment model.Appointment) Event {
	return Event{
		Type:       eventType,
		OccurredAt: timezone.Now(),
		Appointment: Appointment{
			ID:                appointment.ID,
			BusinessOwnerID:   appointment.BusinessOwnerID,
			StaffID:           appointment.StaffID,
			CustomerName:      appointment.CustomerName,
			CustomerEmail:     appointment.CustomerEmail,
			CustomerPhone:     appointment.CustomerPhone,
			Date:              appointment.Day(),
			StartTime:         appointment.StartTime,
			EndTime:           appointment.EndTime,
			Status:            appointment.Status,
			RecurrenceGroupID: appointment.RecurrenceGroupID,
		},
	}
}

// Messages keys every event by business owner so one owner's events stay ordered.
func Messages(eventType string, appointments ...model.Appointment) []kafka.Message {
	messages := make([]kafka.Message, len(appointments))
	for i, appointment := range appointments {
		messages[i] = kafka.Message{
			Key:   appointment.BusinessOwnerID,
			Value: New(eventType, appointment),
		}
	}

	return messages
}

func StatusChanged(appointment model.Appointment, previous string) kafka.Message {
	evt := New(TypeStatusChanged, appointment)
	evt.PreviousStatus = previous

	return kafka.Message{Key: appointment.BusinessOwnerID, Value: evt}
}

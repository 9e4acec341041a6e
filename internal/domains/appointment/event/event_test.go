package event_test

import (
	"appointly/internal/domains/appointment/event"
	"appointly/internal/domains/appointment/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages(t *testing.T) {
	appointments := []model.Appointment{
		{ID: "a-1", BusinessOwnerID: "owner-1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "10:30", Status: "pending"},
		{ID: "a-2", BusinessOwnerID: "owner-2", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), StartTime: "11:00", EndTime: "12:00", Status: "confirmed"},
	}

	messages := event.Messages(event.TypeCreated, appointments...)
	require.Len(t, messages, 2)

	assert.Equal(t, "owner-1", messages[0].Key)

	evt, ok := messages[1].Value.(event.Event)
	require.True(t, ok)
	assert.Equal(t, event.TypeCreated, evt.Type)
	assert.Equal(t, "2024-01-02", evt.Appointment.Date)
	assert.Equal(t, "a-2", evt.Appointment.ID)

	kafkaMessage, err := messages[0].ToKafkaMessage()
	require.NoError(t, err)
	assert.Contains(t, string(kafkaMessage.Value), `"type":"appointment.created"`)
}

func TestStatusChanged(t *testing.T) {
	message := event.StatusChanged(model.Appointment{ID: "a-1", BusinessOwnerID: "owner-1", Status: "confirmed"}, "pending")

	evt, ok := message.Value.(event.Event)
	require.True(t, ok)
	assert.Equal(t, event.TypeStatusChanged, evt.Type)
	assert.Equal(t, "pending", evt.PreviousStatus)
	assert.Equal(t, "confirmed", evt.Appointment.Status)
}

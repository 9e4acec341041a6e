package kafka_test

import (
	"appointly/config"
	"appointly/infras/kafka"
	"appointly/infras/otel"
	"appointly/infras/otel/mocks"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type event struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "owner-1", Value: event{Type: "appointment.created", ID: "a-1"}}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("owner-1"), raw.Key)
	assert.JSONEq(t, `{"type":"appointment.created","id":"a-1"}`, string(raw.Value))

	key, decoded, err := kafka.DecodeKafkaMessage[event](raw)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", key)
	assert.Equal(t, "a-1", decoded.ID)
}

func TestToKafkaMessage_Unsupported(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestSendMessages_NoBrokers(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Topic = "appointments"

	client := kafka.New(cfg, mocks.NewOtel())
	defer client.Close()

	err := client.SendMessages(context.Background(), "", kafka.Message{Key: "k", Value: "v"})
	assert.ErrorIs(t, err, kafka.ErrNoBrokers)
}

func TestSendMessages_NoBrokersIsTraced(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Topic = "appointments"

	recorder := tracetest.NewSpanRecorder()
	client := kafka.New(cfg, otel.WithProvider(trace.NewTracerProvider(trace.WithSpanProcessor(recorder))))
	defer client.Close()

	err := client.SendMessages(context.Background(), "", kafka.Message{Key: "k", Value: "v"})
	require.ErrorIs(t, err, kafka.ErrNoBrokers)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Len(t, spans[0].Events(), 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

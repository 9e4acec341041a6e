package reminder_test

import (
	"appointly/config"
	"appointly/infras/kafka"
	kafkaMocks "appointly/infras/kafka/mocks"
	"appointly/infras/otel/mocks"
	appointmentMocks "appointly/internal/domains/appointment/mocks"
	"appointly/internal/domains/appointment/model"
	"appointly/internal/jobs/reminder"
	cacheMocks "appointly/shared/cache/mocks"
	"appointly/shared/constant"
	"appointly/shared/timezone"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func startingIn(id string, offset time.Duration) model.Appointment {
	start := timezone.Now().Add(offset)
	day, _ := time.Parse(constant.DayFormat, start.Format(constant.DayFormat))

	return model.Appointment{
		ID:              id,
		BusinessOwnerID: "owner-1",
		Date:            day,
		StartTime:       start.Format(constant.ClockFormat),
		DurationMinutes: 30,
		Status:          "confirmed",
	}
}

func setup(t *testing.T) (*reminder.Job, *appointmentMocks.MockAppointment, *cacheMocks.MockRedisCache, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := appointmentMocks.NewMockAppointment(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Booking.ReminderLeadHours = 24
	cfg.Booking.ReminderCron = "@every 15m"
	cfg.Kafka.Topic = "appointments"

	return reminder.New(repo, cfg, cache, mocks.NewOtel(), client), repo, cache, client
}

func TestJob_Run(t *testing.T) {
	upcoming := []model.Appointment{
		startingIn("due", 2*time.Hour),
		startingIn("already-reminded", 3*time.Hour),
		startingIn("too-far", 48*time.Hour),
		startingIn("started", -time.Hour),
	}

	tests := []struct {
		name      string
		setupMock func(repo *appointmentMocks.MockAppointment, cache *cacheMocks.MockRedisCache, client *kafkaMocks.MockClient)
		wantSent  int
		wantErr   bool
	}{
		{
			name: "sends reminders once",
			setupMock: func(repo *appointmentMocks.MockAppointment, cache *cacheMocks.MockRedisCache, client *kafkaMocks.MockClient) {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(upcoming, nil)
				cache.EXPECT().SetIfAbsent(gomock.Any(), "appointment:reminded:due", gomock.Any()).Return(true, nil)
				cache.EXPECT().SetIfAbsent(gomock.Any(), "appointment:reminded:already-reminded", gomock.Any()).Return(false, nil)
				client.EXPECT().SendMessages(gomock.Any(), "appointments", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, messages ...kafka.Message) error {
						assert.Len(t, messages, 1)
						assert.Equal(t, "owner-1", messages[0].Key)

						return nil
					})
			},
			wantSent: 1,
		},
		{
			name: "nothing due",
			setupMock: func(repo *appointmentMocks.MockAppointment, _ *cacheMocks.MockRedisCache, _ *kafkaMocks.MockClient) {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Appointment{}, nil)
			},
		},
		{
			name: "publish failure releases the marker",
			setupMock: func(repo *appointmentMocks.MockAppointment, cache *cacheMocks.MockRedisCache, client *kafkaMocks.MockClient) {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(upcoming[:1], nil)
				cache.EXPECT().SetIfAbsent(gomock.Any(), "appointment:reminded:due", gomock.Any()).Return(true, nil)
				client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
				cache.EXPECT().Delete(gomock.Any(), "appointment:reminded:due").Return(nil)
			},
			wantErr: true,
		},
		{
			name: "no brokers configured",
			setupMock: func(repo *appointmentMocks.MockAppointment, cache *cacheMocks.MockRedisCache, client *kafkaMocks.MockClient) {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(upcoming[:1], nil)
				cache.EXPECT().SetIfAbsent(gomock.Any(), "appointment:reminded:due", gomock.Any()).Return(true, nil)
				client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(kafka.ErrNoBrokers)
				cache.EXPECT().Delete(gomock.Any(), "appointment:reminded:due").Return(nil)
			},
		},
		{
			name: "repository error",
			setupMock: func(repo *appointmentMocks.MockAppointment, _ *cacheMocks.MockRedisCache, _ *kafkaMocks.MockClient) {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, repo, cache, client := setup(t)
			tt.setupMock(repo, cache, client)

			sent, err := job.Run(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantSent, sent)
		})
	}
}

func TestJob_Start(t *testing.T) {
	job, _, _, _ := setup(t)
	require.NoError(t, job.Start(), "disabled reminders never schedule")

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Booking.ReminderEnable = true
	cfg.Booking.ReminderCron = "not a schedule"

	broken := reminder.New(appointmentMocks.NewMockAppointment(ctrl), cfg, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel(), kafkaMocks.NewMockClient(ctrl))
	assert.Error(t, broken.Start())

	cfg.Booking.ReminderCron = "@every 1h"

	scheduled := reminder.New(appointmentMocks.NewMockAppointment(ctrl), cfg, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel(), kafkaMocks.NewMockClient(ctrl))
	require.NoError(t, scheduled.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	scheduled.Stop(ctx)
}

package reminder

import (
	"appointly/config"
	"appointly/infras/kafka"
	"appointly/infras/otel"
	"appointly/internal/availability"
	"appointly/internal/domains/appointment/event"
	"appointly/internal/domains/appointment/model"
	"appointly/internal/domains/appointment/repository"
	"appointly/shared"
	"appointly/shared/cache"
	"appointly/shared/constant"
	gDto "appointly/shared/dto"
	"appointly/shared/timezone"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyReminded = "appointment:reminded"
	remindedTTL      = 48 * 60 * 60
	otelScopeName    = "reminder"
)

// Job announces upcoming pending and confirmed appointments once each.
type Job struct {
	repo      repository.Appointment
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	kafka     kafka.Client
	scheduler *cron.Cron
}

func New(repo repository.Appointment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) *Job {
	return &Job{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		kafka:     kafka,
		scheduler: cron.New(cron.WithLocation(timezone.GetLocation())),
	}
}

// Start schedules Run on the configured cron expression. It is a no-op when reminders are disabled.
func (j *Job) Start() error {
	if !j.cfg.Booking.ReminderEnable {
		log.Info().Msg("appointment reminders disabled")

		return nil
	}

	_, err := j.scheduler.AddFunc(j.cfg.Booking.ReminderCron, func() {
		sent, err := j.Run(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("reminder run failed")

			return
		}

		log.Info().Int("sent", sent).Msg("reminder run finished")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}

	j.scheduler.Start()

	log.Info().Str("schedule", j.cfg.Booking.ReminderCron).Msg("appointment reminders scheduled")

	return nil
}

// Stop waits for a running reminder pass or for ctx, whichever ends first.
func (j *Job) Stop(ctx context.Context) {
	select {
	case <-j.scheduler.Stop().Done():
	case <-ctx.Done():
		log.Warn().Msg("reminder job did not stop in time")
	}
}

// Run publishes a reminder for every live appointment starting within the lead window
// that has not been reminded yet, and returns how many were sent.
func (j *Job) Run(ctx context.Context) (sent int, err error) {
	ctx, scope := j.otel.NewScope(ctx, otelScopeName, otelScopeName+".Run")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	horizon := now.Add(time.Duration(j.cfg.Booking.ReminderLeadHours) * time.Hour)

	appointments, err := j.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc}, window(now, horizon))
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming appointments")

		return 0, fmt.Errorf("failed to get upcoming appointments: %w", err)
	}

	due := make([]model.Appointment, 0, len(appointments))

	for _, appointment := range appointments {
		start, err := availability.ParseClock(appointment.StartTime)
		if err != nil {
			continue
		}

		startsAt := timezone.At(appointment.Date, start)
		if startsAt.Before(now) || startsAt.After(horizon) {
			continue
		}

		stored, err := j.cache.SetIfAbsent(ctx, shared.BuildCacheKey(cacheKeyReminded, appointment.ID), remindedTTL)
		if err != nil || !stored {
			continue
		}

		due = append(due, appointment)
	}

	if len(due) == 0 {
		return 0, nil
	}

	err = j.kafka.SendMessages(ctx, j.cfg.Kafka.Topic, event.Messages(event.TypeReminder, due...)...)
	if err == nil {
		return len(due), nil
	}

	j.release(ctx, due)

	if errors.Is(err, kafka.ErrNoBrokers) {
		log.Debug().Int("due", len(due)).Msg("kafka is not configured, reminders dropped")

		return 0, nil
	}

	log.Error().Err(err).Msg("failed to publish reminders")

	return 0, fmt.Errorf("failed to publish reminders: %w", err)
}

// release drops the markers of appointments whose reminder was not delivered.
func (j *Job) release(ctx context.Context, appointments []model.Appointment) {
	for _, appointment := range appointments {
		if err := j.cache.Delete(ctx, shared.BuildCacheKey(cacheKeyReminded, appointment.ID)); err != nil {
			log.Error().Err(err).Str("appointmentID", appointment.ID).Msg("failed to release reminder marker")
		}
	}
}

func window(from, to time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{ArgName: "date_from", Field: model.FieldDate, Value: from.Format(constant.DayFormat), Operator: gDto.FilterOperatorGreaterEq},
			gDto.Filter{ArgName: "date_to", Field: model.FieldDate, Value: to.Format(constant.DayFormat), Operator: gDto.FilterOperatorLessEq},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    []string{string(availability.StatusPending), string(availability.StatusConfirmed)},
				Operator: gDto.FilterOperatorIn,
			},
		},
	}
}

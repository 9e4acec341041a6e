package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Appointment=MockAppointmentService

import (
	"appointly/config"
	"appointly/infras/kafka"
	"appointly/infras/otel"
	"appointly/infras/s3"
	"appointly/internal/availability"
	"appointly/internal/domains/appointment/calendar"
	"appointly/internal/domains/appointment/event"
	"appointly/internal/domains/appointment/model"
	"appointly/internal/domains/appointment/model/dto"
	"appointly/internal/domains/appointment/repository"
	typeModel "appointly/internal/domains/appointmenttype/model"
	typeRepo "appointly/internal/domains/appointmenttype/repository"
	businessModel "appointly/internal/domains/business/model"
	businessService "appointly/internal/domains/business/service"
	"appointly/shared"
	"appointly/shared/cache"
	"appointly/shared/constant"
	gDto "appointly/shared/dto"
	"appointly/shared/failure"
	"appointly/shared/timezone"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAppointment    = "appointment:get"
	cacheGetAllAppointment = "appointment:gets"

	groupIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	groupIDLength   = 16

	calendarPastMonths   = 1
	calendarFutureMonths = 12
	calendarMaxMonths    = 24
	calendarExtension    = ".ics"

	cacheParamGeneration = "generation"
)

type Appointment interface {
	Available(ctx context.Context, businessIdentifier string, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	CreatePublic(ctx context.Context, businessIdentifier string, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	Block(ctx context.Context, req dto.CreateBlockRequest) (dto.AppointmentResponse, error)
	CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest) (dto.RecurringResponse, error)
	CancelRecurring(ctx context.Context, groupID, asOf string) (dto.CancelRecurringResponse, error)
	Cancel(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.AppointmentResponse, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.Filter) (dto.GetAppointmentsResponse, error)
	ExportCalendar(ctx context.Context, from, to string) ([]byte, error)
	// PublishCalendar uploads the calendar under the owner's calendar token.
	// With rotate set a new token is issued and the previous file is removed.
	PublishCalendar(ctx context.Context, from, to string, rotate bool) (dto.CalendarResponse, error)
}

type serviceImpl struct {
	repo     repository.Appointment
	typeRepo typeRepo.AppointmentType
	business businessService.Business
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
	s3       s3.S3
}

func New(
	repo repository.Appointment,
	typeRepo typeRepo.AppointmentType,
	business businessService.Business,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
	s3 s3.S3,
) Appointment {
	return &serviceImpl{
		repo:     repo,
		typeRepo: typeRepo,
		business: business,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafka,
		s3:       s3,
	}
}

// OwnedBy scopes id to the appointments of ownerID.
func OwnedBy(id, ownerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldBusinessOwnerID, Value: ownerID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func (s *serviceImpl) Available(ctx context.Context, businessIdentifier string, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Available")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date, err := time.Parse(constant.DayFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	profile, err := s.business.Resolve(ctx, businessIdentifier)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	duration := req.DurationMinutes
	if duration == 0 && req.AppointmentTypeID != constant.Empty {
		appointmentType, err := s.activeType(ctx, profile.OwnerID, req.AppointmentTypeID)
		if err != nil {
			return res, err
		}

		duration = appointmentType.DurationMinutes
	}

	if duration <= 0 {
		return res, failure.BadRequestFromString("duration or appointment_type_id is required") // nolint:wrapcheck
	}

	res.Date = req.Date

	// The generation is read before the appointments, so a list computed from
	// rows that a later booking changed is saved under a retired key.
	generation, genErr := s.cache.Generation(ctx, shared.AvailabilityGenerationKey(profile.OwnerID))
	cacheKey := shared.BuildCacheKeyWithQuery(
		shared.BuildCacheKey(constant.CacheKeyAvailability, profile.OwnerID, req.Date),
		map[string]any{
			constant.RequestParamDuration: duration,
			constant.RequestParamStaffID:  req.StaffID,
			cacheParamGeneration:          generation,
		},
	)

	if genErr == nil {
		err = s.cache.Get(ctx, cacheKey, &res.Times)
		if err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for available times")

			res.Times = s.dropPast(date, res.Times)

			return res, nil
		}
	}

	existing, err := s.repo.GetAll(ctx, gDto.QueryParams{}, repository.LiveOn(profile.OwnerID, req.Date))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments of the day")

		return res, fmt.Errorf("failed to get appointments of the day: %w", err)
	}

	times := availability.ComputeAvailableSlots(profile.Hours(), model.ToAvailability(existing), date, duration, req.StaffID)

	if genErr == nil {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, times, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save available times to cache")
			}
		}()
	}

	res.Times = s.dropPast(date, times)

	return res, nil
}

// dropPast removes the times of date that have already started.
func (s *serviceImpl) dropPast(date time.Time, times []string) []string {
	now := timezone.Now()
	today := timezone.Today()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, today.Location())

	switch {
	case day.Before(today):
		return []string{}
	case day.After(today):
		return times
	}

	upcoming := []string{}
	nowMinute := now.Hour()*constant.MinutesPerHour + now.Minute()

	for _, value := range times {
		if minute, err := availability.ParseClock(value); err == nil && minute > nowMinute {
			upcoming = append(upcoming, value)
		}
	}

	return upcoming
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	profile, err := s.business.Profile(ctx, user)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	appointment, err := s.prepare(ctx, profile.OwnerID, user, req)
	if err != nil {
		return res, err
	}

	return s.book(ctx, profile, appointment)
}

func (s *serviceImpl) CreatePublic(ctx context.Context, businessIdentifier string, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.CreatePublic")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	profile, err := s.business.Resolve(ctx, businessIdentifier)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	req.Status = string(availability.StatusPending)
	req.Price = nil

	appointment, err := s.prepare(ctx, profile.OwnerID, constant.ContextGuest, req)
	if err != nil {
		return res, err
	}

	start, err := availability.ParseClock(appointment.StartTime)
	if err != nil {
		return res, toFailure(err)
	}

	if timezone.At(appointment.Date, start).Before(timezone.Now()) {
		return res, failure.BadRequestFromString("appointment must start in the future") // nolint:wrapcheck
	}

	return s.book(ctx, profile, appointment)
}

func (s *serviceImpl) Block(ctx context.Context, req dto.CreateBlockRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Block")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	profile, err := s.business.Profile(ctx, user)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	block, err := req.ToModel(profile.OwnerID, user)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	if err = s.admit(ctx, profile, &block); err != nil {
		return res, err
	}

	res.FromModel(block)

	s.invalidate(ctx, profile.OwnerID)

	return res, nil
}

func (s *serviceImpl) CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest) (res dto.RecurringResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.CreateRecurring")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	profile, err := s.business.Profile(ctx, user)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	template, err := s.prepare(ctx, profile.OwnerID, user, req.CreateAppointmentRequest)
	if err != nil {
		return res, err
	}

	until, err := time.Parse(constant.DayFormat, req.UntilDate)
	if err != nil {
		return res, failure.BadRequestFromString("until_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	groupID, err := gonanoid.Generate(groupIDAlphabet, groupIDLength)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate recurrence group id")

		return res, fmt.Errorf("failed to generate recurrence group id: %w", err)
	}

	occurrences, err := availability.ExpandRecurrenceWithin(
		template.ToAvailability(),
		availability.Frequency(req.Frequency),
		until,
		groupID,
		s.cfg.Booking.MaxRecurrenceMonths,
	)
	if err != nil {
		return res, toFailure(err)
	}

	res.RecurrenceGroupID = groupID
	res.SkippedDates = []string{}
	created := make([]model.Appointment, 0, len(occurrences))

	for _, occurrence := range occurrences {
		appointment := template.WithSchedule(occurrence)
		appointment.ID = uuid.NewString()

		err := s.admit(ctx, profile, &appointment)
		if err == nil {
			created = append(created, appointment)

			continue
		}

		if _, rejected := availability.ReasonOf(err); !rejected && !errors.Is(err, repository.ErrSlotTaken) {
			log.Error().Err(err).Str("recurrenceGroupID", groupID).Msg("failed to admit recurring appointment")

			s.afterBooking(ctx, profile.OwnerID, created...)

			return res, fmt.Errorf("failed to create recurring appointments: %w", err)
		}

		log.Info().Str("date", appointment.Day()).Str("recurrenceGroupID", groupID).Err(err).Msg("skipping recurring occurrence")

		res.Skipped++
		res.SkippedDates = append(res.SkippedDates, appointment.Day())
	}

	res.Count = len(created)

	s.afterBooking(ctx, profile.OwnerID, created...)

	return res, nil
}

func (s *serviceImpl) CancelRecurring(ctx context.Context, groupID, asOf string) (res dto.CancelRecurringResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.CancelRecurring")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	asOfDate := timezone.Today()
	if asOf != constant.Empty {
		asOfDate, err = time.Parse(constant.DayFormat, asOf)
		if err != nil {
			return res, failure.BadRequestFromString("as_of must be formatted as YYYY-MM-DD") // nolint:wrapcheck
		}
	}

	found := false

	cancelled, err := s.repo.CancelGroup(ctx, user, groupID, user, func(members []model.Appointment) []model.Appointment {
		found = len(members) > 0
		changed, _ := availability.CancelRecurrenceGroup(model.ToAvailability(members), groupID, asOfDate)

		byID := make(map[string]model.Appointment, len(members))
		for _, member := range members {
			byID[member.ID] = member
		}

		out := make([]model.Appointment, 0, len(changed))
		for _, appointment := range changed {
			member := byID[appointment.ID]
			member.Status = string(appointment.Status)
			out = append(out, member)
		}

		return out
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel recurrence group")

		return res, fmt.Errorf("failed to cancel recurrence group: %w", err)
	}

	if !found {
		return res, failure.NotFound("recurrence group not found") // nolint:wrapcheck
	}

	res.Cancelled = len(cancelled)

	if res.Cancelled > 0 {
		s.publish(ctx, event.Messages(event.TypeCancelled, cancelled...)...)
		s.invalidate(ctx, user, ids(cancelled)...)
	}

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = s.transition(ctx, id, availability.StatusCancelled)

	return err
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updated, err := s.transition(ctx, id, availability.Status(req.Status))
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

// transition moves the appointment to status. Leaving a customer appointment
// for cancelled is subject to the cancellation policy.
func (s *serviceImpl) transition(ctx context.Context, id string, status availability.Status) (model.Appointment, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	profile, err := s.business.Profile(ctx, user)
	if err != nil {
		return model.Appointment{}, err //nolint:wrapcheck
	}

	now := timezone.Now()

	current, err := s.repo.Modify(ctx, OwnedBy(id, user), func(current model.Appointment) (map[string]any, error) {
		from := availability.Status(current.Status)

		if !availability.CanTransition(from, status) {
			return nil, &availability.Rejection{
				Reason:  availability.ReasonValidation,
				Message: fmt.Sprintf("cannot change status from %s to %s", from, status),
			}
		}

		if status == availability.StatusCancelled && from != availability.StatusBlocked &&
			!availability.CancellationAllowed(current.ToAvailability(), profile.CancellationPolicy(), now) {
			return nil, &availability.Rejection{
				Reason:  availability.ReasonPolicyViolation,
				Message: fmt.Sprintf("appointments can only be cancelled %d hours in advance", profile.CancellationHoursBefore),
			}
		}

		return map[string]any{
			model.FieldStatus:        string(status),
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, nil
	})
	if err != nil {
		if _, rejected := availability.ReasonOf(err); rejected {
			return model.Appointment{}, toFailure(err)
		}

		log.Error().Err(err).Msg("failed to update appointment status")

		return model.Appointment{}, fmt.Errorf("failed to update appointment status: %w", err)
	}

	if current.ID == constant.Empty {
		return model.Appointment{}, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	previous := current.Status
	updated := current
	updated.Status = string(status)
	updated.ModifiedAt = now
	updated.ModifiedBy = user

	if status == availability.StatusCancelled {
		s.publish(ctx, event.Messages(event.TypeCancelled, updated)...)
	} else {
		s.publish(ctx, event.StatusChanged(updated, previous))
	}

	s.invalidate(ctx, user, id)

	return updated, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	cacheKey := shared.BuildCacheKey(cacheGetAppointment, user, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment")

		return res, nil
	}

	appointment, err := s.repo.Get(ctx, OwnedBy(id, user))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	res.FromModel(appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.Filter) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	req = req.WithDefaultSort(model.FieldDate, gDto.SortDirAsc)

	query := filter.Query()
	query[constant.RequestParamPage] = req.Page
	query[constant.RequestParamLimit] = req.Limit
	query[constant.RequestParamSortBy] = req.SortBy
	query[constant.RequestParamSortDir] = req.SortDir

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllAppointment, user), query)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

		return res, nil
	}

	filterGroup := filter.ToFilterGroup(user)

	total, err := s.repo.Count(ctx, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ExportCalendar(ctx context.Context, from, to string) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.ExportCalendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	profile, err := s.business.Profile(ctx, user)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	filter, err := calendarRange(from, to)
	if err != nil {
		return res, err
	}

	appointments, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc}, filter.ToFilterGroup(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments for calendar")

		return res, fmt.Errorf("failed to get appointments for calendar: %w", err)
	}

	return calendar.Render(profile.Name, appointments, timezone.GetLocation(), timezone.Now()), nil
}

func (s *serviceImpl) PublishCalendar(ctx context.Context, from, to string, rotate bool) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.PublishCalendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	body, err := s.ExportCalendar(ctx, from, to)
	if err != nil {
		return res, err
	}

	token, previous, err := s.business.CalendarToken(ctx, user, rotate)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.URL, err = s.s3.UploadFileBytes(
		ctx,
		s.cfg.External.S3.BucketName,
		s.cfg.Booking.CalendarDirectory,
		token+calendarExtension,
		constant.ContentTypeCalendar,
		body,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to publish calendar")

		return res, fmt.Errorf("failed to publish calendar: %w", err)
	}

	if previous == constant.Empty || previous == token {
		return res, nil
	}

	err = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, s.cfg.Booking.CalendarDirectory, previous+calendarExtension)
	if err != nil {
		log.Error().Err(err).Msg("failed to remove previous calendar")

		return res, fmt.Errorf("failed to remove previous calendar: %w", err)
	}

	return res, nil
}

// calendarRange defaults to one month back and twelve months ahead of today.
func calendarRange(from, to string) (dto.Filter, error) {
	today := timezone.Today()

	start := today.AddDate(0, -calendarPastMonths, 0)
	if from != constant.Empty {
		parsed, err := time.ParseInLocation(constant.DayFormat, from, today.Location())
		if err != nil {
			return dto.Filter{}, failure.BadRequestFromString("from must be formatted as YYYY-MM-DD") // nolint:wrapcheck
		}

		start = parsed
	}

	end := start.AddDate(0, calendarFutureMonths+calendarPastMonths, 0)
	if to != constant.Empty {
		parsed, err := time.ParseInLocation(constant.DayFormat, to, today.Location())
		if err != nil {
			return dto.Filter{}, failure.BadRequestFromString("to must be formatted as YYYY-MM-DD") // nolint:wrapcheck
		}

		end = parsed
	}

	if end.Before(start) || end.After(start.AddDate(0, calendarMaxMonths, 0)) {
		return dto.Filter{}, failure.BadRequestFromString(fmt.Sprintf("calendar range must be between 0 and %d months", calendarMaxMonths)) // nolint:wrapcheck
	}

	return dto.Filter{From: start.Format(constant.DayFormat), To: end.Format(constant.DayFormat)}, nil
}

// prepare builds the appointment of ownerID, taking duration and price from the
// appointment type when the request leaves them out.
func (s *serviceImpl) prepare(ctx context.Context, ownerID, user string, req dto.CreateAppointmentRequest) (model.Appointment, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return model.Appointment{}, failure.BadRequestFromString("price cannot be negative") // nolint:wrapcheck
	}

	appointment, err := req.ToModel(ownerID, user)
	if err != nil {
		return appointment, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	if req.AppointmentTypeID != constant.Empty {
		appointmentType, err := s.activeType(ctx, ownerID, req.AppointmentTypeID)
		if err != nil {
			return appointment, err
		}

		if appointment.DurationMinutes == 0 {
			appointment.DurationMinutes = appointmentType.DurationMinutes
		}

		if req.Price == nil {
			appointment.Price = appointmentType.Price
		}
	}

	if appointment.DurationMinutes <= 0 {
		return appointment, failure.BadRequestFromString("duration_minutes or appointment_type_id is required") // nolint:wrapcheck
	}

	return appointment, nil
}

func (s *serviceImpl) activeType(ctx context.Context, ownerID, id string) (typeModel.AppointmentType, error) {
	appointmentType, err := s.typeRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: typeModel.FieldID, Value: id, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: typeModel.FieldBusinessOwnerID, Value: ownerID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: typeModel.FieldIsActive, Value: true, Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment type")

		return appointmentType, fmt.Errorf("failed to get appointment type: %w", err)
	}

	if appointmentType.ID == constant.Empty {
		return appointmentType, failure.NotFound("appointment type not found") // nolint:wrapcheck
	}

	return appointmentType, nil
}

// book admits a single appointment and announces it.
func (s *serviceImpl) book(ctx context.Context, profile businessModel.BusinessProfile, appointment model.Appointment) (res dto.AppointmentResponse, err error) {
	if err = s.admit(ctx, profile, &appointment); err != nil {
		return res, err
	}

	res.FromModel(appointment)

	s.afterBooking(ctx, profile.OwnerID, appointment)

	return res, nil
}

// admit derives the end time of appointment and stores it if the engine accepts
// it against the live appointments of its day.
func (s *serviceImpl) admit(ctx context.Context, profile businessModel.BusinessProfile, appointment *model.Appointment) error {
	endTime, err := appointment.ToAvailability().EndTime()
	if err != nil {
		return toFailure(err)
	}

	appointment.EndTime = endTime
	candidate := appointment.ToAvailability()
	hours := profile.Hours()

	err = s.repo.Admit(ctx, *appointment, func(existing []model.Appointment) error {
		return availability.AdmitBooking(hours, candidate, model.ToAvailability(existing))
	})
	if err == nil {
		return nil
	}

	if _, rejected := availability.ReasonOf(err); rejected || errors.Is(err, repository.ErrSlotTaken) {
		return toFailure(err)
	}

	log.Error().Err(err).Msg("failed to create appointment")

	return fmt.Errorf("failed to create appointment: %w", err)
}

func (s *serviceImpl) afterBooking(ctx context.Context, ownerID string, appointments ...model.Appointment) {
	if len(appointments) == 0 {
		return
	}

	s.publish(ctx, event.Messages(event.TypeCreated, appointments...)...)
	s.invalidate(ctx, ownerID)
}

func (s *serviceImpl) publish(ctx context.Context, messages ...kafka.Message) {
	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic, messages...)
		if errors.Is(err, kafka.ErrNoBrokers) {
			log.Debug().Msg("kafka is not configured, appointment events dropped")

			return
		}

		if err != nil {
			log.Error().Err(err).Msg("failed to publish appointment events")
		}
	}()
}

// invalidate retires the slot lists of ownerID before returning and drops the
// cached appointments in the background.
func (s *serviceImpl) invalidate(ctx context.Context, ownerID string, ids ...string) {
	shared.ExpireAvailability(ctx, s.cache, ownerID)

	go func() {
		c := context.WithoutCancel(ctx)

		for _, id := range ids {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAppointment, ownerID, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete appointment from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetAllAppointment, ownerID))
	}()
}

// toFailure maps engine rejections onto HTTP failures.
func toFailure(err error) error {
	if errors.Is(err, repository.ErrSlotTaken) {
		return failure.Conflict("time slot is already booked") // nolint:wrapcheck
	}

	reason, ok := availability.ReasonOf(err)
	if !ok {
		return err
	}

	switch reason {
	case availability.ReasonOverlap:
		return failure.Conflict(err.Error()) // nolint:wrapcheck
	case availability.ReasonOutsideWorkingHours:
		return failure.Unprocessable(err.Error()) // nolint:wrapcheck
	case availability.ReasonPolicyViolation:
		return failure.Forbidden(err.Error()) // nolint:wrapcheck
	default:
		return failure.BadRequest(err) // nolint:wrapcheck
	}
}

func ids(appointments []model.Appointment) []string {
	out := make([]string, len(appointments))
	for i, appointment := range appointments {
		out[i] = appointment.ID
	}

	return out
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=AppointmentType=MockAppointmentTypeService

import (
	"appointly/config"
	"appointly/infras/otel"
	"appointly/internal/domains/appointmenttype/model"
	"appointly/internal/domains/appointmenttype/model/dto"
	"appointly/internal/domains/appointmenttype/repository"
	"appointly/shared"
	"appointly/shared/cache"
	"appointly/shared/constant"
	gDto "appointly/shared/dto"
	"appointly/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAppointmentType    = "appointmenttype:get"
	cacheGetAllAppointmentType = "appointmenttype:gets"
)

type AppointmentType interface {
	Create(ctx context.Context, req dto.CreateAppointmentTypeRequest) (dto.AppointmentTypeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, active *bool) (dto.GetAppointmentTypesResponse, error)
	Get(ctx context.Context, id string) (dto.AppointmentTypeResponse, error)
	Update(ctx context.Context, req dto.UpdateAppointmentTypeRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.AppointmentType
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.AppointmentType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) AppointmentType {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// OwnedBy scopes id to the appointment types of ownerID.
func OwnedBy(id, ownerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldBusinessOwnerID, Value: ownerID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentTypeRequest) (res dto.AppointmentTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointmenttype.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Price.IsNegative() {
		return res, failure.BadRequestFromString("price cannot be negative") // nolint:wrapcheck
	}

	appointmentType := req.ToModel(user)

	if err = s.repo.Insert(ctx, appointmentType); err != nil {
		log.Error().Err(err).Msg("failed to create appointment type")

		return res, fmt.Errorf("failed to create appointment type: %w", err)
	}

	res.FromModel(appointmentType)

	s.invalidate(ctx, user, constant.Empty)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, active *bool) (res dto.GetAppointmentTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointmenttype.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	req = req.WithDefaultSort(model.FieldName, gDto.SortDirAsc)

	query := map[string]any{
		constant.RequestParamPage:    req.Page,
		constant.RequestParamLimit:   req.Limit,
		constant.RequestParamSortBy:  req.SortBy,
		constant.RequestParamSortDir: req.SortDir,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBusinessOwnerID, Value: user, Operator: gDto.FilterOperatorEq},
		},
	}

	if active != nil {
		query[constant.RequestParamActive] = *active
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldIsActive, Value: *active, Operator: gDto.FilterOperatorEq})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllAppointmentType, user), query)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment types")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointment types")

		return res, fmt.Errorf("failed to count appointment types: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment types")

		return res, fmt.Errorf("failed to get appointment types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointmenttype.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	cacheKey := shared.BuildCacheKey(cacheGetAppointmentType, user, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment type")

		return res, nil
	}

	appointmentType, err := s.repo.Get(ctx, OwnedBy(id, user))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment type")

		return res, fmt.Errorf("failed to get appointment type: %w", err)
	}

	if appointmentType.ID == constant.Empty {
		return res, failure.NotFound("appointment type not found") // nolint:wrapcheck
	}

	res.FromModel(appointmentType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment type to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAppointmentTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointmenttype.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateAppointmentTypeRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.Price != nil && req.Price.IsNegative() {
		return failure.BadRequestFromString("price cannot be negative") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.update(ctx, user, id, shared.TransformFields(req, user)); err != nil {
		return err
	}

	s.invalidate(ctx, user, id)

	return nil
}

// Delete deactivates the appointment type. Existing appointments keep referencing it.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointmenttype.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := shared.TransformFields(struct{}{}, user)
	fields[model.FieldIsActive] = false

	if err = s.update(ctx, user, id, fields); err != nil {
		return err
	}

	s.invalidate(ctx, user, id)

	return nil
}

func (s *serviceImpl) update(ctx context.Context, user, id string, fields map[string]any) error {
	filter := OwnedBy(id, user)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if appointment type exists")

		return fmt.Errorf("failed to check if appointment type exists: %w", err)
	}

	if !exist {
		return failure.NotFound("appointment type not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update appointment type")

		return fmt.Errorf("failed to update appointment type: %w", err)
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, user, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAppointmentType, user, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete appointment type from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetAllAppointmentType, user))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheKeyAvailability, user))
	}()
}

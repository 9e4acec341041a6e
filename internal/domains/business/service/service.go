package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Business=MockBusinessService

import (
	"appointly/config"
	"appointly/infras/otel"
	"appointly/internal/domains/business/model"
	"appointly/internal/domains/business/model/dto"
	"appointly/internal/domains/business/repository"
	"appointly/shared"
	"appointly/shared/cache"
	"appointly/shared/constant"
	gDto "appointly/shared/dto"
	"appointly/shared/failure"
	"appointly/shared/timezone"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetProfile     = "business:get"
	cacheResolveProfile = "business:resolve"

	slugSuffixLength = 6

	calendarTokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	calendarTokenLength   = 32
)

type Business interface {
	Get(ctx context.Context) (dto.BusinessProfileResponse, error)
	GetPublic(ctx context.Context, identifier string) (dto.PublicBusinessProfileResponse, error)
	Upsert(ctx context.Context, req dto.UpsertBusinessProfileRequest) (dto.BusinessProfileResponse, error)
	// Profile returns the stored profile of ownerID or the default one.
	Profile(ctx context.Context, ownerID string) (model.BusinessProfile, error)
	// Resolve finds a configured profile by slug or owner id.
	Resolve(ctx context.Context, identifier string) (model.BusinessProfile, error)
	// CalendarToken returns the token naming the published calendar of ownerID,
	// issuing a new one when none exists or rotate is set. previous is the token
	// it replaced, if any.
	CalendarToken(ctx context.Context, ownerID string, rotate bool) (token, previous string, err error)
}

type serviceImpl struct {
	repo  repository.Business
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Business, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Business {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.BusinessProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".business.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	profile, err := s.Profile(ctx, user)
	if err != nil {
		return res, err
	}

	res.FromModel(profile)

	return res, nil
}

func (s *serviceImpl) GetPublic(ctx context.Context, identifier string) (res dto.PublicBusinessProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".business.GetPublic")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	profile, err := s.Resolve(ctx, identifier)
	if err != nil {
		return res, err
	}

	res.FromModel(profile)

	return res, nil
}

func (s *serviceImpl) Profile(ctx context.Context, ownerID string) (res model.BusinessProfile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".business.Profile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if ownerID == constant.Empty {
		return res, failure.Unauthorized("missing business owner") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetProfile, ownerID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for business profile")

		return res, nil
	}

	res, err = s.repo.Get(ctx, shared.FilterByID(ownerID, model.FieldOwnerID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business profile")

		return res, fmt.Errorf("failed to get business profile: %w", err)
	}

	if res.OwnerID == constant.Empty {
		return model.Default(ownerID), nil
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Resolve(ctx context.Context, identifier string) (res model.BusinessProfile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".business.Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	identifier = strings.TrimSpace(identifier)
	if identifier == constant.Empty {
		return res, failure.BadRequestFromString("business identifier is required") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheResolveProfile, identifier)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for business resolve")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: model.FieldSlug, Value: identifier, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldOwnerID, Value: identifier, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	res, err = s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve business profile")

		return res, fmt.Errorf("failed to resolve business profile: %w", err)
	}

	if res.OwnerID == constant.Empty {
		return res, failure.NotFound("business not found") // nolint:wrapcheck
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertBusinessProfileRequest) (res dto.BusinessProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".business.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("missing business owner") // nolint:wrapcheck
	}

	profile := req.ToModel(user, constant.Empty)
	if err = profile.Hours().Validate(); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	profile.Slug, err = s.pickSlug(ctx, user, req)
	if err != nil {
		return res, err
	}

	if err = s.repo.Upsert(ctx, profile); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("slug is already taken") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to upsert business profile")

		return res, fmt.Errorf("failed to upsert business profile: %w", err)
	}

	res.FromModel(profile)

	shared.ExpireAvailability(ctx, s.cache, user)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetProfile)
		shared.InvalidateCaches(c, s.cache, cacheResolveProfile)
	}()

	return res, nil
}

func (s *serviceImpl) CalendarToken(ctx context.Context, ownerID string, rotate bool) (token, previous string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".business.CalendarToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if ownerID == constant.Empty {
		return constant.Empty, constant.Empty, failure.Unauthorized("missing business owner") // nolint:wrapcheck
	}

	profile, err := s.repo.Get(ctx, shared.FilterByID(ownerID, model.FieldOwnerID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business profile")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to get business profile: %w", err)
	}

	if profile.OwnerID == constant.Empty {
		return constant.Empty, constant.Empty, failure.BadRequestFromString("save the business profile before publishing its calendar") // nolint:wrapcheck
	}

	if profile.CalendarToken != constant.Empty && !rotate {
		return profile.CalendarToken, constant.Empty, nil
	}

	token, err = gonanoid.Generate(calendarTokenAlphabet, calendarTokenLength)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate calendar token")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to generate calendar token: %w", err)
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldCalendarToken: token,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: ownerID,
	}, shared.FilterByID(ownerID, model.FieldOwnerID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to store calendar token")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to store calendar token: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, shared.BuildCacheKey(cacheGetProfile, ownerID))
	}()

	return token, profile.CalendarToken, nil
}

// pickSlug uses the requested slug when given, otherwise derives one from the
// business name and suffixes it with part of the owner id when it is taken.
func (s *serviceImpl) pickSlug(ctx context.Context, ownerID string, req dto.UpsertBusinessProfileRequest) (string, error) {
	if req.Slug != constant.Empty {
		if !slug.IsSlug(req.Slug) {
			return constant.Empty, failure.BadRequestFromString("slug may only contain lowercase letters, digits and hyphens") // nolint:wrapcheck
		}

		taken, err := s.slugTaken(ctx, ownerID, req.Slug)
		if err != nil {
			return constant.Empty, err
		}

		if taken {
			return constant.Empty, failure.Conflict("slug is already taken") // nolint:wrapcheck
		}

		return req.Slug, nil
	}

	candidate := slug.Make(req.Name)
	suffix := strings.ReplaceAll(slug.Make(ownerID), "-", constant.Empty)

	if len(suffix) > slugSuffixLength {
		suffix = suffix[:slugSuffixLength]
	}

	if candidate == constant.Empty {
		return suffix, nil
	}

	taken, err := s.slugTaken(ctx, ownerID, candidate)
	if err != nil {
		return constant.Empty, err
	}

	if taken {
		candidate = candidate + "-" + suffix
	}

	return candidate, nil
}

func (s *serviceImpl) slugTaken(ctx context.Context, ownerID, value string) (bool, error) {
	taken, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldSlug, Value: value, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldOwnerID, Value: ownerID, Operator: gDto.FilterOperatorNotEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check business slug")

		return false, fmt.Errorf("failed to check business slug: %w", err)
	}

	return taken, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value model.BusinessProfile) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save business profile to cache")
		}
	}()
}

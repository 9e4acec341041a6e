//go:build wireinject
// +build wireinject

package di

import (
	"appointly/config"
	"appointly/infras/jwt"
	"appointly/infras/kafka"
	"appointly/infras/otel"
	"appointly/infras/postgres"
	"appointly/infras/redis"
	"appointly/infras/s3"
	"appointly/internal/jobs/reminder"
	"appointly/permissions"
	"appointly/shared/cache"
	"appointly/transport/http"
	"appointly/transport/http/middleware"
	"appointly/transport/http/router"

	appointmentRepository "appointly/internal/domains/appointment/repository"
	appointmentService "appointly/internal/domains/appointment/service"
	appointmentHandler "appointly/internal/handlers/appointment"

	appointmentTypeRepository "appointly/internal/domains/appointmenttype/repository"
	appointmentTypeService "appointly/internal/domains/appointmenttype/service"
	appointmentTypeHandler "appointly/internal/handlers/appointmenttype"

	businessRepository "appointly/internal/domains/business/repository"
	businessService "appointly/internal/domains/business/service"
	businessHandler "appointly/internal/handlers/business"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var businessDomain = wire.NewSet(
	businessRepository.New,
	businessService.New,
)

var appointmentTypeDomain = wire.NewSet(
	appointmentTypeRepository.New,
	appointmentTypeService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var domains = wire.NewSet(
	businessDomain,
	appointmentTypeDomain,
	appointmentDomain,
)

var jobs = wire.NewSet(
	reminder.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	businessHandler.New,
	appointmentTypeHandler.New,
	appointmentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		jobs,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

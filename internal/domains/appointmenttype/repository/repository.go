package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"appointly/infras/otel"
	"appointly/infras/postgres"
	"appointly/internal/domains/appointmenttype/model"
	gDto "appointly/shared/dto"
	gRepo "appointly/shared/repository"
	"context"
)

type AppointmentType interface {
	Insert(ctx context.Context, model model.AppointmentType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AppointmentType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AppointmentType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AppointmentType]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) AppointmentType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AppointmentType](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

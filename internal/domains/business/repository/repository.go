package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"appointly/infras/otel"
	"appointly/infras/postgres"
	"appointly/internal/domains/business/model"
	"appointly/shared/constant"
	gDto "appointly/shared/dto"
	"appointly/shared/logger"
	gRepo "appointly/shared/repository"
	"context"
	"fmt"
	"slices"
	"strings"
)

type Business interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BusinessProfile, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	Upsert(ctx context.Context, profile model.BusinessProfile) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BusinessProfile]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Business {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BusinessProfile](model.EntityName, model.TableName, model.FieldOwnerID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert inserts the profile or replaces every editable column of the existing one.
// created_at, created_by and calendar_token keep their first values.
func (r *repositoryImpl) Upsert(ctx context.Context, profile model.BusinessProfile) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".business.Upsert")
	defer scope.End()

	placeholders := make([]string, 0, len(r.InsertColumns))
	updates := []string{}

	for _, col := range r.InsertColumns {
		placeholders = append(placeholders, ":"+col)

		if slices.Contains([]string{model.FieldOwnerID, model.FieldCalendarToken, constant.FieldCreatedAt, constant.FieldCreatedBy}, col) {
			continue
		}

		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		model.TableName,
		strings.Join(r.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		model.FieldOwnerID,
		strings.Join(updates, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := r.db.Write.NamedExecContext(ctx, query, profile); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert business profile: %w", err)
	}

	return nil
}

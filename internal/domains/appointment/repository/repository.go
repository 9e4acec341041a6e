package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"appointly/infras/otel"
	"appointly/infras/postgres"
	"appointly/internal/availability"
	"appointly/internal/domains/appointment/model"
	"appointly/shared/constant"
	gDto "appointly/shared/dto"
	"appointly/shared/logger"
	gRepo "appointly/shared/repository"
	"appointly/shared/timezone"
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrSlotTaken is returned when the database rejects an admission that raced
// past the lock, through the unique index on the slot.
var ErrSlotTaken = errors.New("slot already taken")

const advisoryLockQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"

type Appointment interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Appointment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	// Admit inserts appointment when check accepts the live appointments of the
	// same owner and date. Admissions for one owner and date run one at a time.
	Admit(ctx context.Context, appointment model.Appointment, check func(existing []model.Appointment) error) error
	// Modify locks the appointment matched by filter and writes the fields apply
	// returns. It returns the appointment as it was before the change, or a zero
	// value when nothing matched.
	Modify(ctx context.Context, filter gDto.FilterGroup, apply func(current model.Appointment) (map[string]any, error)) (model.Appointment, error)
	// CancelGroup locks every member of the recurrence group and cancels the ones
	// selected by pick.
	CancelGroup(ctx context.Context, ownerID, groupID, user string, pick func(members []model.Appointment) []model.Appointment) ([]model.Appointment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Appointment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LiveOn matches the appointments of ownerID on day that still hold time.
func LiveOn(ownerID, day string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBusinessOwnerID, Value: ownerID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldDate, Value: day, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldStatus, Value: string(availability.StatusCancelled), Operator: gDto.FilterOperatorNotEq},
		},
	}
}

func (r *repositoryImpl) Admit(ctx context.Context, appointment model.Appointment, check func(existing []model.Appointment) error) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.Admit")
	defer scope.End()

	day := appointment.Day()

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, advisoryLockQuery, appointment.BusinessOwnerID+":"+day); err != nil {
			return fmt.Errorf("failed to lock appointment day: %w", err)
		}

		existing, err := r.SelectTx(ctx, tx, LiveOn(appointment.BusinessOwnerID, day), model.FieldStartTime, false)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err := check(existing); err != nil {
			return err
		}

		return r.InsertTx(ctx, tx, appointment) //nolint:wrapcheck
	})

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
		return ErrSlotTaken
	}

	if err != nil {
		scope.TraceError(err)
	}

	return err
}

func (r *repositoryImpl) Modify(
	ctx context.Context,
	filter gDto.FilterGroup,
	apply func(current model.Appointment) (map[string]any, error),
) (current model.Appointment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.Modify")
	defer scope.End()

	err = r.WithTx(ctx, func(tx *sqlx.Tx) error {
		rows, err := r.SelectTx(ctx, tx, filter, constant.Empty, true)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if len(rows) == 0 {
			return nil
		}

		current = rows[0]

		fields, err := apply(current)
		if err != nil {
			return err
		}

		if len(fields) == 0 {
			return nil
		}

		return r.UpdateTx(ctx, tx, fields, filter) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)
	}

	return current, err
}

func (r *repositoryImpl) CancelGroup(
	ctx context.Context,
	ownerID, groupID, user string,
	pick func(members []model.Appointment) []model.Appointment,
) (cancelled []model.Appointment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.CancelGroup")
	defer scope.End()

	group := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBusinessOwnerID, Value: ownerID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldRecurrenceGroupID, Value: groupID, Operator: gDto.FilterOperatorEq},
		},
	}

	err = r.WithTx(ctx, func(tx *sqlx.Tx) error {
		members, err := r.SelectTx(ctx, tx, group, model.FieldDate, true)
		if err != nil {
			return err //nolint:wrapcheck
		}

		cancelled = pick(members)
		if len(cancelled) == 0 {
			return nil
		}

		ids := make([]string, len(cancelled))
		for i, appointment := range cancelled {
			ids[i] = appointment.ID
		}

		fields := map[string]any{
			model.FieldStatus:        string(availability.StatusCancelled),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		return r.UpdateTx(ctx, tx, fields, gDto.FilterGroup{ //nolint:wrapcheck
			Filters: []any{
				gDto.Filter{Field: model.FieldID, Value: ids, Operator: gDto.FilterOperatorIn},
			},
		})
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, err
	}

	return cancelled, nil
}

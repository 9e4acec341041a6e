package model

import (
	"appointly/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "appointment_types"
	EntityName = "appointment_type"

	FieldID              = "id"
	FieldBusinessOwnerID = "business_owner_id"
	FieldName            = "name"
	FieldDurationMinutes = "duration_minutes"
	FieldPrice           = "price"
	FieldIsActive        = "is_active"
)

type AppointmentType struct {
	ID              string          `db:"id"`
	BusinessOwnerID string          `db:"business_owner_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	DurationMinutes int             `db:"duration_minutes"`
	Price           decimal.Decimal `db:"price"`
	Color           string          `db:"color"`
	IsActive        bool            `db:"is_active"`
	model.Metadata
}

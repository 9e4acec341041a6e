package dto

import (
	"appointly/internal/domains/appointmenttype/model"
	"appointly/shared"
	gDto "appointly/shared/dto"
	gModel "appointly/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAppointmentTypeRequest struct {
	Name            string          `json:"name"             validate:"required,max=100"`
	Description     string          `json:"description"      validate:"omitempty,max=500"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,gt=0,lte=1440"`
	Price           decimal.Decimal `json:"price"            swaggertype:"string"`
	Color           string          `json:"color"            validate:"omitempty,hexcolor"`
	IsActive        *bool           `json:"is_active"        validate:"omitempty"`
}

func (c *CreateAppointmentTypeRequest) ToModel(user string) model.AppointmentType {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.AppointmentType{
		ID:              uuid.NewString(),
		BusinessOwnerID: user,
		Name:            c.Name,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price.Round(2),
		Color:           c.Color,
		IsActive:        active,
		Metadata:        gModel.NewMetadata(user),
	}
}

type UpdateAppointmentTypeRequest struct {
	Name            string           `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description     string           `db:"description"      json:"description"      validate:"omitempty,max=500"`
	DurationMinutes *int             `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gt=0,lte=1440"`
	Price           *decimal.Decimal `db:"price"            json:"price"            swaggertype:"string"`
	Color           string           `db:"color"            json:"color"            validate:"omitempty,hexcolor"`
	IsActive        *bool            `db:"is_active"        json:"is_active"        validate:"omitempty"`
}

type AppointmentTypeResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"`
	Color           string `json:"color"`
	IsActive        bool   `json:"is_active"`
	gDto.Metadata
}

func (r *AppointmentTypeResponse) FromModel(model model.AppointmentType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.DurationMinutes = model.DurationMinutes
	r.Price = model.Price.StringFixed(2)
	r.Color = model.Color
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetAppointmentTypesResponse struct {
	AppointmentTypes []AppointmentTypeResponse `json:"appointment_types"`
	TotalPage        int                       `json:"total_page"`
	TotalData        int                       `json:"total_data"`
}

func (r *GetAppointmentTypesResponse) FromModels(models []model.AppointmentType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.AppointmentTypes = make([]AppointmentTypeResponse, len(models))
	for i, mod := range models {
		r.AppointmentTypes[i].FromModel(mod)
	}
}

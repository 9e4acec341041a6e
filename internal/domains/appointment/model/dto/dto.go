package dto

import (
	"appointly/internal/availability"
	"appointly/internal/domains/appointment/model"
	"appointly/shared"
	"appointly/shared/constant"
	gDto "appointly/shared/dto"
	gModel "appointly/shared/model"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAppointmentRequest struct {
	StaffID           string           `json:"staff_id"            validate:"omitempty,max=64"`
	AppointmentTypeID string           `json:"appointment_type_id" validate:"omitempty,uuid"`
	CustomerName      string           `json:"customer_name"       validate:"required,max=100"`
	CustomerEmail     string           `json:"customer_email"      validate:"omitempty,email,max=100"`
	CustomerPhone     string           `json:"customer_phone"      validate:"omitempty,max=20"`
	Date              string           `json:"date"                validate:"required,day"`
	StartTime         string           `json:"start_time"          validate:"required,hhmm"`
	DurationMinutes   int              `json:"duration_minutes"    validate:"omitempty,gt=0,lte=1440"`
	Price             *decimal.Decimal `json:"price"               swaggertype:"string"`
	Status            string           `json:"status"              validate:"omitempty,oneof=pending confirmed"`
	Notes             string           `json:"notes"               validate:"omitempty,max=500"`
}

// ToModel builds the appointment of ownerID. Status defaults to pending.
func (c *CreateAppointmentRequest) ToModel(ownerID, user string) (model.Appointment, error) {
	date, err := time.Parse(constant.DayFormat, c.Date)
	if err != nil {
		return model.Appointment{}, err
	}

	status := availability.StatusPending
	if c.Status != constant.Empty {
		status = availability.Status(c.Status)
	}

	appointment := model.Appointment{
		ID:              uuid.NewString(),
		BusinessOwnerID: ownerID,
		StaffID:         c.StaffID,
		CustomerName:    c.CustomerName,
		CustomerEmail:   c.CustomerEmail,
		CustomerPhone:   c.CustomerPhone,
		Date:            date,
		StartTime:       c.StartTime,
		DurationMinutes: c.DurationMinutes,
		Status:          string(status),
		Notes:           c.Notes,
		Metadata:        gModel.NewMetadata(user),
	}

	if c.AppointmentTypeID != constant.Empty {
		appointmentTypeID := c.AppointmentTypeID
		appointment.AppointmentTypeID = &appointmentTypeID
	}

	if c.Price != nil {
		appointment.Price = c.Price.Round(2)
	}

	return appointment, nil
}

type CreateBlockRequest struct {
	StaffID         string `json:"staff_id"         validate:"omitempty,max=64"`
	Date            string `json:"date"             validate:"required,day"`
	StartTime       string `json:"start_time"       validate:"required,hhmm"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0,lte=1440"`
	Notes           string `json:"notes"            validate:"omitempty,max=500"`
}

func (c *CreateBlockRequest) ToModel(ownerID, user string) (model.Appointment, error) {
	date, err := time.Parse(constant.DayFormat, c.Date)
	if err != nil {
		return model.Appointment{}, err
	}

	return model.Appointment{
		ID:              uuid.NewString(),
		BusinessOwnerID: ownerID,
		StaffID:         c.StaffID,
		Date:            date,
		StartTime:       c.StartTime,
		DurationMinutes: c.DurationMinutes,
		Status:          string(availability.StatusBlocked),
		Notes:           c.Notes,
		Metadata:        gModel.NewMetadata(user),
	}, nil
}

type CreateRecurringRequest struct {
	CreateAppointmentRequest
	Frequency string `json:"frequency"  validate:"required,oneof=weekly biweekly monthly"`
	UntilDate string `json:"until_date" validate:"required,day"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled no_show"`
}

type AvailabilityRequest struct {
	Date              string `json:"date"                validate:"required,day"`
	DurationMinutes   int    `json:"duration"            validate:"omitempty,gt=0,lte=1440"`
	StaffID           string `json:"staff_id"            validate:"omitempty,max=64"`
	AppointmentTypeID string `json:"appointment_type_id" validate:"omitempty,uuid"`
}

type AvailabilityResponse struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

type RecurringResponse struct {
	Count             int      `json:"count"`
	Skipped           int      `json:"skipped"`
	SkippedDates      []string `json:"skipped_dates"`
	RecurrenceGroupID string   `json:"recurrence_group_id"`
}

type CancelRecurringResponse struct {
	Cancelled int `json:"cancelled"`
}

type CalendarResponse struct {
	URL string `json:"url"`
}

// Filter narrows the appointment list of an owner. Dates are YYYY-MM-DD.
type Filter struct {
	Date    string `validate:"omitempty,day"`
	From    string `validate:"omitempty,day"`
	To      string `validate:"omitempty,day"`
	Status  string `validate:"omitempty,oneof=pending confirmed completed cancelled no_show blocked"`
	StaffID string `validate:"omitempty,max=64"`
}

func (f Filter) Query() map[string]any {
	return map[string]any{
		constant.RequestParamDate:    f.Date,
		constant.RequestParamFrom:    f.From,
		constant.RequestParamTo:      f.To,
		model.FieldStatus:            f.Status,
		constant.RequestParamStaffID: f.StaffID,
	}
}

func (f Filter) ToFilterGroup(ownerID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldBusinessOwnerID, Value: ownerID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	if f.Date != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldDate, Value: f.Date, Operator: gDto.FilterOperatorEq})
	}

	if f.From != constant.Empty {
		filters = append(filters, gDto.Filter{ArgName: "date_from", Field: model.FieldDate, Value: f.From, Operator: gDto.FilterOperatorGreaterEq})
	}

	if f.To != constant.Empty {
		filters = append(filters, gDto.Filter{ArgName: "date_to", Field: model.FieldDate, Value: f.To, Operator: gDto.FilterOperatorLessEq})
	}

	if f.Status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq})
	}

	if f.StaffID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStaffID, Value: f.StaffID, Operator: gDto.FilterOperatorEq})
	}

	return gDto.FilterGroup{Filters: filters}
}

type AppointmentResponse struct {
	ID                string `json:"id"`
	BusinessOwnerID   string `json:"business_owner_id"`
	StaffID           string `json:"staff_id"`
	AppointmentTypeID string `json:"appointment_type_id"`
	CustomerName      string `json:"customer_name"`
	CustomerEmail     string `json:"customer_email"`
	CustomerPhone     string `json:"customer_phone"`
	Date              string `json:"date"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	DurationMinutes   int    `json:"duration_minutes"`
	Price             string `json:"price"`
	Status            string `json:"status"`
	IsRecurring       bool   `json:"is_recurring"`
	RecurrenceGroupID string `json:"recurrence_group_id"`
	Notes             string `json:"notes"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.BusinessOwnerID = model.BusinessOwnerID
	r.StaffID = model.StaffID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.Date = model.Day()
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.DurationMinutes = model.DurationMinutes
	r.Price = model.Price.StringFixed(2)
	r.Status = model.Status
	r.IsRecurring = model.IsRecurring
	r.RecurrenceGroupID = model.RecurrenceGroupID
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)

	if model.AppointmentTypeID != nil {
		r.AppointmentTypeID = *model.AppointmentTypeID
	}
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

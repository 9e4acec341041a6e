package dto

import (
	"appointly/internal/domains/business/model"
	gDto "appointly/shared/dto"
	gModel "appointly/shared/model"

	"github.com/lib/pq"
)

type BreakTime struct {
	Enabled     bool `json:"enabled"`
	StartHour   int  `json:"start_hour"   validate:"gte=0,lte=23"`
	StartMinute int  `json:"start_minute" validate:"gte=0,lte=59"`
	EndHour     int  `json:"end_hour"     validate:"gte=0,lte=23"`
	EndMinute   int  `json:"end_minute"   validate:"gte=0,lte=59"`
}

type CancellationPolicy struct {
	Enabled     bool `json:"enabled"`
	HoursBefore int  `json:"hours_before" validate:"gte=0,lte=720"`
}

type UpsertBusinessProfileRequest struct {
	Name               string             `json:"name"                validate:"required,max=100"`
	Slug               string             `json:"slug"                validate:"omitempty,max=100"`
	StartHour          int                `json:"start_hour"          validate:"gte=0,lte=23"`
	EndHour            int                `json:"end_hour"            validate:"gte=0,lte=23"`
	WorkingDays        []int              `json:"working_days"        validate:"required,min=1,max=7,unique,dive,gte=0,lte=6"`
	SlotInterval       int                `json:"slot_interval"       validate:"gt=0,lte=240"`
	BreakTime          BreakTime          `json:"break_time"`
	MinGapMinutes      int                `json:"min_gap_minutes"     validate:"gte=0,lte=240"`
	CancellationPolicy CancellationPolicy `json:"cancellation_policy"`
}

func (r *UpsertBusinessProfileRequest) ToModel(ownerID, slug string) model.BusinessProfile {
	days := make(pq.Int64Array, len(r.WorkingDays))
	for i, d := range r.WorkingDays {
		days[i] = int64(d)
	}

	return model.BusinessProfile{
		OwnerID:                 ownerID,
		Slug:                    slug,
		Name:                    r.Name,
		StartHour:               r.StartHour,
		EndHour:                 r.EndHour,
		WorkingDays:             days,
		SlotInterval:            r.SlotInterval,
		BreakEnabled:            r.BreakTime.Enabled,
		BreakStartHour:          r.BreakTime.StartHour,
		BreakStartMinute:        r.BreakTime.StartMinute,
		BreakEndHour:            r.BreakTime.EndHour,
		BreakEndMinute:          r.BreakTime.EndMinute,
		MinGapMinutes:           r.MinGapMinutes,
		CancellationEnabled:     r.CancellationPolicy.Enabled,
		CancellationHoursBefore: r.CancellationPolicy.HoursBefore,
		Metadata:                gModel.NewMetadata(ownerID),
	}
}

type BusinessProfileResponse struct {
	OwnerID            string             `json:"owner_id"`
	Slug               string             `json:"slug"`
	Name               string             `json:"name"`
	StartHour          int                `json:"start_hour"`
	EndHour            int                `json:"end_hour"`
	WorkingDays        []int              `json:"working_days"`
	SlotInterval       int                `json:"slot_interval"`
	BreakTime          BreakTime          `json:"break_time"`
	MinGapMinutes      int                `json:"min_gap_minutes"`
	CancellationPolicy CancellationPolicy `json:"cancellation_policy"`
	Configured         bool               `json:"configured"`
	gDto.Metadata
}

func (r *BusinessProfileResponse) FromModel(m model.BusinessProfile) {
	r.OwnerID = m.OwnerID
	r.Slug = m.Slug
	r.Name = m.Name
	r.StartHour = m.StartHour
	r.EndHour = m.EndHour
	r.SlotInterval = m.SlotInterval
	r.MinGapMinutes = m.MinGapMinutes
	r.Configured = !m.CreatedAt.IsZero()

	r.WorkingDays = make([]int, len(m.WorkingDays))
	for i, d := range m.WorkingDays {
		r.WorkingDays[i] = int(d)
	}

	r.BreakTime = BreakTime{
		Enabled:     m.BreakEnabled,
		StartHour:   m.BreakStartHour,
		StartMinute: m.BreakStartMinute,
		EndHour:     m.BreakEndHour,
		EndMinute:   m.BreakEndMinute,
	}
	r.CancellationPolicy = CancellationPolicy{
		Enabled:     m.CancellationEnabled,
		HoursBefore: m.CancellationHoursBefore,
	}

	if r.Configured {
		r.Metadata.FromModel(m.Metadata)
	}
}

// PublicBusinessProfileResponse is what anonymous callers see of a business.
// It carries no owner identity.
type PublicBusinessProfileResponse struct {
	Slug               string             `json:"slug"`
	Name               string             `json:"name"`
	StartHour          int                `json:"start_hour"`
	EndHour            int                `json:"end_hour"`
	WorkingDays        []int              `json:"working_days"`
	SlotInterval       int                `json:"slot_interval"`
	BreakTime          BreakTime          `json:"break_time"`
	MinGapMinutes      int                `json:"min_gap_minutes"`
	CancellationPolicy CancellationPolicy `json:"cancellation_policy"`
}

func (r *PublicBusinessProfileResponse) FromModel(m model.BusinessProfile) {
	var full BusinessProfileResponse
	full.FromModel(m)

	r.Slug = full.Slug
	r.Name = full.Name
	r.StartHour = full.StartHour
	r.EndHour = full.EndHour
	r.WorkingDays = full.WorkingDays
	r.SlotInterval = full.SlotInterval
	r.BreakTime = full.BreakTime
	r.MinGapMinutes = full.MinGapMinutes
	r.CancellationPolicy = full.CancellationPolicy
}

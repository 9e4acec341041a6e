package model

import (
	"appointly/internal/availability"
	"appointly/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "business_profiles"
	EntityName = "business_profile"

	FieldOwnerID = "owner_id"
	FieldSlug    = "slug"
	FieldName    = "name"

	FieldCalendarToken = "calendar_token"
)

const (
	DefaultStartHour    = 9
	DefaultEndHour      = 17
	DefaultSlotInterval = 30
)

// DefaultWorkingDays is Sunday to Thursday.
var DefaultWorkingDays = pq.Int64Array{0, 1, 2, 3, 4}

type BusinessProfile struct {
	OwnerID                 string        `db:"owner_id"`
	Slug                    string        `db:"slug"`
	Name                    string        `db:"name"`
	StartHour               int           `db:"start_hour"`
	EndHour                 int           `db:"end_hour"`
	WorkingDays             pq.Int64Array `db:"working_days"`
	SlotInterval            int           `db:"slot_interval"`
	BreakEnabled            bool          `db:"break_enabled"`
	BreakStartHour          int           `db:"break_start_hour"`
	BreakStartMinute        int           `db:"break_start_minute"`
	BreakEndHour            int           `db:"break_end_hour"`
	BreakEndMinute          int           `db:"break_end_minute"`
	MinGapMinutes           int           `db:"min_gap_minutes"`
	CancellationEnabled     bool          `db:"cancellation_enabled"`
	CancellationHoursBefore int           `db:"cancellation_hours_before"`
	// CalendarToken names the published calendar object. Upsert never overwrites it.
	CalendarToken           string        `db:"calendar_token"`
	model.Metadata
}

// Default is the profile used for owners that have not configured one yet.
func Default(ownerID string) BusinessProfile {
	return BusinessProfile{
		OwnerID:      ownerID,
		StartHour:    DefaultStartHour,
		EndHour:      DefaultEndHour,
		WorkingDays:  DefaultWorkingDays,
		SlotInterval: DefaultSlotInterval,
	}
}

func (b BusinessProfile) Hours() availability.BusinessHours {
	days := make([]int, len(b.WorkingDays))
	for i, d := range b.WorkingDays {
		days[i] = int(d)
	}

	return availability.BusinessHours{
		StartHour:    b.StartHour,
		EndHour:      b.EndHour,
		WorkingDays:  days,
		SlotInterval: b.SlotInterval,
		Break: availability.BreakTime{
			Enabled:     b.BreakEnabled,
			StartHour:   b.BreakStartHour,
			StartMinute: b.BreakStartMinute,
			EndHour:     b.BreakEndHour,
			EndMinute:   b.BreakEndMinute,
		},
		MinGapMinutes: b.MinGapMinutes,
	}
}

func (b BusinessProfile) CancellationPolicy() availability.CancellationPolicy {
	return availability.CancellationPolicy{
		Enabled:     b.CancellationEnabled,
		HoursBefore: b.CancellationHoursBefore,
	}
}

package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID                 = "id"
	RequestParamGroupID            = "groupId"
	RequestParamBusinessIdentifier = "businessIdentifier"
	RequestParamDate               = "date"
	RequestParamDuration           = "duration"
	RequestParamStaffID            = "staffId"
	RequestParamAppointmentTypeID  = "appointment_type_id"
	RequestParamAsOf               = "as_of"
	RequestParamFrom               = "from"
	RequestParamTo                 = "to"
	RequestParamActive             = "active"
	RequestParamRotate             = "rotate"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	MaxValueLimit       = 100
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	DayFormat      = "2006-01-02"
	ClockFormat    = "15:04"
	HoursInDay     = 24
	MinutesPerHour = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelJobScopeName        = "job"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON     = "application/json"
	ContentTypeCalendar = "text/calendar; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

// CacheKeyAvailability prefixes cached slot lists, followed by the owner id.
const CacheKeyAvailability = "appointment:available"

// CacheKeyAvailabilityGeneration prefixes the per-owner counter that versions cached slot lists.
// It must not share the CacheKeyAvailability prefix, or clearing the lists would reset it.
const CacheKeyAvailabilityGeneration = "appointment:generation"

const (
	Asterix = "*"
	Empty   = ""
)

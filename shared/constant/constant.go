package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID contextKey = "user_id"
)

const (
	RequestParamID = "id"
)

const (
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
	DateFormat        = time.RFC3339
	BookingDateFormat = "2006-01-02"
)

const (
	BookingStatusPending = "Pending"

	BookingRoomIDInquiry = "navbar_inquiry"
)

const (
	RoomDefaultCategory = "Deluxe"
	RoomDefaultSize     = "450 sqft"
	RoomDefaultBedType  = "King Size"
	RoomDefaultAdults   = 2

	BlogDefaultCategory = "Travel"
	BlogDefaultAuthor   = "Admin"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderContentType  = "Content-Type"
	HeaderRateLimit           = "X-RateLimit-Limit"
	HeaderRateLimitRemaining  = "X-RateLimit-Remaining"
	HeaderRateLimitWindow     = "X-RateLimit-Window"
	RequestHeaderForwardedFor = "X-Forwarded-For"
	RequestHeaderRealIP       = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
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

const (
	Asterix = "*"
	Empty   = ""
)

package apierrors

// HTTP 400 Bad Request.
const (
	ErrUnknownTimeRange   = "UNKNOWN_TIME_RANGE"
	ErrUnknownGranularity = "UNKNOWN_GRANULARITY"
	ErrInvalidSchoolID    = "INVALID_SCHOOL_ID"
	ErrInvalidFestivalID  = "INVALID_FESTIVAL_ID"
)

// HTTP 502 Bad Gateway.
const (
	ErrCatalogUnavailable = "CATALOG_UNAVAILABLE"
)

package errors

import "net/http"

var (
	ErrCountryNotFound = New(
		"COUNTRY_NOT_FOUND",
		"Country not found",
		http.StatusNotFound,
	)

	ErrInvalidCountryData = New(
		"INVALID_COUNTRY_DATA",
		"Upstream returned country data in unexpected shape",
		http.StatusBadGateway,
	)

	ErrUpstreamUnavailable = New(
		"UPSTREAM_UNAVAILABLE",
		"Country data provider is unavailable",
		http.StatusBadGateway,
	)

	ErrImportFormatInvalid = New(
		"IMPORT_FORMAT_INVALID",
		"Import document is malformed or missing the favorites list",
		http.StatusBadRequest,
	)

	ErrInvalidCountryCode = New(
		"INVALID_COUNTRY_CODE",
		"Country code must be a 2-letter alpha code",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrSessionUnavailable = New(
		"SESSION_UNAVAILABLE",
		"Session store is temporarily unavailable",
		http.StatusServiceUnavailable,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

package errors

import "net/http"

const CodeValidationFailed = "VALIDATION_FAILED"

var (
	ErrNoDataFound = New(
		"NO_DATA_FOUND",
		"no data found for the given filters",
		http.StatusNotFound,
	)

	ErrNothingToExport = New(
		"NOTHING_TO_EXPORT",
		"no data to export",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"internal server error",
		http.StatusInternalServerError,
	)
)

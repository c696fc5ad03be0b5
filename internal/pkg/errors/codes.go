package errors

import "net/http"

var (
	ErrInvalidReport = New(
		"INVALID_REPORT",
		"Occupancy report rejected: total must be greater than zero",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidHour = New(
		"INVALID_HOUR",
		"Hour must be an integer between 0 and 23",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrNoZones = New(
		"NO_ZONES",
		"No parking zones available",
		http.StatusNotFound,
	)

	ErrInventoryUnavailable = New(
		"INVENTORY_UNAVAILABLE",
		"Parking inventory could not be loaded",
		http.StatusServiceUnavailable,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

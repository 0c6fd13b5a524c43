// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrRoomNotAvailable signals a valid booking request that
// cannot be admitted because the room has no free capacity for the
// requested dates; it is a domain refusal, not a system fault.
package repository

import "errors"

// ErrInvalidDateRange is returned when a requested stay has
// date_from >= date_to. Date ranges are half-open, so an empty
// interval books nothing and is rejected before any query runs.
// Handlers should translate this into an HTTP 400 response.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrRoomNotAvailable is returned when a room has no remaining
// capacity for the requested date range. Handlers should translate
// this into an HTTP 409 response.
var ErrRoomNotAvailable = errors.New("room not available")

// ErrRoomNotFound is returned when a booking references a room
// that does not exist. Handlers should translate this into an
// HTTP 404 response.
var ErrRoomNotFound = errors.New("room not found")

// ErrHotelNotFound is returned when a lookup references a hotel
// that does not exist. Handlers should translate this into an
// HTTP 404 response.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrEmailExists is returned when registering a user with an email
// that is already taken. Handlers should translate this into an
// HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

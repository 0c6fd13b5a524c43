package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	"github.com/iliyamo/hotel-room-booking/internal/service"
)

// BookingHandler exposes the booking endpoints.  All methods assume
// that JWT authentication has already been performed by middleware and
// may return 401 Unauthorized if the user ID cannot be extracted from
// the context.  Admission decisions are delegated to the booking
// service; this layer only parses requests and maps domain errors to
// status codes.
type BookingHandler struct {
	Bookings *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.  The service must be
// non-nil.
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	if bookings == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings}
}

type createBookingReq struct {
	RoomID   uint64 `json:"room_id" validate:"required"`
	DateFrom string `json:"date_from" validate:"required"`
	DateTo   string `json:"date_to" validate:"required"`
}

// CreateBooking handles POST /v1/bookings.  The body must contain
// room_id and a half-open [date_from, date_to) range in YYYY-MM-DD
// format.  It returns 201 Created with the persisted booking, 400 for
// a malformed or empty range, 404 for an unknown room and 409 when the
// room has no free capacity for the requested dates.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	from, errFrom := parseDate(req.DateFrom)
	to, errTo := parseDate(req.DateTo)
	if errFrom != nil || errTo != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dates must be YYYY-MM-DD"})
	}

	det, err := h.Bookings.Create(c.Request().Context(), userID, req.RoomID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidDateRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date_from must be before date_to"})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, repository.ErrRoomNotAvailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room cannot be booked for these dates"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}
	return c.JSON(http.StatusCreated, det)
}

// ListBookings handles GET /v1/bookings.  It returns every booking
// owned by the authenticated user and nothing else.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	list, err := h.Bookings.List(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, list)
}

// getUserID extracts the user_id stored by the JWT middleware and
// converts it to uint64.  JWT numeric claims decode as float64, so
// several representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("no user in context")
}

// parseDate parses a YYYY-MM-DD wire date into a UTC time.Time.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(model.DateLayout, s, time.UTC)
}

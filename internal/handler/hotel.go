package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// HotelHandler exposes the public hotel browse endpoints: the location
// search with availability, single-hotel lookup and the per-room
// availability listing.  These routes carry no authentication and sit
// behind the response-cache middleware.
type HotelHandler struct {
	Hotels *repository.HotelRepo
	Rooms  *repository.RoomRepo
}

// NewHotelHandler constructs a HotelHandler and panics if any
// dependency is nil.
func NewHotelHandler(hotels *repository.HotelRepo, rooms *repository.RoomRepo) *HotelHandler {
	if hotels == nil || rooms == nil {
		panic("nil repository passed to NewHotelHandler")
	}
	return &HotelHandler{Hotels: hotels, Rooms: rooms}
}

// SearchByLocation handles GET /v1/hotels/:location.  date_from and
// date_to query parameters bound the stay; only hotels with at least
// one free room in that range are returned.
func (h *HotelHandler) SearchByLocation(c echo.Context) error {
	location := c.Param("location")
	if location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "location is required"})
	}
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	hotels, err := h.Hotels.SearchByLocation(c.Request().Context(), location, from, to)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidDateRange) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date_from must be before date_to"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, hotels)
}

// GetByID handles GET /v1/hotels/id/:id.  Unknown hotels yield a JSON
// null body rather than an error status.
func (h *HotelHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	hotel, err := h.Hotels.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, hotel)
}

// ListRooms handles GET /v1/hotels/id/:id/rooms.  It returns every
// room of the hotel with per-range availability and the total cost of
// staying the full range.
func (h *HotelHandler) ListRooms(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	rooms, err := h.Rooms.ListAvailableByHotel(c.Request().Context(), id, from, to)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidDateRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date_from must be before date_to"})
		case errors.Is(err, repository.ErrHotelNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}
	return c.JSON(http.StatusOK, rooms)
}

// parseDateRange reads the date_from and date_to query parameters.
// Both are required and must be YYYY-MM-DD.
func parseDateRange(c echo.Context) (from, to time.Time, err error) {
	fromStr := c.QueryParam("date_from")
	toStr := c.QueryParam("date_to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, errors.New("date_from and date_to are required")
	}
	if from, err = parseDate(fromStr); err != nil {
		return time.Time{}, time.Time{}, errors.New("date_from must be YYYY-MM-DD")
	}
	if to, err = parseDate(toStr); err != nil {
		return time.Time{}, time.Time{}, errors.New("date_to must be YYYY-MM-DD")
	}
	return from, to, nil
}

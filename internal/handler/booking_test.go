package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	"github.com/iliyamo/hotel-room-booking/internal/service"
)

// memStore backs the booking service in handler tests with the same
// locked check-and-insert contract as the SQL store.
type memStore struct {
	mu       sync.Mutex
	capacity uint32
	nextID   uint64
	bookings []model.Booking
}

func (s *memStore) Reserve(_ context.Context, userID, roomID uint64, from, to time.Time) (*repository.BookingDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !model.ValidRange(from, to) {
		return nil, repository.ErrInvalidDateRange
	}
	if roomID == 404 {
		return nil, repository.ErrRoomNotFound
	}
	var overlapping uint32
	for _, b := range s.bookings {
		if b.RoomID == roomID && model.Overlaps(b.DateFrom, b.DateTo, from, to) {
			overlapping++
		}
	}
	if overlapping >= s.capacity {
		return nil, repository.ErrRoomNotAvailable
	}
	s.nextID++
	b := model.Booking{ID: s.nextID, RoomID: roomID, UserID: userID, DateFrom: from, DateTo: to, Price: 100}
	s.bookings = append(s.bookings, b)
	return &repository.BookingDetail{
		ID: b.ID, RoomID: b.RoomID, UserID: b.UserID,
		DateFrom: from.Format(model.DateLayout), DateTo: to.Format(model.DateLayout),
		Price: b.Price, TotalDays: int64(b.TotalDays()), TotalCost: b.TotalCost(),
	}, nil
}

func (s *memStore) ListByUser(_ context.Context, userID uint64) ([]repository.BookingDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]repository.BookingDetail, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, repository.BookingDetail{
				ID: b.ID, RoomID: b.RoomID, UserID: b.UserID,
				DateFrom: b.DateFrom.Format(model.DateLayout), DateTo: b.DateTo.Format(model.DateLayout),
			})
		}
	}
	return out, nil
}

type memUsers struct{}

func (memUsers) GetByID(_ context.Context, id uint64) (model.User, error) {
	return model.User{ID: id, Email: "guest@example.com"}, nil
}

func newBookingTestHandler(capacity uint32) (*BookingHandler, *memStore) {
	store := &memStore{capacity: capacity}
	svc := service.NewBookingService(store, memUsers{}, nil)
	return NewBookingHandler(svc), store
}

func postBooking(t *testing.T, h *BookingHandler, userID any, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", userID)
	}
	err := h.CreateBooking(c)
	require.NoError(t, err)
	return rec
}

func TestCreateBookingReturnsCreated(t *testing.T) {
	h, _ := newBookingTestHandler(1)
	rec := postBooking(t, h, float64(3), `{"room_id":7,"date_from":"2024-06-01","date_to":"2024-06-05"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var det repository.BookingDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &det))
	assert.Equal(t, uint64(3), det.UserID)
	assert.Equal(t, uint64(7), det.RoomID)
	assert.Equal(t, "2024-06-01", det.DateFrom)
	assert.Equal(t, "2024-06-05", det.DateTo)
}

func TestCreateBookingConflictWhenFull(t *testing.T) {
	h, _ := newBookingTestHandler(1)
	rec := postBooking(t, h, float64(1), `{"room_id":7,"date_from":"2024-06-01","date_to":"2024-06-05"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Overlapping stay on the last free unit is a domain refusal.
	rec = postBooking(t, h, float64(2), `{"room_id":7,"date_from":"2024-06-04","date_to":"2024-06-06"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Boundary-adjacent stay goes through.
	rec = postBooking(t, h, float64(2), `{"room_id":7,"date_from":"2024-06-05","date_to":"2024-06-07"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateBookingBadRequests(t *testing.T) {
	h, store := newBookingTestHandler(1)

	// Empty interval.
	rec := postBooking(t, h, float64(1), `{"room_id":7,"date_from":"2024-06-01","date_to":"2024-06-01"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.bookings)

	// Malformed date.
	rec = postBooking(t, h, float64(1), `{"room_id":7,"date_from":"June 1st","date_to":"2024-06-05"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown room.
	rec = postBooking(t, h, float64(1), `{"room_id":404,"date_from":"2024-06-01","date_to":"2024-06-05"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBookingRequiresUser(t *testing.T) {
	h, _ := newBookingTestHandler(1)
	rec := postBooking(t, h, nil, `{"room_id":7,"date_from":"2024-06-01","date_to":"2024-06-05"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListBookingsReturnsOnlyOwn(t *testing.T) {
	h, _ := newBookingTestHandler(10)
	postBooking(t, h, float64(1), `{"room_id":7,"date_from":"2024-06-01","date_to":"2024-06-03"}`)
	postBooking(t, h, float64(2), `{"room_id":7,"date_from":"2024-06-03","date_to":"2024-06-05"}`)
	postBooking(t, h, float64(1), `{"room_id":8,"date_from":"2024-07-01","date_to":"2024-07-02"}`)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(1))
	require.NoError(t, h.ListBookings(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var list []repository.BookingDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	for _, det := range list {
		assert.Equal(t, uint64(1), det.UserID)
	}
}

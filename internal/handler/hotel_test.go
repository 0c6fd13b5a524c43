package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// The hotel handler rejects malformed requests before touching the
// repositories, so these tests run against repos built on a nil *sql.DB.
func newHotelTestHandler() *HotelHandler {
	var db *sql.DB
	return NewHotelHandler(repository.NewHotelRepo(db), repository.NewRoomRepo(db))
}

func hotelCtx(target string, paramNames, paramValues []string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramNames...)
	c.SetParamValues(paramValues...)
	return c, rec
}

func TestSearchByLocationRequiresDates(t *testing.T) {
	h := newHotelTestHandler()

	c, rec := hotelCtx("/v1/hotels/paris", []string{"location"}, []string{"paris"})
	require.NoError(t, h.SearchByLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = hotelCtx("/v1/hotels/paris?date_from=2024-06-01", []string{"location"}, []string{"paris"})
	require.NoError(t, h.SearchByLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = hotelCtx("/v1/hotels/paris?date_from=bad&date_to=2024-06-05", []string{"location"}, []string{"paris"})
	require.NoError(t, h.SearchByLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetByIDRejectsBadID(t *testing.T) {
	h := newHotelTestHandler()

	for _, id := range []string{"abc", "0", "-1", ""} {
		c, rec := hotelCtx("/v1/hotels/id/"+id, []string{"id"}, []string{id})
		require.NoError(t, h.GetByID(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
	}
}

func TestListRoomsRejectsBadInput(t *testing.T) {
	h := newHotelTestHandler()

	c, rec := hotelCtx("/v1/hotels/id/abc/rooms?date_from=2024-06-01&date_to=2024-06-05", []string{"id"}, []string{"abc"})
	require.NoError(t, h.ListRooms(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = hotelCtx("/v1/hotels/id/1/rooms", []string{"id"}, []string{"1"})
	require.NoError(t, h.ListRooms(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseDateRange(t *testing.T) {
	c, _ := hotelCtx("/v1/hotels/paris?date_from=2024-06-01&date_to=2024-06-05", nil, nil)
	from, to, err := parseDateRange(c)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", from.Format(model.DateLayout))
	assert.Equal(t, "2024-06-05", to.Format(model.DateLayout))
	assert.Equal(t, "UTC", from.Location().String())
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// HotelRepo answers read-only hotel queries: the location search with
// availability counts and single-hotel lookups.  Availability is
// computed against existing bookings at query time; results are
// snapshot-consistent, not serialized with in-flight reservations.
type HotelRepo struct {
	db *sql.DB
}

// NewHotelRepo returns a new HotelRepo bound to the given database.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

// HotelInfo is a hotel row extended with the number of rooms still
// free for a requested date range.  It is the JSON shape returned by
// the location search.
type HotelInfo struct {
	ID            uint64   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Services      []string `json:"services"`
	RoomsQuantity uint32   `json:"rooms_quantity"`
	ImageID       uint32   `json:"image_id"`
	RoomsLeft     int64    `json:"rooms_left"`
}

// SearchByLocation returns hotels whose location contains the given
// string (case-insensitive) and that still have at least one free room
// for the half-open range [from, to).  rooms_left is the hotel's total
// room count minus bookings overlapping the range across all of its
// rooms.  It returns ErrInvalidDateRange when from >= to.
func (r *HotelRepo) SearchByLocation(ctx context.Context, location string, from, to time.Time) ([]HotelInfo, error) {
	if !model.ValidRange(from, to) {
		return nil, ErrInvalidDateRange
	}

	// The overlap subquery uses the half-open rule: a booking conflicts
	// with [from, to) iff booking.date_from < to AND booking.date_to > from.
	const q = `SELECT t.id, t.name, t.location, t.services, t.rooms_quantity, t.image_id, t.rooms_left
FROM (
    SELECT h.id, h.name, h.location, h.services, h.rooms_quantity, h.image_id,
           h.rooms_quantity - COALESCE((
               SELECT COUNT(*)
               FROM bookings b
               JOIN rooms r ON r.id = b.room_id
               WHERE r.hotel_id = h.id AND b.date_from < ? AND b.date_to > ?
           ), 0) AS rooms_left
    FROM hotels h
    WHERE LOWER(h.location) LIKE ?
) t
WHERE t.rooms_left > 0
ORDER BY t.id`

	pattern := "%" + strings.ToLower(strings.TrimSpace(location)) + "%"
	rows, err := r.db.QueryContext(ctx, q,
		to.Format(model.DateLayout), from.Format(model.DateLayout), pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]HotelInfo, 0)
	for rows.Next() {
		var h HotelInfo
		var services []byte
		if err := rows.Scan(&h.ID, &h.Name, &h.Location, &services,
			&h.RoomsQuantity, &h.ImageID, &h.RoomsLeft); err != nil {
			return nil, err
		}
		h.Services = decodeServices(services)
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return hotels, nil
}

// GetByID returns a single hotel.  When no hotel with the given ID
// exists, ErrHotelNotFound is returned.
func (r *HotelRepo) GetByID(ctx context.Context, id uint64) (*model.Hotel, error) {
	var h model.Hotel
	var services []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, location, services, rooms_quantity, image_id FROM hotels WHERE id = ? LIMIT 1`,
		id).Scan(&h.ID, &h.Name, &h.Location, &services, &h.RoomsQuantity, &h.ImageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	h.Services = decodeServices(services)
	return &h, nil
}

// decodeServices parses the JSON services column.  A malformed or NULL
// value degrades to an empty list rather than failing the whole query.
func decodeServices(raw []byte) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

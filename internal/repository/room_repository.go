package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// RoomRepo answers read-only room queries, primarily the per-room
// availability listing for a hotel and date range.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// RoomInfo is a room row extended with availability for a requested
// date range and the total cost of staying the full range.
type RoomInfo struct {
	ID          uint64   `json:"id"`
	HotelID     uint64   `json:"hotel_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       uint64   `json:"price"`
	Services    []string `json:"services"`
	Quantity    uint32   `json:"quantity"`
	ImageID     uint32   `json:"image_id"`
	RoomsLeft   int64    `json:"rooms_left"`
	TotalCost   uint64   `json:"total_cost"`
}

// ListAvailableByHotel returns every room of the given hotel with the
// number of free units for [from, to) and the total cost for the stay.
// Rooms with no free units are included with rooms_left = 0 so clients
// can render sold-out categories.  It returns ErrHotelNotFound when the
// hotel does not exist and ErrInvalidDateRange when from >= to.
func (r *RoomRepo) ListAvailableByHotel(ctx context.Context, hotelID uint64, from, to time.Time) ([]RoomInfo, error) {
	if !model.ValidRange(from, to) {
		return nil, ErrInvalidDateRange
	}

	// Ensure the hotel exists so an empty result means "no rooms", not
	// "no hotel".
	var exists uint64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM hotels WHERE id = ? LIMIT 1`, hotelID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	const q = `SELECT ro.id, ro.hotel_id, ro.name, ro.description, ro.price, ro.services, ro.quantity, ro.image_id,
       ro.quantity - COALESCE((
           SELECT COUNT(*) FROM bookings b
           WHERE b.room_id = ro.id AND b.date_from < ? AND b.date_to > ?
       ), 0) AS rooms_left,
       ro.price * DATEDIFF(?, ?) AS total_cost
FROM rooms ro
WHERE ro.hotel_id = ?
ORDER BY ro.id`

	toStr := to.Format(model.DateLayout)
	fromStr := from.Format(model.DateLayout)
	rows, err := r.db.QueryContext(ctx, q, toStr, fromStr, toStr, fromStr, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoomInfo, 0)
	for rows.Next() {
		var ri RoomInfo
		var desc sql.NullString
		var services []byte
		if err := rows.Scan(&ri.ID, &ri.HotelID, &ri.Name, &desc, &ri.Price, &services,
			&ri.Quantity, &ri.ImageID, &ri.RoomsLeft, &ri.TotalCost); err != nil {
			return nil, err
		}
		if desc.Valid {
			d := desc.String
			ri.Description = &d
		}
		ri.Services = decodeServices(services)
		if ri.RoomsLeft < 0 {
			ri.RoomsLeft = 0
		}
		out = append(out, ri)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

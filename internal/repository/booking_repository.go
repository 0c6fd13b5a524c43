package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// BookingRepo provides persistence for bookings.  A booking occupies one
// unit of a room's quantity for the half-open date range
// [date_from, date_to).  All writes go through Reserve, which performs
// the availability check and the insert inside a single transaction so
// that concurrent requests can never oversell a room.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle for callers that need to open
// transactions spanning multiple repositories.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// BookingDetail is the JSON row returned to API clients for a booking.
// Dates use the YYYY-MM-DD wire format.  TotalDays and TotalCost are
// computed in SQL from the stored nightly price.
type BookingDetail struct {
	ID        uint64 `json:"id"`
	RoomID    uint64 `json:"room_id"`
	UserID    uint64 `json:"user_id"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
	Price     uint64 `json:"price"`
	TotalDays int64  `json:"total_days"`
	TotalCost uint64 `json:"total_cost"`
	RoomName  string `json:"room_name"`
	HotelName string `json:"hotel_name"`
	CreatedAt string `json:"created_at"`
}

// Reserve atomically books a room for the given user and date range.
// It locks the room row, counts bookings overlapping [from, to) and
// inserts the new booking only when the overlap count is below the
// room's quantity.  Two ranges [a,b) and [c,d) overlap iff a < d and
// c < b; boundary-adjacent stays therefore do not conflict.
//
// The row lock taken by SELECT ... FOR UPDATE serializes concurrent
// reservations on the same room: of N concurrent overlapping requests
// for a room with Q free units, exactly Q commit and the rest observe
// ErrRoomNotAvailable.  It returns ErrRoomNotFound when the room does
// not exist and ErrInvalidDateRange when from >= to.
func (r *BookingRepo) Reserve(ctx context.Context, userID, roomID uint64, from, to time.Time) (*BookingDetail, error) {
	if !model.ValidRange(from, to) {
		return nil, ErrInvalidDateRange
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the room row for the duration of the check-and-insert.  Every
	// reservation for this room takes the same lock, so the overlap count
	// below cannot go stale before the insert commits.
	var quantity uint32
	var price uint64
	err = tx.QueryRowContext(ctx,
		`SELECT quantity, price FROM rooms WHERE id = ? FOR UPDATE`,
		roomID).Scan(&quantity, &price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	var booked uint32
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE room_id = ? AND date_from < ? AND date_to > ?`,
		roomID, to.Format(model.DateLayout), from.Format(model.DateLayout)).Scan(&booked)
	if err != nil {
		return nil, err
	}
	if booked >= quantity {
		return nil, ErrRoomNotAvailable
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (room_id, user_id, date_from, date_to, price) VALUES (?, ?, ?, ?, ?)`,
		roomID, userID, from.Format(model.DateLayout), to.Format(model.DateLayout), price)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	det, err := scanDetail(tx.QueryRowContext(ctx, detailQuery+` WHERE b.id = ?`, id))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return det, nil
}

// detailQuery joins a booking with its room and hotel and computes the
// per-stay totals.  Callers append a WHERE clause.
const detailQuery = `SELECT b.id, b.room_id, b.user_id, b.date_from, b.date_to, b.price,
       DATEDIFF(b.date_to, b.date_from) AS total_days,
       b.price * DATEDIFF(b.date_to, b.date_from) AS total_cost,
       r.name, h.name, b.created_at
FROM bookings b
JOIN rooms r  ON r.id = b.room_id
JOIN hotels h ON h.id = r.hotel_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDetail(row rowScanner) (*BookingDetail, error) {
	var det BookingDetail
	var dateFrom, dateTo, createdAt time.Time
	if err := row.Scan(
		&det.ID, &det.RoomID, &det.UserID, &dateFrom, &dateTo, &det.Price,
		&det.TotalDays, &det.TotalCost, &det.RoomName, &det.HotelName, &createdAt,
	); err != nil {
		return nil, err
	}
	det.DateFrom = dateFrom.UTC().Format(model.DateLayout)
	det.DateTo = dateTo.UTC().Format(model.DateLayout)
	det.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return &det, nil
}

// ListByUser returns all bookings owned by the given user, newest
// first.  When no bookings exist, an empty slice is returned.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		detailQuery+` WHERE b.user_id = ? ORDER BY b.created_at DESC, b.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]BookingDetail, 0)
	for rows.Next() {
		det, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, *det)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

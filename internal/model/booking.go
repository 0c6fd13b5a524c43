package model

import "time"

// Booking records a user's stay in a room for a half-open date
// range [DateFrom, DateTo).  Rows are created only through the
// atomic reservation path in the repository layer and are never
// mutated afterwards.
//
// Fields:
//  ID        – primary key identifier.
//  RoomID    – room being booked.
//  UserID    – user who owns the booking.
//  DateFrom  – first night of the stay (inclusive).
//  DateTo    – checkout date (exclusive).
//  Price     – nightly price captured at booking time.
//  CreatedAt – creation timestamp.
type Booking struct {
	ID        uint64    // bookings.id
	RoomID    uint64    // bookings.room_id
	UserID    uint64    // bookings.user_id
	DateFrom  time.Time // bookings.date_from (DATE)
	DateTo    time.Time // bookings.date_to (DATE)
	Price     uint64    // bookings.price
	CreatedAt time.Time // bookings.created_at
}

// TotalDays returns the number of nights covered by the booking.
func (b Booking) TotalDays() int { return Nights(b.DateFrom, b.DateTo) }

// TotalCost returns the full price of the stay.
func (b Booking) TotalCost() uint64 { return b.Price * uint64(b.TotalDays()) }

// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedName is the queue a confirmed booking is published to
// and the consumer reads from.
const BookingConfirmedName = "booking.confirmed"

// BookingConfirmedEvent is published when a booking is successfully
// admitted.  It carries enough information for downstream consumers to
// render the confirmation email without querying the primary database.
type BookingConfirmedEvent struct {
	EventID     string `json:"event_id"`
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	UserEmail   string `json:"user_email"`
	RoomID      uint64 `json:"room_id"`
	RoomName    string `json:"room_name"`
	HotelName   string `json:"hotel_name"`
	DateFrom    string `json:"date_from"`
	DateTo      string `json:"date_to"`
	TotalDays   int64  `json:"total_days"`
	TotalCost   uint64 `json:"total_cost"`
	ConfirmedAt string `json:"confirmed_at"`
}

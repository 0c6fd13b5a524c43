package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/queue"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// ReservationStore is the persistence contract the booking service
// depends on. The production implementation is repository.BookingRepo;
// Reserve must be atomic with respect to concurrent callers targeting
// the same room and overlapping date ranges.
type ReservationStore interface {
	Reserve(ctx context.Context, userID, roomID uint64, from, to time.Time) (*repository.BookingDetail, error)
	ListByUser(ctx context.Context, userID uint64) ([]repository.BookingDetail, error)
}

// UserDirectory resolves a user record, used to address the
// confirmation email. The production implementation is
// repository.UserRepo.
type UserDirectory interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// ConfirmationPublisher delivers booking.confirmed events to the
// message broker.
type ConfirmationPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error
}

// BookingService decides whether a requested stay can be admitted and,
// on success, triggers the confirmation notification. Domain refusals
// (repository.ErrRoomNotAvailable, repository.ErrInvalidDateRange)
// propagate unchanged to the handler layer; the notification runs on a
// detached goroutine and its outcome is never visible to the caller.
type BookingService struct {
	store     ReservationStore
	users     UserDirectory
	publisher ConfirmationPublisher

	wg sync.WaitGroup // tracks in-flight notifications for shutdown
}

// NewBookingService constructs a BookingService. The publisher may be
// nil, in which case confirmations are admitted without notification.
func NewBookingService(store ReservationStore, users UserDirectory, publisher ConfirmationPublisher) *BookingService {
	if store == nil || users == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{store: store, users: users, publisher: publisher}
}

// Create admits a booking for the given user, room and half-open date
// range. An empty or inverted range is rejected before the store is
// touched. On success the persisted booking is returned and a
// confirmation event is published asynchronously.
func (s *BookingService) Create(ctx context.Context, userID, roomID uint64, from, to time.Time) (*repository.BookingDetail, error) {
	if !model.ValidRange(from, to) {
		return nil, repository.ErrInvalidDateRange
	}

	det, err := s.store.Reserve(ctx, userID, roomID, from, to)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.notify(*det)
		}()
	}
	return det, nil
}

// List returns all bookings owned by the given user.
func (s *BookingService) List(ctx context.Context, userID uint64) ([]repository.BookingDetail, error) {
	return s.store.ListByUser(ctx, userID)
}

// Flush blocks until all in-flight notifications have completed. Used
// during shutdown and by tests.
func (s *BookingService) Flush() { s.wg.Wait() }

// notify resolves the recipient and publishes the confirmation event.
// It runs outside the request lifecycle on a context of its own: a
// cancelled or completed HTTP request must not abort the notification,
// and a failed notification must not surface to the booking caller.
func (s *BookingService) notify(det repository.BookingDetail) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u, err := s.users.GetByID(ctx, det.UserID)
	if err != nil {
		log.Printf("booking-service: lookup recipient for booking %d failed: %v", det.ID, err)
		return
	}

	ev := queue.BookingConfirmedEvent{
		EventID:     uuid.NewString(),
		BookingID:   det.ID,
		UserID:      det.UserID,
		UserEmail:   u.Email,
		RoomID:      det.RoomID,
		RoomName:    det.RoomName,
		HotelName:   det.HotelName,
		DateFrom:    det.DateFrom,
		DateTo:      det.DateTo,
		TotalDays:   det.TotalDays,
		TotalCost:   det.TotalCost,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishBookingConfirmed(ctx, ev); err != nil {
		log.Printf("booking-service: publish confirmation for booking %d failed: %v", det.ID, err)
	}
}

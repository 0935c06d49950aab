package memstore

import (
	"sync"

	"swiss-virtual-airline/internal/domain/booking"
	"swiss-virtual-airline/internal/pkg/errs"
)

// BookingStore is the in-memory booking ledger. Insertion order is the list
// order; cancellation removes the booking outright (no audit trail).
type BookingStore struct {
	mu       sync.Mutex
	bookings []*booking.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

func (s *BookingStore) Append(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
}

func (s *BookingStore) ListAll() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b.Clone())
	}
	return out
}

func (s *BookingStore) ListByUser(userID string) []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*booking.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID() == userID {
			out = append(out, b.Clone())
		}
	}
	return out
}

func (s *BookingStore) Get(id string) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.bookings[i].Clone(), true
	}
	return nil, false
}

// RemoveOwned deletes the booking if it belongs to userID (or anyOwner is
// set, for admin cancellation).
func (s *BookingStore) RemoveOwned(id, userID string, anyOwner bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return errs.ErrBookingNotFound
	}
	if !anyOwner && s.bookings[i].UserID() != userID {
		return errs.ErrNotBookingOwner
	}
	s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
	return nil
}

// MarkAwarded is the at-most-once award transition. The lookup requires
// ownership, so a booking held by another user reads as not found. The flag
// flip happens under the store lock; a retry deterministically fails with
// ErrPointsAlreadyAwarded.
func (s *BookingStore) MarkAwarded(id, userID string, points int) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID() != id || b.UserID() != userID {
			continue
		}
		if err := b.MarkAwarded(points); err != nil {
			return nil, errs.ErrPointsAlreadyAwarded
		}
		return b.Clone(), nil
	}
	return nil, errs.ErrBookingNotFound
}

func (s *BookingStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *BookingStore) indexOf(id string) int {
	for i, b := range s.bookings {
		if b.ID() == id {
			return i
		}
	}
	return -1
}

package memory

import (
	"fmt"
	"sync"

	"reservations/internal/models"
	"reservations/internal/storage"
)

// Storage is an ordered in-memory booking list. Ids are assigned as
// len+1 on append and records are never removed.
type Storage struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// New copies seed into a fresh store, renumbering ids 1..n in order.
func New(seed []models.Booking) *Storage {
	bookings := make([]models.Booking, 0, len(seed))
	for i, b := range seed {
		b.ID = i + 1
		bookings = append(bookings, b)
	}

	return &Storage{bookings: bookings}
}

func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bookings)
}

func (s *Storage) Bookings() ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)

	return out, nil
}

func (s *Storage) Booking(id int) (models.Booking, error) {
	const op = "storage.memory.Booking"

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}

	return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
}

func (s *Storage) CreateBooking(in models.BookingInput) (models.Booking, error) {
	in = in.WithDefaults()

	s.mu.Lock()
	defer s.mu.Unlock()

	b := models.Booking{
		ID:            len(s.bookings) + 1,
		Name:          in.Name,
		Hotel:         in.Hotel,
		ArrivalDate:   in.ArrivalDate,
		DepartureDate: in.DepartureDate,
	}
	s.bookings = append(s.bookings, b)

	return b, nil
}

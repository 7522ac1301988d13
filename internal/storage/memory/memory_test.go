package memory

import (
	"fmt"
	"sync"
	"testing"

	"reservations/internal/models"
	"reservations/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    models.BookingInput
		expected models.Booking
	}{
		{
			name: "Full input",
			input: models.BookingInput{
				Name:          "Alice",
				Hotel:         "Grand",
				ArrivalDate:   "2024-01-01",
				DepartureDate: "2024-01-05",
			},
			expected: models.Booking{
				ID:            1,
				Name:          "Alice",
				Hotel:         "Grand",
				ArrivalDate:   "2024-01-01",
				DepartureDate: "2024-01-05",
			},
		},
		{
			name:  "Empty input gets placeholders",
			input: models.BookingInput{},
			expected: models.Booking{
				ID:            1,
				Name:          "[name]",
				Hotel:         "[hotel]",
				ArrivalDate:   "[date arrive]",
				DepartureDate: "[date depart]",
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := New(nil)

			booking, err := s.CreateBooking(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, booking)
		})
	}
}

func TestCreateBookingAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	s := New([]models.Booking{{Name: "Seed"}})

	for i := 0; i < 5; i++ {
		before := s.Len()

		booking, err := s.CreateBooking(models.BookingInput{Name: fmt.Sprintf("guest-%d", i)})
		require.NoError(t, err)

		assert.Equal(t, before+1, booking.ID)
	}

	assert.Equal(t, 6, s.Len())
}

func TestBookingsKeepsCreationOrder(t *testing.T) {
	t.Parallel()

	s := New(nil)

	names := []string{"a", "b", "c", "d"}
	for _, n := range names {
		_, err := s.CreateBooking(models.BookingInput{Name: n})
		require.NoError(t, err)
	}

	bookings, err := s.Bookings()
	require.NoError(t, err)
	require.Len(t, bookings, len(names))

	for i, b := range bookings {
		assert.Equal(t, i+1, b.ID)
		assert.Equal(t, names[i], b.Name)
	}
}

func TestBookingsReturnsCopy(t *testing.T) {
	t.Parallel()

	s := New([]models.Booking{{Name: "Seed"}})

	bookings, err := s.Bookings()
	require.NoError(t, err)
	bookings[0].Name = "changed"

	stored, err := s.Booking(1)
	require.NoError(t, err)
	assert.Equal(t, "Seed", stored.Name)
}

func TestEmptyStoreBookingsNotNil(t *testing.T) {
	t.Parallel()

	bookings, err := New(nil).Bookings()
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestNewRenumbersSeed(t *testing.T) {
	t.Parallel()

	s := New([]models.Booking{
		{ID: 42, Name: "first"},
		{ID: 7, Name: "second"},
	})

	first, err := s.Booking(1)
	require.NoError(t, err)
	assert.Equal(t, "first", first.Name)

	second, err := s.Booking(2)
	require.NoError(t, err)
	assert.Equal(t, "second", second.Name)

	_, err = s.Booking(42)
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
}

func TestBookingRoundTrip(t *testing.T) {
	t.Parallel()

	s := New(nil)

	created, err := s.CreateBooking(models.BookingInput{
		Name:          "Bob",
		Hotel:         "Plaza",
		ArrivalDate:   "2024-03-10",
		DepartureDate: "2024-03-12",
	})
	require.NoError(t, err)

	fetched, err := s.Booking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestBookingNotFound(t *testing.T) {
	t.Parallel()

	s := New(nil)
	_, err := s.CreateBooking(models.BookingInput{Name: "Alice"})
	require.NoError(t, err)

	for _, id := range []int{0, -1, 2, 100} {
		booking, err := s.Booking(id)
		assert.ErrorIs(t, err, storage.ErrBookingNotFound)
		assert.Equal(t, models.Booking{}, booking)
	}
}

func TestConcurrentCreateBooking(t *testing.T) {
	t.Parallel()

	s := New(nil)

	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.CreateBooking(models.BookingInput{})
		}()
	}
	wg.Wait()

	bookings, err := s.Bookings()
	require.NoError(t, err)
	require.Len(t, bookings, n)

	for i, b := range bookings {
		assert.Equal(t, i+1, b.ID)
	}
}

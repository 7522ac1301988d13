package graph

import (
	"errors"
	"log/slog"

	"reservations/internal/lib/logger/sl"
	"reservations/internal/metrics"
	"reservations/internal/models"
	"reservations/internal/storage"

	"github.com/graphql-go/graphql"
)

type resolver struct {
	log   *slog.Logger
	store BookingStore
}

func (r *resolver) bookings(_ graphql.ResolveParams) (interface{}, error) {
	const op = "graph.resolver.bookings"

	log := r.log.With(slog.String("op", op))

	bookings, err := r.store.Bookings()
	if err != nil {
		log.Error("failed to get bookings", sl.Err(err))
		return nil, errors.New("failed to get bookings")
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}

	log.Debug("bookings resolved", slog.Int("count", len(bookings)))

	return bookings, nil
}

func (r *resolver) booking(p graphql.ResolveParams) (interface{}, error) {
	const op = "graph.resolver.booking"

	log := r.log.With(slog.String("op", op))

	idInput, _ := p.Args["idInput"].(map[string]interface{})
	id, ok := idInput["id"].(int)
	if !ok {
		return nil, errors.New("idInput.id must be an integer")
	}

	log = log.With(slog.Int("id", id))

	booking, err := r.store.Booking(id)
	if errors.Is(err, storage.ErrBookingNotFound) {
		log.Info("booking not found")
		metrics.IncBookingNotFound(metrics.ProtocolGraphQL)
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		log.Error("failed to get booking", sl.Err(err))
		return nil, errors.New("failed to get booking")
	}

	return booking, nil
}

func (r *resolver) createBooking(p graphql.ResolveParams) (interface{}, error) {
	const op = "graph.resolver.createBooking"

	log := r.log.With(slog.String("op", op))

	raw, _ := p.Args["bookingInput"].(map[string]interface{})

	in := models.BookingInput{
		Name:          stringArg(raw, "name"),
		Hotel:         stringArg(raw, "hotel"),
		ArrivalDate:   stringArg(raw, "arrivalDate"),
		DepartureDate: stringArg(raw, "departureDate"),
	}

	booking, err := r.store.CreateBooking(in)
	if err != nil {
		log.Error("failed to create booking", sl.Err(err))
		return nil, errors.New("failed to create booking")
	}

	metrics.IncBookingCreated(metrics.ProtocolGraphQL)

	log.Info("booking created", slog.Int("id", booking.ID))

	return booking, nil
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

package createReservation

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"reservations/internal/lib/api/response"
	"reservations/internal/lib/logger/sl"
	"reservations/internal/metrics"
	"reservations/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationCreator
type ReservationCreator interface {
	CreateBooking(in models.BookingInput) (models.Booking, error)
}

// New decodes an optional JSON body; missing fields fall back to the
// placeholder defaults applied by the store.
func New(log *slog.Logger, reservationCreator ReservationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.createReservation.New"

		log := log.With(slog.String("op", op))

		var req models.BookingInput

		err := render.DecodeJSON(r.Body, &req)
		if errors.Is(err, io.EOF) {
			log.Info("request body is empty")
		} else if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		booking, err := reservationCreator.CreateBooking(req)
		if err != nil {
			log.Error("failed to create reservation", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create reservation"))
			return
		}

		metrics.IncBookingCreated(metrics.ProtocolREST)

		log.Info("reservation created", slog.Int("id", booking.ID))

		render.JSON(w, r, booking)
	}
}

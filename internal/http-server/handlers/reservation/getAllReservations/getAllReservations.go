package getAllReservations

import (
	"log/slog"
	"net/http"

	"reservations/internal/lib/api/response"
	"reservations/internal/lib/logger/sl"
	"reservations/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationsGetter
type ReservationsGetter interface {
	Bookings() ([]models.Booking, error)
}

func New(log *slog.Logger, reservationsGetter ReservationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.getAllReservations.New"

		log := log.With(slog.String("op", op))

		bookings, err := reservationsGetter.Bookings()
		if err != nil {
			log.Error("failed to get reservations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get reservations"))
			return
		}

		log.Info("reservations retrieved successfully", slog.Int("count", len(bookings)))

		responseOK(w, r, bookings)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.Booking) {
	if bookings == nil {
		bookings = []models.Booking{}
	}

	render.JSON(w, r, bookings)
}

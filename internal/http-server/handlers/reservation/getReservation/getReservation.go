package getReservation

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"reservations/internal/lib/api/response"
	"reservations/internal/lib/logger/sl"
	"reservations/internal/metrics"
	"reservations/internal/models"
	"reservations/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationGetter
type ReservationGetter interface {
	Booking(id int) (models.Booking, error)
}

func New(log *slog.Logger, reservationGetter ReservationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.getReservation.New"

		log := log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("reservation id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("reservation id is required"))
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			log.Error("invalid reservation id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid reservation id format"))
			return
		}

		log = log.With(slog.Int("id", id))

		booking, err := reservationGetter.Booking(id)
		if errors.Is(err, storage.ErrBookingNotFound) {
			log.Info("reservation not found")
			metrics.IncBookingNotFound(metrics.ProtocolREST)
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("reservation not found"))
			return
		}
		if err != nil {
			log.Error("failed to get reservation", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get reservation"))
			return
		}

		log.Info("reservation retrieved successfully")

		render.JSON(w, r, booking)
	}
}

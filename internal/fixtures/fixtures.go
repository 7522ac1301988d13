package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"reservations/internal/models"
)

//go:embed bookings.yaml
var embedded []byte

// Load returns the seed bookings from path, or the embedded set when path
// is empty. Ids are assigned 1..n in file order.
func Load(path string) ([]models.Booking, error) {
	const op = "fixtures.Load"

	data := embedded
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	bookings, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func Parse(data []byte) ([]models.Booking, error) {
	var inputs []models.BookingInput
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	bookings := make([]models.Booking, 0, len(inputs))
	for i, in := range inputs {
		in = in.WithDefaults()
		bookings = append(bookings, models.Booking{
			ID:            i + 1,
			Name:          in.Name,
			Hotel:         in.Hotel,
			ArrivalDate:   in.ArrivalDate,
			DepartureDate: in.DepartureDate,
		})
	}

	return bookings, nil
}

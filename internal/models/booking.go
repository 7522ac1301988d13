package models

const (
	DefaultName          = "[name]"
	DefaultHotel         = "[hotel]"
	DefaultArrivalDate   = "[date arrive]"
	DefaultDepartureDate = "[date depart]"
)

type Booking struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Hotel         string `json:"hotel"`
	ArrivalDate   string `json:"arrivalDate"`
	DepartureDate string `json:"departureDate"`
}

type BookingInput struct {
	Name          string `json:"name" yaml:"name"`
	Hotel         string `json:"hotel" yaml:"hotel"`
	ArrivalDate   string `json:"arrivalDate" yaml:"arrivalDate"`
	DepartureDate string `json:"departureDate" yaml:"departureDate"`
}

// WithDefaults replaces every empty field with its placeholder literal.
func (in BookingInput) WithDefaults() BookingInput {
	if in.Name == "" {
		in.Name = DefaultName
	}
	if in.Hotel == "" {
		in.Hotel = DefaultHotel
	}
	if in.ArrivalDate == "" {
		in.ArrivalDate = DefaultArrivalDate
	}
	if in.DepartureDate == "" {
		in.DepartureDate = DefaultDepartureDate
	}

	return in
}

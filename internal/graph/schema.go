package graph

import (
	"log/slog"

	"reservations/internal/models"

	"github.com/graphql-go/graphql"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStore
type BookingStore interface {
	Bookings() ([]models.Booking, error)
	Booking(id int) (models.Booking, error)
	CreateBooking(in models.BookingInput) (models.Booking, error)
}

func bookingField(t graphql.Output, get func(models.Booking) interface{}) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(t),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			switch b := p.Source.(type) {
			case models.Booking:
				return get(b), nil
			case *models.Booking:
				return get(*b), nil
			}
			return nil, nil
		},
	}
}

// NewSchema builds the RootQuery/RootMutation schema over store.
func NewSchema(log *slog.Logger, store BookingStore) (graphql.Schema, error) {
	r := &resolver{log: log, store: store}

	bookingType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Booking",
		Fields: graphql.Fields{
			"id":            bookingField(graphql.Int, func(b models.Booking) interface{} { return b.ID }),
			"name":          bookingField(graphql.String, func(b models.Booking) interface{} { return b.Name }),
			"hotel":         bookingField(graphql.String, func(b models.Booking) interface{} { return b.Hotel }),
			"arrivalDate":   bookingField(graphql.String, func(b models.Booking) interface{} { return b.ArrivalDate }),
			"departureDate": bookingField(graphql.String, func(b models.Booking) interface{} { return b.DepartureDate }),
		},
	})

	bookingInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "BookingInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"hotel":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"arrivalDate":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"departureDate": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	bookingIDInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "BookingIdInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"bookings": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(bookingType))),
				Resolve: r.bookings,
			},
			"booking": &graphql.Field{
				Type: graphql.NewNonNull(bookingType),
				Args: graphql.FieldConfigArgument{
					"idInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(bookingIDInputType)},
				},
				Resolve: r.booking,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootMutation",
		Fields: graphql.Fields{
			"createBooking": &graphql.Field{
				Type: bookingType,
				Args: graphql.FieldConfigArgument{
					"bookingInput": &graphql.ArgumentConfig{Type: bookingInputType},
				},
				Resolve: r.createBooking,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

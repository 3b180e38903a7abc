//go:build unit

package builder

import (
	"time"

	"tripflow/internal/domain/booking"
	"tripflow/internal/domain/trip"
)

type TripBuilder struct {
	Destination string
	Origin      string
	StartDate   time.Time
	EndDate     time.Time
	Passengers  int
	BudgetCents int64
}

func NewTripBuilder() *TripBuilder {
	return &TripBuilder{
		Destination: "Paris",
		Origin:      "London",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Passengers:  2,
		BudgetCents: 300_000,
	}
}

func (b *TripBuilder) With(mutate func(*TripBuilder)) *TripBuilder {
	mutate(b)
	return b
}

func (b *TripBuilder) BuildDomain() (trip.Details, error) {
	return trip.NewDetails(b.Destination, b.Origin, b.StartDate, b.EndDate, b.Passengers, b.BudgetCents)
}

// MustBuild panics on invalid defaults; only use it with values known good.
func (b *TripBuilder) MustBuild() trip.Details {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return d
}

type OptionsBuilder struct {
	Flights []booking.Flight
	Hotels  []booking.Hotel
}

func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{
		Flights: []booking.Flight{
			{
				Airline:       "Air France",
				FlightNumber:  "AF123",
				Price:         booking.MoneyFromDollars(450),
				DepartureTime: "09:15",
				ArrivalTime:   "11:30",
				Duration:      "2h 15m",
				Stops:         0,
				CabinClass:    "Economy",
			},
			{
				Airline:       "British Airways",
				FlightNumber:  "BA456",
				Price:         booking.MoneyFromDollars(325.50),
				DepartureTime: "14:00",
				ArrivalTime:   "16:40",
				Duration:      "2h 40m",
				Stops:         1,
				CabinClass:    "Economy",
			},
		},
		Hotels: []booking.Hotel{
			{
				Name:          "Hotel Lumiere",
				PricePerNight: booking.MoneyFromDollars(180),
				Rating:        4.6,
				ReviewCount:   1240,
				Amenities:     []string{"wifi", "breakfast"},
				Location:      "1st arrondissement",
			},
			{
				Name:          "Le Petit Jardin",
				PricePerNight: booking.MoneyFromDollars(95.75),
				Rating:        4.1,
				ReviewCount:   312,
				Amenities:     []string{"wifi"},
				Location:      "Montmartre",
			},
		},
	}
}

func (b *OptionsBuilder) With(mutate func(*OptionsBuilder)) *OptionsBuilder {
	mutate(b)
	return b
}

func (b *OptionsBuilder) Build() booking.OptionSet {
	return booking.OptionSet{Flights: b.Flights, Hotels: b.Hotels}
}

func (b *OptionsBuilder) BuildEmpty() booking.OptionSet {
	return booking.OptionSet{Flights: []booking.Flight{}, Hotels: []booking.Hotel{}}
}

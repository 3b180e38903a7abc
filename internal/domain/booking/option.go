package booking

// Flight and Hotel are read-only option records sourced from the backend per
// lookup. They live only for the active session.

type Flight struct {
	Airline       string
	FlightNumber  string
	Price         Money // per person
	DepartureTime string
	ArrivalTime   string
	Duration      string
	Stops         int
	CabinClass    string
}

type Hotel struct {
	Name          string
	PricePerNight Money
	Rating        float64
	ReviewCount   int
	Amenities     []string
	Location      string
}

// OptionSet holds one lookup's results. Empty slices are valid: the view
// renders an empty-state message and the proceed action stays unavailable.
type OptionSet struct {
	Flights []Flight
	Hotels  []Hotel
}

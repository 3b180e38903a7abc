package trip

import (
	"strings"
	"time"

	"tripflow/internal/pkg/errs"
)

// DateLayout is the wire format the backend uses for travel dates.
const DateLayout = "2006-01-02"

const (
	MinPassengers = 1
	MaxPassengers = 10
)

// Details is the normalized record describing a prospective trip. It is
// immutable: mutation happens only by replacing the whole value.
type Details struct {
	destination string
	origin      string
	startDate   time.Time
	endDate     time.Time
	passengers  int
	budgetCents int64
}

func NewDetails(destination, origin string, startDate, endDate time.Time, passengers int, budgetCents int64) (Details, error) {
	if strings.TrimSpace(destination) == "" {
		return Details{}, errs.Wrap(errs.ErrValidation, "destination is required")
	}
	if startDate.After(endDate) {
		return Details{}, errs.ErrInvalidDateRange
	}
	if passengers < MinPassengers || passengers > MaxPassengers {
		return Details{}, errs.ErrInvalidPassengers
	}
	if budgetCents < 0 {
		return Details{}, errs.ErrNegativeBudget
	}
	return Details{
		destination: destination,
		origin:      origin,
		startDate:   truncateToDay(startDate),
		endDate:     truncateToDay(endDate),
		passengers:  passengers,
		budgetCents: budgetCents,
	}, nil
}

// WithOrigin returns a copy with the origin replaced.
func (d Details) WithOrigin(origin string) Details {
	d.origin = origin
	return d
}

func (d Details) Destination() string { return d.destination }
func (d Details) Origin() string      { return d.origin }
func (d Details) StartDate() time.Time {
	return d.startDate
}
func (d Details) EndDate() time.Time { return d.endDate }
func (d Details) Passengers() int    { return d.passengers }
func (d Details) BudgetCents() int64 { return d.budgetCents }

func (d Details) HasOrigin() bool { return d.origin != "" }

// Nights is the hotel-night count for the stay. A same-day or inverted range
// still bills one night: nights is never below 1.
func (d Details) Nights() int {
	days := int(d.endDate.Sub(d.startDate).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// DurationDays is the itinerary length in days, inclusive of the start day.
func (d Details) DurationDays() int {
	return d.Nights() + 1
}

func (d Details) TripName() string {
	return "Trip to " + d.destination
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

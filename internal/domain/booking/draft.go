package booking

import (
	"regexp"
	"strings"

	"tripflow/internal/domain/trip"
	"tripflow/internal/pkg/errs"
)

// Accepts the basic name@host.tld shape; the backend does the real validation.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Draft is the in-progress booking selection state. It is created when option
// selection opens and destroyed on successful submission or reset.
type Draft struct {
	details         trip.Details
	options         OptionSet
	selectedFlight  *int
	selectedHotel   *int
	passengers      int
	nights          int
	contactEmail    string
	specialRequests string
}

func NewDraft(details trip.Details, options OptionSet) *Draft {
	return &Draft{
		details:    details,
		options:    options,
		passengers: details.Passengers(),
		nights:     details.Nights(),
	}
}

func (d *Draft) Details() trip.Details { return d.details }
func (d *Draft) Options() OptionSet { return d.options }
func (d *Draft) SelectedFlight() *int { return copyIndex(d.selectedFlight) }
func (d *Draft) SelectedHotel() *int { return copyIndex(d.selectedHotel) }
func (d *Draft) Passengers() int { return d.passengers }
func (d *Draft) Nights() int { return d.nights }
func (d *Draft) ContactEmail() string { return d.contactEmail }
func (d *Draft) SpecialRequests() string { return d.specialRequests }

// SelectFlight is idempotent: re-selecting the same index is a no-op.
func (d *Draft) SelectFlight(index int) error {
	if index < 0 || index >= len(d.options.Flights) {
		return errs.ErrOptionOutOfRange
	}
	if d.selectedFlight != nil && *d.selectedFlight == index {
		return nil
	}
	d.selectedFlight = &index
	return nil
}

func (d *Draft) SelectHotel(index int) error {
	if index < 0 || index >= len(d.options.Hotels) {
		return errs.ErrOptionOutOfRange
	}
	if d.selectedHotel != nil && *d.selectedHotel == index {
		return nil
	}
	d.selectedHotel = &index
	return nil
}

func (d *Draft) SetNights(nights int) error {
	if nights < 1 {
		return errs.ErrInvalidNights
	}
	d.nights = nights
	return nil
}

func (d *Draft) SetPassengers(passengers int) error {
	if passengers < trip.MinPassengers || passengers > trip.MaxPassengers {
		return errs.ErrInvalidPassengers
	}
	d.passengers = passengers
	return nil
}

func (d *Draft) SetContact(email, specialRequests string) error {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return errs.ErrInvalidEmail
	}
	d.contactEmail = email
	d.specialRequests = strings.TrimSpace(specialRequests)
	return nil
}

// Submittable reports whether the draft can be sent: both options chosen and a
// plausible contact email captured.
func (d *Draft) Submittable() bool {
	return d.selectedFlight != nil && d.selectedHotel != nil && ValidEmail(d.contactEmail)
}

func (d *Draft) Flight() (Flight, bool) {
	if d.selectedFlight == nil {
		return Flight{}, false
	}
	return d.options.Flights[*d.selectedFlight], true
}

func (d *Draft) Hotel() (Hotel, bool) {
	if d.selectedHotel == nil {
		return Hotel{}, false
	}
	return d.options.Hotels[*d.selectedHotel], true
}

// Quote is the running total for the current selections:
// flight price × passengers + hotel price per night × nights.
// Unselected parts contribute zero so the view can show a partial total.
func (d *Draft) Quote() Money {
	var total Money
	if f, ok := d.Flight(); ok {
		total = total.Add(f.Price.Mul(d.passengers))
	}
	if h, ok := d.Hotel(); ok {
		total = total.Add(h.PricePerNight.Mul(d.nights))
	}
	return total
}

func copyIndex(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

package booking

import "time"

// Status values are server-owned; this side never mutates them directly, it
// requests transitions (cancel, confirm) and re-fetches.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Projection is the read-only view of a server-side booking.
type Projection struct {
	ID              string
	TripName        string
	Destination     string
	StartDate       time.Time
	EndDate         time.Time
	TotalPrice      Money
	Passengers      int
	Status          Status
	PaymentStatus   PaymentStatus
	Email           string
	SpecialRequests string
	CreatedAt       *time.Time
	ConfirmedAt     *time.Time
	CancelledAt     *time.Time
}

// Cancellable mirrors the rule the views apply: a cancel affordance is shown
// only for bookings that are neither cancelled nor already paid.
func (p Projection) Cancellable() bool {
	return p.Status != StatusCancelled && p.PaymentStatus != PaymentPaid
}

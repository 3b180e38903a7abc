package response

import (
	"time"

	"tripflow/internal/domain/booking"
	"tripflow/internal/domain/trip"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              string     `json:"id"`
	TripName        string     `json:"trip_name"`
	Destination     string     `json:"destination"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	TotalPrice      float64    `json:"total_price"`
	Passengers      int        `json:"passengers"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"payment_status"`
	Email           string     `json:"email,omitempty"`
	SpecialRequests string     `json:"special_requests,omitempty"`
	Cancellable     bool       `json:"cancellable"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
}

func FromProjection(p booking.Projection) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, &p)
	resp.StartDate = p.StartDate.Format(trip.DateLayout)
	resp.EndDate = p.EndDate.Format(trip.DateLayout)
	resp.TotalPrice = p.TotalPrice.Dollars()
	resp.Status = string(p.Status)
	resp.PaymentStatus = string(p.PaymentStatus)
	resp.Cancellable = p.Cancellable()
	return &resp
}

func FromProjections(ps []booking.Projection) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProjection(p))
	}
	return out
}

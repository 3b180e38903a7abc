package response

import (
	"time"

	"tripflow/internal/domain/booking"
	"tripflow/internal/domain/trip"
	"tripflow/internal/workflow"

	"github.com/jinzhu/copier"
)

// StateResponse is the single view the UI renders: a state discriminator plus
// the payload relevant to that state.
type StateResponse struct {
	State      string             `json:"state"`
	Messages   []MessageResponse  `json:"messages"`
	Notices    []NoticeResponse   `json:"notices,omitempty"`
	Trip       *TripResponse      `json:"trip,omitempty"`
	Selection  *SelectionResponse `json:"selection,omitempty"`
	Failure    *FailureResponse   `json:"failure,omitempty"`
	Checkout   *CheckoutResponse  `json:"checkout,omitempty"`
}

type MessageResponse struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

type NoticeResponse struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type TripResponse struct {
	Destination string  `json:"destination"`
	Origin      string  `json:"origin,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Passengers  int     `json:"passengers"`
	Budget      float64 `json:"budget"`
}

type FlightResponse struct {
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flight_number"`
	Price         float64 `json:"price"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration,omitempty"`
	Stops         int     `json:"stops"`
	CabinClass    string  `json:"class"`
}

type HotelResponse struct {
	Name          string   `json:"name"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Amenities     []string `json:"amenities"`
	Location      string   `json:"location"`
}

type SelectionResponse struct {
	Flights        []FlightResponse `json:"flights"`
	Hotels         []HotelResponse  `json:"hotels"`
	SelectedFlight *int             `json:"selected_flight,omitempty"`
	SelectedHotel  *int             `json:"selected_hotel,omitempty"`
	Passengers     int              `json:"passengers"`
	Nights         int              `json:"nights"`
	Total          float64          `json:"total"`
	Submittable    bool             `json:"submittable"`
}

type FailureResponse struct {
	Step      string `json:"step"`
	Message   string `json:"message"`
	Retry     string `json:"retry"`
	BookingID string `json:"booking_id,omitempty"`
}

type CheckoutResponse struct {
	BookingID   string `json:"booking_id"`
	CheckoutURL string `json:"checkout_url"`
}

func FromSnapshot(snap workflow.Snapshot) *StateResponse {
	resp := &StateResponse{
		State:    string(snap.State),
		Messages: make([]MessageResponse, 0, len(snap.Transcript)),
	}
	for _, m := range snap.Transcript {
		resp.Messages = append(resp.Messages, MessageResponse{
			Role:    string(m.Role),
			Content: m.Content,
			SentAt:  m.SentAt,
		})
	}
	for _, n := range snap.Notices {
		resp.Notices = append(resp.Notices, NoticeResponse{Level: string(n.Level), Message: n.Message})
	}
	if snap.Details != nil {
		resp.Trip = fromDetails(*snap.Details)
	}
	if snap.State == workflow.StateSelectingOptions {
		resp.Selection = fromSelection(snap)
	}
	if snap.Failure != nil {
		resp.Failure = fromFailure(*snap.Failure)
	}
	if snap.State == workflow.StateRedirecting {
		resp.Checkout = &CheckoutResponse{BookingID: snap.BookingID, CheckoutURL: snap.CheckoutURL}
	}
	return resp
}

func fromDetails(d trip.Details) *TripResponse {
	return &TripResponse{
		Destination: d.Destination(),
		Origin:      d.Origin(),
		StartDate:   d.StartDate().Format(trip.DateLayout),
		EndDate:     d.EndDate().Format(trip.DateLayout),
		Passengers:  d.Passengers(),
		Budget:      booking.NewMoney(d.BudgetCents()).Dollars(),
	}
}

func fromSelection(snap workflow.Snapshot) *SelectionResponse {
	sel := &SelectionResponse{
		Flights:        make([]FlightResponse, 0, len(snap.Options.Flights)),
		Hotels:         make([]HotelResponse, 0, len(snap.Options.Hotels)),
		SelectedFlight: snap.SelectedFlight,
		SelectedHotel:  snap.SelectedHotel,
		Passengers:     snap.Passengers,
		Nights:         snap.Nights,
		Total:          booking.NewMoney(snap.TotalCents).Dollars(),
		Submittable:    snap.Submittable,
	}
	for _, f := range snap.Options.Flights {
		sel.Flights = append(sel.Flights, fromFlight(f))
	}
	for _, h := range snap.Options.Hotels {
		sel.Hotels = append(sel.Hotels, fromHotel(h))
	}
	return sel
}

func fromFlight(f booking.Flight) FlightResponse {
	var resp FlightResponse
	_ = copier.Copy(&resp, &f)
	resp.Price = f.Price.Dollars()
	return resp
}

func fromHotel(h booking.Hotel) HotelResponse {
	var resp HotelResponse
	_ = copier.Copy(&resp, &h)
	resp.PricePerNight = h.PricePerNight.Dollars()
	return resp
}

func fromFailure(f workflow.Failure) *FailureResponse {
	retry := "retry"
	if f.Step == workflow.StepCheckout && f.BookingID != "" {
		// The booking exists and stays pending/unpaid; only payment retries.
		retry = "retry-payment"
	}
	return &FailureResponse{
		Step:      string(f.Step),
		Message:   f.Message,
		Retry:     retry,
		BookingID: f.BookingID,
	}
}

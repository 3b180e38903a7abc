package response

import (
	"tripflow/internal/domain/trip"
	"tripflow/internal/gateway"
)

type ItineraryResponse struct {
	ID           int64    `json:"id"`
	TripName     string   `json:"trip_name"`
	Destination  string   `json:"destination"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	DurationDays int      `json:"duration_days"`
	Budget       *float64 `json:"budget,omitempty"`
	Description  string   `json:"description,omitempty"`
}

func FromItinerary(it gateway.Itinerary) *ItineraryResponse {
	resp := &ItineraryResponse{
		ID:           it.ID,
		TripName:     it.TripName,
		Destination:  it.Destination,
		StartDate:    it.StartDate.Format(trip.DateLayout),
		EndDate:      it.EndDate.Format(trip.DateLayout),
		DurationDays: it.DurationDays,
		Description:  it.Description,
	}
	if it.Budget != nil {
		dollars := it.Budget.Dollars()
		resp.Budget = &dollars
	}
	return resp
}

func FromItineraries(its []gateway.Itinerary) []*ItineraryResponse {
	out := make([]*ItineraryResponse, 0, len(its))
	for _, it := range its {
		out = append(out, FromItinerary(it))
	}
	return out
}

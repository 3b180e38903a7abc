package request

type SelectOptionRequest struct {
	Index *int `json:"index" binding:"required,min=0"`
}

type SetNightsRequest struct {
	Nights *int `json:"nights" binding:"required,min=1"`
}

type SetPassengersRequest struct {
	Passengers *int `json:"passengers" binding:"required,min=1,max=10"`
}

type SubmitBookingRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

func (r SubmitBookingRequest) GetSpecialRequests() string {
	if r.SpecialRequests == nil {
		return ""
	}
	return *r.SpecialRequests
}

package gateway

// Wire shapes for the travel-planning backend. The backend wraps every
// response in an envelope carrying a status discriminator and an optional
// error message.

type envelope struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type planRequest struct {
	Query string `json:"query"`
}

type planResponse struct {
	envelope
	Response string `json:"response"`
}

type preferencesResponse struct {
	envelope
	Preferences map[string]any `json:"preferences"`
}

type itineraryRequest struct {
	TripName      string  `json:"trip_name"`
	Destination   string  `json:"destination"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DurationDays  int     `json:"duration_days"`
	Budget        float64 `json:"budget"`
	Description   string  `json:"description"`
	ItineraryData string  `json:"itinerary_data"`
}

type itineraryCreateResponse struct {
	envelope
	ID int64 `json:"id"`
}

type itineraryPayload struct {
	ID           int64    `json:"id"`
	TripName     string   `json:"trip_name"`
	Destination  string   `json:"destination"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	DurationDays int      `json:"duration_days"`
	Budget       *float64 `json:"budget,omitempty"`
	Description  string   `json:"description,omitempty"`
}

type itineraryListResponse struct {
	envelope
	Itineraries []itineraryPayload `json:"itineraries"`
}

type tripDetailsPayload struct {
	Destination string  `json:"destination"`
	Origin      string  `json:"origin"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Passengers  int     `json:"passengers"`
	Budget      float64 `json:"budget"`
}

type flightPayload struct {
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flight_number"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price"`
	Stops         int     `json:"stops"`
	CabinClass    string  `json:"class"`
}

type hotelPayload struct {
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"`
	PricePerNight float64  `json:"price_per_night"`
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
	Reviews       int      `json:"reviews"`
}

type bookingOptionsRequest struct {
	TripDetails tripDetailsPayload `json:"trip_details"`
}

type bookingOptionsResponse struct {
	envelope
	TripDetails tripDetailsPayload `json:"trip_details"`
	Flights     []flightPayload    `json:"flights"`
	Hotels      []hotelPayload     `json:"hotels"`
}

type createBookingRequest struct {
	TripID          string         `json:"trip_id"`
	TripName        string         `json:"trip_name"`
	Destination     string         `json:"destination"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
	TotalPrice      float64        `json:"total_price"`
	Passengers      int            `json:"passengers"`
	Email           string         `json:"email"`
	FlightDetails   map[string]any `json:"flight_details"`
	HotelDetails    map[string]any `json:"hotel_details"`
	SpecialRequests string         `json:"special_requests,omitempty"`
}

type createBookingResponse struct {
	envelope
	BookingID string `json:"booking_id"`
}

type bookingPayload struct {
	ID              string   `json:"id"`
	BookingID       string   `json:"booking_id,omitempty"`
	TripName        string   `json:"trip_name"`
	Destination     string   `json:"destination"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	BasePrice       *float64 `json:"base_price,omitempty"`
	TotalPrice      float64  `json:"total_price"`
	Passengers      int      `json:"passengers"`
	Status          string   `json:"status"`
	PaymentStatus   string   `json:"payment_status"`
	Email           string   `json:"email,omitempty"`
	SpecialRequests string   `json:"special_requests,omitempty"`
	CreatedAt       *string  `json:"created_at,omitempty"`
	ConfirmedAt     *string  `json:"confirmed_at,omitempty"`
	CancelledAt     *string  `json:"cancelled_at,omitempty"`
}

type bookingListResponse struct {
	envelope
	Bookings []bookingPayload `json:"bookings"`
}

type bookingGetResponse struct {
	envelope
	Booking bookingPayload `json:"booking"`
}

type checkoutSessionRequest struct {
	BookingID string   `json:"booking_id"`
	Amount    *float64 `json:"amount,omitempty"`
}

type checkoutSessionResponse struct {
	envelope
	CheckoutURL string `json:"checkout_url"`
}

type signInRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	envelope
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

// Package gateway is the typed client for the travel-planning backend. It
// normalizes every call into either data or a kinded *Error; it never retries
// and never touches presentation state.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"tripflow/internal/domain/booking"
	"tripflow/internal/domain/trip"
	"tripflow/internal/pkg/config"
)

type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	logger    *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

type authTokenKey struct{}

// WithAuthToken attaches the backend auth token for all calls made under ctx.
func WithAuthToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, authTokenKey{}, token)
}

func authTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(authTokenKey{}).(string)
	return token
}

// Plan sends one chat turn and returns the assistant's reply text.
func (c *Client) Plan(ctx context.Context, query string) (string, error) {
	resp, err := doJSON[planResponse](ctx, c, http.MethodPost, "/api/plan", planRequest{Query: query})
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

// ResetMemory clears the planning agent's conversation memory so a new chat
// starts from a blank context.
func (c *Client) ResetMemory(ctx context.Context) error {
	_, err := doJSON[envelope](ctx, c, http.MethodPost, "/api/reset", nil)
	return err
}

// Preferences returns the preferences the planning agent has saved for the
// current user, as an opaque key/value map.
func (c *Client) Preferences(ctx context.Context) (map[string]any, error) {
	resp, err := doJSON[preferencesResponse](ctx, c, http.MethodGet, "/api/preferences", nil)
	if err != nil {
		return nil, err
	}
	return resp.Preferences, nil
}

// Itinerary is a saved trip plan, distinct from a confirmed paid booking.
type Itinerary struct {
	ID           int64
	TripName     string
	Destination  string
	StartDate    time.Time
	EndDate      time.Time
	DurationDays int
	Budget       *booking.Money
	Description  string
}

func (c *Client) CreateItinerary(ctx context.Context, details trip.Details, description string) (int64, error) {
	req := itineraryRequest{
		TripName:      details.TripName(),
		Destination:   details.Destination(),
		StartDate:     details.StartDate().Format(trip.DateLayout),
		EndDate:       details.EndDate().Format(trip.DateLayout),
		DurationDays:  details.DurationDays(),
		Budget:        booking.NewMoney(details.BudgetCents()).Dollars(),
		Description:   description,
		ItineraryData: "",
	}
	resp, err := doJSON[itineraryCreateResponse](ctx, c, http.MethodPost, "/api/itineraries", req)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *Client) ListItineraries(ctx context.Context) ([]Itinerary, error) {
	resp, err := doJSON[itineraryListResponse](ctx, c, http.MethodGet, "/api/itineraries", nil)
	if err != nil {
		return nil, err
	}
	out := make([]Itinerary, 0, len(resp.Itineraries))
	for _, p := range resp.Itineraries {
		out = append(out, toItinerary(p))
	}
	return out, nil
}

func (c *Client) DeleteItinerary(ctx context.Context, id int64) error {
	_, err := doJSON[envelope](ctx, c, http.MethodDelete, fmt.Sprintf("/api/itineraries/%d", id), nil)
	return err
}

// BookingOptions fetches flight and hotel candidates for the given trip.
func (c *Client) BookingOptions(ctx context.Context, details trip.Details) (booking.OptionSet, error) {
	req := bookingOptionsRequest{
		TripDetails: tripDetailsPayload{
			Destination: details.Destination(),
			Origin:      details.Origin(),
			StartDate:   details.StartDate().Format(trip.DateLayout),
			EndDate:     details.EndDate().Format(trip.DateLayout),
			Passengers:  details.Passengers(),
			Budget:      booking.NewMoney(details.BudgetCents()).Dollars(),
		},
	}
	resp, err := doJSON[bookingOptionsResponse](ctx, c, http.MethodPost, "/api/booking-options", req)
	if err != nil {
		return booking.OptionSet{}, err
	}

	set := booking.OptionSet{
		Flights: make([]booking.Flight, 0, len(resp.Flights)),
		Hotels:  make([]booking.Hotel, 0, len(resp.Hotels)),
	}
	for _, f := range resp.Flights {
		set.Flights = append(set.Flights, booking.Flight{
			Airline:       f.Airline,
			FlightNumber:  f.FlightNumber,
			Price:         booking.MoneyFromDollars(f.Price),
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
			Duration:      f.Duration,
			Stops:         f.Stops,
			CabinClass:    f.CabinClass,
		})
	}
	for _, h := range resp.Hotels {
		set.Hotels = append(set.Hotels, booking.Hotel{
			Name:          h.Name,
			PricePerNight: booking.MoneyFromDollars(h.PricePerNight),
			Rating:        h.Rating,
			ReviewCount:   h.Reviews,
			Amenities:     h.Amenities,
			Location:      h.Location,
		})
	}
	return set, nil
}

type CreateBookingParams struct {
	TripID          string
	TripName        string
	Destination     string
	StartDate       time.Time
	EndDate         time.Time
	TotalPrice      booking.Money
	Passengers      int
	Email           string
	Flight          *booking.Flight
	Hotel           *booking.Hotel
	SpecialRequests string
}

func (c *Client) CreateBooking(ctx context.Context, params CreateBookingParams) (string, error) {
	req := createBookingRequest{
		TripID:          params.TripID,
		TripName:        params.TripName,
		Destination:     params.Destination,
		StartDate:       params.StartDate.Format(trip.DateLayout),
		EndDate:         params.EndDate.Format(trip.DateLayout),
		TotalPrice:      params.TotalPrice.Dollars(),
		Passengers:      params.Passengers,
		Email:           params.Email,
		FlightDetails:   flightDetailsMap(params.Flight),
		HotelDetails:    hotelDetailsMap(params.Hotel),
		SpecialRequests: params.SpecialRequests,
	}
	resp, err := doJSON[createBookingResponse](ctx, c, http.MethodPost, "/api/bookings", req)
	if err != nil {
		return "", err
	}
	if resp.BookingID == "" {
		return "", newError(KindMalformedResponse, http.StatusOK, "booking response missing booking_id", nil)
	}
	return resp.BookingID, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]booking.Projection, error) {
	resp, err := doJSON[bookingListResponse](ctx, c, http.MethodGet, "/api/bookings", nil)
	if err != nil {
		return nil, err
	}
	out := make([]booking.Projection, 0, len(resp.Bookings))
	for _, p := range resp.Bookings {
		out = append(out, toProjection(p))
	}
	return out, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (booking.Projection, error) {
	resp, err := doJSON[bookingGetResponse](ctx, c, http.MethodGet, "/api/bookings/"+id, nil)
	if err != nil {
		return booking.Projection{}, err
	}
	return toProjection(resp.Booking), nil
}

func (c *Client) ConfirmBooking(ctx context.Context, id string) error {
	_, err := doJSON[envelope](ctx, c, http.MethodPost, "/api/bookings/"+id+"/confirm", nil)
	return err
}

func (c *Client) CancelBooking(ctx context.Context, id string) error {
	_, err := doJSON[envelope](ctx, c, http.MethodDelete, "/api/bookings/"+id, nil)
	return err
}

// CreateCheckoutSession asks the backend for an external payment page URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, bookingID string, amount booking.Money) (string, error) {
	dollars := amount.Dollars()
	req := checkoutSessionRequest{BookingID: bookingID, Amount: &dollars}
	resp, err := doJSON[checkoutSessionResponse](ctx, c, http.MethodPost, "/api/create-checkout-session", req)
	if err != nil {
		return "", err
	}
	if resp.CheckoutURL == "" {
		return "", newError(KindMalformedResponse, http.StatusOK, "checkout response missing checkout_url", nil)
	}
	return resp.CheckoutURL, nil
}

type AuthResult struct {
	UserID string
	Name   string
	Email  string
	Token  string
}

func (c *Client) SignIn(ctx context.Context, email, password string, rememberMe bool) (AuthResult, error) {
	req := signInRequest{Email: email, Password: password, RememberMe: rememberMe}
	resp, err := doJSON[authResponse](ctx, c, http.MethodPost, "/api/auth/signin", req)
	if err != nil {
		return AuthResult{}, err
	}
	return toAuthResult(resp)
}

func (c *Client) SignUp(ctx context.Context, name, email, password string) (AuthResult, error) {
	req := signUpRequest{Name: name, Email: email, Password: password}
	resp, err := doJSON[authResponse](ctx, c, http.MethodPost, "/api/auth/signup", req)
	if err != nil {
		return AuthResult{}, err
	}
	return toAuthResult(resp)
}

func toAuthResult(resp *authResponse) (AuthResult, error) {
	if resp.Token == "" {
		return AuthResult{}, newError(KindMalformedResponse, http.StatusOK, "auth response missing token", nil)
	}
	return AuthResult{
		UserID: resp.User.ID,
		Name:   resp.User.Name,
		Email:  resp.User.Email,
		Token:  resp.Token,
	}, nil
}

func toItinerary(p itineraryPayload) Itinerary {
	it := Itinerary{
		ID:           p.ID,
		TripName:     p.TripName,
		Destination:  p.Destination,
		StartDate:    parseDate(p.StartDate),
		EndDate:      parseDate(p.EndDate),
		DurationDays: p.DurationDays,
		Description:  p.Description,
	}
	if p.Budget != nil {
		m := booking.MoneyFromDollars(*p.Budget)
		it.Budget = &m
	}
	return it
}

func toProjection(p bookingPayload) booking.Projection {
	id := p.ID
	if id == "" {
		id = p.BookingID
	}
	return booking.Projection{
		ID:              id,
		TripName:        p.TripName,
		Destination:     p.Destination,
		StartDate:       parseDate(p.StartDate),
		EndDate:         parseDate(p.EndDate),
		TotalPrice:      booking.MoneyFromDollars(p.TotalPrice),
		Passengers:      p.Passengers,
		Status:          booking.Status(p.Status),
		PaymentStatus:   booking.PaymentStatus(p.PaymentStatus),
		Email:           p.Email,
		SpecialRequests: p.SpecialRequests,
		CreatedAt:       parseTimestamp(p.CreatedAt),
		ConfirmedAt:     parseTimestamp(p.ConfirmedAt),
		CancelledAt:     parseTimestamp(p.CancelledAt),
	}
}

func parseDate(s string) time.Time {
	t, err := time.Parse(trip.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseTimestamp(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", trip.DateLayout} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t
		}
	}
	return nil
}

func flightDetailsMap(f *booking.Flight) map[string]any {
	if f == nil {
		return map[string]any{}
	}
	return map[string]any{
		"airline":        f.Airline,
		"flight_number":  f.FlightNumber,
		"departure_time": f.DepartureTime,
		"arrival_time":   f.ArrivalTime,
		"price":          f.Price.Dollars(),
		"stops":          f.Stops,
		"class":          f.CabinClass,
	}
}

func hotelDetailsMap(h *booking.Hotel) map[string]any {
	if h == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":            h.Name,
		"price_per_night": h.PricePerNight.Dollars(),
		"rating":          h.Rating,
		"location":        h.Location,
		"amenities":       h.Amenities,
	}
}

// doJSON performs one request and folds transport, HTTP and envelope failures
// into the gateway error taxonomy. Retrying is always the caller's decision.
func doJSON[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, newError(KindClientError, 0, "failed to encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, newError(KindClientError, 0, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := authTokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed", "method", method, "path", path, "error", err)
		return nil, newError(KindNetwork, 0, "backend unreachable", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindNetwork, resp.StatusCode, "failed to read response body", err)
	}

	c.logger.Debug("backend request completed",
		"method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	var env envelope
	envErr := json.Unmarshal(raw, &env)

	switch {
	case resp.StatusCode >= 500:
		msg := "backend error, try again"
		if envErr == nil && env.Error != "" {
			msg = env.Error
		}
		return nil, newError(KindServerError, resp.StatusCode, msg, nil)
	case resp.StatusCode >= 400:
		msg := http.StatusText(resp.StatusCode)
		if envErr == nil && env.Error != "" {
			msg = env.Error
		}
		return nil, newError(KindClientError, resp.StatusCode, msg, nil)
	}

	if envErr != nil {
		return nil, newError(KindMalformedResponse, resp.StatusCode, "response is not valid JSON", envErr)
	}
	if env.Status != "" && env.Status != "success" {
		msg := env.Error
		if msg == "" {
			msg = "backend reported failure"
		}
		return nil, newError(KindClientError, resp.StatusCode, msg, nil)
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, newError(KindMalformedResponse, resp.StatusCode, "response shape mismatch", err)
	}
	return &out, nil
}

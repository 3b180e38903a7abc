// Package workflow coordinates the multi-step booking process: trip detail
// acquisition, itinerary persistence, option lookup, selection, booking
// creation and payment hand-off. The controller is the only writer of the
// workflow state.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"tripflow/internal/domain/booking"
	"tripflow/internal/domain/trip"
	"tripflow/internal/extract"
	"tripflow/internal/gateway"
	"tripflow/internal/pkg/clock"
	"tripflow/internal/pkg/errs"
)

// Gateway is the slice of the backend client the workflow drives. Retries are
// the controller's decision; the gateway never retries on its own.
type Gateway interface {
	Plan(ctx context.Context, query string) (string, error)
	ResetMemory(ctx context.Context) error
	CreateItinerary(ctx context.Context, details trip.Details, description string) (int64, error)
	BookingOptions(ctx context.Context, details trip.Details) (booking.OptionSet, error)
	CreateBooking(ctx context.Context, params gateway.CreateBookingParams) (string, error)
	CreateCheckoutSession(ctx context.Context, bookingID string, amount booking.Money) (string, error)
	ConfirmBooking(ctx context.Context, id string) error
}

const (
	welcomeText = "Hello! I'm your travel planning assistant. Tell me where you'd like to go " +
		"and I'll help with flights, hotels, itineraries and bookings."
	chatClearedText   = "Chat cleared! Ready to help you plan your next adventure. Where would you like to go?"
	originRepromptText = "That doesn't look like a city name. Where will you be departing from?"
)

type Controller struct {
	mu        sync.Mutex
	gw        Gateway
	extractor *extract.Extractor
	clock     clock.Clock
	logger    *slog.Logger

	state      State
	transcript []Message
	notices    []Notice

	// busy latches while a transition-triggering request is in flight; a
	// second such action is rejected, not queued, to avoid duplicate bookings
	// and payment sessions.
	busy bool
	// generation increments whenever the owned state is superseded (reset,
	// dismissal, completion). Every async continuation re-checks it so a
	// late-arriving response never lands on a state that no longer issued it.
	generation uint64

	pending     extract.Result // partial extraction while awaiting an origin
	details     *trip.Details
	draft       *booking.Draft
	failure     *Failure
	bookingID   string
	totalPrice  booking.Money
	checkoutURL string

	// rememberedOrigin carries the origin of the last completed trip in this
	// session into the next extraction.
	rememberedOrigin string

	handledReturns map[string]bool
}

func NewController(gw Gateway, clk clock.Clock, logger *slog.Logger) *Controller {
	c := &Controller{
		gw:             gw,
		extractor:      extract.NewExtractor(),
		clock:          clk,
		logger:         logger,
		state:          StateIdle,
		handledReturns: make(map[string]bool),
	}
	c.transcript = append(c.transcript, Message{Role: RoleAssistant, Content: welcomeText, SentAt: clk.Now()})
	return c
}

// Snapshot returns a render-ready copy of the current state and drains
// pending one-shot notices.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// HandleChat processes one chat turn. In AwaitingOrigin the whole message is
// treated as the origin candidate; otherwise it is forwarded to the planning
// backend and the reply is scanned for trip details.
func (c *Controller) HandleChat(ctx context.Context, message string) (Snapshot, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return c.Snapshot(), errs.Wrap(errs.ErrValidation, "message must not be empty")
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return Snapshot{}, errs.ErrBusy
	}
	c.appendMessageLocked(RoleUser, message)

	if c.state == StateAwaitingOrigin {
		return c.handleOriginReplyLocked(ctx, message)
	}

	gen := c.beginLocked()
	c.mu.Unlock()

	reply, err := c.gw.Plan(ctx, message)

	c.mu.Lock()
	if !c.currentLocked(gen) {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	c.endLocked()
	if err != nil {
		// Chat-level failures surface in the transcript, not as a workflow
		// failure: no transition was promised yet.
		c.appendMessageLocked(RoleAssistant, "Error connecting to server: "+gateway.MessageOf(err))
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	c.appendMessageLocked(RoleAssistant, reply)

	result := c.extractor.Extract(reply, message, c.rememberedOrigin, c.clock.Now())
	if !result.HasDestination() {
		// Deliberate no-op: nothing trip-bearing in this turn.
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	if result.NeedsOrigin() {
		c.state = StateAwaitingOrigin
		c.pending = result
		c.appendMessageLocked(RoleAssistant,
			fmt.Sprintf("%s sounds great! Where will you be departing from?", result.Destination))
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}

	details, derr := result.Details()
	if derr != nil {
		c.logger.Warn("extracted details failed validation", "error", derr)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	return c.runPipelineLocked(ctx, details)
}

// handleOriginReplyLocked consumes the message as an origin candidate.
// Invalid candidates re-prompt and the state does not move.
func (c *Controller) handleOriginReplyLocked(ctx context.Context, message string) (Snapshot, error) {
	origin, ok := c.extractor.ExtractOrigin(message)
	if !ok {
		c.appendMessageLocked(RoleAssistant, originRepromptText)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}

	result := c.pending
	result.Origin = origin
	result.OriginSource = extract.SourceText
	details, err := result.Details()
	if err != nil {
		c.logger.Warn("pending details failed validation", "error", err)
		c.state = StateIdle
		c.pending = extract.Result{}
		c.appendMessageLocked(RoleAssistant, "Something went wrong with those trip details. Let's start over - where would you like to go?")
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	c.appendMessageLocked(RoleAssistant, fmt.Sprintf("Departing from %s - give me a moment to look up options for %s.",
		origin, details.Destination()))
	return c.runPipelineLocked(ctx, details)
}

// runPipelineLocked drives DetailsComplete -> SavingItinerary ->
// LoadingOptions -> SelectingOptions. The caller must hold the lock; the
// method releases it around network calls and returns with it released.
// The options fetch starts only after the itinerary save attempt settles;
// a save failure is logged and never blocks the workflow.
func (c *Controller) runPipelineLocked(ctx context.Context, details trip.Details) (Snapshot, error) {
	d := details
	c.details = &d
	c.pending = extract.Result{}
	c.rememberedOrigin = details.Origin()

	// DetailsPending is entered and exited synchronously.
	c.state = StateDetailsPending
	c.state = StateDetailsComplete

	gen := c.beginLocked()
	c.state = StateSavingItinerary
	c.mu.Unlock()

	if _, err := c.gw.CreateItinerary(ctx, details, ""); err != nil {
		c.logger.Warn("itinerary auto-save failed", "destination", details.Destination(), "error", err)
	}

	c.mu.Lock()
	if !c.currentLocked(gen) {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	c.state = StateLoadingOptions
	c.mu.Unlock()

	options, err := c.gw.BookingOptions(ctx, details)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentLocked(gen) {
		return c.snapshotLocked(), nil
	}
	c.endLocked()
	if err != nil {
		c.failLocked(StepOptions, gateway.MessageOf(err), "")
		return c.snapshotLocked(), nil
	}

	c.draft = booking.NewDraft(details, options)
	c.state = StateSelectingOptions
	c.appendMessageLocked(RoleAssistant, fmt.Sprintf(
		"I found %d flights and %d hotels for %s. Pick one of each to continue.",
		len(options.Flights), len(options.Hotels), details.Destination()))
	return c.snapshotLocked(), nil
}

func (c *Controller) SelectFlight(index int) (Snapshot, error) {
	return c.withDraft(func(d *booking.Draft) error { return d.SelectFlight(index) })
}

func (c *Controller) SelectHotel(index int) (Snapshot, error) {
	return c.withDraft(func(d *booking.Draft) error { return d.SelectHotel(index) })
}

func (c *Controller) SetNights(nights int) (Snapshot, error) {
	return c.withDraft(func(d *booking.Draft) error { return d.SetNights(nights) })
}

func (c *Controller) SetPassengers(passengers int) (Snapshot, error) {
	return c.withDraft(func(d *booking.Draft) error { return d.SetPassengers(passengers) })
}

// withDraft applies a pure selection mutation. Selections never touch the
// network and the draft only exists in SelectingOptions.
func (c *Controller) withDraft(fn func(*booking.Draft) error) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSelectingOptions || c.draft == nil {
		return c.snapshotLocked(), errs.ErrWrongState
	}
	if err := fn(c.draft); err != nil {
		return c.snapshotLocked(), err
	}
	return c.snapshotLocked(), nil
}

// Submit creates the booking and then the checkout session. A checkout
// failure after a successful booking leaves the booking pending/unpaid and is
// surfaced with a retry-payment affordance; it is never rolled back.
func (c *Controller) Submit(ctx context.Context, email, specialRequests string) (Snapshot, error) {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return Snapshot{}, errs.ErrBusy
	}
	if c.state != StateSelectingOptions || c.draft == nil {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, errs.ErrWrongState
	}
	if err := c.draft.SetContact(email, specialRequests); err != nil {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, err
	}
	if !c.draft.Submittable() {
		err := errs.ErrNoFlightSelected
		if c.draft.SelectedFlight() != nil {
			err = errs.ErrNoHotelSelected
		}
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, err
	}

	details := c.draft.Details()
	flight, _ := c.draft.Flight()
	hotel, _ := c.draft.Hotel()
	total := c.draft.Quote()
	params := gateway.CreateBookingParams{
		TripID:          tripID(details.Destination()),
		TripName:        details.TripName(),
		Destination:     details.Destination(),
		StartDate:       details.StartDate(),
		EndDate:         details.EndDate(),
		TotalPrice:      total,
		Passengers:      c.draft.Passengers(),
		Email:           c.draft.ContactEmail(),
		Flight:          &flight,
		Hotel:           &hotel,
		SpecialRequests: c.draft.SpecialRequests(),
	}

	gen := c.beginLocked()
	c.state = StateSubmitting
	c.totalPrice = total
	c.mu.Unlock()

	bookingID, err := c.gw.CreateBooking(ctx, params)

	c.mu.Lock()
	if !c.currentLocked(gen) {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	if err != nil {
		c.endLocked()
		c.failLocked(StepBooking, gateway.MessageOf(err), "")
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	c.bookingID = bookingID
	c.mu.Unlock()

	checkoutURL, err := c.gw.CreateCheckoutSession(ctx, bookingID, total)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentLocked(gen) {
		return c.snapshotLocked(), nil
	}
	c.endLocked()
	if err != nil {
		c.failLocked(StepCheckout, gateway.MessageOf(err), bookingID)
		return c.snapshotLocked(), nil
	}

	c.checkoutURL = checkoutURL
	c.state = StateRedirecting
	c.draft = nil // draft is destroyed on successful submission
	c.appendMessageLocked(RoleAssistant,
		fmt.Sprintf("Booking created! Booking ID: %s. Redirecting you to secure payment.", bookingID))
	return c.snapshotLocked(), nil
}

// Retry recovers from StateFailed. An options failure re-fetches options, a
// booking failure returns to selection, and a checkout failure re-issues the
// payment session for the already-created booking.
func (c *Controller) Retry(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return Snapshot{}, errs.ErrBusy
	}
	if c.state != StateFailed || c.failure == nil {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, errs.ErrWrongState
	}

	failure := *c.failure
	switch failure.Step {
	case StepBooking:
		c.failure = nil
		c.state = StateSelectingOptions
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil

	case StepOptions:
		if c.details == nil {
			c.failure = nil
			c.state = StateIdle
			snap := c.snapshotLocked()
			c.mu.Unlock()
			return snap, nil
		}
		details := *c.details
		c.failure = nil
		return c.reloadOptionsLocked(ctx, details)

	case StepCheckout:
		c.failure = nil
		return c.retryCheckoutLocked(ctx, failure.BookingID)

	default:
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, errs.ErrWrongState
	}
}

// reloadOptionsLocked re-runs the options fetch only; the itinerary save is
// not repeated. Caller holds the lock, which is released on return.
func (c *Controller) reloadOptionsLocked(ctx context.Context, details trip.Details) (Snapshot, error) {
	gen := c.beginLocked()
	c.state = StateLoadingOptions
	c.mu.Unlock()

	options, err := c.gw.BookingOptions(ctx, details)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentLocked(gen) {
		return c.snapshotLocked(), nil
	}
	c.endLocked()
	if err != nil {
		c.failLocked(StepOptions, gateway.MessageOf(err), "")
		return c.snapshotLocked(), nil
	}
	c.draft = booking.NewDraft(details, options)
	c.state = StateSelectingOptions
	return c.snapshotLocked(), nil
}

// retryCheckoutLocked re-issues the payment session for an existing booking.
// It never creates a second booking. Caller holds the lock.
func (c *Controller) retryCheckoutLocked(ctx context.Context, bookingID string) (Snapshot, error) {
	gen := c.beginLocked()
	c.state = StateSubmitting
	c.mu.Unlock()

	checkoutURL, err := c.gw.CreateCheckoutSession(ctx, bookingID, c.totalPrice)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentLocked(gen) {
		return c.snapshotLocked(), nil
	}
	c.endLocked()
	if err != nil {
		c.failLocked(StepCheckout, gateway.MessageOf(err), bookingID)
		return c.snapshotLocked(), nil
	}
	c.checkoutURL = checkoutURL
	c.bookingID = bookingID
	c.state = StateRedirecting
	c.draft = nil
	return c.snapshotLocked(), nil
}

// Dismiss leaves StateFailed back to Idle, abandoning the trip context.
func (c *Controller) Dismiss() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateFailed {
		return c.snapshotLocked(), errs.ErrWrongState
	}
	c.resetLocked()
	return c.snapshotLocked(), nil
}

// Reset starts a new planning session: workflow state and trip details are
// destroyed, the transcript is cleared, and the backend planning agent drops
// its conversation memory. The remembered origin survives.
func (c *Controller) Reset(ctx context.Context) Snapshot {
	c.mu.Lock()
	c.resetLocked()
	c.transcript = nil
	c.appendMessageLocked(RoleAssistant, chatClearedText)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	// Best effort: stale agent memory only degrades planning quality.
	if err := c.gw.ResetMemory(ctx); err != nil {
		c.logger.Warn("agent memory reset failed", "error", err)
	}
	return snap
}

// HandlePaymentReturn processes the payment redirect query exactly once per
// (status, booking) pair; a page refresh after the URL rewrite neither
// re-confirms nor re-shows the notice.
func (c *Controller) HandlePaymentReturn(ctx context.Context, status, bookingID string) {
	c.mu.Lock()
	key := status + ":" + bookingID
	if c.handledReturns[key] {
		c.mu.Unlock()
		return
	}
	c.handledReturns[key] = true

	if status != "success" || bookingID == "" {
		c.notices = append(c.notices, Notice{
			Level:   NoticeWarning,
			Message: "Payment was cancelled. You can try again from My Trips.",
		})
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	err := c.gw.ConfirmBooking(ctx, bookingID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		// Payment went through; only the confirm bookkeeping failed.
		c.logger.Warn("booking confirm after payment failed", "booking_id", bookingID, "error", err)
		c.notices = append(c.notices, Notice{
			Level:   NoticeWarning,
			Message: "Payment was successful but there was an error confirming your booking. Please contact support.",
		})
		return
	}
	c.notices = append(c.notices, Notice{
		Level:   NoticeSuccess,
		Message: "Payment successful! Your trip is confirmed.",
	})
	if c.state == StateRedirecting && c.bookingID == bookingID {
		// Workflow complete for this session; trip details are destroyed.
		c.resetLocked()
	}
}

func (c *Controller) resetLocked() {
	c.generation++
	c.busy = false
	c.state = StateIdle
	c.pending = extract.Result{}
	c.details = nil
	c.draft = nil
	c.failure = nil
	c.bookingID = ""
	c.totalPrice = 0
	c.checkoutURL = ""
}

func (c *Controller) beginLocked() uint64 {
	c.busy = true
	return c.generation
}

func (c *Controller) endLocked() {
	c.busy = false
}

func (c *Controller) currentLocked(gen uint64) bool {
	return c.generation == gen
}

func (c *Controller) failLocked(step Step, message, bookingID string) {
	c.state = StateFailed
	c.failure = &Failure{Step: step, Message: message, BookingID: bookingID}
	c.appendMessageLocked(RoleAssistant, "Error: "+message)
}

func (c *Controller) appendMessageLocked(role Role, content string) {
	c.transcript = append(c.transcript, Message{Role: role, Content: content, SentAt: c.clock.Now()})
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:       c.state,
		Transcript:  append([]Message(nil), c.transcript...),
		Notices:     c.notices,
		CheckoutURL: c.checkoutURL,
		BookingID:   c.bookingID,
	}
	c.notices = nil

	if c.details != nil {
		d := *c.details
		snap.Details = &d
	}
	if c.failure != nil {
		f := *c.failure
		snap.Failure = &f
	}
	if c.draft != nil {
		snap.Options = c.draft.Options()
		snap.SelectedFlight = c.draft.SelectedFlight()
		snap.SelectedHotel = c.draft.SelectedHotel()
		snap.Passengers = c.draft.Passengers()
		snap.Nights = c.draft.Nights()
		snap.TotalCents = c.draft.Quote().Cents()
		snap.Submittable = c.draft.Submittable()
	}
	return snap
}

func tripID(destination string) string {
	slug := strings.ToLower(strings.TrimSpace(destination))
	slug = strings.Join(strings.Fields(slug), "-")
	return "chat-booking-" + slug
}

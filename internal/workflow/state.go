package workflow

import (
	"time"

	"tripflow/internal/domain/booking"
	"tripflow/internal/domain/trip"
)

// State is the single source of truth for which step of the booking process
// is active. The controller owns it exclusively; views only read snapshots.
type State string

const (
	StateIdle             State = "idle"
	StateAwaitingOrigin   State = "awaiting_origin"
	StateDetailsPending   State = "details_pending"
	StateDetailsComplete  State = "details_complete"
	StateSavingItinerary  State = "saving_itinerary"
	StateLoadingOptions   State = "loading_options"
	StateSelectingOptions State = "selecting_options"
	StateSubmitting       State = "submitting"
	StateRedirecting      State = "redirecting"
	StateFailed           State = "failed"
)

// Step names the operation that moved the workflow to StateFailed, which
// decides the retry affordance the view offers.
type Step string

const (
	StepOptions  Step = "options"
	StepBooking  Step = "booking"
	StepCheckout Step = "checkout"
)

type Failure struct {
	Step    Step
	Message string
	// BookingID is set when the booking was created but the checkout session
	// failed: the booking stays pending/unpaid and retry re-issues payment
	// only, never a second booking.
	BookingID string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
	SentAt  time.Time
}

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
)

// Notice is a one-shot transient message (toast). Taking a snapshot drains
// pending notices so a refresh never re-shows them.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Snapshot is the render-ready copy of the workflow state handed to the
// presentation layer. It is a value; mutating it cannot touch the controller.
type Snapshot struct {
	State      State
	Transcript []Message
	Details    *trip.Details
	Notices    []Notice

	// Populated while selecting options.
	Options        booking.OptionSet
	SelectedFlight *int
	SelectedHotel  *int
	Passengers     int
	Nights         int
	TotalCents     int64
	Submittable    bool

	// Populated in StateFailed.
	Failure *Failure

	// Populated in StateRedirecting.
	CheckoutURL string
	BookingID   string
}

package errs

import "errors"

// Domain-specific sentinel errors shared across the workflow and handler layers
var (
	// Trip errors
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrInvalidPassengers = errors.New("passenger count must be between 1 and 10")
	ErrNegativeBudget    = errors.New("budget cannot be negative")

	// Draft errors
	ErrNoFlightSelected = errors.New("no flight selected")
	ErrNoHotelSelected  = errors.New("no hotel selected")
	ErrInvalidEmail     = errors.New("contact email is invalid")
	ErrOptionOutOfRange = errors.New("option index out of range")
	ErrInvalidNights    = errors.New("nights must be at least 1")

	// Workflow errors
	ErrBusy            = errors.New("another request is in flight")
	ErrWrongState      = errors.New("action not allowed in current state")
	ErrSessionNotFound = errors.New("session not found")

	// Validation errors
	ErrValidation = errors.New("validation error")
)

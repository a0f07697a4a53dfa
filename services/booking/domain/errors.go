package domain

import "errors"

// Sentinel errors for the booking domain. Use errors.Is() to check these.
var (
	// ErrBookingNotFound indicates the requested booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrOfferingNotFound indicates the requested catalog offering does not exist.
	ErrOfferingNotFound = errors.New("offering not found")

	// ErrEmptySelection indicates a booking was submitted with no selections.
	ErrEmptySelection = errors.New("selection is empty")
)

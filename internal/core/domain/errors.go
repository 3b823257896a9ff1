package domain

import "errors"

var (
	// ErrNotFound is returned when no campaign is eligible for a request.
	ErrNotFound = errors.New("no eligible campaign")
	// ErrBudgetExhausted is returned when the winner's budget ran out between
	// selection and debit. It is a business outcome, not a failure.
	ErrBudgetExhausted = errors.New("campaign budget exhausted")
	// ErrStoreUnavailable wraps storage failures. No redirect decision can be
	// made without a store answer.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrViewerNotFound is returned when updating a viewer record that does
	// not exist.
	ErrViewerNotFound = errors.New("viewer record not found")

	ErrInvalidCampaign = errors.New("invalid campaign")
	ErrInvalidRequest  = errors.New("invalid ad request")
)

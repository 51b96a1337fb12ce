package domain

import "errors"

var (
	// ErrInvalidDateRange indicates a project ends before it starts.
	ErrInvalidDateRange = errors.New("end date precedes start date")

	// ErrInvalidDate indicates a date string did not match the M/D/YY layout.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnknownTier indicates a city tier outside low/high.
	ErrUnknownTier = errors.New("unknown city tier")
)

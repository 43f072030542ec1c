package service

import "errors"

var (
	// Caller errors
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrPitchNotFound          = errors.New("pitch not found")
	ErrInvalidExportFormat    = errors.New("export format must be json or csv")

	// Dependency errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrGenerationFailed   = errors.New("generation failed, try again")

	// Billing errors
	ErrUnrecognizedBillingEvent = errors.New("unrecognized event")
	ErrCheckoutUnavailable      = errors.New("checkout unavailable")
)

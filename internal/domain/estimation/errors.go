package estimation

import "errors"

var (
	ErrNilStrategy          = errors.New("seed strategy is required")
	ErrAlreadySeeded        = errors.New("estimation already seeded")
	ErrNotEditable          = errors.New("estimation is not editable in its current state")
	ErrUnknownCatalogItem   = errors.New("unknown catalog item")
	ErrDuplicateLine        = errors.New("duplicate cost line")
	ErrLineNotFound         = errors.New("cost line not found")
	ErrInvalidAmount        = errors.New("amount must be a finite number greater than or equal to zero")
	ErrInvalidCustomLine    = errors.New("custom line name is required")
	ErrInvalidSurface       = errors.New("surfaces must be finite numbers greater than or equal to zero")
	ErrInvalidExchangeRate  = errors.New("exchange rate must be a positive number")
	ErrUnknownMetaField     = errors.New("unknown estimation field")
	ErrMissingTitle         = errors.New("estimation title is required")
	ErrNoPositiveLine       = errors.New("at least one cost line must have a positive amount")
	ErrEstimationNotFound   = errors.New("estimation not found")
	ErrGatewayNotConfigured = errors.New("estimation gateway not configured")
	ErrSaveFailed           = errors.New("failed to save estimation")
)

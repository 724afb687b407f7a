package domain

import "errors"

// Error taxonomy. Handlers translate these with errors.Is: the first four
// become 400s, ErrMissingConfig and ErrUpstream become 500s with a generic
// client-facing message (detail is logged server-side only).
var (
	ErrInvalidQuery    = errors.New("invalid query")
	ErrMissingParam    = errors.New("missing parameter")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrMissingConfig   = errors.New("missing upstream configuration")
	ErrUpstream        = errors.New("upstream request failed")
)

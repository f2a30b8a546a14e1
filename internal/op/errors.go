package op

import "errors"

// Registration-time errors. These indicate a programming bug in a
// contribution and should abort startup rather than be recovered locally.
var (
	ErrDuplicateDefinition = errors.New("operation definition already registered")
	ErrMalformedSchema     = errors.New("malformed parameter schema")
)

// Call-time errors. These are expected, recoverable failures surfaced to
// the caller of the engine as a single failure channel.
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidCall      = errors.New("invalid operation call")
	ErrUnresolvedLink   = errors.New("linked call has no recorded result")
)

package ticktick

import "errors"

var (
	// ErrInvalidState is returned when a callback carries an unknown,
	// expired or already used state.
	ErrInvalidState = errors.New("ticktick: invalid or expired oauth state")

	// ErrMissingCode is returned when a callback carries no code.
	ErrMissingCode = errors.New("ticktick: authorization code missing")

	// ErrNotConfigured is returned when the OAuth client id is unset.
	ErrNotConfigured = errors.New("ticktick: oauth client not configured")
)

package httpclient

import "time"

const (
	// DefaultMaxAttempts bounds every logical request, including retries
	// triggered by a token refresh.
	DefaultMaxAttempts = 3

	// DefaultBaseDelay is multiplied by the attempt number between retries.
	DefaultBaseDelay = time.Second

	// DefaultTimeout bounds a single attempt, body read included.
	DefaultTimeout = 60 * time.Second
)

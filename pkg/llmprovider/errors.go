package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProvider is returned for a provider kind the factory does not know.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates the generation deadline passed
	ErrProviderTimeout = errors.New("provider timeout")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

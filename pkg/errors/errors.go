// Package errors holds the error taxonomy shared by the generation providers
// and the task-service client. Callers match with errors.Is / errors.As.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectivity matches any ConnectivityError.
	ErrConnectivity = errors.New("service unreachable")

	// ErrMalformedResponse matches any MalformedResponseError.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrMaxRetriesExceeded is returned once the retry budget is spent.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")

	// ErrReauthenticationRequired means stored credentials are no longer
	// usable and the authorization-code flow must be run again.
	ErrReauthenticationRequired = errors.New("reauthentication required")
)

// ConnectivityError reports a failed probe or connection attempt.
type ConnectivityError struct {
	Target string
	Err    error
}

func (e *ConnectivityError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot connect to %s", e.Target)
	}
	return fmt.Sprintf("cannot connect to %s: %v", e.Target, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

func (e *ConnectivityError) Is(target error) bool { return target == ErrConnectivity }

// BackendError reports a non-2xx response.
type BackendError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *BackendError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: request failed with status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: request failed with status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// MalformedResponseError reports a response body of unexpected shape.
type MalformedResponseError struct {
	Provider string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Provider, e.Reason)
}

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

// TransportError reports a response body that could not be read.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: unable to read response body: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by a BackendError in err's
// chain, or 0.
func StatusCode(err error) int {
	var be *BackendError
	if errors.As(err, &be) {
		return be.StatusCode
	}
	return 0
}

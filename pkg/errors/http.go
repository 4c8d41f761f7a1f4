package errors

import (
	"context"
	"errors"
	"net/http"
)

// HTTPStatus maps an upstream failure to the status an API handler should
// answer with. Unknown errors map to 0 so handlers can apply their own
// domain mapping first.
func HTTPStatus(err error) int {
	var (
		be *BackendError
		te *TransportError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrReauthenticationRequired):
		return http.StatusFailedDependency
	case errors.Is(err, ErrConnectivity):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrMaxRetriesExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &be), errors.As(err, &te), errors.Is(err, ErrMalformedResponse):
		return http.StatusBadGateway
	}
	return 0
}

package auth

import "context"

// Authorizer runs the TickTick authorization-code flow.
type Authorizer interface {
	AuthCodeURL() (url string, state string, err error)
	Exchange(ctx context.Context, code, state string) error
}

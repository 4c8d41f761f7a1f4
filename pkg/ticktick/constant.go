package ticktick

import "time"

const (
	// DefaultAPIURL is the TickTick Open API base.
	DefaultAPIURL = "https://api.ticktick.com/open/v1"

	// DefaultAuthURL is the OAuth authorization endpoint.
	DefaultAuthURL = "https://ticktick.com/oauth/authorize"

	// DefaultTokenURL is the OAuth token endpoint.
	DefaultTokenURL = "https://ticktick.com/oauth/token"

	// DefaultScope grants read access to tasks.
	DefaultScope = "tasks:read"

	// DefaultStateTTL bounds how long an authorization URL stays redeemable.
	DefaultStateTTL = 10 * time.Minute

	// DefaultTokenTimeout bounds one token endpoint call.
	DefaultTokenTimeout = 30 * time.Second

	defaultStateCapacity = 128

	reconnectMessage = "TickTick authorization expired. Please reconnect TickTick to resume task sync."
)

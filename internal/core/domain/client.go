package domain

import "time"

// Client is the owning party for accounts. Clients are provisioned
// externally and never mutated or deleted by this service.
type Client struct {
	ClientID  string
	Username  string
	CreatedAt time.Time
}

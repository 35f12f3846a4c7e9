package clients

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidScope   = errors.New("invalid scope")
)

// Registry looks up registered clients by their public client identifier. The
// authentication core only reads from it; implementations must be safe for
// concurrent read access.
type Registry interface {
	FindByClientID(clientID string) (*Client, error)
}

package authorizations

import "errors"

var ErrRecordNotFound = errors.New("authorization record not found")

// Store looks up previously persisted authorization records by an opaque token
// value. The token type tag selects between artifact kinds sharing the store.
// The authentication core only reads from it; implementations must be safe for
// concurrent read access.
type Store interface {
	FindByToken(token string, tokenType TokenType) (*Record, error)
}

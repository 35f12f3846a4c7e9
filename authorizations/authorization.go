package authorizations

import (
	"github.com/jrsteele09/go-client-auth/clients"
	"github.com/jrsteele09/go-client-auth/oauth2"
)

// TokenType distinguishes the kinds of opaque token values sharing an
// authorization store: authorization codes, refresh tokens, and so on.
type TokenType string

const (
	TokenTypeAuthorizationCode TokenType = "code"
	TokenTypeRefreshToken      TokenType = "refresh_token"
)

// RequestParameters captures the original authorization request's parameters
// as persisted with the record. The PKCE pair is kept as explicit fields;
// anything else the authorization endpoint stored lands in Additional.
type RequestParameters struct {
	CodeChallenge       string
	CodeChallengeMethod oauth2.CodeMethodType
	Additional          map[string]string
}

// UsedPKCE reports whether the original authorization request carried a PKCE
// code challenge.
func (p RequestParameters) UsedPKCE() bool {
	return p.CodeChallenge != ""
}

// Record is a grant artifact persisted by the authorization endpoint: the
// client the authorization was issued to plus the request parameters it was
// created with. Records are read-only to the authentication core.
type Record struct {
	Client  *clients.Client
	Request RequestParameters
}

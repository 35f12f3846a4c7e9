package clients

import "github.com/jrsteele09/go-client-auth/oauth2"

type ClientType string

const (
	ClientTypeConfidential ClientType = "confidential" // Can keep secrets (server-side apps)
	ClientTypePublic       ClientType = "public"       // Cannot keep secrets (SPAs, mobile apps)
)

// Client is a pre-provisioned OAuth2 client identity. Instances are treated as
// immutable for the duration of an authentication attempt; the authentication
// core never writes them back.
type Client struct {
	ID                    string                              `json:"id"`
	Type                  ClientType                          `json:"type"` // public or confidential
	Description           string                              `json:"description"`
	Secret                string                              `json:"secret"` // stored hash, or plaintext for legacy/JWT clients
	AuthenticationMethods []oauth2.ClientAuthenticationMethod `json:"authenticationMethods"`
	GrantTypes            []oauth2.GrantType                  `json:"grantTypes"`
	RedirectURIs          []string                            `json:"redirectURIs"`
	Scopes                []string                            `json:"scopes"` // Allowed scopes for this client
}

// IsPublic returns true if the client is a public client
func (c *Client) IsPublic() bool {
	return c.Type == ClientTypePublic
}

// SupportsAuthenticationMethod checks if the client is registered for the
// given client authentication method
func (c *Client) SupportsAuthenticationMethod(method oauth2.ClientAuthenticationMethod) bool {
	for _, m := range c.AuthenticationMethods {
		if m == method {
			return true
		}
	}
	return false
}

// SupportsGrantType checks if the client is registered for the given grant type
func (c *Client) SupportsGrantType(grantType oauth2.GrantType) bool {
	for _, g := range c.GrantTypes {
		if g == grantType {
			return true
		}
	}
	return false
}

// HasScope checks if the client has permission for a specific scope
func (c *Client) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// ValidateScopes checks if all requested scopes are allowed for this client
func (c *Client) ValidateScopes(requestedScopes []string) error {
	for _, scope := range requestedScopes {
		if !c.HasScope(scope) {
			return ErrInvalidScope
		}
	}
	return nil
}

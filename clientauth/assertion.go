package clientauth

import (
	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/jrsteele09/go-client-auth/clients"
	"github.com/jrsteele09/go-client-auth/oauth2"
)

// verifyClientAssertion validates a client_secret_jwt assertion: an HS256 JWT
// signed with the client's secret, asserting the client's own identity. The
// secret must be stored in a recoverable form for this method, so these
// registrations use plaintext storage rather than a hash.
func (as *AuthenticationService) verifyClientAssertion(assertion string, client *clients.Client) error {
	if client.Secret == "" {
		return oauth2.InvalidClientError(oauth2.ParamClientAssertion)
	}

	parserOptions := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithIssuer(client.ID),
		jwtlib.WithSubject(client.ID),
	}
	if as.assertionAudience != "" {
		parserOptions = append(parserOptions, jwtlib.WithAudience(as.assertionAudience))
	}

	token, err := jwtlib.ParseWithClaims(assertion, &jwtlib.RegisteredClaims{}, func(token *jwtlib.Token) (interface{}, error) {
		return []byte(client.Secret), nil
	}, parserOptions...)

	if err != nil || !token.Valid {
		return oauth2.InvalidClientError(oauth2.ParamClientAssertion)
	}
	return nil
}

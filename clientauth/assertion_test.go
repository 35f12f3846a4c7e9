package clientauth_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-client-auth/clientauth"
	"github.com/jrsteele09/go-client-auth/clients"
	"github.com/jrsteele09/go-client-auth/oauth2"
)

const testTokenEndpoint = "https://auth.example.com/oauth/token"

// jwtTestClient returns a client registered for client_secret_jwt. The secret
// is stored in plaintext so it can serve as the HMAC key.
func jwtTestClient() *clients.Client {
	return &clients.Client{
		ID:     "jwt-client-1",
		Type:   clients.ClientTypeConfidential,
		Secret: "jwt-client-shared-secret",
		AuthenticationMethods: []oauth2.ClientAuthenticationMethod{
			oauth2.ClientSecretJWT,
		},
		GrantTypes: []oauth2.GrantType{oauth2.ClientCredentialsGrant},
	}
}

// signAssertion builds an HS256 client assertion for the given claims
func signAssertion(t *testing.T, key string, claims jwtlib.RegisteredClaims) string {
	t.Helper()

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

// validAssertionClaims returns claims asserting the client's own identity
func validAssertionClaims(clientID string) jwtlib.RegisteredClaims {
	return jwtlib.RegisteredClaims{
		Issuer:    clientID,
		Subject:   clientID,
		Audience:  jwtlib.ClaimStrings{testTokenEndpoint},
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(5 * time.Minute)),
		IssuedAt:  jwtlib.NewNumericDate(time.Now()),
	}
}

// jwtAttempt returns a client_secret_jwt attempt carrying the assertion as its
// credential
func jwtAttempt(clientID, assertion string) *clientauth.Attempt {
	return &clientauth.Attempt{
		ClientID:   clientID,
		Method:     oauth2.ClientSecretJWT,
		Credential: assertion,
	}
}

// TestAuthenticate_ClientAssertion tests the client_secret_jwt success path
func TestAuthenticate_ClientAssertion(t *testing.T) {
	f := setupTestFixture(t, clientauth.WithAssertionAudience(testTokenEndpoint))
	client := f.createTestClient(t, jwtTestClient())

	assertion := signAssertion(t, client.Secret, validAssertionClaims(client.ID))

	result, err := f.service.Authenticate(jwtAttempt(client.ID, assertion))

	require.NoError(t, err)
	require.True(t, result.Authenticated)
	require.Equal(t, client.ID, result.Principal)
	require.Equal(t, assertion, result.Credential)
	require.Zero(t, f.comparator.callCount(), "assertion path should not use the secret comparator")
}

// TestAuthenticate_ClientAssertionWrongKey tests an assertion signed with the
// wrong secret
func TestAuthenticate_ClientAssertionWrongKey(t *testing.T) {
	f := setupTestFixture(t, clientauth.WithAssertionAudience(testTokenEndpoint))
	client := f.createTestClient(t, jwtTestClient())

	assertion := signAssertion(t, "not-the-registered-secret", validAssertionClaims(client.ID))

	_, err := f.service.Authenticate(jwtAttempt(client.ID, assertion))

	requireFailure(t, err, oauth2.ErrorCodeInvalidClient, oauth2.ParamClientAssertion)
}

// TestAuthenticate_ClientAssertionExpired tests an expired assertion
func TestAuthenticate_ClientAssertionExpired(t *testing.T) {
	f := setupTestFixture(t, clientauth.WithAssertionAudience(testTokenEndpoint))
	client := f.createTestClient(t, jwtTestClient())

	claims := validAssertionClaims(client.ID)
	claims.ExpiresAt = jwtlib.NewNumericDate(time.Now().Add(-time.Minute))
	assertion := signAssertion(t, client.Secret, claims)

	_, err := f.service.Authenticate(jwtAttempt(client.ID, assertion))

	requireFailure(t, err, oauth2.ErrorCodeInvalidClient, oauth2.ParamClientAssertion)
}

// TestAuthenticate_ClientAssertionWrongIssuer tests an assertion claiming a
// different client's identity
func TestAuthenticate_ClientAssertionWrongIssuer(t *testing.T) {
	f := setupTestFixture(t, clientauth.WithAssertionAudience(testTokenEndpoint))
	client := f.createTestClient(t, jwtTestClient())

	claims := validAssertionClaims("some-other-client")
	assertion := signAssertion(t, client.Secret, claims)

	_, err := f.service.Authenticate(jwtAttempt(client.ID, assertion))

	requireFailure(t, err, oauth2.ErrorCodeInvalidClient, oauth2.ParamClientAssertion)
}

// TestAuthenticate_ClientAssertionWrongAudience tests audience enforcement
// when an expected audience is configured
func TestAuthenticate_ClientAssertionWrongAudience(t *testing.T) {
	f := setupTestFixture(t, clientauth.WithAssertionAudience(testTokenEndpoint))
	client := f.createTestClient(t, jwtTestClient())

	claims := validAssertionClaims(client.ID)
	claims.Audience = jwtlib.ClaimStrings{"https://other.example.com/token"}
	assertion := signAssertion(t, client.Secret, claims)

	_, err := f.service.Authenticate(jwtAttempt(client.ID, assertion))

	requireFailure(t, err, oauth2.ErrorCodeInvalidClient, oauth2.ParamClientAssertion)
}

// TestAuthenticate_ClientAssertionNoStoredSecret tests a JWT client with no
// recoverable secret on record
func TestAuthenticate_ClientAssertionNoStoredSecret(t *testing.T) {
	f := setupTestFixture(t, clientauth.WithAssertionAudience(testTokenEndpoint))
	client := jwtTestClient()
	client.Secret = ""
	f.createTestClient(t, client)

	assertion := signAssertion(t, "anything", validAssertionClaims(client.ID))

	_, err := f.service.Authenticate(jwtAttempt(client.ID, assertion))

	requireFailure(t, err, oauth2.ErrorCodeInvalidClient, oauth2.ParamClientAssertion)
}

// TestAuthenticate_ClientAssertionMethodNotAllowed tests client_secret_jwt
// against a client registered for basic only
func TestAuthenticate_ClientAssertionMethodNotAllowed(t *testing.T) {
	f := setupTestFixture(t)
	f.createTestClient(t, defaultTestClient())

	assertion := signAssertion(t, testClientSecret, validAssertionClaims(testClientID))

	_, err := f.service.Authenticate(jwtAttempt(testClientID, assertion))

	requireFailure(t, err, oauth2.ErrorCodeInvalidClient, "authentication_method")
}

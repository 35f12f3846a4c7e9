// Package clientauth authenticates confidential and public OAuth2 clients at
// the token, introspection, and revocation endpoints. It resolves the
// registered client, checks the requested authentication method, verifies the
// presented credential, and for authorization-code grants validates the PKCE
// code verifier against the challenge stored with the original authorization
// request.
package clientauth

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-client-auth/authorizations"
	"github.com/jrsteele09/go-client-auth/clients"
	"github.com/jrsteele09/go-client-auth/oauth2"
	"github.com/jrsteele09/go-client-auth/pkce"
	"github.com/jrsteele09/go-client-auth/secrets"
)

// descriptionAuthenticationMethod is the substring failure descriptions carry
// when the requested authentication method is not registered for the client.
const descriptionAuthenticationMethod = "authentication_method"

// TokenParameters are the grant-specific parameters accompanying an
// authentication attempt at the token endpoint. Known parameters are explicit
// fields; anything else the transport layer received lands in Additional.
type TokenParameters struct {
	GrantType    oauth2.GrantType
	Code         string
	CodeVerifier string
	Additional   map[string]string
}

// Attempt is one inbound, untrusted client authentication request. It is
// created per request by the protocol layer and discarded after processing.
type Attempt struct {
	ClientID   string
	Method     oauth2.ClientAuthenticationMethod
	Credential string
	Params     TokenParameters
}

// Result is a successful authentication. It is constructed fresh per call and
// only ever produced after every applicable check has passed.
type Result struct {
	Principal     string
	Credential    string
	Client        *clients.Client
	Authenticated bool
}

// Repos holds the read-only collaborator repositories for the
// AuthenticationService.
type Repos struct {
	Clients        clients.Registry     // Registered client lookup
	Authorizations authorizations.Store // Stored authorization records (codes, refresh tokens)
}

// AuthenticationService authenticates client credentials against the client
// registry and, for authorization-code grants, the stored authorization
// record. It holds no mutable state across attempts and is safe for
// concurrent use provided its repositories are.
type AuthenticationService struct {
	repos             Repos
	comparator        secrets.Comparator
	verifier          *secrets.Verifier
	assertionAudience string // expected aud for client_secret_jwt assertions, empty disables the check
	logger            zerolog.Logger
}

// AuthenticationServiceOption defines a function type to modify the
// AuthenticationService instance.
type AuthenticationServiceOption func(*AuthenticationService)

// WithSecretComparator selects the hash-comparison capability used to verify
// client secrets. The default is bcrypt; secrets.PlaintextComparator exists
// for legacy clients.
func WithSecretComparator(comparator secrets.Comparator) AuthenticationServiceOption {
	return func(as *AuthenticationService) {
		as.comparator = comparator
	}
}

// WithAssertionAudience sets the audience client_secret_jwt assertions must
// carry, normally the issuer's token endpoint URL.
func WithAssertionAudience(audience string) AuthenticationServiceOption {
	return func(as *AuthenticationService) {
		as.assertionAudience = audience
	}
}

// WithLogger sets the logger used for failed attempts. Logging is disabled by
// default.
func WithLogger(logger zerolog.Logger) AuthenticationServiceOption {
	return func(as *AuthenticationService) {
		as.logger = logger
	}
}

// NewAuthenticationService initializes a new AuthenticationService with
// required repositories. Optional configuration can be provided via options
// (e.g. WithSecretComparator for legacy plaintext clients). Missing
// repositories and a nil comparator are setup errors, reported here and never
// as request-time failures.
func NewAuthenticationService(repos Repos, options ...AuthenticationServiceOption) (*AuthenticationService, error) {
	if repos.Clients == nil {
		return nil, errors.New("[NewAuthenticationService] Clients registry is required")
	}
	if repos.Authorizations == nil {
		return nil, errors.New("[NewAuthenticationService] Authorizations store is required")
	}

	authService := &AuthenticationService{
		repos:      repos,
		comparator: secrets.BcryptComparator{},
		logger:     zerolog.Nop(),
	}

	// Apply optional configuration
	for _, opt := range options {
		opt(authService)
	}
	if authService.comparator == nil {
		return nil, errors.New("[NewAuthenticationService] secret comparator cannot be nil")
	}
	authService.verifier = secrets.NewVerifier(authService.comparator)

	return authService, nil
}

// Authenticate processes one authentication attempt. On success it returns a
// Result naming the client as principal; every failure is a typed
// *oauth2.Error carrying invalid_client or invalid_grant. The checks run
// strictly in order and the first failure short-circuits the rest; nothing is
// retried and no repository is written to.
func (as *AuthenticationService) Authenticate(attempt *Attempt) (*Result, error) {
	client, err := as.repos.Clients.FindByClientID(attempt.ClientID)
	if err != nil {
		return nil, as.failure(attempt, oauth2.InvalidClientError(oauth2.ParamClientID))
	}

	if attempt.Method == oauth2.MethodNone {
		return as.authenticatePublicClient(attempt, client)
	}

	if !client.SupportsAuthenticationMethod(attempt.Method) {
		return nil, as.failure(attempt, oauth2.InvalidClientError(descriptionAuthenticationMethod))
	}

	if attempt.Credential == "" {
		return nil, as.failure(attempt, oauth2.InvalidClientError("credentials"))
	}

	if attempt.Method == oauth2.ClientSecretJWT {
		if err := as.verifyClientAssertion(attempt.Credential, client); err != nil {
			return nil, as.failure(attempt, err)
		}
	} else if !as.verifier.Verify(attempt.Credential, client.Secret) {
		return nil, as.failure(attempt, oauth2.InvalidClientError(oauth2.ParamClientSecret))
	}

	if err := as.validateCodeGrant(attempt); err != nil {
		return nil, as.failure(attempt, err)
	}

	return &Result{
		Principal:     client.ID,
		Credential:    attempt.Credential,
		Client:        client,
		Authenticated: true,
	}, nil
}

// validateCodeGrant is the PKCE gate: for an authorization-code grant carrying
// a code parameter, the referenced record must exist and its stored challenge
// must match the presented verifier. Other grants pass through untouched.
func (as *AuthenticationService) validateCodeGrant(attempt *Attempt) error {
	if attempt.Params.GrantType != oauth2.AuthorizationCodeGrant || attempt.Params.Code == "" {
		return nil
	}

	record, err := as.repos.Authorizations.FindByToken(attempt.Params.Code, authorizations.TokenTypeAuthorizationCode)
	if err != nil {
		return oauth2.InvalidGrantError(oauth2.ParamCode)
	}

	return pkce.Validate(record.Request.CodeChallenge, record.Request.CodeChallengeMethod, attempt.Params.CodeVerifier)
}

// authenticatePublicClient handles method "none": clients that cannot hold a
// secret authenticate through PKCE alone, so the code parameter and a stored
// code challenge are mandatory.
func (as *AuthenticationService) authenticatePublicClient(attempt *Attempt, client *clients.Client) (*Result, error) {
	if !client.SupportsAuthenticationMethod(oauth2.MethodNone) {
		return nil, as.failure(attempt, oauth2.InvalidClientError(descriptionAuthenticationMethod))
	}

	if attempt.Params.GrantType != oauth2.AuthorizationCodeGrant || attempt.Params.Code == "" {
		return nil, as.failure(attempt, oauth2.InvalidGrantError(oauth2.ParamCode))
	}

	record, err := as.repos.Authorizations.FindByToken(attempt.Params.Code, authorizations.TokenTypeAuthorizationCode)
	if err != nil {
		return nil, as.failure(attempt, oauth2.InvalidGrantError(oauth2.ParamCode))
	}

	if !record.Request.UsedPKCE() {
		return nil, as.failure(attempt, oauth2.InvalidGrantError(oauth2.ParamCodeChallenge))
	}

	if err := pkce.Validate(record.Request.CodeChallenge, record.Request.CodeChallengeMethod, attempt.Params.CodeVerifier); err != nil {
		return nil, as.failure(attempt, err)
	}

	return &Result{
		Principal:     client.ID,
		Client:        client,
		Authenticated: true,
	}, nil
}

// failure logs a rejected attempt and passes the error through. Secrets are
// never logged.
func (as *AuthenticationService) failure(attempt *Attempt, err error) error {
	event := as.logger.Debug().Str("client_id", attempt.ClientID).Str("method", string(attempt.Method))
	if oauthErr, ok := oauth2.AsError(err); ok {
		event = event.Str("error_code", string(oauthErr.Code))
	}
	event.Msg("client authentication failed")
	return err
}

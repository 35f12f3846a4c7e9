package oauth2

// ClientAuthenticationMethod represents how a client proves its identity at the
// token, introspection, or revocation endpoint. A registered client carries the
// closed set of methods it is allowed to use; an attempt using any other method
// is rejected before credentials are ever compared.
type ClientAuthenticationMethod string

const (
	// ClientSecretBasic indicates the client secret is presented via the HTTP
	// Basic authorization header.
	// Example: Authorization: Basic BASE64(client_id:client_secret)
	ClientSecretBasic ClientAuthenticationMethod = "client_secret_basic"

	// ClientSecretPost indicates the client secret is presented in the request
	// body as the client_secret form parameter.
	ClientSecretPost ClientAuthenticationMethod = "client_secret_post"

	// ClientSecretJWT indicates the client authenticates with a JWT assertion
	// signed (HMAC) with its client secret rather than presenting the secret
	// directly. Requires the secret to be stored in a recoverable form.
	ClientSecretJWT ClientAuthenticationMethod = "client_secret_jwt"

	// MethodNone indicates a public client that cannot hold a secret (SPAs,
	// mobile apps). Such clients authenticate through PKCE alone.
	MethodNone ClientAuthenticationMethod = "none"
)

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Client authentication for this grant additionally validates the PKCE
	// code_verifier against the challenge stored with the original
	// authorization request.
	AuthorizationCodeGrant GrantType = "authorization_code"

	// ClientCredentialsGrant allows machine-to-machine authentication with no
	// user context.
	ClientCredentialsGrant GrantType = "client_credentials"

	// RefreshTokenGrant exchanges a refresh token for new tokens.
	RefreshTokenGrant GrantType = "refresh_token"
)

// CodeMethodType represents the PKCE (Proof Key for Code Exchange) challenge
// method recorded with an authorization request.
type CodeMethodType string

const (
	// CodeMethodTypeS256 indicates SHA-256 hashing of the code verifier.
	// Client sends: code_challenge = BASE64URL(SHA256(code_verifier))
	// Server validates: SHA256(presented code_verifier) == stored code_challenge
	CodeMethodTypeS256 CodeMethodType = "S256"

	// CodeMethodTypePlain means no hashing, the verifier is compared directly
	// against the stored challenge. Weaker than S256, kept for legacy clients.
	CodeMethodTypePlain CodeMethodType = "plain"
)

// Wire parameter names referenced by failure descriptions. Callers may check a
// failure description for these substrings but must not parse it further.
const (
	ParamClientID            = "client_id"
	ParamClientSecret        = "client_secret"
	ParamClientAssertion     = "client_assertion"
	ParamGrantType           = "grant_type"
	ParamCode                = "code"
	ParamCodeVerifier        = "code_verifier"
	ParamCodeChallenge       = "code_challenge"
	ParamCodeChallengeMethod = "code_challenge_method"
)

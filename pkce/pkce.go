// Package pkce validates RFC 7636 Proof Key for Code Exchange verifiers
// presented at the token endpoint against the challenge stored with the
// original authorization request.
package pkce

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"github.com/jrsteele09/go-client-auth/oauth2"
)

// ChallengeS256 derives the S256 code challenge for a verifier:
// BASE64URL-ENCODE(SHA256(ASCII(code_verifier))), unpadded.
func ChallengeS256(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(hash[:])
}

// Validate checks a presented code verifier against the stored challenge.
//
// An absent stored challenge means PKCE was not used for the authorization and
// validation is skipped. A stored challenge with no presented verifier is an
// invalid_grant referencing code_verifier. Method matching is case-sensitive;
// an unknown code_challenge_method is compared as "plain", a deliberate
// compatibility choice for clients predating S256. Any mismatch is an
// invalid_grant referencing the authorization code.
func Validate(storedChallenge string, storedMethod oauth2.CodeMethodType, verifier string) error {
	if storedChallenge == "" {
		return nil
	}
	if verifier == "" {
		return oauth2.InvalidGrantError(oauth2.ParamCodeVerifier)
	}

	presented := verifier
	if storedMethod == oauth2.CodeMethodTypeS256 {
		presented = ChallengeS256(verifier)
	}

	if subtle.ConstantTimeCompare([]byte(presented), []byte(storedChallenge)) != 1 {
		return oauth2.InvalidGrantError(oauth2.ParamCode)
	}
	return nil
}

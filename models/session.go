package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Session wraps the JWT token that represents an authenticated browser
// session. The token is carried in a cookie; its "sub" claim holds the
// authenticated username, which is the only state a session carries.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be written into the session cookie.
//
// Username is a cached copy of the "sub" claim, populated after a
// successful parse so that handlers do not re-read the claim set.
type Session struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Username is the authenticated username extracted from the "sub" claim.
	Username string `json:"-"`
}

// GetUsername extracts the authenticated username from the session's
// "sub" (subject) claim.
//
// Returns an error if the subject claim is missing or empty.
func (s *Session) GetUsername() (string, error) {
	return s.GetSubject()
}

// String returns the compact JWS serialization of the session token.
// It implements the [fmt.Stringer] interface.
func (s *Session) String() string {
	return s.SignedString
}

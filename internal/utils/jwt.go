package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-limerick-locker/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT session token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the authenticated username
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus sessionDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateSessionToken(issuer, username string, sessionDuration time.Duration, signKey string) (models.Session, error) {
	if issuer == "" || username == "" || sessionDuration == 0 || signKey == "" {
		return models.Session{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Session{Token: token, RegisteredClaims: *claims, SignedString: tokenString, Username: username}, nil
}

// ValidateAndParseSessionToken validates the given session token string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Returns the parsed session with its Username populated, or an error if
// validation fails or the subject claim is missing.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Session{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	username, err := token.Claims.GetSubject()
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during getting subject from session token: %w", err)
	}
	if username == "" {
		return models.Session{}, errors.New("empty subject error")
	}

	return models.Session{Token: token, SignedString: tokenString, Username: username}, nil
}

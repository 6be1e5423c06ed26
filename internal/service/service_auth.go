package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-limerick-locker/internal/config"
	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/store"
	"github.com/MKhiriev/go-limerick-locker/internal/utils"
	"github.com/MKhiriev/go-limerick-locker/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the session
// token lifecycle using a UserRepository for persistence.
//
// Passwords are stored and compared as plain text, mirroring the legacy
// application this service replaces. See DESIGN.md for the record of that
// decision.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued session token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	sessionIssuer string

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		sessionSignKey:  cfg.SessionSignKey,
		sessionIssuer:   cfg.SessionIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// Register creates a new user account.
//
// It trims both credentials, validates that they are non-empty, and delegates
// persistence to the UserRepository. Only the credentials are persisted; all
// profile fields start empty.
//
// Returns the created user or:
//   - ErrEmptyCredentials if username or password is blank after trimming.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("empty credentials provided")
		return models.User{}, ErrEmptyCredentials
	}

	user := models.User{Username: username, Password: password}
	if err := a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing user.
//
// It trims both credentials, validates that they are non-empty, looks up the
// account by username, and compares the stored password with the supplied one
// verbatim.
//
// Returns the authenticated user record or:
//   - ErrEmptyCredentials if username or password is blank after trimming.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the passwords do not match exactly.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("empty credentials provided")
		return models.User{}, ErrEmptyCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if foundUser.Password != password {
		log.Error().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateSession issues a signed session token for the given username.
//
// The token is signed with the configured sessionSignKey, carries the
// configured sessionIssuer as the "iss" claim, and expires after
// sessionDuration.
//
// Returns the session model on success or a wrapped error if token
// generation fails.
func (a *authService) CreateSession(ctx context.Context, username string) (models.Session, error) {
	session, err := utils.GenerateSessionToken(a.sessionIssuer, username, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, nil
}

// ParseSession validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseSessionToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrSessionIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	session, err := utils.ValidateAndParseSessionToken(tokenString, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		return models.Session{}, ErrSessionIsExpiredOrInvalid
	}

	return session, nil
}

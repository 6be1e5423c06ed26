package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-limerick-locker/internal/config"
	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/store"
	"github.com/MKhiriev/go-limerick-locker/models"
)

func newTestAuthService(repo *mockUserRepository) AuthService {
	cfg := config.App{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "locker-test",
		SessionDuration: time.Hour,
	}
	return NewAuthService(repo, cfg, logger.Nop())
}

// TestRegister_Success verifies that valid, padded credentials are trimmed
// and persisted.
func TestRegister_Success(t *testing.T) {
	var created models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) error {
			created = user
			return nil
		},
	}

	svc := newTestAuthService(repo)
	user, err := svc.Register(context.Background(), "  alice  ", " secret ")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "secret", user.Password)
	assert.Equal(t, user, created)
}

// TestRegister_EmptyCredentials verifies that blank or whitespace-only
// credentials are rejected before touching the repository.
func TestRegister_EmptyCredentials(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) error {
			t.Fatal("repository must not be called")
			return nil
		},
	}
	svc := newTestAuthService(repo)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "secret"},
		{name: "empty password", username: "alice", password: ""},
		{name: "whitespace username", username: "   ", password: "secret"},
		{name: "whitespace password", username: "alice", password: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrEmptyCredentials)
		})
	}
}

// TestRegister_DuplicateUsername verifies that the store's uniqueness error
// propagates wrapped but matchable.
func TestRegister_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) error {
			return store.ErrUsernameAlreadyExists
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Register(context.Background(), "alice", "secret")
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

// TestLogin_Success verifies the exact-match password comparison.
func TestLogin_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{Username: username, Password: "secret"}, nil
		},
	}

	svc := newTestAuthService(repo)
	user, err := svc.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

// TestLogin_WrongPassword verifies that a mismatching password is rejected.
func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{Username: username, Password: "secret"}, nil
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Login(context.Background(), "alice", "not-secret")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

// TestLogin_UnknownUser verifies that a missing record propagates the store
// sentinel for the handler to fold into the generic message.
func TestLogin_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Login(context.Background(), "ghost", "secret")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// TestLogin_EmptyCredentials verifies the validation branch.
func TestLogin_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	_, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

// TestSession_RoundTrip verifies that CreateSession output parses back to the
// same username via ParseSession.
func TestSession_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, session.SignedString)

	parsed, err := svc.ParseSession(ctx, session.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username)
}

// TestParseSession_Invalid verifies normalisation of parse failures.
func TestParseSession_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseSession(context.Background(), "garbage-token")
	assert.ErrorIs(t, err, ErrSessionIsExpiredOrInvalid)
}

// TestCreateSession_MissingSignKey verifies the failure path when the service
// was configured without a signing key.
func TestCreateSession_MissingSignKey(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, config.App{SessionIssuer: "i", SessionDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateSession(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrSessionCreationFailed)
}

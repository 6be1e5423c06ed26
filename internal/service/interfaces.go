package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-limerick-locker/models"
)

// AuthService handles account registration, credential verification, and the
// session token lifecycle.
type AuthService interface {
	// Register creates a new account from trimmed credentials.
	// Returns ErrEmptyCredentials when either field is blank and propagates
	// store.ErrUsernameAlreadyExists on a duplicate username.
	Register(ctx context.Context, username, password string) (models.User, error)

	// Login verifies the supplied password against the stored value with an
	// exact comparison. Unknown users and wrong passwords both surface as
	// errors the handler folds into one message.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateSession issues a signed session token for the given username.
	CreateSession(ctx context.Context, username string) (models.Session, error)

	// ParseSession validates a raw session token string. Any validation
	// failure is normalised to ErrSessionIsExpiredOrInvalid.
	ParseSession(ctx context.Context, tokenString string) (models.Session, error)
}

// ProfileService reads and mutates the editable profile fields of a user.
type ProfileService interface {
	// GetProfile fetches the full user record for display.
	GetProfile(ctx context.Context, username string) (models.User, error)

	// UpdateDetails overwrites the four profile fields with their trimmed
	// submitted values.
	UpdateDetails(ctx context.Context, username, firstname, lastname, email, address string) error
}

// LimerickService handles the single-file upload/download cycle and the
// word-count bookkeeping that goes with it.
type LimerickService interface {
	// Upload validates the submitted file name, stores the file bytes under
	// the user's derived key, recomputes the word count, and records both in
	// the user's row. Returns the stored name and the fresh word count.
	Upload(ctx context.Context, username, filename string, file io.Reader) (string, int, error)

	// Download returns the stored file name and bytes of the user's
	// uploaded limerick. Returns ErrNoUploadedFile when the user has never
	// uploaded, or when the recorded file has gone missing on disk.
	Download(ctx context.Context, username string) (string, []byte, error)
}

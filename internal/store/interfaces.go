package store

import (
	"context"

	"github.com/MKhiriev/go-limerick-locker/models"
)

// UserRepository is the persistence boundary for user records. Every method
// maps to a single SQL statement; no method spans a transaction.
type UserRepository interface {
	// CreateUser inserts a new record with only username and password set.
	// Returns ErrUsernameAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, user models.User) error

	// FindUserByUsername performs a point lookup by the unique username.
	// Returns ErrNoUserWasFound when no such record exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateDetails overwrites the four profile fields of the record
	// matching user.Username. Silently a no-op when the record is missing;
	// callers are expected to have verified existence via an active session.
	UpdateDetails(ctx context.Context, user models.User) error

	// UpdateLimerick overwrites the uploaded-file metadata of the record
	// matching username. Same existence caveat as UpdateDetails.
	UpdateLimerick(ctx context.Context, username, filename string, wordcount int) error
}

// LimerickFileStorage is the directory-backed blob store for uploaded
// limerick files. Keys are bare file names derived by the service layer;
// the store confines them to its configured directory.
type LimerickFileStorage interface {
	// SaveFile writes data under name, creating or overwriting the file.
	SaveFile(ctx context.Context, name string, data []byte) error

	// ReadFile returns the bytes stored under name.
	// Returns ErrFileNotFound when no such file exists.
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and the two partial updates
// against the "users" table, on either supported backend.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record carrying only the username and
// password; all other columns keep their schema defaults.
//
// Error handling:
//   - Uniqueness violation on the username → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.createUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: executing insert")

		switch r.db.errorClassificator.Classify(err) {
		case UniqueViolation:
			return ErrUsernameAlreadyExists
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// FindUserByUsername retrieves the user record whose username matches the
// provided key and scans all persisted fields into a fresh [models.User].
//
// Error handling:
//   - Empty result set → [ErrNoUserWasFound].
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findUserByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan found user from db
	if err := row.Scan(
		&foundUser.Username,
		&foundUser.Password,
		&foundUser.Firstname,
		&foundUser.Lastname,
		&foundUser.Email,
		&foundUser.Address,
		&foundUser.LimerickFilename,
		&foundUser.LimerickWordcount,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// UpdateDetails overwrites the four profile fields of the record matching
// user.Username. When no row matches, the statement affects zero rows and
// the method returns nil; existence is the session layer's concern.
func (r *userRepository) UpdateDetails(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.updateDetailsQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateDetails").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateDetails").Msg("error: executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateLimerick overwrites the uploaded-file metadata of the record
// matching username. Like UpdateDetails, a missing row is a silent no-op.
func (r *userRepository) UpdateLimerick(ctx context.Context, username, filename string, wordcount int) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.updateLimerickQuery(username, filename, wordcount)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLimerick").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLimerick").Msg("error: executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

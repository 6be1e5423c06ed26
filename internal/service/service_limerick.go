package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/store"
)

// limerickSuffix is appended to the username to derive the stored file name,
// so at most one uploaded file exists per user at any time.
const limerickSuffix = "_Limerick.txt"

// requiredUploadName is the only accepted client-side file name, compared
// case-insensitively.
const requiredUploadName = "limerick.txt"

// LimerickFileName derives the file-store key for a user's uploaded limerick.
func LimerickFileName(username string) string {
	return username + limerickSuffix
}

// limerickService is the concrete implementation of LimerickService. It
// orchestrates the file store and the user repository for the upload and
// download flows.
//
// The blob write and the metadata update are two separate steps with no
// rollback; a crash between them leaves metadata pointing at older content.
// Accepted as-is, matching the legacy behaviour.
type limerickService struct {
	userRepository store.UserRepository
	files          store.LimerickFileStorage
	logger         *logger.Logger
}

// NewLimerickService constructs a LimerickService over the given repository
// and file storage.
func NewLimerickService(userRepository store.UserRepository, files store.LimerickFileStorage, logger *logger.Logger) LimerickService {
	return &limerickService{
		userRepository: userRepository,
		files:          files,
		logger:         logger,
	}
}

// Upload stores the submitted file as the user's limerick.
//
// The client-side file name must equal "Limerick.txt" ignoring case; the
// stored name is always derived from the username instead, so repeat uploads
// overwrite the previous file. The word count is recomputed from the fresh
// file contents on every upload and is never user-supplied.
//
// Returns the stored file name and the new word count, or:
//   - ErrWrongUploadFilename if the submitted name does not match.
//   - ErrEmptyUpload if the file contents cannot be read.
//   - A wrapped storage error if the blob write or metadata update fails.
func (l *limerickService) Upload(ctx context.Context, username, filename string, file io.Reader) (string, int, error) {
	log := logger.FromContext(ctx)

	if !strings.EqualFold(filename, requiredUploadName) {
		log.Error().Str("username", username).Str("filename", filename).Msg("wrong upload filename")
		return "", 0, ErrWrongUploadFilename
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Str("username", username).Msg("error reading uploaded file")
		return "", 0, fmt.Errorf("%w: %w", ErrEmptyUpload, err)
	}

	savedName := LimerickFileName(username)
	if err := l.files.SaveFile(ctx, savedName, data); err != nil {
		log.Err(err).Str("username", username).Str("filename", savedName).Msg("error saving limerick file")
		return "", 0, fmt.Errorf("error saving limerick file: %w", err)
	}

	wordcount := countWords(data)
	if err := l.userRepository.UpdateLimerick(ctx, username, savedName, wordcount); err != nil {
		log.Err(err).Str("username", username).Msg("error updating limerick metadata")
		return "", 0, fmt.Errorf("error updating limerick metadata: %w", err)
	}

	return savedName, wordcount, nil
}

// Download returns the stored file name and bytes of the user's uploaded
// limerick.
//
// Returns ErrNoUploadedFile when the user has no upload on record, and also
// when the recorded file is missing from disk — stale metadata left by a
// crash between the blob write and the metadata update.
func (l *limerickService) Download(ctx context.Context, username string) (string, []byte, error) {
	log := logger.FromContext(ctx)

	user, err := l.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user lookup for download failed")
		return "", nil, fmt.Errorf("user lookup for download failed: %w", err)
	}

	if !user.HasLimerick() {
		return "", nil, ErrNoUploadedFile
	}

	data, err := l.files.ReadFile(ctx, user.LimerickFilename)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return "", nil, ErrNoUploadedFile
		}

		log.Err(err).Str("username", username).Str("filename", user.LimerickFilename).Msg("error reading limerick file")
		return "", nil, fmt.Errorf("error reading limerick file: %w", err)
	}

	return user.LimerickFilename, data, nil
}

// countWords splits the file contents on runs of whitespace and counts the
// non-empty tokens. Decoding is best-effort: bytes that are not valid UTF-8
// pass through as replacement runes, which are not whitespace, so malformed
// input still yields a stable count.
func countWords(data []byte) int {
	return len(strings.Fields(string(data)))
}

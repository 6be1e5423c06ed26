package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-limerick-locker/internal/config"
	"github.com/MKhiriev/go-limerick-locker/internal/logger"
)

// limerickFileStorage is the directory-backed implementation of
// [LimerickFileStorage]. Each uploaded limerick lives as a single file in
// the configured upload directory; overwriting an existing file is the
// expected path for repeat uploads.
type limerickFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLimerickFileStorage constructs a [LimerickFileStorage] rooted at the
// configured upload directory, creating the directory if it is missing.
func NewLimerickFileStorage(cfg config.Files, log *logger.Logger) (LimerickFileStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Err(err).Str("func", "NewLimerickFileStorage").Msg("error creating upload directory")
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	log.Debug().Str("dir", cfg.UploadDir).Msg("creating limerick file storage")
	return &limerickFileStorage{
		dir:    cfg.UploadDir,
		logger: log,
	}, nil
}

// SaveFile writes data under name inside the upload directory, creating or
// overwriting the file. The name is reduced to its base component so a
// crafted key cannot escape the directory.
func (s *limerickFileStorage) SaveFile(ctx context.Context, name string, data []byte) error {
	log := logger.FromContext(ctx)

	path := s.pathFor(name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.Err(err).Str("func", "*limerickFileStorage.SaveFile").Str("path", path).Msg("error writing file")
		return fmt.Errorf("error writing limerick file: %w", err)
	}

	return nil
}

// ReadFile returns the bytes stored under name.
//
// Error handling:
//   - Missing file → [ErrFileNotFound].
//   - Any other I/O failure → wrapped and propagated.
func (s *limerickFileStorage) ReadFile(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	path := s.pathFor(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}

		log.Err(err).Str("func", "*limerickFileStorage.ReadFile").Str("path", path).Msg("error reading file")
		return nil, fmt.Errorf("error reading limerick file: %w", err)
	}

	return data, nil
}

func (s *limerickFileStorage) pathFor(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

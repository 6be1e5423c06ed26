package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-limerick-locker/internal/config"
	"github.com/MKhiriev/go-limerick-locker/internal/logger"
)

// Storages aggregates every persistence backend the application uses: the
// relational user repository and the directory-backed limerick file store.
type Storages struct {
	UserRepository UserRepository
	LimerickFiles  LimerickFileStorage
}

// NewStorages connects the relational store, applies pending schema
// migrations, and prepares the upload directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting user database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating user database: %w", err)
	}

	files, err := NewLimerickFileStorage(cfg.Files, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		LimerickFiles:  files,
	}, nil
}

package service

import (
	"context"

	"github.com/MKhiriev/go-limerick-locker/models"
)

// ─────────────────────────────────────────────
// Mock UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) error
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	updateDetailsFn      func(ctx context.Context, user models.User) error
	updateLimerickFn     func(ctx context.Context, username, filename string, wordcount int) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) error {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) UpdateDetails(ctx context.Context, user models.User) error {
	return m.updateDetailsFn(ctx, user)
}

func (m *mockUserRepository) UpdateLimerick(ctx context.Context, username, filename string, wordcount int) error {
	return m.updateLimerickFn(ctx, username, filename, wordcount)
}

// ─────────────────────────────────────────────
// Mock LimerickFileStorage
// ─────────────────────────────────────────────

// mockFileStorage implements store.LimerickFileStorage for unit tests.
type mockFileStorage struct {
	saveFileFn func(ctx context.Context, name string, data []byte) error
	readFileFn func(ctx context.Context, name string) ([]byte, error)
}

func (m *mockFileStorage) SaveFile(ctx context.Context, name string, data []byte) error {
	return m.saveFileFn(ctx, name, data)
}

func (m *mockFileStorage) ReadFile(ctx context.Context, name string) ([]byte, error) {
	return m.readFileFn(ctx, name)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/base64"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/service"
	"github.com/MKhiriev/go-limerick-locker/models"
	"github.com/MKhiriev/go-limerick-locker/web"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn      func(ctx context.Context, username, password string) (models.User, error)
	loginFn         func(ctx context.Context, username, password string) (models.User, error)
	createSessionFn func(ctx context.Context, username string) (models.Session, error)
	parseSessionFn  func(ctx context.Context, tokenString string) (models.Session, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	return m.registerFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateSession(ctx context.Context, username string) (models.Session, error) {
	return m.createSessionFn(ctx, username)
}

func (m *mockAuthService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	return m.parseSessionFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	getProfileFn    func(ctx context.Context, username string) (models.User, error)
	updateDetailsFn func(ctx context.Context, username, firstname, lastname, email, address string) error
}

func (m *mockProfileService) GetProfile(ctx context.Context, username string) (models.User, error) {
	return m.getProfileFn(ctx, username)
}

func (m *mockProfileService) UpdateDetails(ctx context.Context, username, firstname, lastname, email, address string) error {
	return m.updateDetailsFn(ctx, username, firstname, lastname, email, address)
}

// ─────────────────────────────────────────────
// Mock LimerickService
// ─────────────────────────────────────────────

type mockLimerickService struct {
	uploadFn   func(ctx context.Context, username, filename string, file io.Reader) (string, int, error)
	downloadFn func(ctx context.Context, username string) (string, []byte, error)
}

func (m *mockLimerickService) Upload(ctx context.Context, username, filename string, file io.Reader) (string, int, error) {
	return m.uploadFn(ctx, username, filename, file)
}

func (m *mockLimerickService) Download(ctx context.Context, username string) (string, []byte, error) {
	return m.downloadFn(ctx, username)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testTemplates parses the real embedded page templates.
func testTemplates(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := web.Templates()
	require.NoError(t, err)
	return tmpl
}

// newTestHandler builds a Handler wired to the given service mocks with
// the real embedded templates.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, testTemplates(t), logger.Nop())
}

// stubSession returns a models.Session with the given signed string and
// username, as CreateSession would produce.
func stubSession(signed, username string) models.Session {
	return models.Session{SignedString: signed, Username: username}
}

// cookieValue returns the value of the named Set-Cookie entry recorded on
// rec, or "" if the cookie was not set.
func cookieValue(rec *httptest.ResponseRecorder, name string) (string, bool) {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// flashMessage decodes the flash cookie recorded on rec.
func flashMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	value, ok := cookieValue(rec, flashCookieName)
	require.True(t, ok, "expected a flash cookie to be set")
	decoded, err := base64.URLEncoding.DecodeString(value)
	require.NoError(t, err)
	return string(decoded)
}

// requireRedirect asserts a 303 response pointing at location.
func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, location, rec.Header().Get("Location"))
}

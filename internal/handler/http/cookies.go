// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"net/http"

	"github.com/MKhiriev/go-limerick-locker/models"
)

const (
	sessionCookieName = "session"
	flashCookieName   = "flash"
)

// setSessionCookie writes the signed session token into the browser cookie.
// The cookie expires together with the token itself.
func setSessionCookie(w http.ResponseWriter, session models.Session) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if session.ExpiresAt != nil {
		cookie.Expires = session.ExpiresAt.Time
	}
	http.SetCookie(w, cookie)
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// setFlash stores a one-shot message for the next rendered page.
// The message is base64-encoded so that spaces and punctuation survive
// the cookie value grammar.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending flash message, if any, and expires its
// cookie so the message is shown exactly once.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}

	return string(decoded)
}

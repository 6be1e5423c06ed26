// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and the server-rendered pages
// of the site. Session enforcement, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/utils"
)

// session is an HTTP middleware that enforces cookie-based authentication.
//
// It reads the session cookie, validates the token it carries via
// [service.AuthService.ParseSession], and — on success — stores the
// authenticated username in the request context under [utils.UsernameCtxKey]
// before delegating to the next handler.
//
// Any failure (missing cookie, expired or tampered token) redirects the
// browser to the login page with HTTP 303 See Other. No error page is
// rendered and nothing is mutated.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Debug().Err(ErrNoSessionCookie).Send()
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ParseSession(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Msg("session validation failed")
			clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Store the authenticated username in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, session.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

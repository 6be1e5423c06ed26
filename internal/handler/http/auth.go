package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/service"
	"github.com/MKhiriev/go-limerick-locker/internal/store"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register.html", pageData{Flash: popFlash(w, r)})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	registeredUser, err := h.services.AuthService.Register(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials):
			log.Err(err).Msg("empty credentials on registration")
			setFlash(w, "Username and password are required.")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			setFlash(w, "That username already exists.")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	session, err := h.services.AuthService.CreateSession(ctx, registeredUser.Username)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, session)
	http.Redirect(w, r, "/details", http.StatusSeeOther)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", pageData{Flash: popFlash(w, r)})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	foundUser, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials),
			errors.Is(err, store.ErrNoUserWasFound),
			errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			setFlash(w, "Invalid username or password.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("username", foundUser.Username).Msg("user successfully logged in")

	session, err := h.services.AuthService.CreateSession(ctx, foundUser.Username)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, session)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

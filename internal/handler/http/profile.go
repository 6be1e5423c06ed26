package http

import (
	"net/http"

	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/utils"
	"github.com/MKhiriev/go-limerick-locker/models"
)

// pageData is the template payload for the plain form pages.
type pageData struct {
	Flash string
}

// profileData is the template payload for the profile page.
type profileData struct {
	Flash string
	User  models.User
}

func (h *Handler) detailsPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "details.html", pageData{Flash: popFlash(w, r)})
}

func (h *Handler) updateDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	firstname := r.PostFormValue("firstname")
	lastname := r.PostFormValue("lastname")
	email := r.PostFormValue("email")
	address := r.PostFormValue("address")

	if err := h.services.ProfileService.UpdateDetails(ctx, username, firstname, lastname, email, address); err != nil {
		log.Err(err).Msg("unexpected error occurred during details update")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, err := h.services.ProfileService.GetProfile(ctx, username)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during profile lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "profile.html", profileData{Flash: popFlash(w, r), User: user})
}

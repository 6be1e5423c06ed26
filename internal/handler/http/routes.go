package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
	})

	// routes behind a valid session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Get("/details", h.detailsPage)
		r.Post("/details", h.updateDetails)
		r.Get("/profile", h.profile)
		r.Post("/upload", h.upload)
		r.Get("/download", h.download)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

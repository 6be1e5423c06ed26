package http

import (
	"net/http"

	"github.com/MKhiriev/go-limerick-locker/internal/logger"
)

// render executes the named page template. The response status line has
// already been committed by the time a rendering error can surface, so the
// error is logged rather than mapped to a status code.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("template rendering failed")
	}
}

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/service"
	"github.com/MKhiriev/go-limerick-locker/internal/utils"
)

// maxUploadMemoryBytes is the in-memory threshold for multipart parsing;
// larger uploads spill to temporary files.
const maxUploadMemoryBytes = 1 << 20

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemoryBytes); err != nil {
		log.Err(err).Msg("request is not a valid multipart form")
		setFlash(w, "No file part.")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		// A part submitted with an empty filename is parsed as an ordinary
		// form value, so its presence tells "nothing selected" apart from
		// "no file part at all".
		if _, selected := r.MultipartForm.Value["file"]; selected {
			log.Err(err).Msg("no file selected")
			setFlash(w, "No file selected.")
		} else {
			log.Err(err).Msg("no file part in upload")
			setFlash(w, "No file part.")
		}
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}
	defer file.Close()

	name, wordcount, err := h.services.LimerickService.Upload(ctx, username, header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongUploadFilename):
			log.Err(err).Str("filename", header.Filename).Msg("wrong upload filename")
			setFlash(w, "Please upload the file named Limerick.txt")
			http.Redirect(w, r, "/profile", http.StatusSeeOther)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during upload")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("filename", name).Int("wordcount", wordcount).Msg("limerick uploaded")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	name, data, err := h.services.LimerickService.Download(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoUploadedFile):
			log.Err(err).Msg("no uploaded file found")
			setFlash(w, "No uploaded file found.")
			http.Redirect(w, r, "/profile", http.StatusSeeOther)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during download")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		log.Err(err).Msg("writing file to response failed")
	}
}

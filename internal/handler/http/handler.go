package http

import (
	"html/template"

	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/service"
)

type Handler struct {
	services  *service.Services
	templates *template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, templates *template.Template, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		templates: templates,
		logger:    logger,
	}
}

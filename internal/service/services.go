package service

import (
	"github.com/MKhiriev/go-limerick-locker/internal/config"
	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/store"
)

type Services struct {
	AuthService     AuthService
	ProfileService  ProfileService
	LimerickService LimerickService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg, logger),
		ProfileService:  NewProfileService(storages.UserRepository, logger),
		LimerickService: NewLimerickService(storages.UserRepository, storages.LimerickFiles, logger),
	}
}

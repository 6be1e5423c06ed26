package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/store"
	"github.com/MKhiriev/go-limerick-locker/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService backed by the given
// UserRepository.
func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile fetches the full user record for display.
//
// Propagates store.ErrNoUserWasFound when the record does not exist; with a
// valid session this only happens when the row was removed out of band.
func (p *profileService) GetProfile(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateDetails overwrites the four profile fields with their trimmed
// submitted values. All four are optional free text; blank submissions
// clear the stored values.
func (p *profileService) UpdateDetails(ctx context.Context, username, firstname, lastname, email, address string) error {
	log := logger.FromContext(ctx)

	user := models.User{
		Username:  username,
		Firstname: strings.TrimSpace(firstname),
		Lastname:  strings.TrimSpace(lastname),
		Email:     strings.TrimSpace(email),
		Address:   strings.TrimSpace(address),
	}

	if err := p.userRepository.UpdateDetails(ctx, user); err != nil {
		log.Err(err).Str("username", username).Msg("details update failed")
		return fmt.Errorf("details update failed: %w", err)
	}

	return nil
}

package service

import (
	"coursefiles/internal/repository"
)

// RegistryService tracks the broadcast audience
type RegistryService struct {
	userRepo repository.UserRepository
}

// NewRegistryService creates a new registry service
func NewRegistryService(userRepo repository.UserRepository) *RegistryService {
	return &RegistryService{userRepo: userRepo}
}

// Register records that a user has started the bot; safe to call repeatedly
func (s *RegistryService) Register(userID int64) error {
	return s.userRepo.Register(userID)
}

// Audience returns every user ever registered
func (s *RegistryService) Audience() ([]int64, error) {
	return s.userRepo.All()
}

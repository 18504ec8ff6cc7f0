package service

import (
	"rafflebot/internal/domain"
	"rafflebot/internal/repository"
)

// IdentityService handles participant identity records
type IdentityService struct {
	userRepo repository.UserRepository
}

// NewIdentityService creates a new identity service
func NewIdentityService(userRepo repository.UserRepository) *IdentityService {
	return &IdentityService{userRepo: userRepo}
}

// Exists checks if a user is already registered
func (s *IdentityService) Exists(telegramID int64) (bool, error) {
	return s.userRepo.Exists(telegramID)
}

// Register persists the user if not already known, keyed by Telegram id
func (s *IdentityService) Register(user *domain.User) error {
	return s.userRepo.Save(user)
}

// UpdateActivation flips the active flag and overwrites the display
// name. Administrative operation, never called by the ticket flow.
func (s *IdentityService) UpdateActivation(telegramID int64, fullName string, active bool) error {
	return s.userRepo.UpdateActivation(telegramID, fullName, active)
}

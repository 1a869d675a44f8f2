package service

import (
	"errors"
	"fmt"

	"github.com/edulink/mentor-service/internal/model"
	"github.com/edulink/mentor-service/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ProvisionResult reports what the provisioner did. GeneratedPassword is set
// only when a brand-new account was created; it is the single place the
// cleartext exists, so the caller must deliver it immediately.
type ProvisionResult struct {
	AccountID         string
	GeneratedPassword string
}

// AccountService promotes an approved candidate to a mentor login.
type AccountService interface {
	Provision(application *model.Application) (*ProvisionResult, error)
}

type accountService struct {
	userRepo repository.UserRepository
}

func NewAccountService(userRepo repository.UserRepository) AccountService {
	return &accountService{userRepo: userRepo}
}

// Provision upgrades an existing account in place or creates one with a
// generated password. Upgrades never touch the existing credential.
func (s *accountService) Provision(application *model.Application) (*ProvisionResult, error) {
	existing, err := s.userRepo.FindByEmail(application.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up account for %s: %w", application.Email, err)
	}

	if existing != nil {
		copyProfile(existing, application)
		if existing.Role != model.RoleMentor {
			existing.Role = model.RoleMentor
		}
		if err := s.userRepo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to upgrade account %s: %w", existing.ID, err)
		}
		log.Info().Str("accountID", existing.ID).Str("email", existing.Email).Msg("Existing account upgraded to mentor")
		return &ProvisionResult{AccountID: existing.ID}, nil
	}

	password, err := GeneratePassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash generated password: %w", err)
	}

	user := &model.User{
		ID:            uuid.NewString(),
		Email:         application.Email,
		PasswordHash:  string(hash),
		Role:          model.RoleMentor,
		EmailVerified: true,
		AccountStatus: "Active",
	}
	copyProfile(user, application)

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create mentor account for %s: %w", application.Email, err)
	}
	log.Info().Str("accountID", user.ID).Str("email", user.Email).Msg("New mentor account created")
	return &ProvisionResult{AccountID: user.ID, GeneratedPassword: password}, nil
}

func copyProfile(user *model.User, application *model.Application) {
	user.FullName = application.FullName
	user.PhoneNumber = application.PhoneNumber
	user.Specialization = application.Specialization
	user.Bio = application.Bio
	user.JobTitle = application.CurrentPosition
	user.Company = application.Company
	user.LinkedInURL = application.LinkedInURL
	user.ExperienceYears = application.YearsOfExperience
}

package service

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/printdeck/printdeck_api/internal/models"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/internal/utils"
)

var ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")

// AdminAuthService handles authentication for admin panel users.
type AdminAuthService struct {
	adminRepo *repository.AdminUserRepository
}

func NewAdminAuthService(adminRepo *repository.AdminUserRepository) *AdminAuthService {
	return &AdminAuthService{adminRepo: adminRepo}
}

// Login verifies credentials and returns a signed JWT on success.
func (s *AdminAuthService) Login(email, password string) (string, *models.AdminUser, error) {
	user, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// CreateAdmin registers a new admin user with a bcrypt-hashed password.
func (s *AdminAuthService) CreateAdmin(email, password, name string) (*models.AdminUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		IsActive:     true,
	}
	if err := s.adminRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dineres/booking-backend/models"
	"github.com/dineres/booking-backend/repositories"
	"github.com/dineres/booking-backend/utils"
)

// AuthService manages the administrative accounts used to access the API.
// These live in their own table, completely separate from booking customers.
type AuthService struct {
	admins repositories.AdminRepository
}

func NewAuthService(admins repositories.AdminRepository) *AuthService {
	return &AuthService{admins: admins}
}

// Register creates an administrative account with a bcrypt-hashed password.
// Every account gets the admin role.
func (s *AuthService) Register(name, email, password string) (*models.AdminAccount, error) {
	_, err := s.admins.FindByEmail(email)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.AdminAccount{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := s.admins.Create(account); err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New admin account registered: %s", account.Email)
	return account, nil
}

// Login verifies the credentials and issues a signed bearer token carrying
// the account email and role.
func (s *AuthService) Login(email, password string) (string, error) {
	account, err := s.admins.FindByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(account.Email, account.Role)
	if err != nil {
		return "", err
	}

	utils.InfoLogger.Printf("Login successful for admin: %s", account.Email)
	return token, nil
}

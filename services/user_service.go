package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dineres/booking-backend/models"
	"github.com/dineres/booking-backend/repositories"
	"github.com/dineres/booking-backend/utils"
)

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(user *models.User) (*models.User, error) {
	utils.InfoLogger.Printf("Creating new user with email: %s", user.Email)

	_, err := s.users.FindByEmail(user.Email)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, user.Email)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if err := validateUser(user); err != nil {
		return nil, err
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("User created with ID: %d", user.ID)
	return user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	return s.users.FindByEmail(email)
}

func (s *UserService) List() ([]models.User, error) {
	return s.users.FindAll()
}

func (s *UserService) Update(id uint, details models.User) (*models.User, error) {
	utils.InfoLogger.Printf("Updating user with ID: %d", id)

	existing, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	if existing.Email != details.Email {
		other, err := s.users.FindByEmail(details.Email)
		if err == nil && other.ID != id {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, details.Email)
		}
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}

	existing.Name = details.Name
	existing.Email = details.Email
	existing.Phone = details.Phone

	if err := validateUser(existing); err != nil {
		return nil, err
	}

	if err := s.users.Save(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *UserService) Delete(id uint) error {
	utils.InfoLogger.Printf("Deleting user with ID: %d", id)

	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	return s.users.Delete(user)
}

func (s *UserService) Exists(id uint) (bool, error) {
	return s.users.ExistsByID(id)
}

func (s *UserService) ExistsByEmail(email string) (bool, error) {
	_, err := s.users.FindByEmail(email)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func validateUser(user *models.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return fmt.Errorf("%w: user name cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("%w: user email cannot be empty", ErrValidation)
	}
	if !strings.Contains(user.Email, "@") {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if strings.TrimSpace(user.Phone) != "" {
		digits := 0
		for _, r := range user.Phone {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits < 10 {
			return fmt.Errorf("%w: phone number must contain at least 10 digits", ErrValidation)
		}
	}
	return nil
}

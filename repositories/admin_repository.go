package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dineres/booking-backend/models"
)

type AdminRepository interface {
	Create(account *models.AdminAccount) error
	FindByEmail(email string) (*models.AdminAccount, error)
}

type GormAdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

func (r *GormAdminRepository) Create(account *models.AdminAccount) error {
	return r.db.Create(account).Error
}

func (r *GormAdminRepository) FindByEmail(email string) (*models.AdminAccount, error) {
	var account models.AdminAccount
	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

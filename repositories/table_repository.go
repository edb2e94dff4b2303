package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dineres/booking-backend/models"
)

type TableRepository interface {
	Create(table *models.Table) error
	FindByID(id uint) (*models.Table, error)
	FindByNumber(number int) (*models.Table, error)
	FindAll() ([]models.Table, error)
	Save(table *models.Table) error
	Delete(table *models.Table) error
	ExistsByID(id uint) (bool, error)
}

type GormTableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) Create(table *models.Table) error {
	return r.db.Create(table).Error
}

func (r *GormTableRepository) FindByID(id uint) (*models.Table, error) {
	var table models.Table
	if err := r.db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

func (r *GormTableRepository) FindByNumber(number int) (*models.Table, error) {
	var table models.Table
	if err := r.db.Where("number = ?", number).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

func (r *GormTableRepository) FindAll() ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *GormTableRepository) Save(table *models.Table) error {
	return r.db.Save(table).Error
}

func (r *GormTableRepository) Delete(table *models.Table) error {
	return r.db.Delete(table).Error
}

func (r *GormTableRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Table{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

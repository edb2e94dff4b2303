package services

import (
	"errors"
	"fmt"

	"github.com/dineres/booking-backend/models"
	"github.com/dineres/booking-backend/repositories"
	"github.com/dineres/booking-backend/utils"
)

// maxTableCapacity bounds how many seats a single table may have.
const maxTableCapacity = 10

type TableService struct {
	tables repositories.TableRepository
}

func NewTableService(tables repositories.TableRepository) *TableService {
	return &TableService{tables: tables}
}

func (s *TableService) Create(table *models.Table) (*models.Table, error) {
	utils.InfoLogger.Printf("Creating new table with number: %d", table.Number)

	if err := validateTable(table); err != nil {
		return nil, err
	}
	if err := s.tables.Create(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) GetByID(id uint) (*models.Table, error) {
	return s.tables.FindByID(id)
}

func (s *TableService) GetByNumber(number int) (*models.Table, error) {
	return s.tables.FindByNumber(number)
}

func (s *TableService) List() ([]models.Table, error) {
	return s.tables.FindAll()
}

func (s *TableService) Update(id uint, details models.Table) (*models.Table, error) {
	utils.InfoLogger.Printf("Updating table with ID: %d", id)

	table, err := s.tables.FindByID(id)
	if err != nil {
		return nil, err
	}

	table.Number = details.Number
	table.Capacity = details.Capacity

	if err := validateTable(table); err != nil {
		return nil, err
	}
	if err := s.tables.Save(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) Delete(id uint) error {
	utils.InfoLogger.Printf("Deleting table with ID: %d", id)

	table, err := s.tables.FindByID(id)
	if err != nil {
		return err
	}
	return s.tables.Delete(table)
}

func (s *TableService) Exists(id uint) (bool, error) {
	return s.tables.ExistsByID(id)
}

func (s *TableService) ExistsByNumber(number int) (bool, error) {
	_, err := s.tables.FindByNumber(number)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func validateTable(table *models.Table) error {
	if table.Number <= 0 {
		return fmt.Errorf("%w: table number must be positive", ErrValidation)
	}
	if table.Capacity <= 0 {
		return fmt.Errorf("%w: table capacity must be positive", ErrValidation)
	}
	if table.Capacity > maxTableCapacity {
		return fmt.Errorf("%w: table capacity cannot exceed %d", ErrValidation, maxTableCapacity)
	}
	return nil
}

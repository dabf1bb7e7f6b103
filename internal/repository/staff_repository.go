package repository

import (
	"smart_canteen/internal/models"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(staff *models.Staff) error
	GetByUsername(username string) (*models.Staff, error)
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(staff *models.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepository) GetByUsername(username string) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.Where("username = ?", username).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

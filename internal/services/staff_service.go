package services

import (
	"errors"

	"smart_canteen/internal/models"
	"smart_canteen/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type StaffService interface {
	CreateStaff(staff *models.Staff, password string) error
	VerifyCredentials(username, password string) (*models.Staff, error)
}

type staffService struct {
	staffRepo repository.StaffRepository
}

func NewStaffService(staffRepo repository.StaffRepository) StaffService {
	return &staffService{staffRepo: staffRepo}
}

func (s *staffService) CreateStaff(staff *models.Staff, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff.PasswordHash = string(hashedPassword)
	return s.staffRepo.Create(staff)
}

// VerifyCredentials checks a staff username/password pair. Unknown accounts,
// inactive accounts and wrong passwords all fail the same way.
func (s *staffService) VerifyCredentials(username, password string) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !staff.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return staff, nil
}

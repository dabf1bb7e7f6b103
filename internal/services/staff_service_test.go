package services

import (
	"errors"
	"testing"

	"smart_canteen/internal/models"
	"smart_canteen/internal/repository"
)

func TestStaffService_VerifyCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStaffService(repository.NewStaffRepository(db))

	staff := &models.Staff{Username: "staff", Email: "staff@canteen.com", IsActive: true}
	if err := svc.CreateStaff(staff, "staff123"); err != nil {
		t.Fatalf("CreateStaff() error = %v", err)
	}
	if staff.PasswordHash == "" || staff.PasswordHash == "staff123" {
		t.Fatal("password was not hashed")
	}

	if _, err := svc.VerifyCredentials("staff", "staff123"); err != nil {
		t.Errorf("VerifyCredentials(correct) error = %v", err)
	}
	if _, err := svc.VerifyCredentials("staff", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("VerifyCredentials(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.VerifyCredentials("nobody", "staff123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("VerifyCredentials(unknown user) error = %v, want ErrInvalidCredentials", err)
	}

	if err := db.Model(&models.Staff{}).Where("id = ?", staff.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to deactivate staff: %v", err)
	}
	if _, err := svc.VerifyCredentials("staff", "staff123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("VerifyCredentials(inactive) error = %v, want ErrInvalidCredentials", err)
	}
}

package repositories

import (
	"errors"

	"upipay_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAdminNotFound = errors.New("admin user not found")

type AdminRepository interface {
	Create(admin *models.AdminUser) error
	FindByEmail(email string) (*models.AdminUser, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *models.AdminUser) error {
	return r.db.Create(admin).Error
}

func (r *adminRepository) FindByEmail(email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

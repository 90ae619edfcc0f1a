package repositories

import (
	"errors"

	"upipay_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMerchantNotFound = errors.New("merchant not found")
)

type MerchantRepository interface {
	Insert(upi *models.UpiID) error
	FindByID(id string) (*models.UpiID, error)
	// FindByAddress matches case-sensitively and ignores soft-deleted rows.
	FindByAddress(address string) (*models.UpiID, error)
	// FindByAddressAny includes soft-deleted rows, so callers can tell a
	// retained-but-deleted identifier apart from one that never existed.
	FindByAddressAny(address string) (*models.UpiID, error)
	// ExistsByAddress includes soft-deleted rows, so a retained duplicate
	// surfaces as a conflict instead of being silently re-registered.
	ExistsByAddress(address string) (bool, error)
	// List returns newest-first; soft-deleted rows only when includeDeleted.
	List(includeDeleted bool) ([]models.UpiID, error)
	// ListAcceptingPayments returns the public payer-facing listing.
	ListAcceptingPayments() ([]models.UpiID, error)
	Update(id string, patch map[string]interface{}) error
}

type merchantRepository struct {
	db *gorm.DB
}

func NewMerchantRepository(db *gorm.DB) MerchantRepository {
	return &merchantRepository{db: db}
}

func (r *merchantRepository) Insert(upi *models.UpiID) error {
	return r.db.Create(upi).Error
}

func (r *merchantRepository) FindByID(id string) (*models.UpiID, error) {
	var upi models.UpiID
	err := r.db.First(&upi, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, err
	}
	return &upi, nil
}

func (r *merchantRepository) FindByAddress(address string) (*models.UpiID, error) {
	var upi models.UpiID
	err := r.db.Where("upi_id = ? AND deleted_at IS NULL", address).First(&upi).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, err
	}
	return &upi, nil
}

func (r *merchantRepository) FindByAddressAny(address string) (*models.UpiID, error) {
	var upi models.UpiID
	err := r.db.Where("upi_id = ?", address).First(&upi).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, err
	}
	return &upi, nil
}

func (r *merchantRepository) ExistsByAddress(address string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UpiID{}).Where("upi_id = ?", address).Count(&count).Error
	return count > 0, err
}

func (r *merchantRepository) List(includeDeleted bool) ([]models.UpiID, error) {
	var upis []models.UpiID
	query := r.db.Order("created_at DESC")
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}
	err := query.Find(&upis).Error
	return upis, err
}

func (r *merchantRepository) ListAcceptingPayments() ([]models.UpiID, error) {
	var upis []models.UpiID
	err := r.db.
		Where("is_active = ? AND blocked_at IS NULL AND deleted_at IS NULL", true).
		Order("created_at DESC").
		Find(&upis).Error
	return upis, err
}

func (r *merchantRepository) Update(id string, patch map[string]interface{}) error {
	result := r.db.Model(&models.UpiID{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMerchantNotFound
	}
	return nil
}

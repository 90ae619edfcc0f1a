package repositories

import (
	"encoding/json"

	"upipay_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(entry *models.UpiAuditLog) error
	// Record marshals the old/new snapshots and appends an entry.
	Record(upiID, action string, oldValues, newValues interface{}, actionBy string) error
	ListByUpiID(upiID string) ([]models.UpiAuditLog, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(entry *models.UpiAuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditLogRepository) Record(upiID, action string, oldValues, newValues interface{}, actionBy string) error {
	entry := &models.UpiAuditLog{
		UpiIDRef: upiID,
		Action:   action,
		ActionBy: actionBy,
	}

	if oldValues != nil {
		raw, err := json.Marshal(oldValues)
		if err != nil {
			return err
		}
		entry.OldValues = datatypes.JSON(raw)
	}
	if newValues != nil {
		raw, err := json.Marshal(newValues)
		if err != nil {
			return err
		}
		entry.NewValues = datatypes.JSON(raw)
	}

	return r.Create(entry)
}

func (r *auditLogRepository) ListByUpiID(upiID string) ([]models.UpiAuditLog, error) {
	var entries []models.UpiAuditLog
	err := r.db.Where("upi_id_ref = ?", upiID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

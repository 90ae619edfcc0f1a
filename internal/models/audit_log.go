package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UpiAuditLog is an append-only record of merchant identifier mutations.
// OldValues/NewValues hold JSON snapshots of the changed fields.
type UpiAuditLog struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	UpiIDRef  string         `gorm:"column:upi_id_ref;index;not null" json:"upi_id_ref"`
	Action    string         `gorm:"not null" json:"action"`
	OldValues datatypes.JSON `json:"old_values,omitempty"`
	NewValues datatypes.JSON `json:"new_values,omitempty"`
	ActionBy  string         `json:"action_by,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func (UpiAuditLog) TableName() string {
	return "upi_audit_logs"
}

func (l *UpiAuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

const (
	AuditActionRegister   = "REGISTER"
	AuditActionSetActive  = "SET_ACTIVE"
	AuditActionBlock      = "BLOCK"
	AuditActionUnblock    = "UNBLOCK"
	AuditActionSoftDelete = "SOFT_DELETE"
)

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpiID is a registered merchant payment address. Rows are never
// hard-deleted: DeletedAt marks soft deletion and BlockedAt marks a block,
// both orthogonal to the IsActive listing flag.
type UpiID struct {
	BaseModel
	UpiID            string          `gorm:"uniqueIndex;not null" json:"upi_id"`
	MerchantName     string          `gorm:"not null" json:"merchant_name"`
	StoreName        string          `json:"store_name"`
	MerchantCategory string          `gorm:"default:general" json:"merchant_category"`
	BusinessType     string          `gorm:"default:retail" json:"business_type"`
	DailyLimit       decimal.Decimal `gorm:"type:numeric(12,2)" json:"daily_limit"`
	IsActive         bool            `gorm:"default:true" json:"is_active"`
	BlockedAt        *time.Time      `json:"blocked_at,omitempty"`
	DeletedAt        *time.Time      `json:"deleted_at,omitempty"`
}

func (UpiID) TableName() string {
	return "upi_ids"
}

// AcceptsPayments reports whether the identifier is a valid transaction
// target: active, not blocked, not soft-deleted.
func (u *UpiID) AcceptsPayments() bool {
	return u.IsActive && u.BlockedAt == nil && u.DeletedAt == nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a payment collection attempt. Reference is the external
// handle shared between client, store and broadcast channel; it is unique,
// immutable and never reused. Amount is fixed-point decimal, immutable
// after creation.
type Transaction struct {
	BaseModel
	Reference    string            `gorm:"uniqueIndex;not null" json:"reference"`
	Amount       decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"amount"`
	UpiID        string            `gorm:"index;not null" json:"upi_id"`
	MerchantName string            `json:"merchant_name"`
	Status       TransactionStatus `gorm:"default:pending;index" json:"status"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Description   string `json:"description,omitempty"`
	PaymentApp    string `json:"payment_app,omitempty"`

	CompletedAt *time.Time `json:"completed_at,omitempty"`
	FailedAt    *time.Time `json:"failed_at,omitempty"`
	VerifiedBy  string     `json:"verified_by,omitempty"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

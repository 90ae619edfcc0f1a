package dto

import (
	"time"

	"upipay_backend/internal/models"
)

type CreateTransactionRequest struct {
	Amount        string `json:"amount" binding:"required" validate:"required"`
	UpiID         string `json:"upi_id" binding:"required" validate:"required,min=5,max=50,upi_id"`
	CustomerName  string `json:"customer_name" validate:"max=100"`
	CustomerPhone string `json:"customer_phone" validate:"max=20"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	Description   string `json:"description" validate:"max=255"`
	PaymentApp    string `json:"payment_app" validate:"max=50"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required" validate:"required,oneof=success failed expired"`
}

type WebhookRequest struct {
	Reference string `json:"reference" binding:"required" validate:"required"`
	Status    string `json:"status" binding:"required" validate:"required,oneof=success failed expired"`
	Signature string `json:"signature" binding:"required" validate:"required"`
}

type TransactionResponse struct {
	ID            string                   `json:"id"`
	Reference     string                   `json:"reference"`
	Amount        string                   `json:"amount"`
	UpiID         string                   `json:"upi_id"`
	MerchantName  string                   `json:"merchant_name"`
	Status        models.TransactionStatus `json:"status"`
	CustomerName  string                   `json:"customer_name,omitempty"`
	CustomerPhone string                   `json:"customer_phone,omitempty"`
	CustomerEmail string                   `json:"customer_email,omitempty"`
	Description   string                   `json:"description,omitempty"`
	PaymentApp    string                   `json:"payment_app,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	CompletedAt   *time.Time               `json:"completed_at,omitempty"`
	FailedAt      *time.Time               `json:"failed_at,omitempty"`
	VerifiedBy    string                   `json:"verified_by,omitempty"`
	VerifiedAt    *time.Time               `json:"verified_at,omitempty"`

	// Set on creation only: what the payer needs to render the QR and run
	// the countdown.
	PaymentLink   string `json:"payment_link,omitempty"`
	WindowSeconds int    `json:"window_seconds,omitempty"`
}

func NewTransactionResponse(tx *models.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:            tx.ID,
		Reference:     tx.Reference,
		Amount:        tx.Amount.StringFixed(2),
		UpiID:         tx.UpiID,
		MerchantName:  tx.MerchantName,
		Status:        tx.Status,
		CustomerName:  tx.CustomerName,
		CustomerPhone: tx.CustomerPhone,
		CustomerEmail: tx.CustomerEmail,
		Description:   tx.Description,
		PaymentApp:    tx.PaymentApp,
		CreatedAt:     tx.CreatedAt,
		CompletedAt:   tx.CompletedAt,
		FailedAt:      tx.FailedAt,
		VerifiedBy:    tx.VerifiedBy,
		VerifiedAt:    tx.VerifiedAt,
	}
}

func NewTransactionListResponse(txs []models.Transaction) []*TransactionResponse {
	out := make([]*TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, NewTransactionResponse(&txs[i]))
	}
	return out
}

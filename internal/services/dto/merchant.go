package dto

import (
	"time"

	"upipay_backend/internal/models"
)

type RegisterUpiRequest struct {
	UpiID            string `json:"upi_id" binding:"required" validate:"required,min=5,max=50,upi_id"`
	MerchantName     string `json:"merchant_name" binding:"required" validate:"required,min=2,max=100"`
	StoreName        string `json:"store_name" validate:"max=100"`
	MerchantCategory string `json:"merchant_category" validate:"max=50"`
	BusinessType     string `json:"business_type" validate:"max=50"`
	DailyLimit       string `json:"daily_limit"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type MerchantResponse struct {
	ID               string     `json:"id"`
	UpiID            string     `json:"upi_id"`
	MerchantName     string     `json:"merchant_name"`
	StoreName        string     `json:"store_name"`
	MerchantCategory string     `json:"merchant_category"`
	BusinessType     string     `json:"business_type"`
	DailyLimit       string     `json:"daily_limit"`
	IsActive         bool       `json:"is_active"`
	AcceptsPayments  bool       `json:"accepts_payments"`
	BlockedAt        *time.Time `json:"blocked_at,omitempty"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func NewMerchantResponse(upi *models.UpiID) *MerchantResponse {
	return &MerchantResponse{
		ID:               upi.ID,
		UpiID:            upi.UpiID,
		MerchantName:     upi.MerchantName,
		StoreName:        upi.StoreName,
		MerchantCategory: upi.MerchantCategory,
		BusinessType:     upi.BusinessType,
		DailyLimit:       upi.DailyLimit.StringFixed(2),
		IsActive:         upi.IsActive,
		AcceptsPayments:  upi.AcceptsPayments(),
		BlockedAt:        upi.BlockedAt,
		DeletedAt:        upi.DeletedAt,
		CreatedAt:        upi.CreatedAt,
		UpdatedAt:        upi.UpdatedAt,
	}
}

func NewMerchantListResponse(upis []models.UpiID) []*MerchantResponse {
	out := make([]*MerchantResponse, 0, len(upis))
	for i := range upis {
		out = append(out, NewMerchantResponse(&upis[i]))
	}
	return out
}

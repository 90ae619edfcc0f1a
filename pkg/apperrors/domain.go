package apperrors

import "net/http"

// Factories for domain errors raised by the merchant registry and the
// transaction lifecycle. Handlers translate these to HTTP verbatim.

// ErrMerchantNotFound - unknown UPI address (404).
func ErrMerchantNotFound(address string) *AppError {
	return New(CodeNotFound, "merchant", "Merchant not found", http.StatusNotFound).
		WithDetails(map[string]string{"upi_id": address})
}

// ErrMerchantBlocked - target identifier has a blocked_at timestamp (403).
func ErrMerchantBlocked(address string) *AppError {
	return New(CodeMerchantBlocked, "merchant", "Merchant is blocked and cannot accept payments", http.StatusForbidden).
		WithDetails(map[string]string{"upi_id": address})
}

// ErrMerchantInactive - soft-deleted or deactivated identifier (403).
func ErrMerchantInactive(address string) *AppError {
	return New(CodeMerchantInactive, "merchant", "Merchant is not accepting payments", http.StatusForbidden).
		WithDetails(map[string]string{"upi_id": address})
}

// ErrDuplicateMerchant - address collision, including soft-deleted rows (409).
func ErrDuplicateMerchant(address string) *AppError {
	return New(CodeAlreadyExists, "merchant", "UPI ID is already registered", http.StatusConflict).
		WithDetails(map[string]string{"upi_id": address})
}

// ErrTransactionNotFound - unknown reference (404).
func ErrTransactionNotFound(reference string) *AppError {
	return New(CodeNotFound, "transaction", "Transaction not found", http.StatusNotFound).
		WithDetails(map[string]string{"reference": reference})
}

// ErrIllegalTransition - attempt to move a terminal transaction to a
// different status (409). Logged as a possible replay or bug.
func ErrIllegalTransition(current, requested string) *AppError {
	return New(CodeIllegalTransition, "transaction", "Transaction is already finalized", http.StatusConflict).
		WithDetails(map[string]string{"current_status": current, "requested_status": requested})
}

// ErrDailyLimitExceeded - same-day transaction sum would exceed the
// merchant's ceiling (422).
func ErrDailyLimitExceeded(address string) *AppError {
	return New(CodeLimitExceeded, "transaction", "Merchant daily transaction limit exceeded", http.StatusUnprocessableEntity).
		WithDetails(map[string]string{"upi_id": address})
}

// ErrAmountTooLarge - single transaction above the configured ceiling (422).
func ErrAmountTooLarge(max string) *AppError {
	return New(CodeLimitExceeded, "transaction", "Amount exceeds the per-transaction ceiling", http.StatusUnprocessableEntity).
		WithDetails(map[string]string{"max_amount": max})
}

// ErrInvalidAmount - amount fails to parse as a positive decimal with at
// most two fraction digits (400).
func ErrInvalidAmount(reason string) *AppError {
	return New(CodeValidationFailed, "transaction", "Invalid amount: "+reason, http.StatusBadRequest)
}

// ErrInvalidStatus - unknown target status value (400).
func ErrInvalidStatus(status string) *AppError {
	return New(CodeValidationFailed, "transaction", "Invalid status value", http.StatusBadRequest).
		WithDetails(map[string]string{"status": status})
}

// ErrInvalidWebhookSignature - webhook payload failed HMAC verification (401).
var ErrInvalidWebhookSignature = New(
	CodeInvalidSignature,
	"webhook",
	"Webhook signature verification failed",
	http.StatusUnauthorized,
)

// ErrInvalidCredentials - bad email/password or PIN (401).
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

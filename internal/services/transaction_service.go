package services

import (
	"time"

	"upipay_backend/internal/logger"
	"upipay_backend/internal/models"
	"upipay_backend/internal/repositories"
	"upipay_backend/internal/services/dto"
	"upipay_backend/internal/upi"
	"upipay_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
)

// TransactionConfig carries the lifecycle policy knobs resolved from
// application config.
type TransactionConfig struct {
	// MaxAmount is the per-transaction ceiling.
	MaxAmount decimal.Decimal
	// Window is how long a pending transaction accepts confirmation.
	Window time.Duration
	// ExpiryGrace is added to Window before the sweeper durably expires a
	// pending record, so a payment racing the client countdown still lands.
	ExpiryGrace time.Duration
}

type TransactionService interface {
	Create(req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	// Transition moves a transaction to a terminal status and publishes the
	// change to live subscribers before returning. Re-delivery of the same
	// terminal status is a no-op; a different one is rejected.
	Transition(reference string, status models.TransactionStatus, actor string) (*dto.TransactionResponse, error)
	Get(reference string) (*dto.TransactionResponse, error)
	List() ([]*dto.TransactionResponse, error)
	// Expire is the client-triggered durable expiry of its own session.
	Expire(reference string) (*dto.TransactionResponse, error)
	// ExpireStale durably expires pending transactions older than the
	// window plus grace. Returns how many were expired.
	ExpireStale() (int, error)
}

type transactionService struct {
	txRepo       repositories.TransactionRepository
	merchantRepo repositories.MerchantRepository
	publisher    StatusPublisher
	clock        Clock
	cfg          TransactionConfig
}

func NewTransactionService(
	txRepo repositories.TransactionRepository,
	merchantRepo repositories.MerchantRepository,
	publisher StatusPublisher,
	clock Clock,
	cfg TransactionConfig,
) TransactionService {
	return &transactionService{
		txRepo:       txRepo,
		merchantRepo: merchantRepo,
		publisher:    publisher,
		clock:        clock,
		cfg:          cfg,
	}
}

func (s *transactionService) Create(req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	// Resolved including soft-deleted rows: a retained identifier refuses
	// payments as inactive rather than pretending it never existed.
	merchant, err := s.merchantRepo.FindByAddressAny(req.UpiID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMerchantNotFound) {
			return nil, apperrors.ErrMerchantNotFound(req.UpiID)
		}
		return nil, apperrors.InternalError(err)
	}

	if merchant.BlockedAt != nil {
		return nil, apperrors.ErrMerchantBlocked(req.UpiID)
	}
	if merchant.DeletedAt != nil || !merchant.IsActive {
		return nil, apperrors.ErrMerchantInactive(req.UpiID)
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(s.cfg.MaxAmount) {
		return nil, apperrors.ErrAmountTooLarge(s.cfg.MaxAmount.StringFixed(2))
	}

	if err := s.checkDailyCeiling(merchant, amount); err != nil {
		return nil, err
	}

	reference, err := NewReference()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	tx := &models.Transaction{
		Reference:     reference,
		Amount:        amount,
		UpiID:         merchant.UpiID,
		MerchantName:  merchant.MerchantName,
		Status:        models.TransactionStatusPending,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Description:   req.Description,
		PaymentApp:    req.PaymentApp,
	}
	tx.CreatedAt = s.clock.Now()

	if err := s.txRepo.Insert(tx); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewTransactionResponse(tx)
	resp.PaymentLink = upi.PaymentLink(merchant.UpiID, merchant.MerchantName, amount, reference)
	resp.WindowSeconds = int(s.cfg.Window.Seconds())
	return resp, nil
}

func (s *transactionService) Transition(reference string, status models.TransactionStatus, actor string) (*dto.TransactionResponse, error) {
	if !status.IsValid() || !status.IsTerminal() {
		return nil, apperrors.ErrInvalidStatus(string(status))
	}

	tx, err := s.findByReference(reference)
	if err != nil {
		return nil, err
	}

	if tx.Status.IsTerminal() {
		if tx.Status == status {
			// At-least-once webhook delivery: absorb the replay.
			return dto.NewTransactionResponse(tx), nil
		}
		logger.Warn("rejected reverse transition",
			"reference", reference, "current", tx.Status, "requested", status)
		return nil, apperrors.ErrIllegalTransition(string(tx.Status), string(status))
	}

	now := s.clock.Now()
	patch := map[string]interface{}{"status": status}
	tx.Status = status

	switch status {
	case models.TransactionStatusSuccess:
		patch["completed_at"] = now
		tx.CompletedAt = &now
	case models.TransactionStatusFailed, models.TransactionStatusExpired:
		patch["failed_at"] = now
		tx.FailedAt = &now
	}

	if actor != "" {
		patch["verified_by"] = actor
		patch["verified_at"] = now
		tx.VerifiedBy = actor
		tx.VerifiedAt = &now
	}

	if err := s.txRepo.Update(reference, patch); err != nil {
		if apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.ErrTransactionNotFound(reference)
		}
		return nil, apperrors.InternalError(err)
	}

	// Synchronous: by the time Transition returns, subscribers were
	// notified (or attempted). The durable record stays the system of
	// record either way.
	s.publisher.PublishStatus(reference, status, now)

	return dto.NewTransactionResponse(tx), nil
}

func (s *transactionService) Get(reference string) (*dto.TransactionResponse, error) {
	tx, err := s.findByReference(reference)
	if err != nil {
		return nil, err
	}
	return dto.NewTransactionResponse(tx), nil
}

func (s *transactionService) List() ([]*dto.TransactionResponse, error) {
	txs, err := s.txRepo.List()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTransactionListResponse(txs), nil
}

func (s *transactionService) Expire(reference string) (*dto.TransactionResponse, error) {
	return s.Transition(reference, models.TransactionStatusExpired, "")
}

func (s *transactionService) ExpireStale() (int, error) {
	cutoff := s.clock.Now().Add(-(s.cfg.Window + s.cfg.ExpiryGrace))
	stale, err := s.txRepo.ListPendingCreatedBefore(cutoff)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	expired := 0
	for i := range stale {
		if _, err := s.Transition(stale[i].Reference, models.TransactionStatusExpired, ""); err != nil {
			// A confirmation can race the sweep; the terminal check inside
			// Transition already handled it, anything else is logged.
			logger.Warn("expiry sweep skipped transaction",
				"reference", stale[i].Reference, "error", err.Error())
			continue
		}
		expired++
	}
	return expired, nil
}

func (s *transactionService) findByReference(reference string) (*models.Transaction, error) {
	tx, err := s.txRepo.FindByReference(reference)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.ErrTransactionNotFound(reference)
		}
		return nil, apperrors.InternalError(err)
	}
	return tx, nil
}

func (s *transactionService) checkDailyCeiling(merchant *models.UpiID, amount decimal.Decimal) error {
	now := s.clock.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	spent, err := s.txRepo.SumAmountSince(merchant.UpiID, dayStart)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if spent.Add(amount).GreaterThan(merchant.DailyLimit) {
		return apperrors.ErrDailyLimitExceeded(merchant.UpiID)
	}
	return nil
}

// parseAmount enforces the decimal contract: positive, at most two
// fraction digits, never a float.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.ErrInvalidAmount("not a decimal number")
	}
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidAmount("must be greater than zero")
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, apperrors.ErrInvalidAmount("at most two decimal places allowed")
	}
	return amount, nil
}

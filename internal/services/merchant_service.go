package services

import (
	"upipay_backend/internal/logger"
	"upipay_backend/internal/models"
	"upipay_backend/internal/repositories"
	"upipay_backend/internal/services/dto"
	"upipay_backend/internal/validator"
	"upipay_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
)

var defaultDailyLimit = decimal.NewFromInt(50000)

type MerchantService interface {
	Register(req *dto.RegisterUpiRequest, actor string) (*dto.MerchantResponse, error)
	List(includeDeleted bool) ([]*dto.MerchantResponse, error)
	// ListPublic returns only identifiers currently accepting payments.
	ListPublic() ([]*dto.MerchantResponse, error)
	Lookup(address string) (*dto.MerchantResponse, error)
	SetActive(id string, active bool, actor string) (*dto.MerchantResponse, error)
	Block(id string, actor string) (*dto.MerchantResponse, error)
	Unblock(id string, actor string) (*dto.MerchantResponse, error)
	SoftDelete(id string, actor string) (*dto.MerchantResponse, error)
	AuditTrail(id string) ([]models.UpiAuditLog, error)
}

type merchantService struct {
	merchantRepo repositories.MerchantRepository
	auditRepo    repositories.AuditLogRepository
	clock        Clock
}

func NewMerchantService(
	merchantRepo repositories.MerchantRepository,
	auditRepo repositories.AuditLogRepository,
	clock Clock,
) MerchantService {
	return &merchantService{
		merchantRepo: merchantRepo,
		auditRepo:    auditRepo,
		clock:        clock,
	}
}

func (s *merchantService) Register(req *dto.RegisterUpiRequest, actor string) (*dto.MerchantResponse, error) {
	if !validator.IsValidUpiAddress(req.UpiID) {
		return nil, apperrors.ValidationError(map[string]string{
			"upi_id": "must be a valid UPI ID, e.g. username@upi",
		})
	}

	// Soft-deleted rows are retained for audit, so a collision with one is
	// surfaced as a conflict rather than silently overwritten.
	exists, err := s.merchantRepo.ExistsByAddress(req.UpiID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateMerchant(req.UpiID)
	}

	dailyLimit := defaultDailyLimit
	if req.DailyLimit != "" {
		dailyLimit, err = decimal.NewFromString(req.DailyLimit)
		if err != nil || dailyLimit.IsNegative() || dailyLimit.IsZero() {
			return nil, apperrors.ValidationError(map[string]string{
				"daily_limit": "must be a positive decimal",
			})
		}
	}

	category := req.MerchantCategory
	if category == "" {
		category = "general"
	}
	businessType := req.BusinessType
	if businessType == "" {
		businessType = "retail"
	}

	upi := &models.UpiID{
		UpiID:            req.UpiID,
		MerchantName:     req.MerchantName,
		StoreName:        req.StoreName,
		MerchantCategory: category,
		BusinessType:     businessType,
		DailyLimit:       dailyLimit,
		IsActive:         true,
	}

	if err := s.merchantRepo.Insert(upi); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.audit(upi.ID, models.AuditActionRegister, nil, upi, actor)

	return dto.NewMerchantResponse(upi), nil
}

func (s *merchantService) List(includeDeleted bool) ([]*dto.MerchantResponse, error) {
	upis, err := s.merchantRepo.List(includeDeleted)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewMerchantListResponse(upis), nil
}

func (s *merchantService) ListPublic() ([]*dto.MerchantResponse, error) {
	upis, err := s.merchantRepo.ListAcceptingPayments()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewMerchantListResponse(upis), nil
}

func (s *merchantService) Lookup(address string) (*dto.MerchantResponse, error) {
	upi, err := s.merchantRepo.FindByAddress(address)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMerchantNotFound) {
			return nil, apperrors.ErrMerchantNotFound(address)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewMerchantResponse(upi), nil
}

func (s *merchantService) SetActive(id string, active bool, actor string) (*dto.MerchantResponse, error) {
	upi, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	if upi.IsActive == active {
		return dto.NewMerchantResponse(upi), nil
	}

	old := map[string]interface{}{"is_active": upi.IsActive}
	if err := s.merchantRepo.Update(id, map[string]interface{}{"is_active": active}); err != nil {
		return nil, apperrors.InternalError(err)
	}
	upi.IsActive = active

	s.audit(id, models.AuditActionSetActive, old, map[string]interface{}{"is_active": active}, actor)

	return dto.NewMerchantResponse(upi), nil
}

func (s *merchantService) Block(id string, actor string) (*dto.MerchantResponse, error) {
	upi, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	// Idempotent: a second block keeps the original timestamp.
	if upi.BlockedAt != nil {
		return dto.NewMerchantResponse(upi), nil
	}

	now := s.clock.Now()
	if err := s.merchantRepo.Update(id, map[string]interface{}{"blocked_at": now}); err != nil {
		return nil, apperrors.InternalError(err)
	}
	upi.BlockedAt = &now

	s.audit(id, models.AuditActionBlock,
		map[string]interface{}{"blocked_at": nil},
		map[string]interface{}{"blocked_at": now}, actor)

	return dto.NewMerchantResponse(upi), nil
}

func (s *merchantService) Unblock(id string, actor string) (*dto.MerchantResponse, error) {
	upi, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	if upi.BlockedAt == nil {
		return dto.NewMerchantResponse(upi), nil
	}

	old := map[string]interface{}{"blocked_at": upi.BlockedAt}
	if err := s.merchantRepo.Update(id, map[string]interface{}{"blocked_at": nil}); err != nil {
		return nil, apperrors.InternalError(err)
	}
	upi.BlockedAt = nil

	s.audit(id, models.AuditActionUnblock, old, map[string]interface{}{"blocked_at": nil}, actor)

	return dto.NewMerchantResponse(upi), nil
}

func (s *merchantService) SoftDelete(id string, actor string) (*dto.MerchantResponse, error) {
	upi, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	if upi.DeletedAt != nil {
		return dto.NewMerchantResponse(upi), nil
	}

	now := s.clock.Now()
	if err := s.merchantRepo.Update(id, map[string]interface{}{"deleted_at": now}); err != nil {
		return nil, apperrors.InternalError(err)
	}
	upi.DeletedAt = &now

	s.audit(id, models.AuditActionSoftDelete,
		map[string]interface{}{"deleted_at": nil},
		map[string]interface{}{"deleted_at": now}, actor)

	return dto.NewMerchantResponse(upi), nil
}

func (s *merchantService) AuditTrail(id string) ([]models.UpiAuditLog, error) {
	if _, err := s.findByID(id); err != nil {
		return nil, err
	}
	entries, err := s.auditRepo.ListByUpiID(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}

func (s *merchantService) findByID(id string) (*models.UpiID, error) {
	upi, err := s.merchantRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMerchantNotFound) {
			return nil, apperrors.ErrMerchantNotFound(id)
		}
		return nil, apperrors.InternalError(err)
	}
	return upi, nil
}

// audit writes are best-effort; a failed audit row never fails the
// mutation it describes, but it must not vanish silently either.
func (s *merchantService) audit(upiID, action string, oldValues, newValues interface{}, actor string) {
	if err := s.auditRepo.Record(upiID, action, oldValues, newValues, actor); err != nil {
		logger.Warn("audit record write failed",
			"upi_id", upiID, "action", action, "error", err.Error())
	}
}

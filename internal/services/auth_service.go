package services

import (
	"crypto/subtle"

	"upipay_backend/internal/auth"
	"upipay_backend/internal/models"
	"upipay_backend/internal/repositories"
	"upipay_backend/internal/services/dto"
	"upipay_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	// PinLogin is the bootstrap path: a shared PIN grants an admin token
	// without a seeded account.
	PinLogin(req *dto.PinLoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	adminRepo repositories.AdminRepository
	adminPIN  string
}

func NewAuthService(adminRepo repositories.AdminRepository, adminPIN string) AuthService {
	return &authService{
		adminRepo: adminRepo,
		adminPIN:  adminPIN,
	}
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.IssueToken(admin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{AccessToken: token, Email: admin.Email}, nil
}

func (s *authService) PinLogin(req *dto.PinLoginRequest) (*dto.LoginResponse, error) {
	if s.adminPIN == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(req.Pin), []byte(s.adminPIN)) != 1 {
		return nil, apperrors.ErrInvalidCredentials
	}

	pinAdmin := &models.AdminUser{
		Email: "pin@local",
		Role:  models.AdminRoleAdmin,
	}
	pinAdmin.ID = "pin-admin"

	token, err := auth.IssueToken(pinAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{AccessToken: token, Email: pinAdmin.Email}, nil
}

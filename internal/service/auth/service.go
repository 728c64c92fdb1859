package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/auth"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/employee"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	verifier          auth.CredentialVerifier
	jwtService        jwt.Service
	adminPasswordHash string
}

func NewAuthService(
	employeeRepo employee.EmployeeRepository,
	verifier auth.CredentialVerifier,
	jwtService jwt.Service,
	adminPasswordHash string,
) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepo,
		verifier:           verifier,
		jwtService:         jwtService,
		adminPasswordHash:  adminPasswordHash,
	}
}

// LoginAdmin implements auth.AuthService.
func (s *AuthServiceImpl) LoginAdmin(ctx context.Context, req auth.AdminLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if !s.verifier.Verify(s.adminPasswordHash, req.Password) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken("admin", nil, true)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// LoginEmployee implements auth.AuthService.
func (s *AuthServiceImpl) LoginEmployee(ctx context.Context, req auth.EmployeeLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByUniqueLink(ctx, req.UniqueLink)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Same failure as a wrong password so the response does not
			// reveal which links exist.
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to resolve access link: %w", err)
	}

	if !s.verifier.Verify(emp.PasswordHash, req.Password) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, &emp.ID, false)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		EmployeeID:           emp.ID,
	}, nil
}

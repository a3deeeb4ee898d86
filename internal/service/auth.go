package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"carrental-backoffice/internal/domain"
	"carrental-backoffice/internal/logger"
	"carrental-backoffice/internal/repository"
	"carrental-backoffice/internal/security"
)

// ErrInvalidCredentials is returned for every login failure so the
// response never reveals whether the email exists.
var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	employeeRepo repository.EmployeeRepository
	tokens       security.TokenManager
}

func NewAuthService(employeeRepo repository.EmployeeRepository, tokens security.TokenManager) AuthService {
	return &authService{employeeRepo: employeeRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Employee, error) {
	employee, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Warn("login lookup failed", "email", email, "error", err)
		return "", nil, ErrInvalidCredentials
	}
	if !employee.Active {
		logger.Warn("login attempt for inactive employee", "email", email)
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(employee)
	if err != nil {
		logger.Error("access token generation failed", "error", err)
		return "", nil, err
	}
	return token, employee, nil
}

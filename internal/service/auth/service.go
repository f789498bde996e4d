package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dermaconnect/derma-api/internal/email"
	"github.com/dermaconnect/derma-api/internal/model"
	"github.com/dermaconnect/derma-api/internal/repository"
	"github.com/dermaconnect/derma-api/pkg/apperror"
	"github.com/dermaconnect/derma-api/pkg/auth"
	"github.com/dermaconnect/derma-api/pkg/logger"
)

const (
	maxLoginAttempts = 5
	lockoutDuration  = 15 * time.Minute
	bcryptCost       = 12
)

type Service struct {
	users    repository.UserRepository
	patients repository.PatientRepository
	jwtSvc   auth.JWTService
	emailSvc email.Service
	logger   *logger.Logger
}

func NewService(
	users repository.UserRepository,
	patients repository.PatientRepository,
	jwtSvc auth.JWTService,
	emailSvc email.Service,
	logger *logger.Logger,
) *Service {
	return &Service{
		users:    users,
		patients: patients,
		jwtSvc:   jwtSvc,
		emailSvc: emailSvc,
		logger:   logger,
	}
}

func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if existing, _ := s.users.GetByEmail(ctx, req.Email); existing != nil {
		return nil, apperror.Validation("email already registered")
	}
	if req.Role != model.RolePatient && req.Role != model.RoleDoctor {
		return nil, apperror.Validation("role must be patient or doctor")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hashed),
		Role:         req.Role,
		Status:       model.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if req.Role == model.RolePatient {
		if err := s.patients.EnsureProfile(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to create patient profile: %w", err)
		}
	}

	// Welcome mail is best effort; registration already succeeded.
	if err := s.emailSvc.SendWelcome(ctx, user.Email, user.Name); err != nil {
		s.logger.Error(err, "failed to send welcome email", "email", user.Email)
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	if user.Status == model.UserStatusLocked {
		if time.Since(user.LastLoginAttempt) < lockoutDuration {
			return nil, apperror.Unauthorized("account is locked, please try again later")
		}
		user.Status = model.UserStatusActive
		user.LoginAttempts = 0
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		user.LoginAttempts++
		user.LastLoginAttempt = time.Now()
		if user.LoginAttempts >= maxLoginAttempts {
			user.Status = model.UserStatusLocked
		}
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update login attempts: %w", err)
		}
		return nil, apperror.Unauthorized("invalid credentials")
	}

	user.LoginAttempts = 0
	user.LastLoginAttempt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update login timestamp: %w", err)
	}

	return s.generateTokens(user)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	claims, err := s.jwtSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("invalid refresh token")
	}

	user, err := s.users.Get(ctx, claims.UserID)
	if err != nil {
		return nil, apperror.Unauthorized("unknown user")
	}

	return s.generateTokens(user)
}

func (s *Service) generateTokens(user *model.User) (*model.TokenResponse, error) {
	access, err := s.jwtSvc.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.jwtSvc.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &model.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

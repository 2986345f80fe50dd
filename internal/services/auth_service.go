package services

import (
	"context"
	"fmt"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register implements domain.AuthService. The existence pre-check gives a
// friendly conflict error; the unique email index in the store is what
// actually guarantees uniqueness under concurrent registrations.
func (s *AuthServiceImpl) Register(ctx context.Context, user *domain.User, password string) (*domain.AuthResult, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashedPassword

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenSvc.Issue(user.ID, false, user.IsSeller, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// return the same error so callers cannot enumerate accounts.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Issue(user.ID, false, user.IsSeller, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AuthService
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) (*domain.User, error) {
	return s.userRepo.UpdateProfile(ctx, userID, update)
}

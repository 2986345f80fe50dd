package mocks

import (
	"context"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, user *domain.User, password string) (*domain.AuthResult, error)
	LoginFunc         func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	GetProfileFunc    func(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, userID string, update *domain.ProfileUpdate) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, user *domain.User, password string) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, user, password)
	}
	user.ID = "64f000000000000000000001"
	return &domain.AuthResult{User: user, Token: "token_" + user.ID}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// GetProfile fetches a user profile
func (m *MockAuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// UpdateProfile applies a partial profile update
func (m *MockAuthService) UpdateProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, update)
	}
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)

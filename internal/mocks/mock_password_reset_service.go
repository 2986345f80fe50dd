package mocks

import (
	"context"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// MockPasswordResetService implements domain.PasswordResetService for testing
type MockPasswordResetService struct {
	RequestFunc        func(ctx context.Context, sessionID, email string) error
	VerifyOTPFunc      func(ctx context.Context, sessionID, code string) error
	UpdatePasswordFunc func(ctx context.Context, sessionID, newPassword string) error
	ResendOTPFunc      func(ctx context.Context, sessionID string) error
}

// NewMockPasswordResetService creates a new MockPasswordResetService
func NewMockPasswordResetService() *MockPasswordResetService {
	return &MockPasswordResetService{}
}

// Request starts a password reset
func (m *MockPasswordResetService) Request(ctx context.Context, sessionID, email string) error {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, sessionID, email)
	}
	return nil
}

// VerifyOTP verifies the submitted code
func (m *MockPasswordResetService) VerifyOTP(ctx context.Context, sessionID, code string) error {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, sessionID, code)
	}
	return nil
}

// UpdatePassword applies the new password
func (m *MockPasswordResetService) UpdatePassword(ctx context.Context, sessionID, newPassword string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, sessionID, newPassword)
	}
	return nil
}

// ResendOTP issues a fresh code
func (m *MockPasswordResetService) ResendOTP(ctx context.Context, sessionID string) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, sessionID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.PasswordResetService = (*MockPasswordResetService)(nil)

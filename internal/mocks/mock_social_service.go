package mocks

import (
	"context"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// MockSocialService implements domain.SocialService for testing
type MockSocialService struct {
	FollowSellerFunc     func(ctx context.Context, userID, sellerID string) error
	UnfollowSellerFunc   func(ctx context.Context, userID, sellerID string) error
	GetSellerProfileFunc func(ctx context.Context, sellerID string) (*domain.User, error)
}

// NewMockSocialService creates a new MockSocialService
func NewMockSocialService() *MockSocialService {
	return &MockSocialService{}
}

// FollowSeller records a follow
func (m *MockSocialService) FollowSeller(ctx context.Context, userID, sellerID string) error {
	if m.FollowSellerFunc != nil {
		return m.FollowSellerFunc(ctx, userID, sellerID)
	}
	return nil
}

// UnfollowSeller removes a follow
func (m *MockSocialService) UnfollowSeller(ctx context.Context, userID, sellerID string) error {
	if m.UnfollowSellerFunc != nil {
		return m.UnfollowSellerFunc(ctx, userID, sellerID)
	}
	return nil
}

// GetSellerProfile fetches a seller's public profile
func (m *MockSocialService) GetSellerProfile(ctx context.Context, sellerID string) (*domain.User, error) {
	if m.GetSellerProfileFunc != nil {
		return m.GetSellerProfileFunc(ctx, sellerID)
	}
	return nil, domain.ErrSellerNotFound
}

// Compile-time interface compliance verification
var _ domain.SocialService = (*MockSocialService)(nil)

package mocks

import (
	"context"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc                func(ctx context.Context, user *domain.User) error
	FindByEmailFunc           func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc              func(ctx context.Context, id string) (*domain.User, error)
	UpdateProfileFunc         func(ctx context.Context, id string, update *domain.ProfileUpdate) (*domain.User, error)
	UpdatePasswordByEmailFunc func(ctx context.Context, email, passwordHash string) error
	AddFollowerFunc           func(ctx context.Context, sellerID, followerID string) error
	RemoveFollowerFunc        func(ctx context.Context, sellerID, followerID string) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success, assign an id
	user.ID = "64f000000000000000000001"
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdateProfile applies a partial profile update
func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, update *domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, update)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdatePasswordByEmail replaces the stored password hash
func (m *MockUserRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	if m.UpdatePasswordByEmailFunc != nil {
		return m.UpdatePasswordByEmailFunc(ctx, email, passwordHash)
	}
	// Default behavior: success
	return nil
}

// AddFollower records a follow relationship
func (m *MockUserRepository) AddFollower(ctx context.Context, sellerID, followerID string) error {
	if m.AddFollowerFunc != nil {
		return m.AddFollowerFunc(ctx, sellerID, followerID)
	}
	// Default behavior: success
	return nil
}

// RemoveFollower removes a follow relationship
func (m *MockUserRepository) RemoveFollower(ctx context.Context, sellerID, followerID string) error {
	if m.RemoveFollowerFunc != nil {
		return m.RemoveFollowerFunc(ctx, sellerID, followerID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)

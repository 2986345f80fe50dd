package mocks

import (
	"context"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// MockResetStateRepository implements domain.ResetStateRepository for testing
type MockResetStateRepository struct {
	SaveFunc   func(ctx context.Context, sessionID string, state *domain.ResetState) error
	FindFunc   func(ctx context.Context, sessionID string) (*domain.ResetState, error)
	DeleteFunc func(ctx context.Context, sessionID string) error
}

// NewMockResetStateRepository creates a new MockResetStateRepository
func NewMockResetStateRepository() *MockResetStateRepository {
	return &MockResetStateRepository{}
}

// Save stores reset state for a session
func (m *MockResetStateRepository) Save(ctx context.Context, sessionID string, state *domain.ResetState) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sessionID, state)
	}
	// Default behavior: success
	return nil
}

// Find loads reset state for a session
func (m *MockResetStateRepository) Find(ctx context.Context, sessionID string) (*domain.ResetState, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, sessionID)
	}
	// Default behavior: no state stored
	return nil, domain.ErrNoPendingReset
}

// Delete clears reset state for a session
func (m *MockResetStateRepository) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ResetStateRepository = (*MockResetStateRepository)(nil)

package mocks

import "github.com/Devdynamow/Ecommerce-backend-New/domain"

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc    func(userID string, isAdmin, isSeller bool, subjectID string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue creates a signed token
func (m *MockTokenService) Issue(userID string, isAdmin, isSeller bool, subjectID string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, isAdmin, isSeller, subjectID)
	}
	// Default behavior: deterministic fake token
	return "token_" + userID, nil
}

// Validate parses and checks a signed token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)

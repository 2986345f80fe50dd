package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, update *ProfileUpdate) (*User, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	AddFollower(ctx context.Context, sellerID, followerID string) error
	RemoveFollower(ctx context.Context, sellerID, followerID string) error
}

// ResetStateRepository defines password-reset session state access
type ResetStateRepository interface {
	Save(ctx context.Context, sessionID string, state *ResetState) error
	Find(ctx context.Context, sessionID string) (*ResetState, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, user *User, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, update *ProfileUpdate) (*User, error)
}

// PasswordResetService defines the OTP-based credential reset workflow
type PasswordResetService interface {
	Request(ctx context.Context, sessionID, email string) error
	VerifyOTP(ctx context.Context, sessionID, code string) error
	UpdatePassword(ctx context.Context, sessionID, newPassword string) error
	ResendOTP(ctx context.Context, sessionID string) error
}

// SocialService defines seller-follow operations
type SocialService interface {
	FollowSeller(ctx context.Context, userID, sellerID string) error
	UnfollowSeller(ctx context.Context, userID, sellerID string) error
	GetSellerProfile(ctx context.Context, sellerID string) (*User, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	Issue(userID string, isAdmin, isSeller bool, subjectID string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// Mailer defines mail delivery operations
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// TokenClaims represents the signed token payload
type TokenClaims struct {
	UserID    string `json:"user_id"`
	IsAdmin   bool   `json:"is_admin"`
	IsSeller  bool   `json:"is_seller"`
	SubjectID string `json:"sub"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

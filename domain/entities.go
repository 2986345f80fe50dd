package domain

import "time"

// User represents a marketplace user
type User struct {
	ID            string
	Name          string
	Username      string
	Email         string
	PasswordHash  string
	Bio           string
	ProfileImage  []byte
	ImageMimeType string
	Interests     []string
	IsSeller      bool
	Followers     []string
	Following     []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PublicView returns a copy of the user with credential material stripped.
// Every HTTP response that carries a user goes through this.
func (u *User) PublicView() *User {
	view := *u
	view.PasswordHash = ""
	return &view
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User  *User
	Token string
}

// ResetStage is the tagged state of a password-reset session
type ResetStage string

const (
	// StageOTPPending means an OTP was issued and awaits verification
	StageOTPPending ResetStage = "otp_pending"
	// StageEmailVerified means the OTP was verified and a password update is allowed
	StageEmailVerified ResetStage = "email_verified"
)

// ResetState holds the per-session password-reset workflow state.
// Absence of a stored ResetState is the idle state.
type ResetState struct {
	Stage        ResetStage `json:"stage"`
	Email        string     `json:"email"`
	OTP          string     `json:"otp,omitempty"`
	OTPExpiresAt time.Time  `json:"otp_expires_at,omitzero"`
}

// OTPExpired reports whether the pending code's window has elapsed at now
func (s *ResetState) OTPExpired(now time.Time) bool {
	return now.After(s.OTPExpiresAt)
}

// ProfileUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged"; the update schema requires nothing.
type ProfileUpdate struct {
	Name      *string
	Username  *string
	Bio       *string
	Interests []string
	IsSeller  *bool
	Image     []byte
	ImageMime string
}

package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user already registered with this email")
)

// Password-reset errors
var (
	ErrEmailNotFound    = errors.New("this email does not exist")
	ErrOTPInvalid       = errors.New("invalid or expired otp")
	ErrNoPendingReset   = errors.New("no password reset in progress")
	ErrEmailNotVerified = errors.New("email verification required")
	ErrPasswordRequired = errors.New("new password is required")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Social errors
var (
	ErrSellerNotFound = errors.New("seller not found")
	ErrSelfFollow     = errors.New("cannot follow yourself")
)

// Mail errors
var (
	ErrMailDelivery = errors.New("failed to deliver mail")
)

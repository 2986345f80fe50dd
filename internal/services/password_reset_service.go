package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// ResetConfig holds password-reset workflow settings
type ResetConfig struct {
	OTPLength int
	OTPTTL    time.Duration
}

// PasswordResetServiceImpl implements domain.PasswordResetService as an
// explicit state machine per reset session:
//
//	idle -> otp_pending -> email_verified -> idle
//
// Failed transitions leave the stored state untouched. Resend refreshes
// the code and timer without changing the stage.
type PasswordResetServiceImpl struct {
	userRepo    domain.UserRepository
	stateRepo   domain.ResetStateRepository
	passwordSvc domain.PasswordService
	mailer      domain.Mailer
	config      ResetConfig
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo domain.UserRepository,
	stateRepo domain.ResetStateRepository,
	passwordSvc domain.PasswordService,
	mailer domain.Mailer,
	config ResetConfig,
) domain.PasswordResetService {
	return &PasswordResetServiceImpl{
		userRepo:    userRepo,
		stateRepo:   stateRepo,
		passwordSvc: passwordSvc,
		mailer:      mailer,
		config:      config,
	}
}

// Request implements domain.PasswordResetService. A failed mail dispatch
// rolls the session back to idle so a stored code never exists for a mail
// the user did not receive.
func (s *PasswordResetServiceImpl) Request(ctx context.Context, sessionID, email string) error {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		return domain.ErrEmailNotFound
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	state := &domain.ResetState{
		Stage:        domain.StageOTPPending,
		Email:        email,
		OTP:          code,
		OTPExpiresAt: time.Now().Add(s.config.OTPTTL),
	}
	if err := s.stateRepo.Save(ctx, sessionID, state); err != nil {
		return fmt.Errorf("failed to store reset state: %w", err)
	}

	body := fmt.Sprintf("Your OTP for password reset is: %s", code)
	if err := s.mailer.Send(ctx, email, "Password Reset OTP", body); err != nil {
		s.stateRepo.Delete(ctx, sessionID)
		return fmt.Errorf("failed to send OTP mail: %w", err)
	}

	return nil
}

// VerifyOTP implements domain.PasswordResetService. Success clears the
// code and its timer but keeps the verified email for the update step.
func (s *PasswordResetServiceImpl) VerifyOTP(ctx context.Context, sessionID, code string) error {
	state, err := s.stateRepo.Find(ctx, sessionID)
	if err != nil {
		return domain.ErrOTPInvalid
	}

	if state.OTP == "" || code != state.OTP || state.OTPExpired(time.Now()) {
		return domain.ErrOTPInvalid
	}

	state.Stage = domain.StageEmailVerified
	state.OTP = ""
	state.OTPExpiresAt = time.Time{}
	if err := s.stateRepo.Save(ctx, sessionID, state); err != nil {
		return fmt.Errorf("failed to store reset state: %w", err)
	}

	return nil
}

// UpdatePassword implements domain.PasswordResetService. Requires the
// session to have passed OTP verification; success returns it to idle.
func (s *PasswordResetServiceImpl) UpdatePassword(ctx context.Context, sessionID, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return domain.ErrPasswordRequired
	}

	state, err := s.stateRepo.Find(ctx, sessionID)
	if err != nil {
		return domain.ErrEmailNotVerified
	}
	if state.Stage != domain.StageEmailVerified {
		return domain.ErrEmailNotVerified
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordByEmail(ctx, state.Email, hashedPassword); err != nil {
		return err
	}

	if err := s.stateRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear reset state: %w", err)
	}

	return nil
}

// ResendOTP implements domain.PasswordResetService. The new code
// overwrites the old one; a failed mail dispatch restores the prior state.
func (s *PasswordResetServiceImpl) ResendOTP(ctx context.Context, sessionID string) error {
	state, err := s.stateRepo.Find(ctx, sessionID)
	if err != nil {
		return domain.ErrNoPendingReset
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	prev := *state
	state.OTP = code
	state.OTPExpiresAt = time.Now().Add(s.config.OTPTTL)
	if err := s.stateRepo.Save(ctx, sessionID, state); err != nil {
		return fmt.Errorf("failed to store reset state: %w", err)
	}

	body := fmt.Sprintf("Your new OTP is: %s", code)
	if err := s.mailer.Send(ctx, state.Email, "Password Reset OTP", body); err != nil {
		s.stateRepo.Save(ctx, sessionID, &prev)
		return fmt.Errorf("failed to send OTP mail: %w", err)
	}

	return nil
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *PasswordResetServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.OTPLength)

	for i := 0; i < s.config.OTPLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
	"github.com/Devdynamow/Ecommerce-backend-New/internal/mocks"
)

const testSession = "sess-test"

func newTestResetService(userRepo *mocks.MockUserRepository, stateRepo *mocks.MockResetStateRepository, mailer *mocks.MockMailer) domain.PasswordResetService {
	return NewPasswordResetService(userRepo, stateRepo, mocks.NewMockPasswordService(), mailer, ResetConfig{
		OTPLength: 6,
		OTPTTL:    5 * time.Minute,
	})
}

// memoryStateRepo wires the mock to an in-memory map so tests can follow
// the workflow across several calls.
func memoryStateRepo() (*mocks.MockResetStateRepository, map[string]*domain.ResetState) {
	store := make(map[string]*domain.ResetState)
	repo := mocks.NewMockResetStateRepository()
	repo.SaveFunc = func(ctx context.Context, sessionID string, state *domain.ResetState) error {
		copied := *state
		store[sessionID] = &copied
		return nil
	}
	repo.FindFunc = func(ctx context.Context, sessionID string) (*domain.ResetState, error) {
		state, ok := store[sessionID]
		if !ok {
			return nil, domain.ErrNoPendingReset
		}
		copied := *state
		return &copied, nil
	}
	repo.DeleteFunc = func(ctx context.Context, sessionID string) error {
		delete(store, sessionID)
		return nil
	}
	return repo, store
}

func knownUserRepo() *mocks.MockUserRepository {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		if email == "known@example.com" {
			return &domain.User{ID: "64f000000000000000000042", Email: email}, nil
		}
		return nil, domain.ErrUserNotFound
	}
	return userRepo
}

func TestPasswordResetServiceImpl_Request(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		stateRepo, store := memoryStateRepo()
		svc := newTestResetService(knownUserRepo(), stateRepo, mocks.NewMockMailer())

		err := svc.Request(context.Background(), testSession, "nobody@example.com")
		if !errors.Is(err, domain.ErrEmailNotFound) {
			t.Fatalf("expected ErrEmailNotFound, got %v", err)
		}
		if len(store) != 0 {
			t.Error("expected no state stored for unknown email")
		}
	})

	t.Run("success stores pending state and mails the code", func(t *testing.T) {
		stateRepo, store := memoryStateRepo()
		mailer := mocks.NewMockMailer()
		svc := newTestResetService(knownUserRepo(), stateRepo, mailer)

		before := time.Now()
		if err := svc.Request(context.Background(), testSession, "known@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state := store[testSession]
		if state == nil {
			t.Fatal("expected state to be stored")
		}
		if state.Stage != domain.StageOTPPending {
			t.Errorf("expected stage %q, got %q", domain.StageOTPPending, state.Stage)
		}
		if state.Email != "known@example.com" {
			t.Errorf("unexpected email %q", state.Email)
		}
		if len(state.OTP) != 6 {
			t.Errorf("expected 6-digit code, got %q", state.OTP)
		}
		for _, r := range state.OTP {
			if r < '0' || r > '9' {
				t.Errorf("non-digit in OTP %q", state.OTP)
			}
		}
		window := state.OTPExpiresAt.Sub(before)
		if window < 4*time.Minute || window > 6*time.Minute {
			t.Errorf("expected ~5m expiry window, got %v", window)
		}

		if len(mailer.Sent) != 1 {
			t.Fatalf("expected 1 mail, got %d", len(mailer.Sent))
		}
		if mailer.Sent[0].To != "known@example.com" {
			t.Errorf("mail sent to %q", mailer.Sent[0].To)
		}
		if !strings.Contains(mailer.Sent[0].Body, state.OTP) {
			t.Error("mail body does not contain the code")
		}
	})

	t.Run("mail failure rolls back to idle", func(t *testing.T) {
		stateRepo, store := memoryStateRepo()
		mailer := mocks.NewMockMailer()
		mailer.SendFunc = func(ctx context.Context, to, subject, body string) error {
			return domain.ErrMailDelivery
		}
		svc := newTestResetService(knownUserRepo(), stateRepo, mailer)

		err := svc.Request(context.Background(), testSession, "known@example.com")
		if !errors.Is(err, domain.ErrMailDelivery) {
			t.Fatalf("expected mail delivery error, got %v", err)
		}
		if len(store) != 0 {
			t.Error("expected state to be rolled back after mail failure")
		}
	})
}

func TestPasswordResetServiceImpl_VerifyOTP(t *testing.T) {
	pending := func(code string, expiresAt time.Time) *domain.ResetState {
		return &domain.ResetState{
			Stage:        domain.StageOTPPending,
			Email:        "known@example.com",
			OTP:          code,
			OTPExpiresAt: expiresAt,
		}
	}

	tests := []struct {
		name          string
		stored        *domain.ResetState
		code          string
		expectedError error
	}{
		{
			name:          "no reset in progress",
			stored:        nil,
			code:          "123456",
			expectedError: domain.ErrOTPInvalid,
		},
		{
			name:          "wrong code",
			stored:        pending("123456", time.Now().Add(5*time.Minute)),
			code:          "654321",
			expectedError: domain.ErrOTPInvalid,
		},
		{
			name:          "expired code",
			stored:        pending("123456", time.Now().Add(-time.Second)),
			code:          "123456",
			expectedError: domain.ErrOTPInvalid,
		},
		{
			name:   "matching code within window",
			stored: pending("123456", time.Now().Add(5*time.Minute)),
			code:   "123456",
		},
		{
			name: "already verified, no code left",
			stored: &domain.ResetState{
				Stage: domain.StageEmailVerified,
				Email: "known@example.com",
			},
			code:          "123456",
			expectedError: domain.ErrOTPInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateRepo, store := memoryStateRepo()
			if tt.stored != nil {
				store[testSession] = tt.stored
			}
			svc := newTestResetService(knownUserRepo(), stateRepo, mocks.NewMockMailer())

			err := svc.VerifyOTP(context.Background(), testSession, tt.code)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				// Failed transitions must not mutate stored state
				if tt.stored != nil {
					after := store[testSession]
					if after.Stage != tt.stored.Stage || after.OTP != tt.stored.OTP {
						t.Error("failed verify mutated stored state")
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			after := store[testSession]
			if after.Stage != domain.StageEmailVerified {
				t.Errorf("expected stage %q, got %q", domain.StageEmailVerified, after.Stage)
			}
			if after.OTP != "" {
				t.Error("expected code to be cleared after verification")
			}
			if after.Email != "known@example.com" {
				t.Error("expected verified email to remain")
			}
		})
	}
}

func TestPasswordResetServiceImpl_UpdatePassword(t *testing.T) {
	tests := []struct {
		name          string
		stored        *domain.ResetState
		newPassword   string
		expectedError error
	}{
		{
			name:          "empty password",
			stored:        &domain.ResetState{Stage: domain.StageEmailVerified, Email: "known@example.com"},
			newPassword:   "",
			expectedError: domain.ErrPasswordRequired,
		},
		{
			name:          "whitespace-only password",
			stored:        &domain.ResetState{Stage: domain.StageEmailVerified, Email: "known@example.com"},
			newPassword:   "   \t",
			expectedError: domain.ErrPasswordRequired,
		},
		{
			name:          "no reset in progress",
			stored:        nil,
			newPassword:   "newsecret",
			expectedError: domain.ErrEmailNotVerified,
		},
		{
			name: "otp step skipped",
			stored: &domain.ResetState{
				Stage:        domain.StageOTPPending,
				Email:        "known@example.com",
				OTP:          "123456",
				OTPExpiresAt: time.Now().Add(5 * time.Minute),
			},
			newPassword:   "newsecret",
			expectedError: domain.ErrEmailNotVerified,
		},
		{
			name:        "verified session updates and clears",
			stored:      &domain.ResetState{Stage: domain.StageEmailVerified, Email: "known@example.com"},
			newPassword: "newsecret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateRepo, store := memoryStateRepo()
			if tt.stored != nil {
				store[testSession] = tt.stored
			}

			var updatedEmail, updatedHash string
			userRepo := knownUserRepo()
			userRepo.UpdatePasswordByEmailFunc = func(ctx context.Context, email, passwordHash string) error {
				updatedEmail, updatedHash = email, passwordHash
				return nil
			}

			svc := newTestResetService(userRepo, stateRepo, mocks.NewMockMailer())
			err := svc.UpdatePassword(context.Background(), testSession, tt.newPassword)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if updatedEmail != "" {
					t.Error("password must not be updated on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updatedEmail != "known@example.com" {
				t.Errorf("password updated for %q", updatedEmail)
			}
			if updatedHash == tt.newPassword {
				t.Error("stored password equals plaintext")
			}
			if _, ok := store[testSession]; ok {
				t.Error("expected reset state to be cleared")
			}

			// A second update without a fresh verification must fail
			if err := svc.UpdatePassword(context.Background(), testSession, "another"); !errors.Is(err, domain.ErrEmailNotVerified) {
				t.Errorf("expected ErrEmailNotVerified on replay, got %v", err)
			}
		})
	}
}

func TestPasswordResetServiceImpl_ResendOTP(t *testing.T) {
	t.Run("no reset in progress", func(t *testing.T) {
		stateRepo, _ := memoryStateRepo()
		svc := newTestResetService(knownUserRepo(), stateRepo, mocks.NewMockMailer())

		if err := svc.ResendOTP(context.Background(), testSession); !errors.Is(err, domain.ErrNoPendingReset) {
			t.Fatalf("expected ErrNoPendingReset, got %v", err)
		}
	})

	t.Run("resend invalidates the previous code", func(t *testing.T) {
		stateRepo, store := memoryStateRepo()
		mailer := mocks.NewMockMailer()
		svc := newTestResetService(knownUserRepo(), stateRepo, mailer)

		if err := svc.Request(context.Background(), testSession, "known@example.com"); err != nil {
			t.Fatalf("request: %v", err)
		}
		firstCode := store[testSession].OTP

		if err := svc.ResendOTP(context.Background(), testSession); err != nil {
			t.Fatalf("resend: %v", err)
		}
		secondCode := store[testSession].OTP

		if firstCode == secondCode {
			t.Fatal("resend did not rotate the code")
		}
		if err := svc.VerifyOTP(context.Background(), testSession, firstCode); !errors.Is(err, domain.ErrOTPInvalid) {
			t.Errorf("old code verified after resend: %v", err)
		}
		if err := svc.VerifyOTP(context.Background(), testSession, secondCode); err != nil {
			t.Errorf("new code failed to verify: %v", err)
		}
		if len(mailer.Sent) != 2 {
			t.Errorf("expected 2 mails, got %d", len(mailer.Sent))
		}
	})

	t.Run("mail failure restores the prior code", func(t *testing.T) {
		stateRepo, store := memoryStateRepo()
		mailer := mocks.NewMockMailer()
		svc := newTestResetService(knownUserRepo(), stateRepo, mailer)

		if err := svc.Request(context.Background(), testSession, "known@example.com"); err != nil {
			t.Fatalf("request: %v", err)
		}
		firstCode := store[testSession].OTP

		mailer.SendFunc = func(ctx context.Context, to, subject, body string) error {
			return domain.ErrMailDelivery
		}
		if err := svc.ResendOTP(context.Background(), testSession); !errors.Is(err, domain.ErrMailDelivery) {
			t.Fatalf("expected mail delivery error, got %v", err)
		}
		if store[testSession].OTP != firstCode {
			t.Error("failed resend replaced the stored code")
		}
	})
}

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
	"github.com/Devdynamow/Ecommerce-backend-New/internal/mocks"
)

func resetRouter(svc *mocks.MockPasswordResetService) *gin.Engine {
	h := NewPasswordResetHandlers(svc)
	r := gin.New()
	r.POST("/reset-password", h.RequestReset)
	r.POST("/otp-verify", h.VerifyOTP)
	r.POST("/update-password", h.UpdatePassword)
	r.POST("/resend-otp", h.ResendOTP)
	return r
}

func postJSONWithSession(r http.Handler, path, body, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: resetSessionCookie, Value: sessionID})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPasswordResetHandlers_RequestReset(t *testing.T) {
	t.Run("mints a session cookie and reports success", func(t *testing.T) {
		svc := mocks.NewMockPasswordResetService()
		var gotSession string
		svc.RequestFunc = func(ctx context.Context, sessionID, email string) error {
			gotSession = sessionID
			return nil
		}
		r := resetRouter(svc)

		w := postJSONWithSession(r, "/reset-password", `{"email":"known@example.com"}`, "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if decodeBody(t, w)["message"] != "OTP sent successfully." {
			t.Errorf("unexpected message %v", decodeBody(t, w)["message"])
		}
		if gotSession == "" {
			t.Fatal("expected a session id to be minted")
		}

		var sessCookie *http.Cookie
		for _, ck := range w.Result().Cookies() {
			if ck.Name == resetSessionCookie {
				sessCookie = ck
			}
		}
		if sessCookie == nil {
			t.Fatal("expected reset session cookie")
		}
		if sessCookie.Value != gotSession {
			t.Error("cookie and service session id differ")
		}
		if !sessCookie.HttpOnly {
			t.Error("reset session cookie must be HttpOnly")
		}
	})

	t.Run("reuses an existing session cookie", func(t *testing.T) {
		svc := mocks.NewMockPasswordResetService()
		var gotSession string
		svc.RequestFunc = func(ctx context.Context, sessionID, email string) error {
			gotSession = sessionID
			return nil
		}
		r := resetRouter(svc)

		w := postJSONWithSession(r, "/reset-password", `{"email":"known@example.com"}`, "sess-existing")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotSession != "sess-existing" {
			t.Errorf("expected existing session to be reused, got %q", gotSession)
		}
	})

	t.Run("unknown email is a 404", func(t *testing.T) {
		svc := mocks.NewMockPasswordResetService()
		svc.RequestFunc = func(ctx context.Context, sessionID, email string) error {
			return domain.ErrEmailNotFound
		}
		r := resetRouter(svc)

		w := postJSONWithSession(r, "/reset-password", `{"email":"nobody@example.com"}`, "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if decodeBody(t, w)["error"] != "This email does not exist." {
			t.Errorf("unexpected error %v", decodeBody(t, w)["error"])
		}
	})

	t.Run("mail failure is a 502", func(t *testing.T) {
		svc := mocks.NewMockPasswordResetService()
		svc.RequestFunc = func(ctx context.Context, sessionID, email string) error {
			return domain.ErrMailDelivery
		}
		r := resetRouter(svc)

		w := postJSONWithSession(r, "/reset-password", `{"email":"known@example.com"}`, "")

		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
	})
}

func TestPasswordResetHandlers_VerifyOTP(t *testing.T) {
	t.Run("no session cookie", func(t *testing.T) {
		r := resetRouter(mocks.NewMockPasswordResetService())

		w := postJSONWithSession(r, "/otp-verify", `{"otp":"123456"}`, "")

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid or expired code", func(t *testing.T) {
		svc := mocks.NewMockPasswordResetService()
		svc.VerifyOTPFunc = func(ctx context.Context, sessionID, code string) error {
			return domain.ErrOTPInvalid
		}
		r := resetRouter(svc)

		w := postJSONWithSession(r, "/otp-verify", `{"otp":"000000"}`, "sess-1")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["error"] != "Invalid OTP. Please try again." {
			t.Errorf("unexpected error %v", decodeBody(t, w)["error"])
		}
	})

	t.Run("matching code", func(t *testing.T) {
		r := resetRouter(mocks.NewMockPasswordResetService())

		w := postJSONWithSession(r, "/otp-verify", `{"otp":"123456"}`, "sess-1")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "OTP verified successfully." {
			t.Errorf("unexpected message %v", decodeBody(t, w)["message"])
		}
	})
}

func TestPasswordResetHandlers_UpdatePassword(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		sessionID      string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "success",
			sessionID:      "sess-1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing session cookie",
			sessionID:      "",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email verification required.",
		},
		{
			name:           "empty password",
			serviceErr:     domain.ErrPasswordRequired,
			sessionID:      "sess-1",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "New password is required.",
		},
		{
			name:           "otp step skipped",
			serviceErr:     domain.ErrEmailNotVerified,
			sessionID:      "sess-1",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email verification required.",
		},
		{
			name:           "account vanished mid-flow",
			serviceErr:     domain.ErrEmailNotFound,
			sessionID:      "sess-1",
			expectedStatus: http.StatusNotFound,
			expectedError:  "This email does not exist.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockPasswordResetService()
			if tt.serviceErr != nil {
				svc.UpdatePasswordFunc = func(ctx context.Context, sessionID, newPassword string) error {
					return tt.serviceErr
				}
			}
			r := resetRouter(svc)

			w := postJSONWithSession(r, "/update-password", `{"newPassword":"newsecret"}`, tt.sessionID)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedError != "" && decodeBody(t, w)["error"] != tt.expectedError {
				t.Errorf("unexpected error %v", decodeBody(t, w)["error"])
			}
		})
	}
}

func TestPasswordResetHandlers_ResendOTP(t *testing.T) {
	t.Run("no session cookie", func(t *testing.T) {
		r := resetRouter(mocks.NewMockPasswordResetService())

		w := postJSONWithSession(r, "/resend-otp", `{}`, "")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["error"] != "No email found in session." {
			t.Errorf("unexpected error %v", decodeBody(t, w)["error"])
		}
	})

	t.Run("no reset in progress", func(t *testing.T) {
		svc := mocks.NewMockPasswordResetService()
		svc.ResendOTPFunc = func(ctx context.Context, sessionID string) error {
			return domain.ErrNoPendingReset
		}
		r := resetRouter(svc)

		w := postJSONWithSession(r, "/resend-otp", `{}`, "sess-1")

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("resent", func(t *testing.T) {
		r := resetRouter(mocks.NewMockPasswordResetService())

		w := postJSONWithSession(r, "/resend-otp", `{}`, "sess-1")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "OTP has been resent." {
			t.Errorf("unexpected message %v", decodeBody(t, w)["message"])
		}
	})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

const (
	resetSessionCookie = "reset_session"
	// the cookie outlives the 5-minute OTP window so verify and update
	// requests after a resend still reach the same server-side state
	resetSessionMaxAge = 1800
)

// PasswordResetHandlers handles the OTP-based credential reset endpoints
type PasswordResetHandlers struct {
	resetSvc domain.PasswordResetService
}

// NewPasswordResetHandlers creates new password reset handlers
func NewPasswordResetHandlers(resetSvc domain.PasswordResetService) *PasswordResetHandlers {
	return &PasswordResetHandlers{resetSvc: resetSvc}
}

// ResetRequest represents a password reset request
type ResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// OTPVerifyRequest represents OTP verification request
type OTPVerifyRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// UpdatePasswordRequest represents the final password update request.
// Emptiness is checked in the service so whitespace-only values fail the
// same way as absent ones.
type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// RequestReset handles a password reset request
func (h *PasswordResetHandlers) RequestReset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := h.ensureSession(c)

	if err := h.resetSvc.Request(c.Request.Context(), sessionID, req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "This email does not exist."})
		case errors.Is(err, domain.ErrMailDelivery):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send OTP email."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request password reset"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully."})
}

// VerifyOTP handles OTP verification
func (h *PasswordResetHandlers) VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := c.Cookie(resetSessionCookie)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP. Please try again."})
		return
	}

	if err := h.resetSvc.VerifyOTP(c.Request.Context(), sessionID, req.OTP); err != nil {
		if errors.Is(err, domain.ErrOTPInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP. Please try again."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified successfully."})
}

// UpdatePassword handles the final password update
func (h *PasswordResetHandlers) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := c.Cookie(resetSessionCookie)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email verification required."})
		return
	}

	if err := h.resetSvc.UpdatePassword(c.Request.Context(), sessionID, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "New password is required."})
		case errors.Is(err, domain.ErrEmailNotVerified):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email verification required."})
		case errors.Is(err, domain.ErrEmailNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "This email does not exist."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully."})
}

// ResendOTP handles resending the OTP for an in-progress reset
func (h *PasswordResetHandlers) ResendOTP(c *gin.Context) {
	sessionID, err := c.Cookie(resetSessionCookie)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No email found in session."})
		return
	}

	if err := h.resetSvc.ResendOTP(c.Request.Context(), sessionID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoPendingReset):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No email found in session."})
		case errors.Is(err, domain.ErrMailDelivery):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send OTP email."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resend OTP"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP has been resent."})
}

// ensureSession returns the reset-session id from the cookie, minting a
// fresh one when absent
func (h *PasswordResetHandlers) ensureSession(c *gin.Context) string {
	if sessionID, err := c.Cookie(resetSessionCookie); err == nil && sessionID != "" {
		return sessionID
	}
	sessionID := uuid.NewString()
	c.SetCookie(resetSessionCookie, sessionID, resetSessionMaxAge, "/", "", false, true)
	return sessionID
}

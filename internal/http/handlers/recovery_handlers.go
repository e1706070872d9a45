package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antojoseph2806/PThrive/domain"
)

// RecoveryHandlers handles the password-recovery HTTP surface
type RecoveryHandlers struct {
	recoverySvc domain.RecoveryService
}

// NewRecoveryHandlers creates new recovery handlers
func NewRecoveryHandlers(recoverySvc domain.RecoveryService) *RecoveryHandlers {
	return &RecoveryHandlers{recoverySvc: recoverySvc}
}

// RecoveryRequestRequest asks for a reset code. The identifier may be an
// email address or a phone number in any accepted variant.
type RecoveryRequestRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

// RecoveryConfirmRequest redeems a reset code for a new password
type RecoveryConfirmRequest struct {
	Identifier  string `json:"identifier" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// RequestReset handles POST /auth/recovery/request
func (h *RecoveryHandlers) RequestReset(c *gin.Context) {
	var req RecoveryRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.recoverySvc.Request(c.Request.Context(), req.Identifier)
	if err != nil {
		var rateErr *domain.RateLimitedError
		switch {
		case errors.Is(err, domain.ErrInvalidIdentifier):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Identifier must be an email address or phone number"})
		case errors.Is(err, domain.ErrNoContactMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Account has no phone number on file"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No account matches that identifier"})
		case errors.As(err, &rateErr):
			minutes := int(math.Ceil(rateErr.RetryAfter.Minutes()))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":               fmt.Sprintf("Too many recovery requests. Try again in %d minutes", minutes),
				"retry_after_minutes": minutes,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start password recovery"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":    fmt.Sprintf("A recovery code was sent to %s", ticket.MaskedPhone),
			"user_id":    ticket.SubjectID,
			"expires_in": ticket.ExpiresIn,
		},
	})
}

// ConfirmReset handles POST /auth/recovery/confirm
func (h *RecoveryHandlers) ConfirmReset(c *gin.Context) {
	var req RecoveryConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.recoverySvc.Confirm(c.Request.Context(), req.Identifier, req.Code, req.NewPassword)
	if err != nil {
		var mismatch *domain.MismatchError
		switch {
		case errors.Is(err, domain.ErrCodeNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recovery code is invalid or has expired"})
		case errors.Is(err, domain.ErrCodeExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recovery code has expired. Request a new one"})
		case errors.Is(err, domain.ErrTooManyAttempts):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Too many failed attempts. Request a new code"})
		case errors.As(err, &mismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":              "Incorrect recovery code",
				"attempts_remaining": mismatch.AttemptsRemaining,
			})
		case errors.Is(err, domain.ErrUpdateFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password. Try again"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Password updated successfully",
		},
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// SellerHandlers handles seller-follow HTTP requests
type SellerHandlers struct {
	socialSvc domain.SocialService
}

// NewSellerHandlers creates new seller handlers
func NewSellerHandlers(socialSvc domain.SocialService) *SellerHandlers {
	return &SellerHandlers{socialSvc: socialSvc}
}

// FollowRequest represents a follow/unfollow request
type FollowRequest struct {
	SellerID string `json:"sellerId" binding:"required"`
}

// Follow handles following a seller
func (h *SellerHandlers) Follow(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")

	if err := h.socialSvc.FollowSeller(c.Request.Context(), userID, req.SellerID); err != nil {
		switch err {
		case domain.ErrSelfFollow:
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot follow yourself."})
		case domain.ErrSellerNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow seller"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Seller followed successfully."})
}

// Unfollow handles unfollowing a seller
func (h *SellerHandlers) Unfollow(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")

	if err := h.socialSvc.UnfollowSeller(c.Request.Context(), userID, req.SellerID); err != nil {
		if err == domain.ErrSellerNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow seller"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Seller unfollowed successfully."})
}

// GetSeller handles fetching a public seller profile
func (h *SellerHandlers) GetSeller(c *gin.Context) {
	sellerID := c.Param("sellerId")

	seller, err := h.socialSvc.GetSellerProfile(c.Request.Context(), sellerID)
	if err != nil {
		if err == domain.ErrSellerNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get seller profile"})
		return
	}

	c.JSON(http.StatusOK, userResponse(seller))
}

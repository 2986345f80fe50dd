package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// AuthMW wraps the token service for cookie-based request authentication
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates the authentication middleware
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// RequireAuth validates the signed token from the `token` cookie (or a
// Bearer header as fallback) and injects the caller's identity into the
// request context
func (m *AuthMW) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := m.tokenSvc.Validate(token)
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_admin", claims.IsAdmin)
		c.Set("is_seller", claims.IsSeller)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token, err := c.Cookie("token"); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Devdynamow/Ecommerce-backend-New/internal/http/handlers"
	"github.com/Devdynamow/Ecommerce-backend-New/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, rh *handlers.PasswordResetHandlers, sh *handlers.SellerHandlers, authmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.POST("/register", ah.Register)
	r.POST("/login", ah.Login)
	r.GET("/logout", ah.Logout)

	r.POST("/reset-password", rh.RequestReset)
	r.POST("/otp-verify", rh.VerifyOTP)
	r.POST("/update-password", rh.UpdatePassword)
	r.POST("/resend-otp", rh.ResendOTP)

	r.GET("/seller/:sellerId", sh.GetSeller)

	v := r.Group("/").Use(authmw.RequireAuth())
	v.GET("/profile", ah.Profile)
	v.PUT("/update-profile", ah.UpdateProfile)
	v.POST("/follow-seller", sh.Follow)
	v.POST("/unfollow-seller", sh.Unfollow)

	return r
}

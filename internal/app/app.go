package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Devdynamow/Ecommerce-backend-New/internal/config"
	httpx "github.com/Devdynamow/Ecommerce-backend-New/internal/http"
	"github.com/Devdynamow/Ecommerce-backend-New/internal/http/handlers"
	"github.com/Devdynamow/Ecommerce-backend-New/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx := context.Background()
	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close(ctx)

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	resetH := handlers.NewPasswordResetHandlers(c.ResetSvc)
	sellerH := handlers.NewSellerHandlers(c.SocialSvc)
	authMW := middleware.NewAuthMW(c.TokenSvc)

	r := httpx.BuildRouter(authH, resetH, sellerH, authMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

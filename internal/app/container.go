package app

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
	"github.com/Devdynamow/Ecommerce-backend-New/internal/config"
	"github.com/Devdynamow/Ecommerce-backend-New/internal/infrastructure/auth"
	"github.com/Devdynamow/Ecommerce-backend-New/internal/infrastructure/database"
	"github.com/Devdynamow/Ecommerce-backend-New/internal/infrastructure/notifications"
	"github.com/Devdynamow/Ecommerce-backend-New/internal/infrastructure/repositories"
	"github.com/Devdynamow/Ecommerce-backend-New/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	Mongo *mongo.Database
	Redis *database.RedisClient

	// Repositories
	UserRepo       domain.UserRepository
	ResetStateRepo domain.ResetStateRepository

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Mailer      domain.Mailer
	AuthSvc     domain.AuthService
	ResetSvc    domain.PasswordResetService
	SocialSvc   domain.SocialService
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}
	c.Mongo = db

	c.Redis = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := c.Redis.Ping(ctx); err != nil {
		return nil, err
	}

	c.UserRepo = repositories.NewUserRepository(c.Mongo)
	c.ResetStateRepo = repositories.NewResetStateRepository(c.Redis.Client, cfg.ResetSessionTTL)

	c.PasswordSvc = auth.NewPasswordService(cfg.BcryptCost)
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	c.Mailer = notifications.NewPostmarkService(cfg.PostmarkServer, cfg.PostmarkAccount, cfg.SenderEmail)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc)
	c.ResetSvc = services.NewPasswordResetService(c.UserRepo, c.ResetStateRepo, c.PasswordSvc, c.Mailer, services.ResetConfig{
		OTPLength: cfg.OTP_Length,
		OTPTTL:    cfg.OTP_TTL,
	})
	c.SocialSvc = services.NewSocialService(c.UserRepo)

	return c, nil
}

// Close closes all connections
func (c *Container) Close(ctx context.Context) error {
	if c.Redis != nil {
		c.Redis.Close()
	}
	if c.Mongo != nil {
		return c.Mongo.Client().Disconnect(ctx)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPConfig struct {
	TTL        string `yaml:"ttl"`
	Length     int    `yaml:"length"`
	SessionTTL string `yaml:"session_ttl"`
}

type PostmarkConfig struct {
	ServerToken  string `yaml:"server_token"`
	AccountToken string `yaml:"account_token"`
	SenderEmail  string `yaml:"sender_email"`
}

type BcryptConfig struct {
	Cost int `yaml:"cost"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Postmark PostmarkConfig `yaml:"postmark"`
	Bcrypt   BcryptConfig   `yaml:"bcrypt"`
}

type Config struct {
	Port            string
	GinMode         string
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	TokenTTL        time.Duration
	OTP_TTL         time.Duration
	OTP_Length      int
	ResetSessionTTL time.Duration
	PostmarkServer  string
	PostmarkAccount string
	SenderEmail     string
	BcryptCost      int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.OTP.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid reset session TTL: %w", err)
	}

	return &Config{
		Port:            fmt.Sprintf("%d", configFile.App.Port),
		GinMode:         configFile.App.GinMode,
		MongoURI:        env("MONGO_URI", configFile.Mongo.URI),
		MongoDatabase:   configFile.Mongo.Database,
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         configFile.Redis.DB,
		JWTSecret:       env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:       configFile.JWT.Issuer,
		TokenTTL:        tokenTTL,
		OTP_TTL:         otpTTL,
		OTP_Length:      configFile.OTP.Length,
		ResetSessionTTL: sessionTTL,
		PostmarkServer:  env("POSTMARK_SERVER_TOKEN", configFile.Postmark.ServerToken),
		PostmarkAccount: env("POSTMARK_ACCOUNT_TOKEN", configFile.Postmark.AccountToken),
		SenderEmail:     configFile.Postmark.SenderEmail,
		BcryptCost:      configFile.Bcrypt.Cost,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

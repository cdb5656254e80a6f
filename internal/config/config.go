package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"GO_ENV"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// R2 / S3 asset storage
	R2AccountID       string `mapstructure:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `mapstructure:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `mapstructure:"R2_SECRET_ACCESS_KEY"`
	R2BucketName      string `mapstructure:"R2_BUCKET_NAME"`
	R2PublicURL       string `mapstructure:"R2_PUBLIC_URL"` // Custom domain

	// Upload limits (MB). Applies to images and e-paper PDFs; video and
	// reel files are not size limited.
	MaxUploadMB int64 `mapstructure:"MAX_UPLOAD_MB"`

	// Outbound notification mail
	SMTPHost          string `mapstructure:"SMTP_HOST"`
	SMTPPort          string `mapstructure:"SMTP_PORT"`
	SMTPUser          string `mapstructure:"SMTP_USER"`
	SMTPPassword      string `mapstructure:"SMTP_PASSWORD"`
	ContactAdminEmail string `mapstructure:"CONTACT_ADMIN_EMAIL"`
	DefaultFromEmail  string `mapstructure:"DEFAULT_FROM_EMAIL"`

	// External cricket score provider (RapidAPI)
	CricketAPIEnabled    bool   `mapstructure:"CRICKET_API_ENABLED"`
	CricketAPIBaseURL    string `mapstructure:"CRICKET_API_BASE_URL"`
	CricketMatchesAPIURL string `mapstructure:"CRICKET_MATCHES_API_URL"`
	CricketAPIHost       string `mapstructure:"CRICKET_API_HOST"`
	CricketAPIKey        string `mapstructure:"CRICKET_API_KEY"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("MAX_UPLOAD_MB", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
}

package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/quietpage/quietpage/internal/platform/logger"
)

type Config struct {
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	Environment   string `mapstructure:"ENVIRONMENT"`
	LogLevel      string `mapstructure:"LOG_LEVEL"` // Logging level (debug, info, warn, error)

	// Operator identity rendered on every page.
	DeveloperName    string `mapstructure:"DEVELOPER_NAME"`
	DeveloperSurname string `mapstructure:"DEVELOPER_SURNAME"`
	GitHubURL        string `mapstructure:"GITHUB_URL"`
	LinkedInURL      string `mapstructure:"LINKEDIN_URL"`
	TwitterURL       string `mapstructure:"TWITTER_URL"`
	ResumeURL        string `mapstructure:"RESUME_URL"`

	// Contact relay transport.
	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	SenderEmail      string `mapstructure:"SENDER_EMAIL"`
	SenderPassword   string `mapstructure:"SENDER_PASSWORD"`
	NotifyRecipients string `mapstructure:"NOTIFY_RECIPIENTS"` // Comma-separated list

	// Reserved for session signing and future integrations. Loaded so a
	// deployment can set them ahead of time; nothing reads them yet.
	SecretKey      string `mapstructure:"SECRET_KEY"`
	ExternalAPIKey string `mapstructure:"EXTERNAL_API_KEY"`
}

// Recipients splits the configured recipient list. When none is configured
// the contact relay falls back to the sender's own address.
func (c Config) Recipients() []string {
	if strings.TrimSpace(c.NotifyRecipients) == "" {
		return []string{c.SenderEmail}
	}

	parts := strings.Split(c.NotifyRecipients, ",")
	recipients := make([]string, 0, len(parts))
	for _, part := range parts {
		if addr := strings.TrimSpace(part); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}

func LoadConfig(bootstrapLogger *logger.BootstrapLogger) (Config, error) {
	ctx := context.Background()

	// Load .env file if it exists (godotenv will find it automatically)
	// It's okay if the file doesn't exist - we'll use environment variables
	if err := godotenv.Load(); err != nil {
		bootstrapLogger.Info(ctx, "no .env file found, using environment variables only")
	} else {
		bootstrapLogger.Info(ctx, "loaded .env file")
	}

	v := viper.New()

	// Set default values
	v.SetDefault("DATABASE_URL", "postgresql://localhost:5432/quietpage?sslmode=disable")
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEVELOPER_NAME", "Quiet")
	v.SetDefault("DEVELOPER_SURNAME", "Page")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)

	// Enable automatic environment variable reading
	// Viper will now see all environment variables, including those loaded by godotenv
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		bootstrapLogger.Error(ctx, "failed to unmarshal configuration", "error", err)
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	bootstrapLogger.Info(ctx, "configuration loaded",
		"environment", config.Environment,
		"log_level", config.LogLevel,
		"server_address", config.ServerAddress,
	)

	// The contact relay cannot authenticate without credentials.
	if config.SenderEmail == "" {
		err := errors.New("SENDER_EMAIL is required")
		bootstrapLogger.Error(ctx, "configuration validation failed", "error", err)
		return Config{}, err
	}
	if config.SenderPassword == "" {
		err := errors.New("SENDER_PASSWORD is required")
		bootstrapLogger.Error(ctx, "configuration validation failed", "error", err)
		return Config{}, err
	}

	bootstrapLogger.Info(ctx, "configuration validated successfully")
	return config, nil
}

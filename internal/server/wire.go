//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"

	"github.com/quietpage/quietpage/internal/adapters/mail"
	"github.com/quietpage/quietpage/internal/adapters/postgres"
	"github.com/quietpage/quietpage/internal/adapters/web"
	contactApp "github.com/quietpage/quietpage/internal/contact/application"
	contactPorts "github.com/quietpage/quietpage/internal/contact/ports"
	"github.com/quietpage/quietpage/internal/platform/eventbus"
	"github.com/quietpage/quietpage/internal/platform/events"
	"github.com/quietpage/quietpage/internal/platform/logger"
	"github.com/quietpage/quietpage/internal/posts/application"
)

// InitializeApp creates a fully configured App with all dependencies
func InitializeApp(ctx context.Context) (*App, func(), error) {
	wire.Build(
		// Bootstrap phase
		logger.NewBootstrapLogger,
		LoadConfig,

		// Logger configuration
		provideLoggerConfig,

		// Main logger
		logger.NewConfiguredLogger,
		wire.Bind(new(logger.Logger), new(*logger.SlogAdapter)),

		// Database
		ConnectDatabase,

		// Event bus with the logging subscriber attached
		provideEventBus,

		// Repository providers (includes interface binding)
		postgres.ProviderSet,

		// Application services
		application.ProviderSet,
		provideNotifierConfig,
		contactApp.ProviderSet,

		// Mail transport
		provideSMTPSender,
		wire.Bind(new(contactPorts.MailSender), new(*mail.SMTPSender)),

		// Web handler
		provideSiteInfo,
		web.ProviderSet,

		// HTTP Server
		NewHTTPServer,

		// App
		NewApp,
	)

	return nil, nil, nil
}

// provideLoggerConfig creates logger config from server config
func provideLoggerConfig(config Config) logger.Config {
	return logger.Config{
		Environment: config.Environment,
		LogLevel:    config.LogLevel,
	}
}

// provideEventBus creates the event bus and attaches the logging subscriber
func provideEventBus(log logger.Logger) *eventbus.Bus {
	bus := eventbus.NewBus(log)
	events.RegisterLogging(bus, log)
	return bus
}

// provideNotifierConfig creates the contact notifier config from server config
func provideNotifierConfig(config Config) contactApp.Config {
	return contactApp.Config{
		Recipients:    config.Recipients(),
		DeveloperName: config.DeveloperName,
	}
}

// provideSMTPSender creates the SMTP mail sender from server config
func provideSMTPSender(config Config) (*mail.SMTPSender, error) {
	return mail.NewSMTPSender(mail.Config{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Sender:   config.SenderEmail,
		Password: config.SenderPassword,
	})
}

// provideSiteInfo creates the site metadata rendered on every page
func provideSiteInfo(config Config) web.SiteInfo {
	return web.SiteInfo{
		DeveloperName:    config.DeveloperName,
		DeveloperSurname: config.DeveloperSurname,
		GitHubURL:        config.GitHubURL,
		LinkedInURL:      config.LinkedInURL,
		TwitterURL:       config.TwitterURL,
		ResumeURL:        config.ResumeURL,
	}
}

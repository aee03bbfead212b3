// Package mailer sends best-effort notification emails. Delivery failures
// never affect the request that triggered them.
package mailer

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"gopkg.in/gomail.v2"
)

// Mailer represents an email sender guarded by a circuit breaker so a dead
// SMTP host does not slow every registration down.
type Mailer struct {
	config  *mailerConfig
	dialer  *gomail.Dialer
	breaker *gobreaker.CircuitBreaker
	logger  *zerolog.Logger
}

// New creates a Mailer from environment variables. It returns nil when SMTP
// is not configured; callers treat a nil Mailer as "emails disabled".
func New(logger *zerolog.Logger) *Mailer {
	cfg := newMailerConfig(logger)

	if cfg.Host == "" {
		logger.Info().Msg("SMTP not configured, notification emails disabled")
		return nil
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate Mailer configuration")
	}

	dialer := gomail.NewDialer(
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
	)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "smtp",
		Timeout: 30 * time.Second,
	})

	return &Mailer{
		config:  cfg,
		dialer:  dialer,
		breaker: breaker,
		logger:  logger,
	}
}

// SendWelcome sends a short welcome email to a freshly registered account.
func (m *Mailer) SendWelcome(email string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Welcome to BuddyLink")
	msg.SetBody("text/plain",
		"Hi,\n\nYour BuddyLink registration was successful. You can now log in with your email address.\n\nThe BuddyLink Team")

	_, err := m.breaker.Execute(func() (any, error) {
		return nil, m.dialer.DialAndSend(msg)
	})

	return err
}

// mailerConfig holds SMTP configuration for sending emails.
type mailerConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// newMailerConfig creates a mailerConfig instance from environment variables.
func newMailerConfig(logger *zerolog.Logger) *mailerConfig {
	cfg, err := env.ParseAs[mailerConfig]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	return &cfg
}

// validate checks if the Mailer configuration is valid.
func (c *mailerConfig) validate() error {
	if c.Port == 0 {
		return fmt.Errorf("missing SMTP_PORT environment variable")
	}
	if c.Username == "" {
		return fmt.Errorf("missing SMTP_USERNAME environment variable")
	}
	if c.Password == "" {
		return fmt.Errorf("missing SMTP_PASSWORD environment variable")
	}
	if c.From == "" {
		return fmt.Errorf("missing SMTP_FROM environment variable")
	}

	return nil
}

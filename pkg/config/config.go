// Package config loads the transport settings the mail-merge engine needs.
//
// Settings come from environment variables, optionally seeded from a .env
// file in the working directory. All mandatory settings are validated at
// startup so a broken configuration fails before any dispatch is attempted,
// never in the middle of a send loop.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	// ErrMissingSetting indicates a mandatory setting is absent.
	ErrMissingSetting = errors.New("missing required setting")

	// ErrInvalidSetting indicates a setting has an unusable value.
	ErrInvalidSetting = errors.New("invalid setting value")
)

const defaultInterval = 30 * time.Second

// Config holds the engine's transport and behavior settings.
type Config struct {
	SenderName   string
	SenderEmail  string
	SMTPServer   string
	SMTPPort     int
	SMTPPassword string
	UseSSL       bool
	SendInterval time.Duration
	ResendAPIKey string // optional: enables the Resend provider
	SentryDSN    string // optional: enables Sentry log fan-out
}

// Load reads settings from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	// Missing .env is fine; explicit environment is enough.
	_ = godotenv.Load()

	cfg := &Config{
		SenderName:   os.Getenv("SENDER_NAME"),
		SenderEmail:  os.Getenv("SENDER_EMAIL"),
		SMTPServer:   os.Getenv("SMTP_SERVER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		SentryDSN:    os.Getenv("SENTRY_DSN"),
		SendInterval: defaultInterval,
	}

	for name, value := range map[string]string{
		"SENDER_NAME":   cfg.SenderName,
		"SENDER_EMAIL":  cfg.SenderEmail,
		"SMTP_SERVER":   cfg.SMTPServer,
		"SMTP_PASSWORD": cfg.SMTPPassword,
	} {
		if value == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingSetting, name)
		}
	}

	portStr := os.Getenv("SMTP_PORT")
	if portStr == "" {
		return nil, fmt.Errorf("%w: SMTP_PORT", ErrMissingSetting)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("%w: SMTP_PORT=%q", ErrInvalidSetting, portStr)
	}
	cfg.SMTPPort = port

	if sslStr := os.Getenv("USE_SSL"); sslStr != "" {
		ssl, err := strconv.ParseBool(sslStr)
		if err != nil {
			return nil, fmt.Errorf("%w: USE_SSL=%q", ErrInvalidSetting, sslStr)
		}
		cfg.UseSSL = ssl
	}

	if intervalStr := os.Getenv("SEND_INTERVAL"); intervalStr != "" {
		seconds, err := strconv.Atoi(intervalStr)
		if err != nil || seconds < 0 {
			return nil, fmt.Errorf("%w: SEND_INTERVAL=%q", ErrInvalidSetting, intervalStr)
		}
		cfg.SendInterval = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}

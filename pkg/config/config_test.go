package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// setValidEnv seeds every mandatory setting.
// Tests using t.Setenv must not run in parallel.
func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SENDER_NAME", "营销部")
	t.Setenv("SENDER_EMAIL", "news@example.com")
	t.Setenv("SMTP_SERVER", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_PASSWORD", "secret")
}

func TestLoad_Valid(t *testing.T) {
	setValidEnv(t)
	t.Setenv("USE_SSL", "true")
	t.Setenv("SEND_INTERVAL", "10")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "营销部", cfg.SenderName)
	require.Equal(t, "news@example.com", cfg.SenderEmail)
	require.Equal(t, "smtp.example.com", cfg.SMTPServer)
	require.Equal(t, 465, cfg.SMTPPort)
	require.Equal(t, "secret", cfg.SMTPPassword)
	require.True(t, cfg.UseSSL)
	require.Equal(t, 10*time.Second, cfg.SendInterval)
}

func TestLoad_Defaults(t *testing.T) {
	setValidEnv(t)
	t.Setenv("USE_SSL", "")
	t.Setenv("SEND_INTERVAL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.UseSSL)
	require.Equal(t, 30*time.Second, cfg.SendInterval)
}

func TestLoad_MissingMandatory(t *testing.T) {
	for _, name := range []string{
		"SENDER_NAME", "SENDER_EMAIL", "SMTP_SERVER", "SMTP_PORT", "SMTP_PASSWORD",
	} {
		t.Run(name, func(t *testing.T) {
			setValidEnv(t)
			t.Setenv(name, "")

			_, err := Load()
			require.ErrorIs(t, err, ErrMissingSetting)
			require.Contains(t, err.Error(), name)
		})
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	setValidEnv(t)
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidSetting)
}

func TestLoad_InvalidSSL(t *testing.T) {
	setValidEnv(t)
	t.Setenv("USE_SSL", "maybe")

	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidSetting)
}

func TestLoad_InvalidInterval(t *testing.T) {
	setValidEnv(t)
	t.Setenv("SEND_INTERVAL", "-5")

	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidSetting)
}

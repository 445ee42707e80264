package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutCredentialsLogsCodes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	m := New(SMTPConfig{Host: "smtp.gmail.com", Port: 587}, logger)
	_, ok := m.(*LogMailer)
	require.True(t, ok)

	require.NoError(t, m.SendOTP(context.Background(), "ana@example.com", "Ana", "123456", 10*time.Minute))
	assert.Contains(t, buf.String(), `"code":"123456"`)
	assert.Contains(t, buf.String(), "an***@example.com")
	assert.NotContains(t, buf.String(), "ana@example.com")
}

func TestNew_WithCredentialsUsesSMTP(t *testing.T) {
	m := New(SMTPConfig{Host: "smtp.gmail.com", Port: 587, Username: "shop@example.com", Password: "secret"}, slog.Default())
	_, ok := m.(*SMTPMailer)
	assert.True(t, ok)
}

func TestRenderOTP(t *testing.T) {
	text, body := renderOTP("<Ana>", "654321", 10*time.Minute)
	assert.Contains(t, text, "Hello <Ana>")
	assert.Contains(t, text, "654321")
	assert.Contains(t, text, "10 minutes")
	assert.Contains(t, body, "Hello &lt;Ana&gt;")
	assert.Contains(t, body, "654321")
}

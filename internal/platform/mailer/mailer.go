package mailer

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/utils"
	"github.com/wneessen/go-mail"
)

const otpSubject = "Your Vinque verification code"

// SMTPConfig holds the SMTP account used to send codes.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPMailer sends one-time codes over authenticated SMTP.
type SMTPMailer struct {
	cfg    SMTPConfig
	logger *slog.Logger
}

var _ portssvc.Mailer = (*SMTPMailer)(nil)

// New returns an SMTP mailer, or a LogMailer when no credentials are configured.
func New(cfg SMTPConfig, logger *slog.Logger) portssvc.Mailer {
	if cfg.Username == "" || cfg.Password == "" {
		logger.Warn("EMAIL_USER/EMAIL_PASS not set; one-time codes will be logged instead of emailed")
		return &LogMailer{logger: logger}
	}
	return &SMTPMailer{cfg: cfg, logger: logger}
}

func (m *SMTPMailer) SendOTP(ctx context.Context, to, firstName, code string, ttl time.Duration) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Username); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(otpSubject)
	text, htmlBody := renderOTP(firstName, code, ttl)
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	m.logger.Info("OTP email sent", slog.String("to", utils.MaskEmail(to)))
	return nil
}

// LogMailer writes codes to the log. It is only used in development.
type LogMailer struct {
	logger *slog.Logger
}

var _ portssvc.Mailer = (*LogMailer)(nil)

func (m *LogMailer) SendOTP(ctx context.Context, to, firstName, code string, ttl time.Duration) error {
	m.logger.Warn("OTP email not sent (no SMTP credentials)",
		slog.String("to", utils.MaskEmail(to)),
		slog.String("code", code),
		slog.Duration("ttl", ttl))
	return nil
}

func renderOTP(firstName, code string, ttl time.Duration) (string, string) {
	greeting := "Hello"
	if firstName != "" {
		greeting = "Hello " + firstName
	}
	minutes := int(ttl.Minutes())
	text := fmt.Sprintf("%s,\n\nYour verification code is %s. It expires in %d minutes.\n\nIf you did not request this code, you can ignore this email.\n",
		greeting, code, minutes)
	body := fmt.Sprintf(`<p>%s,</p><p>Your verification code is <strong style="font-size:20px;letter-spacing:4px">%s</strong>.</p><p>It expires in %d minutes.</p><p>If you did not request this code, you can ignore this email.</p>`,
		html.EscapeString(greeting), html.EscapeString(code), minutes)
	return text, body
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

type ResendEmailSender struct {
	Client  *resend.Client
	From    string
	CodeTTL time.Duration
}

// NewEmailSender returns a Resend-backed sender, or a LogEmailSender when no
// API key is configured. codeTTL is quoted in the message body.
func NewEmailSender(apiKey string, from string, codeTTL time.Duration, logger logrus.FieldLogger) EmailSender {
	if strings.TrimSpace(apiKey) == "" {
		return LogEmailSender{Logger: logger}
	}
	return &ResendEmailSender{
		Client:  resend.NewClient(apiKey),
		From:    from,
		CodeTTL: codeTTL,
	}
}

func (s *ResendEmailSender) SendVerificationCode(ctx context.Context, email string, code string) error {
	subject, html, text := verificationEmail(code, s.CodeTTL)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) SendPasswordResetCode(ctx context.Context, email string, code string) error {
	subject, html, text := passwordResetEmail(code, s.CodeTTL)
	return s.send(ctx, email, subject, html, text)
}

func verificationEmail(code string, ttl time.Duration) (subject, html, text string) {
	expiry := expiryText(ttl)
	subject = "Seu código de verificação"
	html = fmt.Sprintf("<p>Use o código abaixo para confirmar seu email:</p><h2>%s</h2><p>Ele expira em %s.</p>", code, expiry)
	text = fmt.Sprintf("Seu código de verificação: %s (expira em %s)", code, expiry)
	return subject, html, text
}

func passwordResetEmail(code string, ttl time.Duration) (subject, html, text string) {
	expiry := expiryText(ttl)
	subject = "Redefinição de senha"
	html = fmt.Sprintf("<p>Use o código abaixo para redefinir sua senha:</p><h2>%s</h2><p>Ele expira em %s.</p>", code, expiry)
	text = fmt.Sprintf("Código para redefinir sua senha: %s (expira em %s)", code, expiry)
	return subject, html, text
}

// expiryText renders ttl in whole minutes, rounding up. Zero means the
// default OTP lifetime.
func expiryText(ttl time.Duration) string {
	if ttl <= 0 {
		ttl = defaultOTPTTL
	}
	minutes := int((ttl + time.Minute - 1) / time.Minute)
	if minutes == 1 {
		return "1 minuto"
	}
	return fmt.Sprintf("%d minutos", minutes)
}

func (s *ResendEmailSender) send(ctx context.Context, to string, subject string, html string, text string) error {
	_, err := s.Client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.From,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// LogEmailSender writes codes to the log instead of delivering them.
type LogEmailSender struct {
	Logger logrus.FieldLogger
}

func (s LogEmailSender) SendVerificationCode(_ context.Context, email string, code string) error {
	s.log(email, code, "verify")
	return nil
}

func (s LogEmailSender) SendPasswordResetCode(_ context.Context, email string, code string) error {
	s.log(email, code, "reset")
	return nil
}

func (s LogEmailSender) log(email string, code string, purpose string) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithFields(logrus.Fields{
		"email":   email,
		"purpose": purpose,
		"code":    code,
	}).Warn("email delivery not configured")
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"driveincinema/internal/entity"
	"driveincinema/internal/metrics"
	"driveincinema/internal/repository"
	"driveincinema/internal/utils"
)

const defaultOTPTTL = 10 * time.Minute

type OTPConfig struct {
	TTL      time.Duration
	Cooldown time.Duration
}

// OTPService issues and redeems the 6-digit email codes used for signup
// verification and password reset.
type OTPService struct {
	tokens      repository.VerificationTokenRepository
	emailSender EmailSender
	cooldown    Cooldown
	clock       Clock
	metrics     *metrics.Metrics
	config      OTPConfig
}

func NewOTPService(
	tokens repository.VerificationTokenRepository,
	emailSender EmailSender,
	cooldown Cooldown,
	clock Clock,
	m *metrics.Metrics,
	config OTPConfig,
) *OTPService {
	return &OTPService{
		tokens:      tokens,
		emailSender: emailSender,
		cooldown:    cooldown,
		clock:       clock,
		metrics:     m,
		config:      config,
	}
}

// Issue throttles and then sends a fresh code for purpose to email.
func (s *OTPService) Issue(ctx context.Context, email string, purpose entity.VerificationPurpose) error {
	if err := s.Throttle(ctx, email, purpose); err != nil {
		return err
	}
	return s.Send(ctx, email, purpose)
}

// Throttle returns ErrTooManyRequests when a code for (email, purpose) was
// requested within the cooldown window. It is a no-op without a Cooldown.
func (s *OTPService) Throttle(ctx context.Context, email string, purpose entity.VerificationPurpose) error {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return ErrInvalidInput
	}
	if s.cooldown == nil || s.config.Cooldown <= 0 {
		return nil
	}
	ok, err := s.cooldown.Acquire(ctx, "otp:"+string(purpose)+":"+email, s.config.Cooldown)
	if err != nil {
		return fmt.Errorf("otp cooldown: %w", err)
	}
	if !ok {
		return ErrTooManyRequests
	}
	return nil
}

// Send replaces any code held by email with a new one and mails it.
func (s *OTPService) Send(ctx context.Context, email string, purpose entity.VerificationPurpose) error {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return ErrInvalidInput
	}
	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	token := &entity.VerificationToken{
		Identifier: email,
		Token:      code,
		Expires:    s.now().Add(s.ttl()),
	}
	if err := s.tokens.Replace(ctx, token); err != nil {
		return fmt.Errorf("store code: %w", err)
	}

	if s.emailSender != nil {
		switch purpose {
		case entity.PurposeReset:
			err = s.emailSender.SendPasswordResetCode(ctx, email, code)
		default:
			err = s.emailSender.SendVerificationCode(ctx, email, code)
		}
		if err != nil {
			return err
		}
	}
	s.metrics.OTPIssued(string(purpose))
	return nil
}

// Verify redeems code for email and marks the account as verified.
func (s *OTPService) Verify(ctx context.Context, email string, code string) error {
	email, err := s.check(ctx, email, code)
	if err != nil {
		return err
	}
	err = s.tokens.ConsumeVerification(ctx, email, code, s.now())
	return s.redeemed(err)
}

// ResetPassword redeems code for email, stores passwordHash and revokes the
// account's sessions.
func (s *OTPService) ResetPassword(ctx context.Context, email string, code string, passwordHash string) error {
	email, err := s.check(ctx, email, code)
	if err != nil {
		return err
	}
	err = s.tokens.ConsumeReset(ctx, email, code, passwordHash, s.now())
	return s.redeemed(err)
}

func (s *OTPService) check(ctx context.Context, email string, code string) (string, error) {
	email = utils.NormalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return "", ErrInvalidInput
	}
	token, err := s.tokens.Find(ctx, email, code)
	if err != nil {
		return "", err
	}
	if token == nil {
		s.metrics.OTPVerified("invalid")
		return "", ErrInvalidCode
	}
	if token.Expired(s.now()) {
		s.metrics.OTPVerified("expired")
		return "", ErrCodeExpired
	}
	return email, nil
}

func (s *OTPService) redeemed(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		// Someone else redeemed the same code first.
		s.metrics.OTPVerified("invalid")
		return ErrInvalidCode
	}
	if err != nil {
		return err
	}
	s.metrics.OTPVerified("ok")
	return nil
}

func (s *OTPService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *OTPService) ttl() time.Duration {
	if s.config.TTL > 0 {
		return s.config.TTL
	}
	return defaultOTPTTL
}

package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// BaseURL is the public frontend origin used in verification and reset
	// links.
	BaseURL string
}

// Service sends transactional email over SMTP.
type Service struct {
	cfg     Config
	baseURL string
}

func NewService(cfg Config) (*Service, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}

	return &Service{
		cfg:     cfg,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

func (s *Service) SendVerificationEmail(ctx context.Context, email, token string) error {
	verifyURL := fmt.Sprintf("%s/verify?token=%s", s.baseURL, token)
	body := fmt.Sprintf(`<p>Click <a href="%s">here</a> to verify your email.</p>`, verifyURL)

	return s.send(ctx, email, "Verify your Email", body)
}

func (s *Service) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	body := fmt.Sprintf(
		`<p>Click <a href="%s">here</a> to reset your password. Link expires in 15 minutes.</p>`,
		resetURL)

	return s.send(ctx, email, "Password Reset", body)
}

func (s *Service) SendSuspiciousLoginEmail(ctx context.Context, email, ip, device, city, country string) error {
	body := fmt.Sprintf("<p>New login detected:<br>IP: %s<br>Device: %s<br>Location: %s, %s</p>",
		ip, device, city, country)

	return s.send(ctx, email, "Suspicious Login Detected", body)
}

func (s *Service) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.Username != "" && s.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

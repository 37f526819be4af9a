package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/dev-charan/Digi-Locker/internal/auth/domain"
	"github.com/google/uuid"
)

// LoginAuditor writes a login_logs row for every successful login and sends
// a suspicious-login alert when the IP differs from the previous login.
// Everything here is best-effort: a geolocation outage or SMTP failure must
// never surface to the user logging in.
type LoginAuditor struct {
	logs   domain.LoginLogRepository
	geo    GeoResolver
	mailer Mailer
	logger *slog.Logger
}

func NewLoginAuditor(logs domain.LoginLogRepository, geo GeoResolver, mailer Mailer, logger *slog.Logger) *LoginAuditor {
	return &LoginAuditor{
		logs:   logs,
		geo:    geo,
		mailer: mailer,
		logger: logger,
	}
}

func (a *LoginAuditor) Record(ctx context.Context, user *domain.User, ip, device string) {
	city, country, err := a.geo.Lookup(ctx, ip)
	if err != nil {
		a.logger.Warn("geolocation lookup failed", "ip", ip, "error", err)
		city, country = "Unknown", "Unknown"
	}

	entry := &domain.LoginLog{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		IP:        ip,
		Device:    device,
		City:      city,
		Country:   country,
		CreatedAt: time.Now(),
	}
	if err := a.logs.Insert(ctx, entry); err != nil {
		a.logger.Error("failed to record login", "user_id", user.ID, "error", err)
		return
	}

	prev, err := a.logs.GetPreviousLogin(ctx, user.ID, entry.ID)
	if err != nil {
		a.logger.Error("failed to load previous login", "user_id", user.ID, "error", err)
		return
	}

	// First login has nothing to compare against.
	if prev == nil || prev.IP == ip {
		return
	}

	if err := a.mailer.SendSuspiciousLoginEmail(ctx, user.Email, ip, device, city, country); err != nil {
		a.logger.Error("failed to send suspicious login alert", "user_id", user.ID, "error", err)
	}
}

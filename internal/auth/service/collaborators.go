package service

//go:generate mockgen -destination=../../mocks/mock_collaborators.go -package=mocks github.com/dev-charan/Digi-Locker/internal/auth/service Mailer,GeoResolver

import "context"

// Mailer delivers the three notification emails. Every call is best-effort
// from the caller's point of view: failures are logged, never propagated to
// the client.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, email, token string) error
	SendPasswordResetEmail(ctx context.Context, email, token string) error
	SendSuspiciousLoginEmail(ctx context.Context, email, ip, device, city, country string) error
}

// GeoResolver maps an IP to a coarse location for the login log.
type GeoResolver interface {
	Lookup(ctx context.Context, ip string) (city, country string, err error)
}

// TaskQueue runs side effects off the request path. The login response must
// not wait on SMTP or the geolocation API.
type TaskQueue interface {
	Submit(task func())
}

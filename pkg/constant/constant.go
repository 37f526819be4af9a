package constant

const (
	// BcryptCost matches the cost factor used when the existing password
	// hashes were created; changing it only affects new hashes.
	BcryptCost = 10

	RefreshTokenCookie = "refresh_token"

	DefaultAccessExpiryMinutes  = 15
	DefaultRefreshExpiryMinutes = 10080 // 7 days

	LoginRateLimitMax           = 5
	LoginRateLimitWindowMinutes = 15

	MaxUploadBytes = 10 << 20 // 10MB
)

package dto

import "time"

// TokenPair is what a successful login or refresh produces. The refresh
// token travels back to the client only inside the httpOnly cookie; the
// access token is the JSON body.
type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"-"`
	RefreshExpiresAt time.Time `json:"-"`
}

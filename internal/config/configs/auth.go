package configs

import "time"

// Auth configures token issuance and the Google sign-in audience.
type Auth struct {
	// JWTSecret signs issued tokens (HMAC-SHA256).
	JWTSecret string `env:"JWT_SECRET,notEmpty"`
	// TokenTTL bounds the lifetime of issued tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	// GoogleClientID is the expected audience of Google identity tokens.
	// Google sign-in is disabled when empty.
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`
}

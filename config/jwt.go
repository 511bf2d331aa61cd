package config

import (
	"log/slog"
	"os"
)

var JwtKey []byte

// LoadJwtKey reads the HMAC signing key for auth tokens from JWT_SECRET.
func LoadJwtKey() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET environment variable is not set")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}

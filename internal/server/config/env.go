package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Variable names
// follow the deployment convention used by the frontend stack, so the same
// .env works for both.
//
//	ADDRESS                          HTTP bind address
//	DATABASE_URL                     PostgreSQL DSN
//	JWT_SECRET                       HMAC secret
//	JWT_ACCESS_TOKEN_EXPIRE_MINUTES  access token validity
//	JWT_REFRESH_TOKEN_EXPIRE_DAYS    refresh token validity
//	CORS_ORIGINS                     comma-separated origins
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("JWT_ACCESS_TOKEN_EXPIRE_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v, ok := os.LookupEnv("JWT_REFRESH_TOKEN_EXPIRE_DAYS"); ok {
		if days, err := strconv.Atoi(v); err == nil {
			config.RefreshTokenValidityDuration = time.Duration(days) * 24 * time.Hour
		}
	}
	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		config.CORSOrigins = v
	}
}

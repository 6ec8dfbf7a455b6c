package config

import (
	"net/http"
	"os"
	"strconv"
	"time"
)

// SessionPolicy is the single source of truth for session cookie
// attributes. Customer and admin sessions share every attribute except
// their lifetime.
type SessionPolicy struct {
	CookieName  string
	CustomerTTL time.Duration
	AdminTTL    time.Duration
	SameSite    http.SameSite
	Secure      bool
}

// Config holds everything read from the environment.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	Session   SessionPolicy
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseSameSite(v string) http.SameSite {
	switch v {
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}

// Load reads configuration from the environment with development
// defaults. godotenv is expected to have been loaded by the caller.
func Load() Config {
	secure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))

	return Config{
		Port:      getEnv("PORT", "8080"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getEnv("MONGO_DB", "shopprr"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		Session: SessionPolicy{
			CookieName:  "user_session",
			CustomerTTL: 7 * 24 * time.Hour,
			AdminTTL:    24 * time.Hour,
			SameSite:    parseSameSite(getEnv("COOKIE_SAMESITE", "lax")),
			Secure:      secure,
		},
	}
}

package config

import "os"

// Config centralises environment and runtime configuration.
type Config struct {
	Port      string
	DBPath    string
	UploadDir string

	// Bootstrap credentials for the initial admin account. Only used when
	// no admin exists yet.
	AdminUsername string
	AdminPassword string

	// Production refuses to issue session cookies unless HTTPS is also
	// declared, and marks cookies Secure.
	Production bool
	HTTPS      bool
}

func Load() *Config {
	return &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		DBPath:        getEnvOrDefault("DB_PATH", "checkin.db"),
		UploadDir:     getEnvOrDefault("UPLOAD_DIR", "static/uploads"),
		AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "changeme"),
		Production:    parseBoolEnv(os.Getenv("PRODUCTION")),
		HTTPS:         parseBoolEnv(os.Getenv("HTTPS_ENABLED")),
	}
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func parseBoolEnv(s string) bool {
	switch s {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

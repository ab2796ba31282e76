package config

import "os"

// Config holds everything read from the environment at startup. godotenv has
// already loaded .env by the time Load runs.
type Config struct {
	Env       string
	Port      string
	DBUser    string
	DBPass    string
	DBHost    string
	DBName    string
	JWTSecret string
}

func Load() Config {
	return Config{
		Env:       getenv("ENV", "development"),
		Port:      getenv("PORT", "8080"),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    os.Getenv("DB_PASS"),
		DBHost:    getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:    getenv("DB_NAME", "medico"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

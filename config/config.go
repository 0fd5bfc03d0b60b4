package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, sourced from the environment
// with local-development defaults.
type Config struct {
	Host      string
	Port      string
	Env       string
	MongoURI  string
	DBName    string
	JWTSecret string
	QRDir     string
}

// Load reads a .env file if one is present and resolves the configuration.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Host:      getEnv("HOST", "http://localhost"),
		Port:      getEnv("PORT", "3000"),
		Env:       getEnv("ENV", "development"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getEnv("DB_NAME", "menuja"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		QRDir:     getEnv("QR_DIR", "qrcodes"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

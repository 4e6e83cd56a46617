package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	TokenTTL    time.Duration
	WorkerCount int
}

func Load() Config {
	// A missing .env file is fine, env vars win either way.
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "taskhub"),
		JWTSecret:   getEnv("JWT_SECRET", "secret-key"),
		TokenTTL:    getDuration("TOKEN_TTL", 10*time.Minute),
		WorkerCount: getInt("WORKER_COUNT", 2),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

package config

import (
	"log"
	"os"
)

type Config struct {
	DBPath        string
	JWTSecret     string
	RedisAddr     string
	AllowedOrigin string
}

func Load() *Config {
	cfg := &Config{
		DBPath:        getEnv("DB_PATH", "gaminghub.sqlite"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("Missing critical environment variables")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

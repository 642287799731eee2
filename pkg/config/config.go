package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// RedisAddr enables the Redis key-value backend when non-empty;
	// otherwise state lives in process memory.
	RedisAddr string

	// FeedBaseURL is the base URL of the product feed API.
	FeedBaseURL string

	// ShippingFee is the flat fee added to every order total.
	ShippingFee float64
}

func Load() Config {
	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		FeedBaseURL: getEnv("FEED_BASE_URL", "https://fakestoreapi.com"),
		ShippingFee: getEnvFloat("SHIPPING_FEE", 50),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}

	return f
}

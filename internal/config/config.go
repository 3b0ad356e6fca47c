package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	StoreDriver     string // sqlite | postgres | memory
	DBDSN           string
	LogFile         string
	JWTSecret       string
	SecureCookies   bool
	BcryptCost      int
	RateLimit       int
	BodyLimit       int
	ShutdownTimeout time.Duration

	OpenRouterKey string
	OpenRouterURL string
	ChatModel     string
	VisionModel   string
	SiteURL       string
	ProxyTimeout  time.Duration

	KafkaBrokers []string
	KafkaTopic   string
}

func Load() Config {
	cfg := Config{
		Port:            envOrDefault("PORT", "8080"),
		StoreDriver:     strings.ToLower(envOrDefault("STORE_DRIVER", "sqlite")),
		DBDSN:           envOrDefault("DB_DSN", "agroconnect.db"), // sqlite file in project root
		LogFile:         envOrDefault("LOG_FILE", "./agroconnect.log"),
		JWTSecret:       os.Getenv("AUTH_JWT_SECRET"),
		SecureCookies:   envBool("SECURE_COOKIES", false),
		BcryptCost:      envInt("BCRYPT_COST", 12),
		RateLimit:       envInt("RATE_LIMIT_PER_MINUTE", 60),
		BodyLimit:       envInt("BODY_LIMIT_BYTES", 8<<20), // data-URI images need room
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),

		OpenRouterKey: os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterURL: envOrDefault("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions"),
		ChatModel:     envOrDefault("CHAT_MODEL", "microsoft/wizardlm-2-8x22b"),
		VisionModel:   envOrDefault("VISION_MODEL", "google/gemini-pro-vision"),
		SiteURL:       envOrDefault("SITE_URL", "http://localhost:8080"),
		ProxyTimeout:  envDuration("PROXY_TIMEOUT_SECONDS", 30*time.Second),

		KafkaBrokers: envList("KAFKA_BROKERS"),
		KafkaTopic:   envOrDefault("KAFKA_TOPIC", "orders"),
	}
	log.Printf("[config] PORT=%s STORE_DRIVER=%s LOG_FILE=%s OPENROUTER_KEY_SET=%t JWT_SECRET_SET=%t KAFKA_BROKERS=%v",
		cfg.Port, cfg.StoreDriver, cfg.LogFile, cfg.OpenRouterKey != "", cfg.JWTSecret != "", cfg.KafkaBrokers)
	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

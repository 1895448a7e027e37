package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr string

	LLMBaseURL string
	LLMToken   string
	LLMModel   string

	StoreDriver string // "sqlite", "redis", or "memory"
	SQLitePath  string
	RedisAddr   string
	RedisTTL    time.Duration

	SessionKey          string
	MaxMessageTokens    int
	CapabilityFirstOnly bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "TRUE"
}

// Load reads all env vars and builds the config.
func Load() *Config {
	return &Config{
		Addr: getEnv("VISAMATE_ADDR", ":8100"),

		LLMBaseURL: getEnv("VISAMATE_LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMToken:   getEnv("OPENAI_API_KEY", ""),
		LLMModel:   getEnv("VISAMATE_LLM_MODEL", "gpt-4o-mini"),

		StoreDriver: getEnv("VISAMATE_STORE_DRIVER", "sqlite"),
		SQLitePath:  getEnv("VISAMATE_SQLITE_PATH", "visamate.db"),
		RedisAddr:   getEnv("VISAMATE_REDIS_ADDR", "localhost:6379"),
		RedisTTL:    time.Duration(getIntEnv("VISAMATE_REDIS_TTL_HOURS", 720)) * time.Hour,

		SessionKey:          getEnv("VISAMATE_SESSION_KEY", "default"),
		MaxMessageTokens:    getIntEnv("VISAMATE_MAX_MESSAGE_TOKENS", 1024),
		CapabilityFirstOnly: getBoolEnv("VISAMATE_CAPABILITY_FIRST_ONLY", true),
	}
}

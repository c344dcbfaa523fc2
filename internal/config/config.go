package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	ProvisionOnStart bool   // create and seed the schema before serving
	PurgeOnProvision bool   // drop existing tables first when provisioning
	SeedDataPath     string // directory holding create_tables/ and initial_data/

	RedisURL      string // session store backend; falls back to memory if unset or unreachable
	SessionTTLHrs int

	OneWaySalt    string // salt for the password digest
	OneWayN       int    // scrypt CPU/memory cost (power of two)
	OneWayR       int    // scrypt block size
	OneWayP       int    // scrypt parallelism
	ReversibleKey string // secret behind the session-token codec

	OpenAIBaseURL      string
	OpenAIAPIKey       string
	OpenAIModel        string
	OpenAIMaxTokens    int
	OpenAITemperature  float64
	OpenAISystemPrompt string // generic prompt used when no page context is sent
	OpenAIMaxHistory   int    // maximum conversation turns kept per session

	FrontendURL string // public site URL (QR share links)

	RateLimitRPS       float64 // general API endpoints (requests per second)
	RateLimitBurst     int
	RateLimitAuthRPS   float64 // login endpoint (stricter)
	RateLimitAuthBurst int
	RateLimitChatRPS   float64 // chat endpoint (stricter, LLM-backed)
	RateLimitChatBurst int
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseHost:     getEnv("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnv("DATABASE_PORT", "5432"),
		DatabaseUser:     getEnv("DATABASE_USER", "postgres"),
		DatabasePassword: getEnv("DATABASE_PASSWORD", ""),
		DatabaseName:     getEnv("DATABASE_NAME", "portfolio"),
		ProvisionOnStart: getEnvBool("PROVISION_ON_START", false),
		PurgeOnProvision: getEnvBool("PURGE_ON_PROVISION", false),
		SeedDataPath:     getEnv("SEED_DATA_PATH", "database"),

		RedisURL:      getEnv("REDIS_URL", ""),
		SessionTTLHrs: getEnvInt("SESSION_TTL_HOURS", 24),

		OneWaySalt:    getEnv("ENCRYPTION_ONEWAY_SALT", ""),
		OneWayN:       getEnvInt("ENCRYPTION_ONEWAY_N", 16384),
		OneWayR:       getEnvInt("ENCRYPTION_ONEWAY_R", 8),
		OneWayP:       getEnvInt("ENCRYPTION_ONEWAY_P", 1),
		ReversibleKey: getEnv("ENCRYPTION_REVERSIBLE_KEY", ""),

		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIMaxTokens:    getEnvInt("OPENAI_MAX_TOKENS", 500),
		OpenAITemperature:  getEnvFloat("OPENAI_TEMPERATURE", 0.7),
		OpenAISystemPrompt: getEnv("OPENAI_SYSTEM_PROMPT", "You are a helpful AI assistant."),
		OpenAIMaxHistory:   getEnvInt("OPENAI_MAX_CONVERSATION_HISTORY", 20),

		FrontendURL: getEnv("FRONTEND_URL", ""),

		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
		RateLimitChatRPS:   getEnvFloat("RATE_LIMIT_CHAT_RPS", 2),
		RateLimitChatBurst: getEnvInt("RATE_LIMIT_CHAT_BURST", 5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

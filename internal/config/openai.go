package config

import (
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// GetOpenAIKey returns the OpenAI API key. The key is required for core
// functionality, so a missing value is fatal at startup.
func GetOpenAIKey() string {
	value := GetEnvOrDefault("OPENAI_KEY", "")
	if value == "" {
		log.Fatal().Msg("OPENAI_KEY environment variable not set")
	}
	return value
}

// GetOpenAIModel returns the completion model to request.
func GetOpenAIModel() string {
	return GetEnvOrDefault("OPENAI_MODEL", "gpt-4o")
}

// GetOpenAITimeout returns the bound on a single completion call.
func GetOpenAITimeout() time.Duration {
	value := GetEnvOrDefault("OPENAI_TIMEOUT_SECONDS", "30")
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		log.Warn().Str("value", value).Msg("Invalid OPENAI_TIMEOUT_SECONDS, using default")
		return 30 * time.Second
	}
	return time.Duration(seconds) * time.Second
}

package config

import "time"

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	Stub            bool
	StubDelay       time.Duration
}

// DefaultGeminiConfig returns generation settings from environment variables.
// GEMINI_STUB=true replaces the model with a canned local completion.
func DefaultGeminiConfig() *GeminiConfig {
	return &GeminiConfig{
		APIKey:          getEnvOrDefault("GEMINI_API_KEY", ""),
		Model:           getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		Temperature:     0.7,
		MaxOutputTokens: int32(getEnvIntWithDefault("GEMINI_MAX_OUTPUT_TOKENS", 1024)),
		Stub:            getEnvBoolWithDefault("GEMINI_STUB", false),
		StubDelay:       getEnvDurationWithDefault("GEMINI_STUB_DELAY", 50*time.Millisecond),
	}
}

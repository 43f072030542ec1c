package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv             string        `json:"app_env"`
	ServerPort         int           `json:"server_port"`
	JWTSecretKey       string        `json:"jwt_secret_key"`
	JWTExpirationHours int           `json:"jwt_expiration_hours"`
	AuthJWKSURL        string        `json:"auth_jwks_url"`
	AuthIssuer         string        `json:"auth_issuer"`
	DefaultRateLimit   int           `json:"default_rate_limit"`
	GlobalRateLimit    int           `json:"global_rate_limit"`
	FreePitchLimit     int64         `json:"free_pitch_limit"`
	StrictQuota        bool          `json:"strict_quota"`
	GenerationTimeout  time.Duration `json:"generation_timeout"`
	BillingAsync       bool          `json:"billing_async"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 10000
	}

	jwtExpirationHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if jwtExpirationHours == 0 {
		jwtExpirationHours = 24
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 60 // requests per minute per owner
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 1000 // requests per minute per IP
	}

	return &Config{
		AppEnv:             getEnvWithDefault("APP_ENV", "development"),
		ServerPort:         serverPort,
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: jwtExpirationHours,
		AuthJWKSURL:        os.Getenv("AUTH_JWKS_URL"),
		AuthIssuer:         os.Getenv("AUTH_ISSUER"),
		DefaultRateLimit:   defaultRateLimit,
		GlobalRateLimit:    globalRateLimit,
		FreePitchLimit:     int64(getEnvIntWithDefault("FREE_PITCH_LIMIT", 5)),
		StrictQuota:        getEnvBoolWithDefault("STRICT_QUOTA", false),
		GenerationTimeout:  getEnvDurationWithDefault("GENERATION_TIMEOUT", 60*time.Second),
		BillingAsync:       getEnvBoolWithDefault("BILLING_ASYNC", false),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

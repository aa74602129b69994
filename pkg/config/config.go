package config

import (
	"log"
	"os"

	"MindAlchemy/pkg/cache"
	"MindAlchemy/pkg/logger"
	"MindAlchemy/pkg/util"
)

type Config struct {
	DBDriver  string `env:"DB_DRIVER"`
	DSN       string `env:"DSN"`
	Addr      string `env:"ADDR"`
	Mode      string `env:"MODE"`
	APIPrefix string `env:"API_PREFIX"`

	Log logger.LogConfig

	JWTSecret       string `env:"JWT_SECRET"`
	TokenExpireDays int64  `env:"TOKEN_EXPIRE_DAYS"`

	LLMApiKey  string `env:"LLM_API_KEY"`
	LLMBaseURL string `env:"LLM_BASE_URL"`
	LLMModel   string `env:"LLM_MODEL"`

	CacheDriver string `env:"CACHE_DRIVER"`
	RedisAddr   string `env:"REDIS_ADDR"`

	ChatRate string `env:"CHAT_RATE"` // ulule format, e.g. "30-M"

	NotifySweepEnabled bool `env:"NOTIFY_SWEEP_ENABLED"`

	NotifierTimeoutSeconds int64 `env:"NOTIFIER_TIMEOUT_SECONDS"`
}

var GlobalConfig *Config

func Load() error {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	if err := util.LoadEnv(env); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	GlobalConfig = &Config{
		DBDriver:  util.GetEnv("DB_DRIVER"),
		DSN:       util.GetEnv("DSN"),
		Addr:      util.GetEnvDefault("ADDR", ":8000"),
		Mode:      util.GetEnv("MODE"),
		APIPrefix: util.GetEnvDefault("API_PREFIX", "/api"),
		Log: logger.LogConfig{
			Level:      util.GetEnv("LOG_LEVEL"),
			Filename:   util.GetEnv("LOG_FILENAME"),
			MaxSize:    int(util.GetIntEnv("LOG_MAX_SIZE")),
			MaxAge:     int(util.GetIntEnv("LOG_MAX_AGE")),
			MaxBackups: int(util.GetIntEnv("LOG_MAX_BACKUPS")),
		},
		JWTSecret:              util.GetEnv("JWT_SECRET"),
		TokenExpireDays:        util.GetIntEnv("TOKEN_EXPIRE_DAYS"),
		LLMApiKey:              util.GetEnv("LLM_API_KEY"),
		LLMBaseURL:             util.GetEnvDefault("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMModel:               util.GetEnvDefault("LLM_MODEL", "llama-3.1-8b-instant"),
		CacheDriver:            util.GetEnvDefault("CACHE_DRIVER", "gocache"),
		RedisAddr:              util.GetEnv("REDIS_ADDR"),
		ChatRate:               util.GetEnvDefault("CHAT_RATE", "30-M"),
		NotifySweepEnabled:     util.GetBoolEnv("NOTIFY_SWEEP_ENABLED"),
		NotifierTimeoutSeconds: util.GetIntEnv("NOTIFIER_TIMEOUT_SECONDS"),
	}
	return nil
}

// CacheConfig assembles the cache factory config from the loaded env values.
func (c *Config) CacheConfig() cache.Config {
	return cache.Config{
		Type:  c.CacheDriver,
		Redis: cache.RedisConfig{Addr: c.RedisAddr},
	}
}

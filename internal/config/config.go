package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const defaultJWTSecret = "default_secret_key"

type Config struct {
	Addr          string        `env:"MEDSYNC_ADDR,default=:8080"`
	DBPath        string        `env:"MEDSYNC_DB_PATH,default=./medsync.db"`
	JWTSecret     string        `env:"JWT_SECRET_KEY"`
	TokenTTL      time.Duration `env:"MEDSYNC_TOKEN_TTL,default=24h"`
	SessionIdle   time.Duration `env:"MEDSYNC_SESSION_IDLE,default=30m"`
	InviteCode    string        `env:"SIGNUP_INVITE_CODE"`
	CookieSecure  bool          `env:"MEDSYNC_COOKIE_SECURE,default=false"`
	LogLevel      string        `env:"MEDSYNC_LOG_LEVEL,default=info"`
	LogJSON       bool          `env:"MEDSYNC_LOG_JSON,default=false"`
	RatePerMinute int           `env:"MEDSYNC_RATE_LIMIT,default=30"`
	RateBurst     int           `env:"MEDSYNC_RATE_BURST,default=10"`
	GinMode       string        `env:"GIN_MODE,default=debug"`
}

// Load reads .env files (if any) and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Debug().Err(err).Msg("config.Load(): no .env file loaded")
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("config.Load(): %w", err)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // 기본 키 설정 (권장하지 않음)
		log.Warn().Msg("config.Load(): JWT_SECRET_KEY environment variable is not set. Using default key.")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.TokenTTL <= 0:
		return errors.New("config: MEDSYNC_TOKEN_TTL must be positive")
	case c.SessionIdle <= 0:
		return errors.New("config: MEDSYNC_SESSION_IDLE must be positive")
	case c.RatePerMinute <= 0 || c.RateBurst <= 0:
		return errors.New("config: rate limit and burst must be positive")
	}
	return nil
}

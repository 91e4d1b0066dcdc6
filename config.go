package main

import (
	"errors"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment (and .env in development).
type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	GinMode          string        `env:"GIN_MODE"`
	Env              string        `env:"ENV" envDefault:"development"`
	SessionTimeout   time.Duration `env:"SESSION_TIMEOUT" envDefault:"2h"`
	CookieMaxAge     time.Duration `env:"COOKIE_MAX_AGE" envDefault:"2h"`
	StaticCacheAge   time.Duration `env:"STATIC_CACHE_AGE" envDefault:"5m"`
	RateLimitRPS     int           `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst   int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
	QuestionsFile    string        `env:"QUESTIONS_FILE"`
	QuestionsURL     string        `env:"QUESTIONS_URL"`
	QuestionsTimeout time.Duration `env:"QUESTIONS_TIMEOUT" envDefault:"5s"`
	Shuffle          bool          `env:"HANGMAN_SHUFFLE" envDefault:"true"`
	MaxLives         int           `env:"HANGMAN_MAX_LIVES" envDefault:"11"`
	WinPolicy        string        `env:"HANGMAN_WIN_POLICY" envDefault:"faithful"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
}

// defaultConfig returns the envDefault values only.
func defaultConfig() Config {
	var cfg Config
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// loadConfig parses the environment. A value that fails to parse falls back
// to its own default; every other field keeps what the environment set.
func loadConfig() Config {
	def := defaultConfig()
	cfg := def
	if err := env.Parse(&cfg); err != nil {
		resetInvalidFields(&cfg, def, err)
	}
	if cfg.RateLimitRPS <= 0 {
		logWarn("Invalid RATE_LIMIT_RPS %d, using default %d", cfg.RateLimitRPS, def.RateLimitRPS)
		cfg.RateLimitRPS = def.RateLimitRPS
	}
	if cfg.RateLimitBurst <= 0 {
		logWarn("Invalid RATE_LIMIT_BURST %d, using default %d", cfg.RateLimitBurst, def.RateLimitBurst)
		cfg.RateLimitBurst = def.RateLimitBurst
	}
	if cfg.QuestionsTimeout <= 0 {
		cfg.QuestionsTimeout = def.QuestionsTimeout
	}
	return cfg
}

// isProduction reports whether the config selects production mode.
func (cfg Config) isProduction() bool {
	return cfg.GinMode == "release" || cfg.Env == "production"
}

// resetInvalidFields restores the default of each field named in a parse error.
func resetInvalidFields(cfg *Config, def Config, err error) {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		logWarn("Invalid configuration: %v, using defaults", err)
		*cfg = def
		return
	}
	dst := reflect.ValueOf(cfg).Elem()
	src := reflect.ValueOf(def)
	for _, e := range agg.Errors {
		var pe env.ParseError
		if !errors.As(e, &pe) {
			logWarn("Invalid configuration: %v", e)
			continue
		}
		logWarn("Invalid value for %s: %v, using default %v", pe.Name, pe.Err, src.FieldByName(pe.Name).Interface())
		dst.FieldByName(pe.Name).Set(src.FieldByName(pe.Name))
	}
}

package middleware

import (
	"github.com/caarlos0/env/v11"
)

// Config holds the HTTP-boundary settings.
type Config struct {
	// MaxBodyBytes caps the request body size (0 = unlimited).
	MaxBodyBytes        int64 `env:"FIELDSCHEMA_MAX_BODY_BYTES" envDefault:"1048576"`
	LogRejections       bool  `env:"FIELDSCHEMA_LOG_REJECTIONS" envDefault:"true"`
	RejectDuplicateKeys bool  `env:"FIELDSCHEMA_REJECT_DUPLICATE_KEYS" envDefault:"true"`
}

// DefaultConfig returns the recommended defaults for an HTTP boundary: a
// 1 MiB body cap, logged rejections and duplicate keys treated as errors.
func DefaultConfig() Config {
	return Config{MaxBodyBytes: 1 << 20, LogRejections: true, RejectDuplicateKeys: true}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

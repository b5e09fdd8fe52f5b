package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port     string `env:"BANKIST_PORT" env-default:"9446"`
	LogLevel string `env:"BANKIST_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from environment variables, falling back to
// the defaults above.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

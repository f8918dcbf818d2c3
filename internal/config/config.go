package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

// LogLevels are the accepted values of log-level.
var LogLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	LogLevel  string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	TimeLimit time.Duration `yaml:"time-limit" env:"TIME_LIMIT" env-default:"60s"`
	Seed      int64         `yaml:"seed" env:"SEED" env-default:"0"`
	PlayerOne string        `yaml:"player-one" env-default:"Rando Calrissian"`
	PlayerTwo string        `yaml:"player-two" env-default:"Marlon Rando"`
	Redis     Redis         `yaml:"redis"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file at path, applying env overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if !slices.Contains(LogLevels, config.LogLevel) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogLevel, config.LogLevel)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log-format" env:"LOG_FORMAT" env-default:"json" validate:"oneof=json text"`
	Marks     Marks  `yaml:"marks"`
}

// Marks holds the symbols rendered for each player.
type Marks struct {
	First  string `yaml:"first" env:"FIRST_MARK" env-default:"X" validate:"required,len=1,nefield=Second"`
	Second string `yaml:"second" env:"SECOND_MARK" env-default:"O" validate:"required,len=1"`
}

// MustLoad - load all configurations in config.yml file. When the file does
// not exist, the configuration is read from the environment only.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	} else {
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

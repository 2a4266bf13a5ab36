package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadEnv reads one or more .env files into the process environment.
// Variables that are already set are left untouched, so real environment
// values win over file values. Every listed file must exist.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into the struct v points to, using its
// `env` and `envDefault` field tags.
//
// The default .env file in the working directory is read once per process
// if it exists. Unlike the environment itself, parsed values are not cached:
// every call reflects the current environment.
//
// Example:
//
//	type Config struct {
//		DateFormat string `env:"PARAMCHECK_DATE_FORMAT" envDefault:"yyyy-MM-dd"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	parsed := *v
	if err := env.Parse(&parsed); err != nil {
		if errors.Is(err, env.NotStructPtrError{}) {
			return errors.Join(ErrInvalidConfigType, err)
		}
		return errors.Join(ErrParsingConfig, err)
	}
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

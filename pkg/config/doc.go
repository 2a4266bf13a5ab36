// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more .env files into the process environment
//     without overriding variables that are already set.
//   - Load parses the environment into any struct using `env` and
//     `envDefault` field tags. The default .env file in the working directory
//     is read once per process when present.
//   - MustLoad panics on failure, for configuration a program cannot start
//     without.
//
// Parsed structs are not cached. Each Load call reflects the environment at
// that moment, so tests can change variables with t.Setenv between calls.
//
// # Usage
//
//	type Config struct {
//	    DateFormat     string `env:"PARAMCHECK_DATE_FORMAT" envDefault:"yyyy-MM-dd"`
//	    DateTimeFormat string `env:"PARAMCHECK_DATETIME_FORMAT" envDefault:"yyyy-MM-dd HH:mm:ss"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap one of the sentinels below and can be matched with errors.Is:
//
//   - ErrParsingConfig: a variable is missing or cannot be converted.
//   - ErrInvalidConfigType: the target is not a struct.
//   - ErrLoadingEnvFile: a listed .env file cannot be read.
//   - ErrNilPointer: a nil pointer was passed to Load or MustLoad.
//
// On failure the target struct is left unchanged.
package config

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramcheck/pkg/config"
)

type formatConfig struct {
	DateFormat     string `env:"PARAMCHECK_TEST_DATE_FORMAT" envDefault:"yyyy-MM-dd"`
	DateTimeFormat string `env:"PARAMCHECK_TEST_DATETIME_FORMAT" envDefault:"yyyy-MM-dd HH:mm:ss"`
}

type fileConfig struct {
	Name  string   `env:"PARAMCHECK_TEST_NAME"`
	Limit int      `env:"PARAMCHECK_TEST_LIMIT"`
	Tags  []string `env:"PARAMCHECK_TEST_TAGS" envSeparator:","`
}

type requiredConfig struct {
	Required string `env:"PARAMCHECK_TEST_REQUIRED,required"`
}

type typedConfig struct {
	Limit int `env:"PARAMCHECK_TEST_TYPED_LIMIT"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg formatConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "yyyy-MM-dd", cfg.DateFormat)
	assert.Equal(t, "yyyy-MM-dd HH:mm:ss", cfg.DateTimeFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PARAMCHECK_TEST_DATE_FORMAT", "dd/MM/yyyy")

	var cfg formatConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "dd/MM/yyyy", cfg.DateFormat)
	assert.Equal(t, "yyyy-MM-dd HH:mm:ss", cfg.DateTimeFormat)
}

func TestLoad_ReflectsCurrentEnvironment(t *testing.T) {
	t.Setenv("PARAMCHECK_TEST_DATE_FORMAT", "yyyy")
	var first formatConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("PARAMCHECK_TEST_DATE_FORMAT", "MM")
	var second formatConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "yyyy", first.DateFormat)
	assert.Equal(t, "MM", second.DateFormat)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("PARAMCHECK_TEST_TYPED_LIMIT", "many")

	cfg := typedConfig{Limit: 3}
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Equal(t, 3, cfg.Limit, "target is untouched on failure")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *formatConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_NotStruct(t *testing.T) {
	var n int
	assert.ErrorIs(t, config.Load(&n), config.ErrInvalidConfigType)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("PARAMCHECK_TEST_REQUIRED", "set")
	var cfg requiredConfig
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	assert.Equal(t, "set", cfg.Required)
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads file values", func(t *testing.T) {
		unsetFileKeys(t)
		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, 7, cfg.Limit)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		unsetFileKeys(t)
		t.Setenv("PARAMCHECK_TEST_NAME", "from_env")
		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from_env", cfg.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no files", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}

// unsetFileKeys clears the keys defined in testdata/.env.test and restores
// them when the test ends.
func unsetFileKeys(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PARAMCHECK_TEST_NAME", "PARAMCHECK_TEST_LIMIT", "PARAMCHECK_TEST_TAGS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

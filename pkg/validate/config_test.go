package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramcheck/pkg/check"
	"github.com/dmitrymomot/paramcheck/pkg/validate"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := validate.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, validate.DefaultConfig(), cfg)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("PARAMCHECK_DATE_FORMAT", "dd.MM.yyyy")
		t.Setenv("PARAMCHECK_DATETIME_FORMAT", "dd.MM.yyyy HH:mm")

		cfg, err := validate.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "dd.MM.yyyy", cfg.DateFormat)

		c := validate.New(validate.WithConfig(cfg)).
			Add(check.Date, "31.12.2024").
			Add(check.DateTime, "31.12.2024 08:15").
			Execute()
		assert.Zero(t, c.FailureCount())
	})

	t.Run("unsupported pattern", func(t *testing.T) {
		t.Setenv("PARAMCHECK_DATETIME_FORMAT", "yyyy-MM-dd QQ")

		_, err := validate.LoadConfig()
		assert.ErrorIs(t, err, check.ErrUnsupportedPattern)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validate.DefaultConfig().Validate())
	assert.ErrorIs(t, validate.Config{DateFormat: "yyyy", DateTimeFormat: ""}.Validate(), check.ErrUnsupportedPattern)
}

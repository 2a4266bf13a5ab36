package check_test

import (
	"errors"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/paramcheck/pkg/check"
)

func TestKinds(t *testing.T) {
	t.Parallel()

	kinds := check.Kinds()
	require.Len(t, kinds, 41)
	assert.Equal(t, check.Null, kinds[0])
	assert.Equal(t, check.MAC, kinds[len(kinds)-1])

	seen := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		assert.True(t, k.Valid(), "kind %d should be valid", int(k))
		assert.NotEmpty(t, k.Message(), "kind %s should have a message", k)
		assert.False(t, seen[k.String()], "duplicate name %s", k)
		seen[k.String()] = true
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("every kind round trips by name", func(t *testing.T) {
		for _, k := range check.Kinds() {
			parsed, err := check.Parse(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, parsed)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		k, err := check.Parse("notempty")
		require.NoError(t, err)
		assert.Equal(t, check.NotEmpty, k)

		k, err = check.Parse("IPV6")
		require.NoError(t, err)
		assert.Equal(t, check.IPv6, k)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := check.Parse("Bogus")
		require.Error(t, err)
		assert.True(t, errors.Is(err, check.ErrUnknownKind))
	})
}

func TestInvalidKind(t *testing.T) {
	t.Parallel()

	var zero check.Kind
	assert.False(t, zero.Valid())
	assert.Equal(t, "Kind(0)", zero.String())
	assert.Equal(t, "unknown check", zero.Message())
	assert.False(t, zero.Check("anything", ""))
	assert.False(t, check.Kind(999).Check(nil, ""))

	_, err := zero.MarshalText()
	assert.ErrorIs(t, err, check.ErrUnknownKind)
}

func TestKindText(t *testing.T) {
	t.Parallel()

	t.Run("marshal", func(t *testing.T) {
		b, err := check.BankCard.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "BankCard", string(b))
	})

	t.Run("yaml decode", func(t *testing.T) {
		var rules struct {
			Checks []check.Kind `yaml:"checks"`
		}
		err := yaml.Unmarshal([]byte("checks: [notNull, Email, gte]\n"), &rules)
		require.NoError(t, err)
		assert.Equal(t, []check.Kind{check.NotNull, check.Email, check.GTE}, rules.Checks)
	})

	t.Run("toml decode", func(t *testing.T) {
		var rules struct {
			Email []check.Kind `toml:"email"`
		}
		_, err := toml.Decode("email = [\"NotEmpty\", \"email\", \"length\"]\n", &rules)
		require.NoError(t, err)
		assert.Equal(t, []check.Kind{check.NotEmpty, check.Email, check.Length}, rules.Email)
	})

	t.Run("toml decode unknown", func(t *testing.T) {
		var rules struct {
			Email []check.Kind `toml:"email"`
		}
		_, err := toml.Decode("email = [\"Nope\"]\n", &rules)
		assert.Error(t, err)
	})

	t.Run("yaml decode unknown", func(t *testing.T) {
		var rules struct {
			Checks []check.Kind `yaml:"checks"`
		}
		err := yaml.Unmarshal([]byte("checks: [Nope]\n"), &rules)
		assert.ErrorIs(t, err, check.ErrUnknownKind)
	})
}

func TestCheckNeverPanics(t *testing.T) {
	t.Parallel()

	values := []any{
		nil, "", "x", 0, -1, 3.5, []int{}, map[string]int{"a": 1},
		struct{}{}, new(int), (*string)(nil), panicky{}, func() {},
	}
	for _, k := range check.Kinds() {
		for _, v := range values {
			assert.NotPanics(t, func() {
				k.Check(v, "")
				k.Check(v, "1,2")
				k.Check(v, "(")
			}, "kind %s", k)
		}
	}
}

type panicky struct{}

func (panicky) String() string { panic("boom") }

package validate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramcheck/pkg/check"
	"github.com/dmitrymomot/paramcheck/pkg/validate"
)

func TestFailureString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		failure validate.Failure
		want    string
	}{
		{
			name:    "value and expression",
			failure: validate.Failure{Kind: check.LT, Value: 12, Expression: "10", Message: "too big"},
			want:    "too big:12 10",
		},
		{
			name:    "no expression",
			failure: validate.Failure{Kind: check.Email, Value: "x", Message: "bad email"},
			want:    "bad email:x ",
		},
		{
			name:    "nil value",
			failure: validate.Failure{Kind: check.NotNull, Message: "required"},
			want:    "required:null ",
		},
		{
			name:    "decimal keeps scale",
			failure: validate.Failure{Kind: check.GT, Value: decimal.RequireFromString("2.0"), Expression: "3", Message: "too small"},
			want:    "too small:2.0 3",
		},
		{
			name:    "large float in decimal notation",
			failure: validate.Failure{Kind: check.LT, Value: float64(1000000), Expression: "10", Message: "too big"},
			want:    "too big:1000000 10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.failure.String())
		})
	}
}

func TestParamsError(t *testing.T) {
	t.Parallel()

	perr := &validate.ParamsError{
		Summary: "a:1 ,b:2 ",
		Failures: []validate.Failure{
			{Kind: check.NotNull, Message: "a"},
			{Kind: check.Email, Message: "b"},
			{Kind: check.NotNull, Message: "c"},
		},
	}

	t.Run("error text", func(t *testing.T) {
		assert.Equal(t, "invalid parameters: a:1 ,b:2 ", perr.Error())
		assert.Equal(t, "invalid parameters", (&validate.ParamsError{}).Error())
	})

	t.Run("matches sentinel", func(t *testing.T) {
		assert.ErrorIs(t, perr, validate.ErrInvalidParams)
		assert.NotErrorIs(t, perr, validate.ErrInvalidChainState)
	})

	t.Run("helpers", func(t *testing.T) {
		assert.True(t, perr.Has(check.Email))
		assert.False(t, perr.Has(check.URL))
		assert.Equal(t, []string{"a", "b", "c"}, perr.Messages())
		assert.Equal(t, []check.Kind{check.NotNull, check.Email}, perr.Kinds())
	})

	t.Run("extract through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("create user: %w", perr)
		require.True(t, validate.IsParamsError(wrapped))
		assert.Same(t, perr, validate.ExtractParamsError(wrapped))
		assert.ErrorIs(t, wrapped, validate.ErrInvalidParams)
	})

	t.Run("extract from unrelated errors", func(t *testing.T) {
		assert.Nil(t, validate.ExtractParamsError(nil))
		assert.Nil(t, validate.ExtractParamsError(errors.New("other")))
		assert.False(t, validate.IsParamsError(validate.ErrInvalidParams))
	})
}

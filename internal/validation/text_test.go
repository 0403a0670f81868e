package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusfeed/internal/apperrors"
)

func TestCheckStatusText(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		trimmed, err := CheckStatusText("  hello world \n")
		require.NoError(t, err)
		assert.Equal(t, "hello world", trimmed)
	})

	t.Run("empty is rejected", func(t *testing.T) {
		_, err := CheckStatusText("")
		ve := apperrors.AsValidation(err)
		require.NotNil(t, ve)
		assert.Equal(t, "text", ve.Field)
	})

	t.Run("whitespace only is rejected", func(t *testing.T) {
		_, err := CheckStatusText("   ")
		require.NotNil(t, apperrors.AsValidation(err))
	})

	t.Run("280 runes pass", func(t *testing.T) {
		trimmed, err := CheckStatusText(strings.Repeat("a", 280))
		require.NoError(t, err)
		assert.Len(t, trimmed, 280)
	})

	t.Run("281 runes fail", func(t *testing.T) {
		_, err := CheckStatusText(strings.Repeat("a", 281))
		require.NotNil(t, apperrors.AsValidation(err))
	})

	t.Run("length counts runes not bytes", func(t *testing.T) {
		_, err := CheckStatusText(strings.Repeat("ü", 280))
		assert.NoError(t, err)
	})

	t.Run("trim happens before the length check", func(t *testing.T) {
		_, err := CheckStatusText("  " + strings.Repeat("a", 280) + "  ")
		assert.NoError(t, err)
	})
}

func TestCheckUsername(t *testing.T) {
	assert.NoError(t, CheckUsername("alice"))
	assert.Error(t, CheckUsername(""))
	assert.Error(t, CheckUsername("   "))
}

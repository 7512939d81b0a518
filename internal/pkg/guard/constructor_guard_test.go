package guard_test

import (
	"errors"
	"testing"

	"mangoshop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("quote must be created via its constructor")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

type boxCount struct {
	value int
	guard guard.ConstructorGuard
}

var errBoxCountNotConstructed = errors.New("boxCount must be created via newBoxCount")

func newBoxCount(value int) (boxCount, error) {
	if value <= 0 {
		return boxCount{}, errors.New("box count must be positive")
	}
	return boxCount{value: value, guard: guard.NewConstructorGuard()}, nil
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	t.Run("constructor_built_value_passes", func(t *testing.T) {
		b, err := newBoxCount(4)

		require.NoError(t, err)
		require.NoError(t, b.guard.Validate(errBoxCountNotConstructed))
	})

	t.Run("literal_value_fails", func(t *testing.T) {
		b := boxCount{value: 4}

		assert.Equal(t, errBoxCountNotConstructed, b.guard.Validate(errBoxCountNotConstructed))
	})
}

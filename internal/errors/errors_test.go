package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customError struct {
	Msg string
}

func (e customError) Error() string { return e.Msg }

func TestNew(t *testing.T) {
	err := New("test error")
	require.Error(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped: base error", wrapped.Error())
		assert.ErrorIs(t, wrapped, baseErr)
	})

	t.Run("wrap nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "wrapped"))
	})
}

func TestWrapf(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrapf non-nil error", func(t *testing.T) {
		wrapped := Wrapf(baseErr, "cell %s/%d", "aes128-gcm", 16)
		require.Error(t, wrapped)
		assert.Equal(t, "cell aes128-gcm/16: base error", wrapped.Error())
		assert.ErrorIs(t, wrapped, baseErr)
	})

	t.Run("wrapf nil error", func(t *testing.T) {
		assert.NoError(t, Wrapf(nil, "cell %d", 1))
	})
}

func TestIsAndAs(t *testing.T) {
	t.Run("taxonomy survives wrapping", func(t *testing.T) {
		err := Wrap(Wrap(ErrInvalidConfig, "invalid key size"), "configure adapter")
		assert.True(t, Is(err, ErrInvalidConfig))
		assert.False(t, Is(err, ErrPrimitiveFault))
	})

	t.Run("as finds custom error", func(t *testing.T) {
		err := Wrap(customError{Msg: "boom"}, "outer")
		var target customError
		require.True(t, As(err, &target))
		assert.Equal(t, "boom", target.Msg)
	})
}

func TestJoin(t *testing.T) {
	t.Run("nil when every error is nil", func(t *testing.T) {
		assert.NoError(t, Join(nil, nil))
	})

	t.Run("keeps both chains", func(t *testing.T) {
		err := Join(ErrPrimitiveFault, ErrInvalidConfig)
		assert.ErrorIs(t, err, ErrPrimitiveFault)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

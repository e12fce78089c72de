package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	"github.com/allisson/aeadbench/internal/errors"
)

func TestNewArena(t *testing.T) {
	t.Run("capacity", func(t *testing.T) {
		arena, err := NewArena(512)
		require.NoError(t, err)
		assert.Equal(t, 512, arena.Capacity())
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := NewArena(-1)
		assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	})
}

func TestArena_Prepare(t *testing.T) {
	gcm, err := aeadDomain.Lookup(aeadDomain.AES128GCM)
	require.NoError(t, err)
	ascon, err := aeadDomain.Lookup(aeadDomain.ASCON128)
	require.NoError(t, err)

	arena, err := NewArena(64)
	require.NoError(t, err)

	t.Run("encrypt workload", func(t *testing.T) {
		w, err := arena.Prepare(gcm, 16, benchDomain.Encrypt)
		require.NoError(t, err)

		assert.Equal(t, 16, w.MessageLen)
		assert.Equal(t, Generate(Key, 16), w.Key)
		assert.Equal(t, Generate(Nonce, 12), w.Nonce)
		assert.Equal(t, Generate(AssociatedData, 16), w.AAD)
		assert.Equal(t, Generate(Plaintext, 16), w.Message)
		assert.Equal(t, 32, cap(w.Message))
		assert.Equal(t, make([]byte, 16), w.Tag)
	})

	t.Run("decrypt workload is fabricated", func(t *testing.T) {
		w, err := arena.Prepare(ascon, 8, benchDomain.Decrypt)
		require.NoError(t, err)

		assert.Equal(t, Generate(Nonce, 16), w.Nonce)
		for _, b := range w.Message {
			assert.Equal(t, FabricatedCiphertext, b)
		}
		for _, b := range w.Tag {
			assert.Equal(t, FabricatedTag, b)
		}
	})

	t.Run("workloads share the arena", func(t *testing.T) {
		first, err := arena.Prepare(gcm, 32, benchDomain.Encrypt)
		require.NoError(t, err)
		second, err := arena.Prepare(gcm, 32, benchDomain.Decrypt)
		require.NoError(t, err)

		assert.Same(t, &first.Message[0], &second.Message[0])
		assert.Equal(t, FabricatedCiphertext, first.Message[0])
	})

	t.Run("largest message fits", func(t *testing.T) {
		w, err := arena.Prepare(gcm, 64, benchDomain.Encrypt)
		require.NoError(t, err)
		assert.Len(t, w.Message, 64)
		assert.Equal(t, 80, cap(w.Message))
	})

	t.Run("empty message", func(t *testing.T) {
		w, err := arena.Prepare(gcm, 0, benchDomain.Encrypt)
		require.NoError(t, err)
		assert.Empty(t, w.Message)
		assert.Equal(t, 16, cap(w.Message))
	})

	t.Run("oversized message", func(t *testing.T) {
		_, err := arena.Prepare(gcm, 65, benchDomain.Encrypt)
		assert.ErrorIs(t, err, ErrMessageTooLarge)
		assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	})

	t.Run("unsupported params", func(t *testing.T) {
		params := gcm
		params.KeyLen = 64
		_, err := arena.Prepare(params, 8, benchDomain.Encrypt)
		assert.ErrorIs(t, err, aeadDomain.ErrInvalidKeySize)
	})
}

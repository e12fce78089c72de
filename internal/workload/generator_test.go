package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase(t *testing.T) {
	tests := []struct {
		role Role
		want byte
	}{
		{Plaintext, 0x00},
		{Key, 0x10},
		{Nonce, 0x20},
		{AssociatedData, 0xA0},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Base(tt.role))
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Run("example key", func(t *testing.T) {
		assert.Equal(t, []byte{
			0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
			0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F,
		}, Generate(Key, 16))
	})

	t.Run("example nonce", func(t *testing.T) {
		assert.Equal(t, []byte{0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x2A, 0x2B}, Generate(Nonce, 12))
	})

	t.Run("aad wraps modulo 256", func(t *testing.T) {
		b := Generate(AssociatedData, 100)
		assert.Equal(t, byte(0xA0), b[0])
		assert.Equal(t, byte(0xFF), b[95])
		assert.Equal(t, byte(0x00), b[96])
	})

	t.Run("deterministic", func(t *testing.T) {
		for _, role := range []Role{Plaintext, AssociatedData, Key, Nonce} {
			assert.Equal(t, Generate(role, 300), Generate(role, 300))
		}
	})

	t.Run("fill is idempotent", func(t *testing.T) {
		b := Generate(Plaintext, 64)
		Fill(Plaintext, b)
		assert.Equal(t, Generate(Plaintext, 64), b)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Generate(Key, 0))
	})
}

func TestFabricate(t *testing.T) {
	b := Generate(Plaintext, 8)
	Fabricate(b, FabricatedCiphertext)
	assert.Equal(t, []byte{0xAB, 0xAB, 0xAB, 0xAB, 0xAB, 0xAB, 0xAB, 0xAB}, b)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "unknown", Role(42).String())
}

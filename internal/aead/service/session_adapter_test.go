package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

func TestChaChaPolySession_MatchesStandardConstruction(t *testing.T) {
	key := pattern(32, 0x10)
	nonce := pattern(12, 0x20)

	reference, err := chacha20poly1305.New(key)
	require.NoError(t, err)

	for _, aadLen := range []int{0, 5, 16, 33} {
		for _, n := range testLengths {
			t.Run(fmt.Sprintf("aad %d/len %d", aadLen, n), func(t *testing.T) {
				aad := pattern(aadLen, 0xA0)
				plaintext := pattern(n, 0x00)

				session := NewChaChaPolySession()
				require.NoError(t, session.SetKey(key))
				require.NoError(t, session.SetIV(nonce))
				require.NoError(t, session.AddAuthData(aad))

				ct := make([]byte, n)
				require.NoError(t, session.Encrypt(ct, plaintext))
				tag := make([]byte, 16)
				require.NoError(t, session.ComputeTag(tag))

				expected := reference.Seal(nil, nonce, plaintext, aad)
				assert.Equal(t, expected[:n], ct)
				assert.Equal(t, expected[n:], tag)
			})
		}
	}
}

func TestChaChaPolySession_SplitCalls(t *testing.T) {
	key := pattern(32, 0x10)
	nonce := pattern(12, 0x20)
	aad := pattern(20, 0xA0)
	plaintext := pattern(100, 0x00)

	reference, err := chacha20poly1305.New(key)
	require.NoError(t, err)
	expected := reference.Seal(nil, nonce, plaintext, aad)

	session := NewChaChaPolySession()
	require.NoError(t, session.SetKey(key))
	require.NoError(t, session.SetIV(nonce))
	require.NoError(t, session.AddAuthData(aad[:7]))
	require.NoError(t, session.AddAuthData(aad[7:]))

	ct := make([]byte, 100)
	require.NoError(t, session.Encrypt(ct[:64], plaintext[:64]))
	require.NoError(t, session.Encrypt(ct[64:], plaintext[64:]))

	tag := make([]byte, 16)
	require.NoError(t, session.ComputeTag(tag))
	assert.Equal(t, expected, append(ct, tag...))
}

func TestChaChaPolySession_StateErrors(t *testing.T) {
	key := pattern(32, 0x10)
	nonce := pattern(12, 0x20)

	t.Run("iv before key", func(t *testing.T) {
		session := NewChaChaPolySession()
		assert.ErrorIs(t, session.SetIV(nonce), aeadDomain.ErrSessionState)
	})

	t.Run("encrypt before iv", func(t *testing.T) {
		session := NewChaChaPolySession()
		require.NoError(t, session.SetKey(key))
		assert.ErrorIs(t, session.Encrypt(make([]byte, 4), make([]byte, 4)), aeadDomain.ErrSessionState)
	})

	t.Run("aad after text", func(t *testing.T) {
		session := NewChaChaPolySession()
		require.NoError(t, session.SetKey(key))
		require.NoError(t, session.SetIV(nonce))
		require.NoError(t, session.Encrypt(make([]byte, 4), make([]byte, 4)))
		assert.ErrorIs(t, session.AddAuthData([]byte{1}), aeadDomain.ErrSessionState)
	})

	t.Run("tag twice", func(t *testing.T) {
		session := NewChaChaPolySession()
		require.NoError(t, session.SetKey(key))
		require.NoError(t, session.SetIV(nonce))
		require.NoError(t, session.ComputeTag(make([]byte, 16)))
		assert.ErrorIs(t, session.ComputeTag(make([]byte, 16)), aeadDomain.ErrSessionState)
	})

	t.Run("cleared session needs a key", func(t *testing.T) {
		session := NewChaChaPolySession()
		require.NoError(t, session.SetKey(key))
		session.Clear()
		assert.Equal(t, [32]byte{}, session.key)
		assert.ErrorIs(t, session.SetIV(nonce), aeadDomain.ErrSessionState)
	})

	t.Run("bad sizes", func(t *testing.T) {
		session := NewChaChaPolySession()
		assert.ErrorIs(t, session.SetKey(make([]byte, 16)), aeadDomain.ErrInvalidKeySize)
		require.NoError(t, session.SetKey(key))
		assert.ErrorIs(t, session.SetIV(make([]byte, 8)), aeadDomain.ErrInvalidNonceSize)
		require.NoError(t, session.SetIV(nonce))
		assert.ErrorIs(t, session.Encrypt(make([]byte, 2), make([]byte, 4)), aeadDomain.ErrBufferTooSmall)
		assert.ErrorIs(t, session.ComputeTag(make([]byte, 8)), aeadDomain.ErrInvalidTagSize)
	})
}

func TestSessionAdapter_RoundTrip(t *testing.T) {
	params, err := aeadDomain.Lookup(aeadDomain.ChaCha20Poly1305)
	require.NoError(t, err)
	adapter, err := NewSessionAdapter(params, pattern(32, 0x10), NewChaChaPolySession())
	require.NoError(t, err)

	nonce := pattern(12, 0x20)
	aad := pattern(16, 0xA0)

	for _, n := range testLengths {
		t.Run(fmt.Sprintf("len %d", n), func(t *testing.T) {
			buf := inPlace(n)
			plaintext := clone(buf)
			tag := make([]byte, 16)

			require.NoError(t, adapter.Encrypt(nonce, aad, buf, tag))
			ok, err := adapter.Decrypt(nonce, aad, buf, tag)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, plaintext, []byte(buf))
		})
	}

	t.Run("rejection still decrypts", func(t *testing.T) {
		buf := inPlace(48)
		plaintext := clone(buf)
		tag := make([]byte, 16)
		require.NoError(t, adapter.Encrypt(nonce, aad, buf, tag))
		tag[15] ^= 0x80

		ok, err := adapter.Decrypt(nonce, aad, buf, tag)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, plaintext, []byte(buf))
	})

	t.Run("nonce length mismatch", func(t *testing.T) {
		err := adapter.Encrypt(pattern(16, 0x20), aad, inPlace(4), make([]byte, 16))
		assert.ErrorIs(t, err, aeadDomain.ErrInvalidNonceSize)
	})

	t.Run("close clears the session", func(t *testing.T) {
		session := NewChaChaPolySession()
		a, err := NewSessionAdapter(params, pattern(32, 0x10), session)
		require.NoError(t, err)
		a.Close()
		err = a.Encrypt(nonce, aad, inPlace(4), make([]byte, 16))
		assert.ErrorIs(t, err, aeadDomain.ErrSessionState)
	})
}

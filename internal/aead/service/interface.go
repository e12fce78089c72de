// Package service adapts AEAD implementations with different native surfaces to the single
// in-place invocation contract the timing protocol drives.
//
// Three native shapes are covered: one-shot Go cipher.AEAD values (SealAdapter), NIST LWC
// style crypto_aead_encrypt/decrypt pairs that take the key on every call (NISTAdapter), and
// stateful session objects (SessionAdapter).
package service

import (
	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

// Adapter is the uniform per-message contract over one configured key.
//
// buf is the in-place message region: len(buf) is the message length and its capacity must
// leave room for a trailing tag (cap(buf) >= len(buf)+TagLen), which one-shot natives use as
// scratch. Adapters never retain buf, nonce, aad or tag after a call returns.
type Adapter interface {
	// Params returns the compiled-in constants of the configured algorithm.
	Params() aeadDomain.Params

	// Encrypt binds nonce, absorbs aad, encrypts buf in place and writes the tag to tag.
	Encrypt(nonce, aad, buf, tag []byte) error

	// Decrypt binds nonce, absorbs aad, decrypts buf in place and reports whether the
	// recomputed tag equals expectedTag. A false result is not an error: the full decrypt
	// transform and tag comparison have still been performed.
	Decrypt(nonce, aad, buf, expectedTag []byte) (bool, error)

	// Close wipes key material and resets any internal session.
	Close()
}

// Session is the stateful cipher object surface: the key is bound once, then each message
// runs SetIV, AddAuthData, Encrypt or Decrypt, and ComputeTag or CheckTag in that order.
type Session interface {
	SetKey(key []byte) error
	SetIV(iv []byte) error
	AddAuthData(data []byte) error
	Encrypt(dst, src []byte) error
	Decrypt(dst, src []byte) error
	ComputeTag(tag []byte) error
	CheckTag(tag []byte) (bool, error)
	Clear()
}

// NISTEncryptFunc mirrors crypto_aead_encrypt: c receives ciphertext||tag and the returned
// value is the ciphertext length including the tag.
type NISTEncryptFunc func(c, m, ad, npub, k []byte) (clen int, err error)

// NISTDecryptFunc mirrors crypto_aead_decrypt: m receives the plaintext of c (ciphertext||tag).
// ok reports whether the tag verified.
type NISTDecryptFunc func(m, c, ad, npub, k []byte) (mlen int, ok bool, err error)

// AdapterManager configures adapters for a long-term key.
type AdapterManager interface {
	// Configure binds key to a fresh adapter for alg. It fails with a configuration error
	// when the key length does not match the algorithm.
	Configure(alg aeadDomain.Algorithm, key []byte) (Adapter, error)
}

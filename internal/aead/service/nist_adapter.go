package service

import (
	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

// NISTAdapter composes the in-place contract from a crypto_aead_encrypt/decrypt pair.
//
// The native pair takes the key on every call and works on ciphertext||tag, so the adapter
// keeps its own copy of the key and uses the tail of the in-place region for the tag.
type NISTAdapter struct {
	params  aeadDomain.Params
	key     []byte
	encrypt NISTEncryptFunc
	decrypt NISTDecryptFunc
}

// NewNISTAdapter copies key and wraps the native pair.
func NewNISTAdapter(
	params aeadDomain.Params,
	key []byte,
	encrypt NISTEncryptFunc,
	decrypt NISTDecryptFunc,
) (*NISTAdapter, error) {
	if len(key) != params.KeyLen {
		return nil, aeadDomain.ErrInvalidKeySize
	}

	k := make([]byte, len(key))
	copy(k, key)

	return &NISTAdapter{
		params:  params,
		key:     k,
		encrypt: encrypt,
		decrypt: decrypt,
	}, nil
}

// Params returns the algorithm constants.
func (a *NISTAdapter) Params() aeadDomain.Params {
	return a.params
}

// Encrypt runs crypto_aead_encrypt over buf in place and splits the appended tag into tag.
func (a *NISTAdapter) Encrypt(nonce, aad, buf, tag []byte) error {
	if err := checkNonceAndTag(a.params, nonce, tag); err != nil {
		return err
	}
	if err := checkTagRoom(a.params, buf); err != nil {
		return err
	}

	n := len(buf)
	c := buf[:n+a.params.TagLen]
	clen, err := a.encrypt(c, buf, aad, nonce, a.key)
	if err != nil {
		return err
	}
	if clen != n+a.params.TagLen {
		return aeadDomain.ErrBufferTooSmall
	}
	copy(tag, c[n:clen])
	return nil
}

// Decrypt splices expectedTag behind buf and runs crypto_aead_decrypt in place.
func (a *NISTAdapter) Decrypt(nonce, aad, buf, expectedTag []byte) (bool, error) {
	if err := checkNonceAndTag(a.params, nonce, expectedTag); err != nil {
		return false, err
	}
	if err := checkTagRoom(a.params, buf); err != nil {
		return false, err
	}

	n := len(buf)
	c := buf[:n+a.params.TagLen]
	copy(c[n:], expectedTag)

	_, ok, err := a.decrypt(buf[:0], c, aad, nonce, a.key)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Close wipes the adapter's key copy.
func (a *NISTAdapter) Close() {
	aeadDomain.Zero(a.key)
}

package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

// SealAdapter drives a one-shot Go cipher.AEAD in place.
//
// Encrypt seals buf into buf[:len(buf)+TagLen] and splits the tag off the tail. Decrypt
// splices the expected tag onto the tail and opens into a scratch region, leaving the
// ciphertext in buf. An accepted plaintext is copied back over buf. The portable GCM verifies
// the tag before it decrypts and wipes its output on rejection, so a rejected buf is
// decrypted by rejectTransform instead: either way buf ends up holding the CTR decryption of
// the ciphertext.
type SealAdapter struct {
	params          aeadDomain.Params
	aead            cipher.AEAD
	rejectTransform func(nonce, buf []byte)
	// scratch receives Open's output. It grows to cap(buf) on first use; arena buffers
	// have a fixed capacity, so that happens once per adapter.
	scratch []byte
}

// portableBlock hides the concrete AES block type so cipher.NewGCM selects the generic GCM
// (verify-then-decrypt on every platform) instead of an assembly backend whose rejection
// path differs per architecture.
type portableBlock struct {
	cipher.Block
}

// NewGCMAdapter builds an AES-GCM adapter. The AES key schedule and GCM hash key are
// derived here, once, outside any timed region.
func NewGCMAdapter(params aeadDomain.Params, key []byte) (*SealAdapter, error) {
	if len(key) != params.KeyLen {
		return nil, aeadDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(portableBlock{Block: block})
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &SealAdapter{
		params:          params,
		aead:            aead,
		rejectTransform: gcmKeystream(block),
	}, nil
}

// gcmKeystream returns the GCM data keystream for 12-byte nonces: CTR starting at
// nonce||00000002 (counter 1 is reserved for the tag mask).
func gcmKeystream(block cipher.Block) func(nonce, buf []byte) {
	return func(nonce, buf []byte) {
		var iv [aes.BlockSize]byte
		copy(iv[:], nonce)
		iv[aes.BlockSize-1] = 2
		cipher.NewCTR(block, iv[:]).XORKeyStream(buf, buf)
	}
}

// Params returns the algorithm constants.
func (s *SealAdapter) Params() aeadDomain.Params {
	return s.params
}

// Encrypt encrypts buf in place and copies the tag to tag.
func (s *SealAdapter) Encrypt(nonce, aad, buf, tag []byte) error {
	if err := checkNonceAndTag(s.params, nonce, tag); err != nil {
		return err
	}
	if err := checkTagRoom(s.params, buf); err != nil {
		return err
	}

	n := len(buf)
	out := s.aead.Seal(buf[:0], nonce, buf, aad)
	if len(out) != n+s.params.TagLen {
		return aeadDomain.ErrBufferTooSmall
	}
	copy(tag, out[n:])
	return nil
}

// Decrypt decrypts buf in place against expectedTag.
func (s *SealAdapter) Decrypt(nonce, aad, buf, expectedTag []byte) (bool, error) {
	if err := checkNonceAndTag(s.params, nonce, expectedTag); err != nil {
		return false, err
	}
	if err := checkTagRoom(s.params, buf); err != nil {
		return false, err
	}

	n := len(buf)
	region := buf[:n+s.params.TagLen]
	copy(region[n:], expectedTag)

	if cap(s.scratch) < cap(buf) {
		s.scratch = make([]byte, 0, cap(buf))
	}

	plaintext, err := s.aead.Open(s.scratch[:0], nonce, region, aad)
	if err != nil {
		if s.rejectTransform != nil {
			s.rejectTransform(nonce, buf)
		}
		return false, nil
	}
	copy(buf, plaintext)
	return true, nil
}

// Close drops the cipher. Go's AES block keeps its expanded key unexported, so the
// reference is released for the collector.
func (s *SealAdapter) Close() {
	s.aead = nil
	s.rejectTransform = nil
	aeadDomain.Zero(s.scratch[:cap(s.scratch)])
	s.scratch = nil
}

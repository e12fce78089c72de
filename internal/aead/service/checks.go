package service

import (
	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

func checkNonceAndTag(params aeadDomain.Params, nonce, tag []byte) error {
	if len(nonce) != params.NonceLen {
		return aeadDomain.ErrInvalidNonceSize
	}
	if len(tag) != params.TagLen {
		return aeadDomain.ErrInvalidTagSize
	}
	return nil
}

// checkTagRoom verifies the region behind buf can hold ciphertext||tag without reallocation.
func checkTagRoom(params aeadDomain.Params, buf []byte) error {
	if cap(buf)-len(buf) < params.TagLen {
		return aeadDomain.ErrBufferTooSmall
	}
	return nil
}

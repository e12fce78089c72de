package service

import (
	"fmt"

	"github.com/cloudflare/circl/cipher/ascon"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

// AsconEncrypt is crypto_aead_encrypt for ASCON-128. The permutation state is initialised
// from the key on every call; ASCON has no separable key schedule to hoist out.
func AsconEncrypt(c, m, ad, npub, k []byte) (int, error) {
	if len(npub) != ascon.NonceSize {
		return 0, aeadDomain.ErrInvalidNonceSize
	}
	if cap(c) < len(m)+ascon.TagSize {
		return 0, aeadDomain.ErrBufferTooSmall
	}

	a, err := ascon.New(k, ascon.Ascon128)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", aeadDomain.ErrInvalidKeySize, err)
	}

	out := a.Seal(c[:0], npub, m, ad)
	return len(out), nil
}

// AsconDecrypt is crypto_aead_decrypt for ASCON-128. The sponge absorbs the whole
// ciphertext before the tag comparison, so a rejected message costs a full decryption.
func AsconDecrypt(m, c, ad, npub, k []byte) (int, bool, error) {
	if len(npub) != ascon.NonceSize {
		return 0, false, aeadDomain.ErrInvalidNonceSize
	}
	if len(c) < ascon.TagSize {
		return 0, false, aeadDomain.ErrBufferTooSmall
	}

	a, err := ascon.New(k, ascon.Ascon128)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", aeadDomain.ErrInvalidKeySize, err)
	}

	out, err := a.Open(m[:0], npub, c, ad)
	if err != nil {
		return 0, false, nil
	}
	return len(out), true, nil
}

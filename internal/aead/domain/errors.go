package domain

import (
	"github.com/allisson/aeadbench/internal/errors"
)

// Adapter errors. Length mismatches detected while configuring or invoking an adapter are
// configuration errors; a buffer the primitive cannot work in place is a primitive fault.
var (
	// ErrUnsupportedAlgorithm indicates the algorithm is not compiled in.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidConfig, "unsupported algorithm")

	// ErrInvalidKeySize indicates the key length does not match Params.KeyLen.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidConfig, "invalid key size")

	// ErrInvalidNonceSize indicates the nonce length does not match Params.NonceLen.
	ErrInvalidNonceSize = errors.Wrap(errors.ErrInvalidConfig, "invalid nonce size")

	// ErrInvalidTagSize indicates the tag buffer is not Params.TagLen bytes.
	ErrInvalidTagSize = errors.Wrap(errors.ErrInvalidConfig, "invalid tag size")

	// ErrBufferTooSmall indicates the in-place region lacks room for the trailing tag.
	ErrBufferTooSmall = errors.Wrap(errors.ErrPrimitiveFault, "buffer too small")

	// ErrSessionState indicates a session call arrived out of order (e.g. encrypt before setIV).
	ErrSessionState = errors.Wrap(errors.ErrPrimitiveFault, "invalid session state")
)

package domain

import (
	"strings"
)

// Algorithm identifies an AEAD scheme in the measurement matrix.
//
// Every supported algorithm produces a 16-byte tag. Key and nonce lengths differ and are
// compiled in through Params; nothing about an algorithm is configurable at runtime.
type Algorithm string

const (
	// AES128GCM is AES-128 in Galois/Counter Mode: 16-byte key, 12-byte nonce.
	AES128GCM Algorithm = "aes128-gcm"

	// AES256GCM is AES-256 in Galois/Counter Mode: 32-byte key, 12-byte nonce.
	AES256GCM Algorithm = "aes256-gcm"

	// ASCON128 is the ASCON-128 lightweight AEAD: 16-byte key, 16-byte nonce.
	ASCON128 Algorithm = "ascon128"

	// ChaCha20Poly1305 is the RFC 8439 construction: 32-byte key, 12-byte nonce.
	ChaCha20Poly1305 Algorithm = "chacha20-poly1305"
)

// TagLen is the authentication tag length shared by every algorithm in scope.
const TagLen = 16

// MaxKeyLen and MaxNonceLen size the static key and nonce regions of a workload arena.
const (
	MaxKeyLen   = 32
	MaxNonceLen = 16
)

// NativeShape describes how the underlying implementation exposes the cipher.
type NativeShape int

const (
	// ShapeSeal is a one-shot Go cipher.AEAD (Seal/Open over ciphertext||tag).
	ShapeSeal NativeShape = iota + 1

	// ShapeNIST is a NIST LWC style one-shot pair (crypto_aead_encrypt/decrypt) that
	// takes the key on every call and emits ciphertext||tag.
	ShapeNIST

	// ShapeSession is a stateful object driven through setKey, setIV, addAuthData,
	// encrypt/decrypt and computeTag/checkTag.
	ShapeSession
)

// String returns the shape name used in logs.
func (s NativeShape) String() string {
	switch s {
	case ShapeSeal:
		return "seal"
	case ShapeNIST:
		return "nist"
	case ShapeSession:
		return "session"
	default:
		return "unknown"
	}
}

// Params holds the compiled-in constants of an algorithm.
type Params struct {
	Algorithm Algorithm
	// Label is the fixed report token prefix (e.g. "AES128-GCM", "ChaChaPoly").
	Label    string
	KeyLen   int
	NonceLen int
	TagLen   int
	Shape    NativeShape
}

// registry lists the algorithms in their canonical campaign order.
var registry = []Params{
	{Algorithm: AES128GCM, Label: "AES128-GCM", KeyLen: 16, NonceLen: 12, TagLen: TagLen, Shape: ShapeSeal},
	{Algorithm: AES256GCM, Label: "AES256-GCM", KeyLen: 32, NonceLen: 12, TagLen: TagLen, Shape: ShapeSeal},
	{Algorithm: ASCON128, Label: "ASCON128", KeyLen: 16, NonceLen: 16, TagLen: TagLen, Shape: ShapeNIST},
	{
		Algorithm: ChaCha20Poly1305,
		Label:     "ChaChaPoly",
		KeyLen:    32,
		NonceLen:  12,
		TagLen:    TagLen,
		Shape:     ShapeSession,
	},
}

// All returns every supported algorithm in canonical order.
func All() []Algorithm {
	algs := make([]Algorithm, 0, len(registry))
	for _, p := range registry {
		algs = append(algs, p.Algorithm)
	}
	return algs
}

// Lookup returns the constants of alg or ErrUnsupportedAlgorithm.
func Lookup(alg Algorithm) (Params, error) {
	for _, p := range registry {
		if p.Algorithm == alg {
			return p, nil
		}
	}
	return Params{}, ErrUnsupportedAlgorithm
}

// ParseAlgorithm converts a user supplied name into an Algorithm. Matching is
// case-insensitive and also accepts the report label (e.g. "ChaChaPoly").
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.TrimSpace(s)
	for _, p := range registry {
		if strings.EqualFold(name, string(p.Algorithm)) || strings.EqualFold(name, p.Label) {
			return p.Algorithm, nil
		}
	}
	return "", ErrUnsupportedAlgorithm
}

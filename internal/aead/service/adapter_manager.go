package service

import (
	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

// nistPrimitives binds each NIST-shaped algorithm to its crypto_aead_encrypt/decrypt pair.
var nistPrimitives = map[aeadDomain.Algorithm]struct {
	encrypt NISTEncryptFunc
	decrypt NISTDecryptFunc
}{
	aeadDomain.ASCON128: {encrypt: AsconEncrypt, decrypt: AsconDecrypt},
}

// sessionFactories builds a fresh Session for each session-shaped algorithm.
var sessionFactories = map[aeadDomain.Algorithm]func() Session{
	aeadDomain.ChaCha20Poly1305: func() Session { return NewChaChaPolySession() },
}

// AdapterManagerService implements AdapterManager for every compiled-in algorithm.
type AdapterManagerService struct{}

// NewAdapterManager creates a new AdapterManagerService.
func NewAdapterManager() *AdapterManagerService {
	return &AdapterManagerService{}
}

// Configure validates the key length and returns a fresh adapter for alg, chosen by the
// algorithm's native shape. Returns ErrUnsupportedAlgorithm for unknown algorithms or a
// shape without a bound native, and ErrInvalidKeySize on a length mismatch.
func (m *AdapterManagerService) Configure(alg aeadDomain.Algorithm, key []byte) (Adapter, error) {
	params, err := aeadDomain.Lookup(alg)
	if err != nil {
		return nil, err
	}
	if len(key) != params.KeyLen {
		return nil, aeadDomain.ErrInvalidKeySize
	}
	return configureShape(params, key)
}

func configureShape(params aeadDomain.Params, key []byte) (Adapter, error) {
	switch params.Shape {
	case aeadDomain.ShapeSeal:
		return NewGCMAdapter(params, key)
	case aeadDomain.ShapeNIST:
		natives, ok := nistPrimitives[params.Algorithm]
		if !ok {
			return nil, aeadDomain.ErrUnsupportedAlgorithm
		}
		return NewNISTAdapter(params, key, natives.encrypt, natives.decrypt)
	case aeadDomain.ShapeSession:
		newSession, ok := sessionFactories[params.Algorithm]
		if !ok {
			return nil, aeadDomain.ErrUnsupportedAlgorithm
		}
		return NewSessionAdapter(params, key, newSession())
	default:
		return nil, aeadDomain.ErrUnsupportedAlgorithm
	}
}

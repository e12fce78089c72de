package service

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/poly1305" //nolint:staticcheck // session composition needs the raw MAC

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

type sessionState int

const (
	stateIdle sessionState = iota
	stateKeyed
	stateAuthData
	stateText
	stateFinished
)

// ChaChaPolySession is a stateful RFC 8439 ChaCha20-Poly1305 object assembled from the
// x/crypto ChaCha20 stream and Poly1305 MAC. SetIV derives the one-time Poly1305 key from
// keystream block 0 and positions the stream at block 1.
type ChaChaPolySession struct {
	key     [chacha20.KeySize]byte
	stream  *chacha20.Cipher
	mac     *poly1305.MAC
	aadLen  uint64
	textLen uint64
	state   sessionState
}

// NewChaChaPolySession returns an unkeyed session.
func NewChaChaPolySession() *ChaChaPolySession {
	return &ChaChaPolySession{}
}

// SetKey binds the long-term key.
func (s *ChaChaPolySession) SetKey(key []byte) error {
	if len(key) != chacha20.KeySize {
		return aeadDomain.ErrInvalidKeySize
	}
	copy(s.key[:], key)
	s.stream = nil
	s.mac = nil
	s.state = stateKeyed
	return nil
}

// SetIV starts a new message under nonce iv.
func (s *ChaChaPolySession) SetIV(iv []byte) error {
	if s.state == stateIdle {
		return aeadDomain.ErrSessionState
	}
	if len(iv) != chacha20.NonceSize {
		return aeadDomain.ErrInvalidNonceSize
	}

	stream, err := chacha20.NewUnauthenticatedCipher(s.key[:], iv)
	if err != nil {
		return aeadDomain.ErrInvalidNonceSize
	}

	var polyKey [32]byte
	stream.XORKeyStream(polyKey[:], polyKey[:])
	stream.SetCounter(1)

	s.stream = stream
	s.mac = poly1305.New(&polyKey)
	aeadDomain.Zero(polyKey[:])
	s.aadLen = 0
	s.textLen = 0
	s.state = stateAuthData
	return nil
}

// AddAuthData absorbs associated data. It must precede Encrypt/Decrypt.
func (s *ChaChaPolySession) AddAuthData(data []byte) error {
	if s.state != stateAuthData {
		return aeadDomain.ErrSessionState
	}
	_, _ = s.mac.Write(data)
	s.aadLen += uint64(len(data))
	return nil
}

// Encrypt writes the encryption of src to dst; dst and src may be the same slice.
func (s *ChaChaPolySession) Encrypt(dst, src []byte) error {
	if err := s.beginText(dst, src); err != nil {
		return err
	}
	out := dst[:len(src)]
	s.stream.XORKeyStream(out, src)
	_, _ = s.mac.Write(out)
	s.textLen += uint64(len(src))
	return nil
}

// Decrypt writes the decryption of src to dst; dst and src may be the same slice. The
// ciphertext is authenticated before the keystream overwrites it.
func (s *ChaChaPolySession) Decrypt(dst, src []byte) error {
	if err := s.beginText(dst, src); err != nil {
		return err
	}
	_, _ = s.mac.Write(src)
	s.stream.XORKeyStream(dst[:len(src)], src)
	s.textLen += uint64(len(src))
	return nil
}

// ComputeTag finalises the message and writes its tag.
func (s *ChaChaPolySession) ComputeTag(tag []byte) error {
	if len(tag) != poly1305.TagSize {
		return aeadDomain.ErrInvalidTagSize
	}
	if err := s.finish(); err != nil {
		return err
	}
	var sum [poly1305.TagSize]byte
	s.mac.Sum(sum[:0])
	copy(tag, sum[:])
	return nil
}

// CheckTag finalises the message and compares its tag with tag in constant time.
func (s *ChaChaPolySession) CheckTag(tag []byte) (bool, error) {
	if len(tag) != poly1305.TagSize {
		return false, aeadDomain.ErrInvalidTagSize
	}
	if err := s.finish(); err != nil {
		return false, err
	}
	return s.mac.Verify(tag), nil
}

// Clear wipes the key and any per-message state.
func (s *ChaChaPolySession) Clear() {
	aeadDomain.Zero(s.key[:])
	s.stream = nil
	s.mac = nil
	s.aadLen = 0
	s.textLen = 0
	s.state = stateIdle
}

func (s *ChaChaPolySession) beginText(dst, src []byte) error {
	switch s.state {
	case stateAuthData:
		s.pad(s.aadLen)
		s.state = stateText
	case stateText:
	default:
		return aeadDomain.ErrSessionState
	}
	if len(dst) < len(src) {
		return aeadDomain.ErrBufferTooSmall
	}
	return nil
}

func (s *ChaChaPolySession) finish() error {
	switch s.state {
	case stateAuthData:
		s.pad(s.aadLen)
	case stateText:
	default:
		return aeadDomain.ErrSessionState
	}
	s.pad(s.textLen)

	var lengths [16]byte
	binary.LittleEndian.PutUint64(lengths[:8], s.aadLen)
	binary.LittleEndian.PutUint64(lengths[8:], s.textLen)
	_, _ = s.mac.Write(lengths[:])
	s.state = stateFinished
	return nil
}

// pad writes zeros up to the next 16-byte boundary of a section of length n.
func (s *ChaChaPolySession) pad(n uint64) {
	if rem := n % 16; rem != 0 {
		var zeros [16]byte
		_, _ = s.mac.Write(zeros[:16-rem])
	}
}

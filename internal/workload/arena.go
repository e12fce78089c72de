package workload

import (
	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	"github.com/allisson/aeadbench/internal/errors"
)

// ErrMessageTooLarge indicates a message length outside the arena capacity.
var ErrMessageTooLarge = errors.Wrap(errors.ErrInvalidConfig, "message length exceeds arena capacity")

// Arena holds the statically sized regions every cell of a campaign reuses. The message
// region is allocated once for the largest message plus a tag and never grows.
type Arena struct {
	message []byte
	key     [aeadDomain.MaxKeyLen]byte
	nonce   [aeadDomain.MaxNonceLen]byte
	aad     [AADLen]byte
	tag     [aeadDomain.TagLen]byte
}

// Workload is one cell's input state. Every slice borrows from the arena: Message has
// length MessageLen and capacity MessageLen+TagLen so the adapter can use the tail in place.
type Workload struct {
	MessageLen int
	Key        []byte
	Nonce      []byte
	AAD        []byte
	Message    []byte
	Tag        []byte
}

// NewArena allocates an arena for messages up to maxMessage bytes.
func NewArena(maxMessage int) (*Arena, error) {
	if maxMessage < 0 {
		return nil, ErrMessageTooLarge
	}
	return &Arena{message: make([]byte, maxMessage+aeadDomain.TagLen)}, nil
}

// Capacity returns the largest message length the arena can hold.
func (a *Arena) Capacity() int {
	return len(a.message) - aeadDomain.TagLen
}

// Prepare fills the arena for one cell and returns views into it. Encrypt cells get the
// generated plaintext and a zeroed tag; decrypt cells get fabricated ciphertext and tag.
func (a *Arena) Prepare(params aeadDomain.Params, msgLen int, dir benchDomain.Direction) (*Workload, error) {
	if msgLen < 0 || msgLen > a.Capacity() {
		return nil, errors.Wrapf(ErrMessageTooLarge, "message length %d, capacity %d", msgLen, a.Capacity())
	}
	if params.KeyLen > len(a.key) {
		return nil, aeadDomain.ErrInvalidKeySize
	}
	if params.NonceLen > len(a.nonce) {
		return nil, aeadDomain.ErrInvalidNonceSize
	}
	if params.TagLen != len(a.tag) {
		return nil, aeadDomain.ErrInvalidTagSize
	}

	w := &Workload{
		MessageLen: msgLen,
		Key:        a.key[:params.KeyLen],
		Nonce:      a.nonce[:params.NonceLen],
		AAD:        a.aad[:],
		Message:    a.message[:msgLen:msgLen+params.TagLen],
		Tag:        a.tag[:],
	}

	Fill(Key, w.Key)
	Fill(Nonce, w.Nonce)
	Fill(AssociatedData, w.AAD)

	switch dir {
	case benchDomain.Decrypt:
		Fabricate(w.Message, FabricatedCiphertext)
		Fabricate(w.Tag, FabricatedTag)
	default:
		Fill(Plaintext, w.Message)
		Fabricate(w.Tag, 0)
	}

	return w, nil
}

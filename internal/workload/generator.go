// Package workload produces the deterministic byte workloads the timing protocol runs
// against and owns the fixed-size arena they live in.
package workload

// Role names the purpose of a generated buffer. Each role has its own base offset so the
// plaintext, associated data, key and nonce never share a byte pattern.
type Role int

const (
	Plaintext Role = iota
	AssociatedData
	Key
	Nonce
)

// Base offsets per role.
const (
	PlaintextBase      byte = 0x00
	KeyBase            byte = 0x10
	NonceBase          byte = 0x20
	AssociatedDataBase byte = 0xA0
)

// Fabricated decrypt inputs: a ciphertext and tag that no encrypt call produced, so tag
// verification is expected to fail.
const (
	FabricatedCiphertext byte = 0xAB
	FabricatedTag        byte = 0xCD
)

// AADLen is the fixed associated data length of every workload.
const AADLen = 16

// String returns the role name used in logs.
func (r Role) String() string {
	switch r {
	case Plaintext:
		return "plaintext"
	case AssociatedData:
		return "associated-data"
	case Key:
		return "key"
	case Nonce:
		return "nonce"
	default:
		return "unknown"
	}
}

// Base returns the base offset of role.
func Base(role Role) byte {
	switch role {
	case AssociatedData:
		return AssociatedDataBase
	case Key:
		return KeyBase
	case Nonce:
		return NonceBase
	default:
		return PlaintextBase
	}
}

// Fill writes dst[i] = (Base(role) + i) mod 256.
func Fill(role Role, dst []byte) {
	base := Base(role)
	for i := range dst {
		dst[i] = base + byte(i)
	}
}

// Generate returns a new n-byte buffer filled for role.
func Generate(role Role, n int) []byte {
	b := make([]byte, n)
	Fill(role, b)
	return b
}

// Fabricate sets every byte of dst to b.
func Fabricate(dst []byte, b byte) {
	for i := range dst {
		dst[i] = b
	}
}

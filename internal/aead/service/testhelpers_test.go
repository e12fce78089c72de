package service

import (
	"bytes"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

var testLengths = []int{0, 1, 15, 16, 17, 64, 255, 512}

// inPlace returns a message region of length n holding pattern bytes, with tag room behind it.
func inPlace(n int) []byte {
	buf := make([]byte, n, n+aeadDomain.TagLen)
	for i := range buf {
		buf[i] = byte(i)
	}
	return buf
}

func pattern(n int, base byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = base + byte(i)
	}
	return b
}

func clone(b []byte) []byte {
	return bytes.Clone(b)
}

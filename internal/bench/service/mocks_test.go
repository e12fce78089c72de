package service

import (
	"github.com/stretchr/testify/mock"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

// fakeClock returns its readings in order and repeats the last one.
type fakeClock struct {
	readings []uint32
	calls    int
}

func (c *fakeClock) NowMicros() uint32 {
	i := c.calls
	c.calls++
	if i >= len(c.readings) {
		return c.readings[len(c.readings)-1]
	}
	return c.readings[i]
}

// mockAdapter is a testify mock for aeadService.Adapter.
type mockAdapter struct {
	mock.Mock
	params aeadDomain.Params
}

func (m *mockAdapter) Params() aeadDomain.Params {
	return m.params
}

func (m *mockAdapter) Encrypt(nonce, aad, buf, tag []byte) error {
	args := m.Called(nonce, aad, buf, tag)
	return args.Error(0)
}

func (m *mockAdapter) Decrypt(nonce, aad, buf, expectedTag []byte) (bool, error) {
	args := m.Called(nonce, aad, buf, expectedTag)
	return args.Bool(0), args.Error(1)
}

func (m *mockAdapter) Close() {
	m.Called()
}

package service

import (
	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
)

// SessionAdapter drives a stateful Session. The key is bound once by the constructor;
// every message re-binds the nonce, absorbs any associated data, transforms buf in place
// and then computes or checks the tag.
type SessionAdapter struct {
	params  aeadDomain.Params
	session Session
}

// NewSessionAdapter clears session and binds key to it.
func NewSessionAdapter(params aeadDomain.Params, key []byte, session Session) (*SessionAdapter, error) {
	if len(key) != params.KeyLen {
		return nil, aeadDomain.ErrInvalidKeySize
	}

	session.Clear()
	if err := session.SetKey(key); err != nil {
		return nil, err
	}

	return &SessionAdapter{params: params, session: session}, nil
}

// Params returns the algorithm constants.
func (s *SessionAdapter) Params() aeadDomain.Params {
	return s.params
}

// Encrypt runs SetIV, AddAuthData, Encrypt and ComputeTag.
func (s *SessionAdapter) Encrypt(nonce, aad, buf, tag []byte) error {
	if err := checkNonceAndTag(s.params, nonce, tag); err != nil {
		return err
	}
	if err := s.session.SetIV(nonce); err != nil {
		return err
	}
	if len(aad) > 0 {
		if err := s.session.AddAuthData(aad); err != nil {
			return err
		}
	}
	if err := s.session.Encrypt(buf, buf); err != nil {
		return err
	}
	return s.session.ComputeTag(tag)
}

// Decrypt runs SetIV, AddAuthData (skipped for empty aad), Decrypt and CheckTag.
func (s *SessionAdapter) Decrypt(nonce, aad, buf, expectedTag []byte) (bool, error) {
	if err := checkNonceAndTag(s.params, nonce, expectedTag); err != nil {
		return false, err
	}
	if err := s.session.SetIV(nonce); err != nil {
		return false, err
	}
	if len(aad) > 0 {
		if err := s.session.AddAuthData(aad); err != nil {
			return false, err
		}
	}
	if err := s.session.Decrypt(buf, buf); err != nil {
		return false, err
	}
	return s.session.CheckTag(expectedTag)
}

// Close clears the session, key included.
func (s *SessionAdapter) Close() {
	s.session.Clear()
}

// Package domain defines the measurement plan, results and campaign records of the
// benchmark harness.
package domain

import (
	"strings"
)

// Direction selects which half of the AEAD cycle a cell measures.
type Direction string

const (
	// Encrypt measures nonce bind, AAD absorption, in-place encryption and tag emission.
	Encrypt Direction = "encrypt"

	// Decrypt measures nonce bind, in-place decryption and tag check against fabricated
	// ciphertext. No associated data is absorbed.
	Decrypt Direction = "decrypt"
)

// Suffix returns the report token suffix ("ENC" or "DEC").
func (d Direction) Suffix() string {
	if d == Decrypt {
		return "DEC"
	}
	return "ENC"
}

// ParseDirection accepts "encrypt"/"enc" and "decrypt"/"dec", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "enc":
		return Encrypt, nil
	case "decrypt", "dec":
		return Decrypt, nil
	default:
		return "", ErrInvalidDirection
	}
}

// Mode selects how a campaign is run and reported.
type Mode string

const (
	// ModeThroughputAverage runs every cell and reports one CSV row per cell.
	ModeThroughputAverage Mode = "throughput-average"

	// ModeSingleShotPowerProfile emits a trigger marker, runs the cells silently and
	// halts in the lowest-power state the host offers.
	ModeSingleShotPowerProfile Mode = "single-shot-power-profile"
)

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeThroughputAverage:
		return ModeThroughputAverage, nil
	case ModeSingleShotPowerProfile:
		return ModeSingleShotPowerProfile, nil
	default:
		return "", ErrInvalidMode
	}
}

// TriggerMarker is written before a single-shot measurement so an external power
// instrument can start capturing.
const TriggerMarker = "### TRIGGER! ###"

// DefaultSizes is the message size matrix of the reference campaign.
var DefaultSizes = []int{16, 32, 64, 128, 256, 512}

// Defaults of the reference target: 200 repetitions on a 16 MHz clock.
const (
	DefaultRepetitions          = 200
	DefaultCyclesPerMicrosecond = 16.0
	DefaultMaxMessageSize       = 512
)

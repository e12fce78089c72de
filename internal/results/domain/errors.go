// Package domain defines the stored benchmark run models and errors.
package domain

import (
	"github.com/allisson/aeadbench/internal/errors"
)

var (
	// ErrRunNotFound indicates no stored run has the requested ID.
	ErrRunNotFound = errors.Wrap(errors.ErrNotFound, "benchmark run not found")

	// ErrEmptyCampaign indicates a campaign with no measured cells was handed to storage.
	ErrEmptyCampaign = errors.Wrap(errors.ErrInvalidInput, "campaign has no results")
)

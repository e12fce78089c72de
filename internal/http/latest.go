package http

import (
	"sync"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
)

// LatestCampaign holds the most recently finished campaign for the /campaigns/latest
// endpoint. It is safe for concurrent use.
type LatestCampaign struct {
	mu       sync.RWMutex
	campaign *benchDomain.Campaign
}

// NewLatestCampaign creates an empty holder.
func NewLatestCampaign() *LatestCampaign {
	return &LatestCampaign{}
}

// Set replaces the held campaign.
func (l *LatestCampaign) Set(campaign *benchDomain.Campaign) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.campaign = campaign
}

// Get returns the held campaign or nil.
func (l *LatestCampaign) Get() *benchDomain.Campaign {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.campaign
}

package usecase

import (
	"context"
	"time"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	"github.com/allisson/aeadbench/internal/metrics"
)

// campaignUseCaseWithMetrics decorates CampaignUseCase with metrics instrumentation.
type campaignUseCaseWithMetrics struct {
	next    CampaignUseCase
	metrics metrics.BenchMetrics
}

// NewCampaignUseCaseWithMetrics wraps a CampaignUseCase with metrics recording.
func NewCampaignUseCaseWithMetrics(useCase CampaignUseCase, m metrics.BenchMetrics) CampaignUseCase {
	return &campaignUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Run records the campaign outcome and one observation per measured or failed cell.
func (c *campaignUseCaseWithMetrics) Run(
	ctx context.Context,
	plan benchDomain.Plan,
) (*benchDomain.Campaign, error) {
	start := time.Now()
	campaign, err := c.next.Run(ctx, plan)

	status := "success"
	if err != nil || (campaign != nil && len(campaign.Failures) > 0) {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "bench", "campaign_run", status)
	c.metrics.RecordDuration(ctx, "bench", "campaign_run", time.Since(start), status)

	if campaign != nil {
		for _, r := range campaign.Results {
			c.metrics.RecordCell(ctx, string(r.Algorithm), string(r.Direction), r.MessageLen, r.AvgMicros, r.ApproxCycles)
			c.metrics.RecordOperation(ctx, "bench", "cell", "success")
		}
		for range campaign.Failures {
			c.metrics.RecordOperation(ctx, "bench", "cell", "error")
		}
	}

	return campaign, err
}

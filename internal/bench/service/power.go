package service

import (
	"context"
	"log/slog"
)

// PowerManager places the host in its lowest-power state after a single-shot measurement.
// It is a one-way transition; nothing is expected to run afterwards except shutdown.
type PowerManager interface {
	PowerDown(ctx context.Context) error
}

// IdleHalter parks the process until ctx is cancelled, keeping the host as quiet as a
// user-space process can while an external instrument captures.
type IdleHalter struct {
	logger *slog.Logger
}

// NewIdleHalter creates an IdleHalter.
func NewIdleHalter(logger *slog.Logger) *IdleHalter {
	return &IdleHalter{logger: logger}
}

// PowerDown blocks until ctx is done.
func (h *IdleHalter) PowerDown(ctx context.Context) error {
	<-ctx.Done()
	h.logger.Debug("power-down released", slog.String("reason", context.Cause(ctx).Error()))
	return nil
}

// NoopHalter returns immediately. It is used when no instrument is attached.
type NoopHalter struct{}

// NewNoopHalter creates a NoopHalter.
func NewNoopHalter() *NoopHalter {
	return &NoopHalter{}
}

// PowerDown does nothing.
func (h *NoopHalter) PowerDown(_ context.Context) error {
	return nil
}

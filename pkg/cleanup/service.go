// Package cleanup provides data retention for the run event log.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/ranger/pkg/config"
	"github.com/codeready-toolchain/ranger/pkg/services"
)

// Service periodically removes run events past their retention TTL.
// Runs themselves are kept; only their event logs expire. All operations
// are idempotent and safe to run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	eventService *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, eventService *services.EventService) *Service {
	return &Service{
		config:       cfg,
		eventService: eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl_days", s.config.EventTTLDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.cleanupExpiredEvents(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupExpiredEvents(ctx)
		}
	}
}

func (s *Service) cleanupExpiredEvents(_ context.Context) {
	count, err := s.eventService.CleanupExpiredEvents(context.Background(), s.config.EventTTLDays)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed expired events", "count", count)
	}
}

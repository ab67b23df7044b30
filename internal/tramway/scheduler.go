package tramway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/WinteruOfficiel/next-tramway/internal/common/logger"
)

// Scheduler invokes the updater on a fixed interval, starting immediately.
// There is no backoff: the next tick is the retry policy for a failed cycle.
type Scheduler struct {
	updater  *Updater
	interval time.Duration
	logger   logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
}

func NewScheduler(updater *Updater, interval time.Duration, log logger.Logger) *Scheduler {
	return &Scheduler{
		updater:  updater,
		interval: interval,
		logger:   log,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("scheduler already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true
	s.mu.Unlock()

	s.logger.Info("Starting update scheduler", "interval", s.interval)

	// Initial cycle
	if err := s.updater.Run(ctx); err != nil {
		s.logger.Error("Initial update cycle failed", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler stopped")
			return nil
		case <-ticker.C:
			if err := s.updater.Run(ctx); err != nil {
				s.logger.Error("Update cycle failed", "error", err)
			}
		}
	}
}

func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return fmt.Errorf("scheduler not running")
	}

	if s.cancel != nil {
		s.cancel()
	}

	s.running = false
	return nil
}

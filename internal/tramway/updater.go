// Package tramway orchestrates the update cycle: fetch stop times, build the
// per-line, per-direction view, and republish it to the state and display
// sinks.
package tramway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/WinteruOfficiel/next-tramway/internal/common/config"
	"github.com/WinteruOfficiel/next-tramway/internal/common/logger"
	"github.com/WinteruOfficiel/next-tramway/internal/tramway/aggregate"
	"github.com/WinteruOfficiel/next-tramway/internal/tramway/project"
	"github.com/WinteruOfficiel/next-tramway/internal/tramway/timemath"
)

// Updater runs one full fetch -> aggregate -> project -> publish pass per
// Run call. All state is rebuilt inside the call; nothing survives between
// cycles.
type Updater struct {
	cfg         *config.Config
	lines       *config.LinesConfig
	aggregator  *aggregate.Aggregator
	fetcher     Fetcher
	publisher   MessagePublisher
	stateWriter StateWriter
	logger      logger.Logger

	// injectable clock
	now func() time.Time

	// at most one cycle in flight
	mu sync.Mutex
}

func NewUpdater(
	cfg *config.Config,
	lines *config.LinesConfig,
	fetcher Fetcher,
	publisher MessagePublisher,
	stateWriter StateWriter,
	log logger.Logger,
) *Updater {
	return &Updater{
		cfg:         cfg,
		lines:       lines,
		aggregator:  aggregate.New(lines, log),
		fetcher:     fetcher,
		publisher:   publisher,
		stateWriter: stateWriter,
		logger:      log,
		now:         time.Now,
	}
}

// Run executes one update cycle. A fetch failure aborts the cycle and leaves
// the sinks untouched; sink failures are logged per message and never stop
// the remaining publishes.
func (u *Updater) Run(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()

	records, err := u.fetcher.FetchStopTimes(ctx, u.cfg.Transit.StopID)
	if err != nil {
		return fmt.Errorf("fetching stop times: %w", err)
	}

	view := u.aggregator.Aggregate(records, timemath.NowSecondsSinceMidnight(now))

	if u.stateWriter != nil {
		statePayload := project.State(view, now)
		if err := u.stateWriter.SetState(ctx, u.cfg.HomeAssistant.EntityID, statePayload); err != nil {
			u.logger.Error("Failed to write state entity",
				"entity_id", u.cfg.HomeAssistant.EntityID,
				"error", err)
		}
	}

	published := 0
	if u.publisher != nil {
		for _, msg := range project.Display(view, u.lines, now) {
			topic := fmt.Sprintf("%s/line/%s/%s", u.cfg.MQTT.TopicPrefix, msg.Line, msg.Direction)
			if err := u.publisher.Publish(topic, msg.Payload); err != nil {
				u.logger.Error("Failed to publish display message",
					"topic", topic,
					"error", err)
				continue
			}
			published++
		}
	}

	u.logger.Debug("Update cycle complete",
		"records", len(records),
		"lines", len(view),
		"published", published)
	return nil
}

package tramway

import (
	"context"

	"github.com/WinteruOfficiel/next-tramway/internal/tramway/models"
)

// Fetcher retrieves the upstream stop-times feed for one stop cluster
type Fetcher interface {
	FetchStopTimes(ctx context.Context, stopID string) ([]models.StopTimesRecord, error)
}

// MessagePublisher delivers one display payload to its addressed channel
type MessagePublisher interface {
	Publish(topic, payload string) error
}

// StateWriter replaces the structured state entity with the cycle's view
type StateWriter interface {
	SetState(ctx context.Context, entityID string, payload models.StatePayload) error
}

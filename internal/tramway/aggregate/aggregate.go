// Package aggregate filters upstream stop-times records to the configured
// lines and groups their visits into the per-line, per-direction view the
// projectors consume.
package aggregate

import (
	"github.com/WinteruOfficiel/next-tramway/internal/common/config"
	"github.com/WinteruOfficiel/next-tramway/internal/common/logger"
	"github.com/WinteruOfficiel/next-tramway/internal/tramway/models"
	"github.com/WinteruOfficiel/next-tramway/internal/tramway/timemath"
)

type Aggregator struct {
	prefixes []string
	logger   logger.Logger
}

func New(lines *config.LinesConfig, log logger.Logger) *Aggregator {
	return &Aggregator{
		prefixes: lines.Prefixes(),
		logger:   log,
	}
}

// Aggregate builds the line -> direction -> arrivals view for one cycle.
// Visits whose raw (unwrapped) arrival-minus-now difference is negative have
// already departed and are dropped; this intentionally also drops the
// wrap-around case of a visit almost a full day in the past, which would
// otherwise render as a near-term arrival. Ordering within a (line,
// direction) bucket is upstream encounter order; duplicates are kept as
// reported.
func (a *Aggregator) Aggregate(records []models.StopTimesRecord, nowSec int) models.AggregatedView {
	view := make(models.AggregatedView)

	for _, record := range records {
		if !MatchesConfiguredLines(record.Pattern.ID, a.prefixes) {
			continue
		}

		line, err := LineCode(record.Pattern.ID)
		if err != nil {
			// data-contract violation from upstream; skip the record,
			// keep the cycle going
			a.logger.Warn("Skipping record with malformed pattern id",
				"pattern_id", record.Pattern.ID,
				"error", err)
			continue
		}

		for _, visit := range record.Times {
			if visit.RealtimeArrival-nowSec < 0 {
				a.logger.Debug("Skipping visit with arrival time in the past",
					"line", line,
					"arrival_sec", visit.RealtimeArrival,
					"now_sec", nowSec)
				continue
			}

			if view[line] == nil {
				view[line] = make(map[int][]models.Arrival)
			}
			view[line][record.Pattern.Dir] = append(view[line][record.Pattern.Dir], models.Arrival{
				Line:             line,
				Direction:        record.Pattern.Dir,
				RelativeMinutes:  timemath.RelativeMinutes(visit.RealtimeArrival, nowSec),
				DestinationShort: record.Pattern.Desc,
				Realtime:         visit.RealtimeState == models.RealtimeStateUpdated,
			})
		}
	}

	return view
}

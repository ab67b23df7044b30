// Package project renders the aggregated view into the two sink payloads:
// the structured state entity and the fixed-format display messages.
package project

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/WinteruOfficiel/next-tramway/internal/common/config"
	"github.com/WinteruOfficiel/next-tramway/internal/tramway/models"
	"github.com/WinteruOfficiel/next-tramway/internal/tramway/sanitize"
)

const (
	// display budget: the sign renders at most two upcoming passages
	displaySlots = 2
	// minutes beyond this render as the cap; the sign cannot usefully
	// distinguish 62 from 60+
	minutesCap = 60
	// widest destination the sign's line fits
	destinationMaxLen = 17
	// synthetic direction key for heartbeat messages of lines with no
	// upcoming arrivals
	heartbeatDirection = "1"
)

// State wraps the view for the structured state sink. No truncation, no
// sanitization: the consumer is trusted storage, not a constrained wire.
func State(view models.AggregatedView, now time.Time) models.StatePayload {
	timestamp := now.Format("2006-01-02 15:04:05")
	return models.StatePayload{
		State: "Update at " + timestamp,
		Attributes: models.StateAttributes{
			Stops:     view,
			UpdatedAt: timestamp,
		},
	}
}

// Display renders one message per (line, direction) present in the view,
// plus one heartbeat message per configured line with no arrivals at all, so
// a subscriber can tell "no upcoming tram" from "feed down".
func Display(view models.AggregatedView, lines *config.LinesConfig, now time.Time) []models.DisplayMessage {
	timestamp := now.Format("15:04:05")
	var messages []models.DisplayMessage

	for _, line := range lines.Lines {
		if len(view[line.Code]) == 0 {
			messages = append(messages, models.DisplayMessage{
				Line:      line.Code,
				Direction: heartbeatDirection,
				Payload:   line.DisplayName + "\n" + timestamp,
			})
		}
	}

	for lineCode, byDirection := range view {
		displayName := lines.DisplayName(lineCode)
		for direction, arrivals := range byDirection {
			if len(arrivals) > displaySlots {
				arrivals = arrivals[:displaySlots]
			}

			parts := make([]string, 0, len(arrivals)+2)
			parts = append(parts, displayName)
			for _, arrival := range arrivals {
				parts = append(parts, passage(arrival))
			}
			parts = append(parts, timestamp)

			messages = append(messages, models.DisplayMessage{
				Line:      lineCode,
				Direction: strconv.Itoa(direction),
				Payload:   strings.Join(parts, "\n"),
			})
		}
	}

	return messages
}

// passage formats one arrival as "<destination>|<minutes>|<R or S>"
func passage(arrival models.Arrival) string {
	minutes := arrival.RelativeMinutes
	if minutes > minutesCap {
		minutes = minutesCap
	}
	state := "S"
	if arrival.Realtime {
		state = "R"
	}
	return fmt.Sprintf("%s|%d|%s",
		sanitize.Sanitize(arrival.DestinationShort, destinationMaxLen), minutes, state)
}

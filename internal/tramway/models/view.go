package models

// Arrival is one upcoming stop visit that survived filtering. Immutable once
// built; lives for a single update cycle.
type Arrival struct {
	Line             string `json:"line"`
	Direction        int    `json:"dir"`
	RelativeMinutes  int    `json:"relative_arrival_time"`
	DestinationShort string `json:"destination_short"`
	Realtime         bool   `json:"realtime"`
}

// AggregatedView maps line code to direction to arrivals in upstream
// encounter order. Rebuilt from scratch every cycle, never merged.
type AggregatedView map[string]map[int][]Arrival

// StateAttributes is the structured attribute bundle written to the state sink
type StateAttributes struct {
	Stops     AggregatedView `json:"stops"`
	UpdatedAt string         `json:"updatedAt"`
}

// StatePayload is one state-entity write: a short human-readable status
// string plus the full aggregated view.
type StatePayload struct {
	State      string          `json:"state"`
	Attributes StateAttributes `json:"attributes"`
}

// DisplayMessage is one retained message for the display sink. Line and
// Direction address the destination topic; Payload is the newline-separated
// text block the sign renders.
type DisplayMessage struct {
	Line      string
	Direction string
	Payload   string
}

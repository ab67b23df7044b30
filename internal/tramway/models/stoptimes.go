// Package models defines the upstream stop-times record shapes and the
// aggregated view derived from them each update cycle.
package models

// RealtimeStateUpdated marks a visit backed by a live vehicle position;
// every other state is a schedule-only estimate.
const RealtimeStateUpdated = "UPDATED"

// Pattern identifies one line+direction+destination combination as reported
// by the upstream API. The ID is colon-delimited (namespace:line:rest).
type Pattern struct {
	ID           string `json:"id"`
	Dir          int    `json:"dir"`
	Desc         string `json:"desc"`
	LastStopName string `json:"lastStopName"`
}

// StopVisit is one upcoming stop time under a pattern. Arrival times are
// seconds since local midnight.
type StopVisit struct {
	ScheduledArrival int    `json:"scheduledArrival"`
	RealtimeArrival  int    `json:"realtimeArrival"`
	RealtimeState    string `json:"realtimeState"`
	StopName         string `json:"stopName"`
}

// StopTimesRecord is one element of the upstream stoptimes response
type StopTimesRecord struct {
	Pattern Pattern     `json:"pattern"`
	Times   []StopVisit `json:"times"`
}

package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/WinteruOfficiel/next-tramway/internal/common/config"
	"github.com/WinteruOfficiel/next-tramway/internal/common/logger"
)

const stopTimesBody = `[
  {
    "pattern": {"id": "SEM:A:123", "dir": 1, "desc": "Echirolles", "lastStopName": "Echirolles Denis Papin"},
    "times": [
      {"scheduledArrival": 43200, "realtimeArrival": 43380, "realtimeState": "UPDATED", "stopName": "Hubert Dubedout"},
      {"scheduledArrival": 44000, "realtimeArrival": 44100, "realtimeState": "SCHEDULED", "stopName": "Hubert Dubedout"}
    ]
  }
]`

func testFetcher(baseURL string) *HTTPFetcher {
	cfg := config.TransitConfig{
		APIBase:      baseURL,
		OriginHeader: "http://localhost:",
		FetchTimeout: 2 * time.Second,
	}
	return NewHTTPFetcher(cfg, logger.New(zerolog.Disabled, io.Discard))
}

func TestFetchStopTimes(t *testing.T) {
	var gotPath, gotOrigin string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotOrigin = r.Header.Get("Origin")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, stopTimesBody)
	}))
	defer server.Close()

	records, err := testFetcher(server.URL).FetchStopTimes(context.Background(), "SEM:GENCLUSTER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/routers/default/index/clusters/SEM:GENCLUSTER/stoptimes" {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if gotOrigin != "http://localhost:" {
		t.Errorf("expected Origin header override, got %q", gotOrigin)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Pattern.ID != "SEM:A:123" {
		t.Errorf("expected pattern id SEM:A:123, got %q", records[0].Pattern.ID)
	}
	if len(records[0].Times) != 2 {
		t.Fatalf("expected 2 visits, got %d", len(records[0].Times))
	}
	if records[0].Times[0].RealtimeArrival != 43380 {
		t.Errorf("expected realtime arrival 43380, got %d", records[0].Times[0].RealtimeArrival)
	}
	if records[0].Times[1].RealtimeState != "SCHEDULED" {
		t.Errorf("expected realtime state SCHEDULED, got %q", records[0].Times[1].RealtimeState)
	}
}

func TestFetchStopTimesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := testFetcher(server.URL).FetchStopTimes(context.Background(), "SEM:GENCLUSTER")
	if err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestFetchStopTimesMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "{not json")
	}))
	defer server.Close()

	_, err := testFetcher(server.URL).FetchStopTimes(context.Background(), "SEM:GENCLUSTER")
	if err == nil {
		t.Fatal("expected an error for a malformed body")
	}
}

func TestFetchStopTimesUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := testFetcher(server.URL).FetchStopTimes(context.Background(), "SEM:GENCLUSTER")
	if err == nil {
		t.Fatal("expected an error when the upstream is unreachable")
	}
}

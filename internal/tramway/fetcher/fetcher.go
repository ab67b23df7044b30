// Package fetcher retrieves the stop-times feed for the configured stop
// cluster from the transit API.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/WinteruOfficiel/next-tramway/internal/common/config"
	"github.com/WinteruOfficiel/next-tramway/internal/common/logger"
	"github.com/WinteruOfficiel/next-tramway/internal/tramway/models"
)

type HTTPFetcher struct {
	client  *http.Client
	baseURL string
	origin  string
	logger  logger.Logger
}

func NewHTTPFetcher(cfg config.TransitConfig, log logger.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: cfg.FetchTimeout,
		},
		baseURL: cfg.APIBase,
		origin:  cfg.OriginHeader,
		logger:  log,
	}
}

// FetchStopTimes fetches all pattern records for the stop cluster. The
// Origin header override is required by the API's access policy.
func (f *HTTPFetcher) FetchStopTimes(ctx context.Context, stopID string) ([]models.StopTimesRecord, error) {
	url := fmt.Sprintf("%s/routers/default/index/clusters/%s/stoptimes", f.baseURL, stopID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Origin", f.origin)

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("Failed to execute request", "url", url, "error", err)
		return nil, fmt.Errorf("executing request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Try to read the response body for error details
		body, _ := io.ReadAll(resp.Body)
		f.logger.Error("API returned error status",
			"status_code", resp.StatusCode,
			"url", url,
			"response_body", string(body))
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var records []models.StopTimesRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	f.logger.Debug("Stop times fetched", "stop_id", stopID, "records", len(records))
	return records, nil
}

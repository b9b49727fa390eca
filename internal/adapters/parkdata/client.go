// Package parkdata fetches the daily data table published for each park.
package parkdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/parksandresorts/backster-agent/internal/domain"
)

// Client implements domain.ParkDataClient against the backstage info
// service: GET {base}/{parkCode}/{date}.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchDaily returns the raw daily payload for a park and date. A 404 from
// the upstream means the park is closed that day and maps to ErrParkClosed;
// every other non-200 status is a retrieval failure.
func (c *Client) FetchDaily(ctx context.Context, park domain.Park, date string) (map[string]any, error) {
	code := park.Code()
	if code == "" {
		return nil, fmt.Errorf("invalid park %q", park)
	}

	url := fmt.Sprintf("%s/%s/%s", c.baseURL, code, date)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building park data request: %w", err)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("park data request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, domain.ErrParkClosed
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("park data request: unexpected status %d", res.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding park data response: %w", err)
	}
	return payload, nil
}

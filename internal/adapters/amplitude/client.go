// Package amplitude talks to the Amplitude Dashboard REST API.
package amplitude

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/emiliopalmerini/mreport/internal/ports"
)

const (
	dateLayout = "20060102"
	hourLayout = "20060102T15"
)

// ErrNoExportData is returned by Export when Amplitude has no events for the range.
var ErrNoExportData = ports.ErrNoExportData

// Client queries Amplitude for metrics and raw event exports.
type Client struct {
	baseURL    string
	apiKey     string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a new Amplitude client.
func NewClient(cfg Config, timeout time.Duration) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    cfg.APIKey,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// segmentationResponse represents the JSON response from the Event Segmentation API.
type segmentationResponse struct {
	Data struct {
		SeriesCollapsed [][]struct {
			SetID string          `json:"setId"`
			Value json.RawMessage `json:"value"`
		} `json:"seriesCollapsed"`
	} `json:"data"`
}

// Query runs an Event Segmentation query and sums the collapsed series.
// A response without any series yields nil.
func (c *Client) Query(ctx context.Context, q ports.EventQuery, r ports.DateRange, agg ports.Aggregation) (*float64, error) {
	event, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("encoding event: %w", err)
	}

	params := url.Values{}
	params.Set("e", string(event))
	params.Set("start", r.Start.Format(dateLayout))
	params.Set("end", r.End.Format(dateLayout))
	params.Set("m", string(agg))

	resp, err := c.get(ctx, "/events/segmentation", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var seg segmentationResponse
	if err := json.NewDecoder(resp.Body).Decode(&seg); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	var (
		total float64
		found bool
	)
	for _, series := range seg.Data.SeriesCollapsed {
		for _, point := range series {
			v, ok, err := parseValue(point.Value)
			if err != nil {
				return nil, fmt.Errorf("parsing value: %w", err)
			}
			if ok {
				total += v
				found = true
			}
		}
	}
	if !found {
		return nil, nil
	}
	return &total, nil
}

// Export downloads the raw events between start and end, hour granularity.
// The returned bytes are a zip archive of gzipped NDJSON files.
func (c *Client) Export(ctx context.Context, start, end time.Time) ([]byte, error) {
	params := url.Values{}
	params.Set("start", start.Format(hourLayout))
	params.Set("end", end.Format(hourLayout))

	resp, err := c.get(ctx, "/export", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNoExportData
	default:
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoExportData
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	return resp, nil
}

// parseValue accepts a JSON number, a numeric string or null.
func parseValue(raw json.RawMessage) (float64, bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false, nil
	}
	var n json.Number
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false, err
		}
		n = json.Number(s)
	} else if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false, err
	}
	v, err := n.Float64()
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

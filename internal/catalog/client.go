package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultURL = "https://api.le-systeme-solaire.net/rest/bodies/"

	centralFilter = "englishName,eq,Sun"
	planetFilter  = "isPlanet,neq,false"

	maxBodyBytes = 8 << 20
)

// Client retrieves body records from the bodies endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a Client. A non-positive rps disables request pacing.
func NewClient(baseURL string, timeout time.Duration, rps float64, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// BaseURL returns the configured endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// Fetch loads the central body, then the planets, and shapes them into the
// canonical list. The planet request is only sent once the first succeeded.
func (c *Client) Fetch(ctx context.Context) ([]Body, error) {
	start := time.Now()

	central, err := c.query(ctx, centralFilter)
	if err != nil {
		return nil, fmt.Errorf("fetching central body: %w", err)
	}

	planets, err := c.query(ctx, planetFilter)
	if err != nil {
		return nil, fmt.Errorf("fetching planets: %w", err)
	}

	bodies, err := shape(central, planets)
	if err != nil {
		return nil, err
	}

	c.logger.Info("catalog fetched",
		"component", "catalog",
		"bodies", len(bodies),
		"raw_planets", len(planets),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return bodies, nil
}

func (c *Client) query(ctx context.Context, filter string) ([]rawBody, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	q := u.Query()
	q.Add("filter[]", filter)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", filter, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d for %s: %w", resp.StatusCode, filter, ErrBadResponse)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("response exceeds %d byte limit: %w", maxBodyBytes, ErrBadResponse)
	}

	var decoded rawResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filter, ErrBadResponse)
	}

	c.logger.Debug("catalog query", "component", "catalog", "filter", filter, "records", len(decoded.Bodies))
	return decoded.Bodies, nil
}

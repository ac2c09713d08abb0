package harvard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gallerie-app/gallerie/internal/logging"
	"github.com/gallerie-app/gallerie/internal/models"
)

// classificationFilter limits results to object classes the gallery can
// display meaningfully.
const classificationFilter = "Paintings|Photographs|Sculptures"

const defaultTimeout = 15 * time.Second

// Client talks to the Harvard Art Museums API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        logging.Logger
}

// NewClient constructs a Client. An empty apiKey is valid: every fetch then
// serves the fallback collection.
func NewClient(baseURL, apiKey string, timeout time.Duration, log logging.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		log:        log.With("component", "harvard"),
	}
}

// FetchArtworks requests one page of object records and transforms them into
// canonical artworks. On any failure it logs the cause and returns the
// fallback collection with a nil error; callers never see a degraded fetch
// as a failure.
func (c *Client) FetchArtworks(ctx context.Context, page, size int) ([]models.Artwork, error) {
	if c.apiKey == "" {
		c.log.Warn(ctx, "api key not configured, using fallback data")
		return FallbackArtworks(), nil
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("size", fmt.Sprintf("%d", size))
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("hasimage", "1")
	q.Set("classification", classificationFilter)
	endpoint := fmt.Sprintf("%s/object?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.log.Error(ctx, "failed to build request", "error", err)
		return FallbackArtworks(), nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(ctx, "fetch failed, using fallback data", "error", err)
		return FallbackArtworks(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Error(ctx, "unexpected status, using fallback data", "status", resp.StatusCode)
		return FallbackArtworks(), nil
	}

	var body objectResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Error(ctx, "failed to decode response, using fallback data", "error", err)
		return FallbackArtworks(), nil
	}

	artworks := TransformRecords(body.Records)
	c.log.Info(ctx, "fetched artworks", "page", page, "size", size, "count", len(artworks))
	return artworks, nil
}

// Package images fetches batches of decorative stock photos from a
// Pexels-compatible search API. The photos are non-semantic: callers use
// them purely for visual variety.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

type Client struct {
	baseURL   string
	apiKey    string
	batchSize int
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient builds a client for the photo API at baseURL. The stock photo
// service rate-limits aggressively on free keys, so outbound calls are
// capped at one per second with a small burst.
func NewClient(baseURL, apiKey string, batchSize int) *Client {
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		batchSize: batchSize,
		http:      &http.Client{Timeout: 10 * time.Second},
		limiter:   rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

type searchResponse struct {
	Photos []struct {
		Src struct {
			Medium string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// Batch returns up to the configured number of image URLs for topic, in
// API order. The batch may be smaller than asked for, including empty.
func (c *Client) Batch(ctx context.Context, topic string) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/search?query=%s&per_page=%d",
		c.baseURL, url.QueryEscape(topic), c.batchSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build photo request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photo API returned status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode photo response: %w", err)
	}

	urls := make([]string, 0, len(sr.Photos))
	for _, p := range sr.Photos {
		if p.Src.Medium != "" {
			urls = append(urls, p.Src.Medium)
		}
	}
	return urls, nil
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"irindex/internal/cache"
)

// ErrIndexingRateLimited is returned when the notification budget for the
// current window is spent
var ErrIndexingRateLimited = errors.New("indexing notifications rate limited")

// indexNowEndpoint is the shared IndexNow submission API
const indexNowEndpoint = "https://api.indexnow.org/indexnow"

// IndexingService notifies search engines about new or updated result pages
// via the IndexNow protocol. Calls are rate limited through an injected
// limiter backed by a shared store, so the budget holds across instances.
type IndexingService struct {
	host    string
	apiKey  string
	limiter cache.RateLimiter
	client  *http.Client
}

// NewIndexingService creates a new indexing service
func NewIndexingService(host, apiKey string, limiter cache.RateLimiter) *IndexingService {
	return &IndexingService{
		host:    host,
		apiKey:  apiKey,
		limiter: limiter,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether the service has the config it needs to notify
func (s *IndexingService) Enabled() bool {
	return s.host != "" && s.apiKey != ""
}

// NotifyURLs submits page URLs to IndexNow. Returns ErrIndexingRateLimited
// when the window budget is exhausted.
func (s *IndexingService) NotifyURLs(ctx context.Context, urls []string) error {
	if !s.Enabled() {
		return errors.New("indexing not configured")
	}
	if len(urls) == 0 {
		return nil
	}

	allowed, err := s.limiter.Allow(ctx, "indexnow")
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	if !allowed {
		return ErrIndexingRateLimited
	}

	reqBody := map[string]interface{}{
		"host":    s.host,
		"key":     s.apiKey,
		"urlList": urls,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", indexNowEndpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("indexnow returned %d", resp.StatusCode)
	}
	return nil
}

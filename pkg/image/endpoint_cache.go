package image

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// verifyTimeout bounds the liveness round-trip to the remote service.
const verifyTimeout = 5 * time.Second

var ErrNoEndpoint = errors.New("no image generation endpoint available")

// EndpointCache holds the current address of the remote image generation
// service. The address rotates over the service's lifetime (it announces a
// fresh URL whenever it restarts), so the cached value is a hint: Get
// re-verifies it with a lightweight round-trip and accepts the service's
// self-reported canonical address.
//
// Concurrent refreshes may race and perform redundant verification calls;
// the write is a plain overwrite and last-writer-wins is fine since
// verification is idempotent.
type EndpointCache struct {
	mu      sync.RWMutex
	current string

	repository EndpointRepository
	seedURL    string // optional configured fallback when the store is empty
	httpClient *http.Client
	logger     *zap.Logger
}

func NewEndpointCache(repository EndpointRepository, seedURL string, logger *zap.Logger) *EndpointCache {
	return &EndpointCache{
		repository: repository,
		seedURL:    seedURL,
		httpClient: &http.Client{Timeout: verifyTimeout},
		logger:     logger,
	}
}

// Get returns a verified endpoint address, refreshing from the store when
// nothing is cached or the cached address is no longer live.
func (c *EndpointCache) Get(ctx context.Context) (string, error) {
	c.mu.RLock()
	cached := c.current
	c.mu.RUnlock()

	if cached != "" {
		canonical, err := c.verify(ctx, cached)
		if err == nil {
			c.set(canonical)
			return canonical, nil
		}
		c.logger.Warn("cached image endpoint no longer live",
			zap.String("endpoint", cached),
			zap.Error(err),
		)
		c.Invalidate()
	}

	return c.Refresh(ctx)
}

// Refresh discards the in-memory value and re-resolves from the store.
func (c *EndpointCache) Refresh(ctx context.Context) (string, error) {
	address := ""
	endpoint, err := c.repository.GetLatestEndpoint(ctx, EndpointTypeImageGeneration)
	if err == nil {
		address = endpoint.EndpointURL
	} else if c.seedURL != "" {
		address = c.seedURL
	} else {
		return "", ErrNoEndpoint
	}

	canonical, err := c.verify(ctx, address)
	if err != nil {
		return "", err
	}
	c.set(canonical)
	return canonical, nil
}

func (c *EndpointCache) Invalidate() {
	c.mu.Lock()
	c.current = ""
	c.mu.Unlock()
}

func (c *EndpointCache) set(address string) {
	c.mu.Lock()
	c.current = address
	c.mu.Unlock()
}

// verify performs the liveness round-trip. The service reports its canonical
// address in the health payload; when present it supersedes the address the
// check was made against.
func (c *EndpointCache) verify(ctx context.Context, address string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address+"/health", nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("endpoint health check failed: " + resp.Status)
	}

	var health struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		// Live but not reporting a canonical address; keep what we have.
		return address, nil
	}
	if health.URL != "" {
		return health.URL, nil
	}
	return address, nil
}

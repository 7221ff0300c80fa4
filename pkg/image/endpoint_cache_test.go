package image

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"DishCraft-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeEndpointRepo struct {
	latest *entities.GenerationEndpoint
	err    error
	saved  []string
}

func (f *fakeEndpointRepo) SaveEndpoint(_ context.Context, _, endpointURL string) error {
	f.saved = append(f.saved, endpointURL)
	return nil
}

func (f *fakeEndpointRepo) GetLatestEndpoint(_ context.Context, _ string) (*entities.GenerationEndpoint, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.latest, nil
}

// newHealthServer serves /health, optionally reporting a canonical address
// different from the one it is reached on.
func newHealthServer(canonicalURL string, hits *atomic.Int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		if hits != nil {
			hits.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ok", "url": "` + canonicalURL + `"}`))
	}))
}

func TestEndpointCacheResolvesFromStore(t *testing.T) {
	server := newHealthServer("", nil)
	defer server.Close()

	repo := &fakeEndpointRepo{latest: &entities.GenerationEndpoint{EndpointURL: server.URL}}
	cache := NewEndpointCache(repo, "", zap.NewNop())

	address, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, server.URL, address)
}

func TestEndpointCacheAcceptsSelfReportedCanonicalAddress(t *testing.T) {
	canonical := newHealthServer("", nil)
	defer canonical.Close()

	announcer := newHealthServer(canonical.URL, nil)
	defer announcer.Close()

	repo := &fakeEndpointRepo{latest: &entities.GenerationEndpoint{EndpointURL: announcer.URL}}
	cache := NewEndpointCache(repo, "", zap.NewNop())

	// The stored address is a hint; the service's self-reported address wins.
	address, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, canonical.URL, address)
}

func TestEndpointCacheFallsBackToSeed(t *testing.T) {
	server := newHealthServer("", nil)
	defer server.Close()

	repo := &fakeEndpointRepo{err: gorm.ErrRecordNotFound}
	cache := NewEndpointCache(repo, server.URL, zap.NewNop())

	address, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, server.URL, address)
}

func TestEndpointCacheNoAddressAnywhere(t *testing.T) {
	repo := &fakeEndpointRepo{err: gorm.ErrRecordNotFound}
	cache := NewEndpointCache(repo, "", zap.NewNop())

	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoEndpoint)
}

func TestEndpointCacheRecoversFromStaleAddress(t *testing.T) {
	stale := newHealthServer("", nil)
	repo := &fakeEndpointRepo{latest: &entities.GenerationEndpoint{EndpointURL: stale.URL}}
	cache := NewEndpointCache(repo, "", zap.NewNop())

	address, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stale.URL, address)

	// The service moved: old address dead, store has the replacement.
	stale.Close()
	fresh := newHealthServer("", nil)
	defer fresh.Close()
	repo.latest = &entities.GenerationEndpoint{EndpointURL: fresh.URL}

	address, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh.URL, address)
}

func TestEndpointCacheInvalidateForcesRefresh(t *testing.T) {
	var hits atomic.Int32
	server := newHealthServer("", &hits)
	defer server.Close()

	repo := &fakeEndpointRepo{latest: &entities.GenerationEndpoint{EndpointURL: server.URL}}
	cache := NewEndpointCache(repo, "", zap.NewNop())

	_, err := cache.Get(context.Background())
	require.NoError(t, err)
	first := hits.Load()

	cache.Invalidate()
	_, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Greater(t, hits.Load(), first)
}

func TestEndpointCacheHealthWithoutBodyKeepsAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK) // live, but no canonical address reported
	}))
	defer server.Close()

	repo := &fakeEndpointRepo{latest: &entities.GenerationEndpoint{EndpointURL: server.URL}}
	cache := NewEndpointCache(repo, "", zap.NewNop())

	address, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, server.URL, address)
}

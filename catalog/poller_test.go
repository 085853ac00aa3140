package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog_cache "github.com/cuongluu0705/Online-Electronics-Selling-System/cache"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

func newTestPoller(baseURL string) *Poller {
	client := upstream.NewClient(baseURL, time.Second)
	mapper := NewMapper(baseURL, 2024)
	return NewPoller(client, mapper, time.Second)
}

func newCatalogServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		q := r.URL.Query().Get("q")
		list := []models.UpstreamProduct{
			{ProductID: "PH_001", ProductName: "iPhone 15"},
			{ProductID: "TV_001", ProductName: "Smart TV"},
		}
		if q != "" {
			list = list[:1]
		}
		_ = json.NewEncoder(w).Encode(list)
	}))
}

func TestRefreshNowPopulatesSnapshot(t *testing.T) {
	catalog_cache.Reset()
	srv := newCatalogServer(t, nil)
	defer srv.Close()

	p := newTestPoller(srv.URL)
	fetched, err := p.RefreshNow(context.Background())
	require.NoError(t, err)
	assert.Len(t, fetched, 2)

	products, query, _, ok := catalog_cache.Snapshot()
	require.True(t, ok)
	assert.Len(t, products, 2)
	assert.Equal(t, "", query)
}

func TestSetQueryChangesFetch(t *testing.T) {
	catalog_cache.Reset()
	srv := newCatalogServer(t, nil)
	defer srv.Close()

	p := newTestPoller(srv.URL)
	p.SetQuery("iphone")
	_, err := p.RefreshNow(context.Background())
	require.NoError(t, err)

	products, query, _, ok := catalog_cache.Snapshot()
	require.True(t, ok)
	assert.Len(t, products, 1)
	assert.Equal(t, "iphone", query)
}

func TestRefreshNowReturnsRequestedQuery(t *testing.T) {
	catalog_cache.Reset()
	srv := newCatalogServer(t, nil)
	defer srv.Close()

	// A newer fetch already landed, so this refresh loses the snapshot
	// race and the cache rejects its apply.
	require.True(t, catalog_cache.Apply(1000, "", []models.Product{
		{ID: "PH_001"}, {ID: "TV_001"},
	}))

	p := newTestPoller(srv.URL)
	p.SetQuery("iphone")
	fetched, err := p.RefreshNow(context.Background())
	require.NoError(t, err)

	// The caller still gets the list matching its own query
	require.Len(t, fetched, 1)
	assert.Equal(t, "PH_001", fetched[0].ID)

	// while the snapshot keeps the newer fetch untouched
	products, query, _, ok := catalog_cache.Snapshot()
	require.True(t, ok)
	assert.Len(t, products, 2)
	assert.Equal(t, "", query)
}

func TestPauseStopsPolling(t *testing.T) {
	catalog_cache.Reset()
	var hits atomic.Int64
	srv := newCatalogServer(t, &hits)
	defer srv.Close()

	p := newTestPoller(srv.URL)
	p.interval = 10 * time.Millisecond
	p.Start()
	defer p.Stop()

	require.Eventually(t, func() bool { return hits.Load() > 0 }, time.Second, 5*time.Millisecond)

	p.Pause()
	paused := hits.Load()
	time.Sleep(60 * time.Millisecond)
	assert.LessOrEqual(t, hits.Load(), paused+1)

	p.Resume()
	require.Eventually(t, func() bool { return hits.Load() > paused+1 }, time.Second, 5*time.Millisecond)
}

func TestRefreshErrorKeepsSnapshot(t *testing.T) {
	catalog_cache.Reset()
	srv := newCatalogServer(t, nil)

	p := newTestPoller(srv.URL)
	_, err := p.RefreshNow(context.Background())
	require.NoError(t, err)
	srv.Close()

	_, err = p.RefreshNow(context.Background())
	assert.Error(t, err)

	// The last good snapshot is still serveable
	products, _, _, ok := catalog_cache.Snapshot()
	require.True(t, ok)
	assert.Len(t, products, 2)
}

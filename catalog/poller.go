package catalog

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	catalog_cache "github.com/cuongluu0705/Online-Electronics-Selling-System/cache"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

// Poller keeps the catalog snapshot in sync with the upstream API by
// refetching on a fixed interval. Each fetch takes a monotonically
// increasing sequence number before the request goes out; the cache
// rejects any response that arrives after a newer one already landed,
// so a slow poll can never clobber fresher data.
type Poller struct {
	client   *upstream.Client
	mapper   *Mapper
	interval time.Duration

	seq atomic.Uint64

	mu     sync.Mutex
	query  string
	paused bool

	stopCh chan struct{}
	doneCh chan struct{}
}

func NewPoller(client *upstream.Client, mapper *Mapper, interval time.Duration) *Poller {
	return &Poller{
		client:   client,
		mapper:   mapper,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the polling loop. Call once.
func (p *Poller) Start() {
	go p.loop()
	log.Printf("✅ Catalog poller started (every %s)", p.interval)
}

// Stop shuts the loop down and waits for it to exit.
func (p *Poller) Stop() {
	close(p.stopCh)
	<-p.doneCh
}

// Pause suspends polling while back-office consoles are active. The
// snapshot stays serveable, it just stops refreshing.
func (p *Poller) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.paused {
		p.paused = true
		log.Println("[catalog] polling paused")
	}
}

// Resume restarts polling after a Pause.
func (p *Poller) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		p.paused = false
		log.Println("[catalog] polling resumed")
	}
}

// SetQuery changes the search query subsequent polls fetch for.
func (p *Poller) SetQuery(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.query = query
}

// RefreshNow fetches the catalog immediately, without waiting for the
// next tick. Used on search changes and after staff writes so the
// storefront reflects the change at once. It returns the fetched list
// so callers serve their own query's result even when a concurrent
// refresh for a different query wins the snapshot.
func (p *Poller) RefreshNow(ctx context.Context) ([]models.Product, error) {
	return p.refresh(ctx)
}

func (p *Poller) loop() {
	defer close(p.doneCh)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.mu.Lock()
			paused := p.paused
			p.mu.Unlock()
			if paused {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), p.interval)
			if _, err := p.refresh(ctx); err != nil {
				log.Printf("[catalog] poll failed: %v", err)
			}
			cancel()
		}
	}
}

func (p *Poller) refresh(ctx context.Context) ([]models.Product, error) {
	p.mu.Lock()
	query := p.query
	p.mu.Unlock()

	seq := p.seq.Add(1)

	records, err := p.client.ListProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	products := p.mapper.MapProducts(records)
	if !catalog_cache.Apply(seq, query, products) {
		log.Printf("[catalog] dropped stale fetch (seq %d)", seq)
	}
	return products, nil
}

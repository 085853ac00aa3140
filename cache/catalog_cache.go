package catalog_cache

import (
	"sync"
	"time"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// ── Catalog snapshot ─────────────────────────────────────────────────────────
// The one copy of the storefront product list that handlers read from.
// The poller and the search path both write through Apply, which carries
// a fetch sequence number so a slow refresh can never overwrite a newer
// one.

type snapshot struct {
	products  []models.Product
	query     string
	seq       uint64
	fetchedAt time.Time
}

var (
	snapMu  sync.RWMutex
	current *snapshot
)

// Snapshot returns the cached product list, the query it was fetched
// for, and the fetch time. ok is false before the first Apply.
func Snapshot() (products []models.Product, query string, fetchedAt time.Time, ok bool) {
	snapMu.RLock()
	defer snapMu.RUnlock()
	if current == nil {
		return nil, "", time.Time{}, false
	}
	return current.products, current.query, current.fetchedAt, true
}

// Apply installs a freshly fetched list. It is rejected when a response
// with a higher sequence number already landed.
func Apply(seq uint64, query string, products []models.Product) bool {
	snapMu.Lock()
	defer snapMu.Unlock()
	if current != nil && seq <= current.seq {
		return false
	}
	current = &snapshot{
		products:  products,
		query:     query,
		seq:       seq,
		fetchedAt: time.Now(),
	}
	return true
}

// ActiveQuery reports the search query the current snapshot answers.
func ActiveQuery() string {
	snapMu.RLock()
	defer snapMu.RUnlock()
	if current == nil {
		return ""
	}
	return current.query
}

func Reset() {
	snapMu.Lock()
	defer snapMu.Unlock()
	current = nil
}

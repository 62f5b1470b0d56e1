package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// entry is a cached fetch result. A non-nil err means the last fetch
// failed and the failure itself is cached until the window passes.
type entry struct {
	value     any
	err       error
	fetchedAt time.Time
	ttl       time.Duration
}

// stale reports whether the entry has outlived its freshness window.
func (e *entry) stale(now time.Time) bool {
	return now.After(e.fetchedAt.Add(e.ttl))
}

// flight is an in-progress fetch that concurrent callers for the same
// key join instead of issuing a duplicate request.
type flight struct {
	done  chan struct{}
	value any
	err   error

	// Snapshot of the key generation and cache epoch at launch. If
	// either moved by completion time, the result is discarded instead
	// of overwriting newer state (last-request-wins).
	gen   uint64
	epoch uint64
}

// Queries is the process-wide query cache: keyed results with a
// staleness window, request deduplication, single automatic retry, and
// explicit invalidation on writes. Entries live only for the process
// lifetime; nothing here is persisted.
type Queries struct {
	mu      sync.Mutex
	entries map[string]*entry
	flights map[string]*flight
	gens    map[string]uint64
	epoch   uint64

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once
}

// NewQueries creates an empty query cache with periodic cleanup of
// stale entries.
func NewQueries() *Queries {
	q := &Queries{
		entries:         make(map[string]*entry),
		flights:         make(map[string]*flight),
		gens:            make(map[string]uint64),
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	go q.cleanup()

	return q
}

// Fetch returns the cached value for key when it is fresh, joins an
// identical in-flight fetch when one exists, and otherwise calls fn,
// retrying once on failure. Both successes and failures are cached for
// ttl. The fetch runs on a context detached from the caller, so a
// canceled caller abandons its wait without aborting a flight other
// callers are joined to. A result that completes after the key was
// invalidated, written, or the cache cleared is returned to its
// waiters but not stored.
func Fetch[T any](ctx context.Context, q *Queries, key string, ttl time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	now := time.Now()

	q.mu.Lock()
	if e, ok := q.entries[key]; ok && !e.stale(now) {
		if e.err != nil {
			q.mu.Unlock()
			return zero, e.err
		}
		if value, ok := e.value.(T); ok {
			q.mu.Unlock()
			return value, nil
		}
		// Another caller stored this key with a different type; treat
		// the entry as a miss rather than serving a zero value.
	}

	f := q.flights[key]
	if f == nil {
		f = &flight{
			done:  make(chan struct{}),
			gen:   q.gens[key],
			epoch: q.epoch,
		}
		q.flights[key] = f
		q.mu.Unlock()

		go func() {
			fctx := context.WithoutCancel(ctx)
			value, err := fn(fctx)
			if err != nil {
				value, err = fn(fctx)
			}

			q.mu.Lock()
			f.value, f.err = value, err
			close(f.done)
			if q.flights[key] == f {
				delete(q.flights, key)
			}
			if q.epoch == f.epoch && q.gens[key] == f.gen {
				stored := &entry{fetchedAt: time.Now(), ttl: ttl}
				if err != nil {
					stored.err = err
				} else {
					stored.value = value
				}
				q.entries[key] = stored
			}
			q.mu.Unlock()
		}()
	} else {
		q.mu.Unlock()
	}

	select {
	case <-f.done:
		if f.err != nil {
			return zero, f.err
		}
		if value, ok := f.value.(T); ok {
			return value, nil
		}
		// The joined flight was typed differently; fetch our own.
		return Fetch(ctx, q, key, ttl, fn)
	case <-ctx.Done():
		// The caller gives up waiting; the shared flight keeps
		// running for anyone else joined to it.
		return zero, ctx.Err()
	}
}

// Put writes a value directly into a key, used by single-entity writes
// whose response is the fresh detail representation. Any in-flight
// fetch for the key is orphaned so its result cannot overwrite this.
func (q *Queries) Put(key string, value any, ttl time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.gens[key]++
	delete(q.flights, key)
	q.entries[key] = &entry{value: value, fetchedAt: time.Now(), ttl: ttl}
}

// Invalidate marks the given keys stale. The next read of each key
// issues a fresh fetch; in-flight fetches for them are orphaned.
func (q *Queries) Invalidate(keys ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, key := range keys {
		q.gens[key]++
		delete(q.entries, key)
		delete(q.flights, key)
	}
}

// InvalidatePrefix marks every key under a prefix stale.
func (q *Queries) InvalidatePrefix(prefix string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for key := range q.entries {
		if strings.HasPrefix(key, prefix) {
			q.gens[key]++
			delete(q.entries, key)
		}
	}
	for key := range q.flights {
		if strings.HasPrefix(key, prefix) {
			q.gens[key]++
			delete(q.flights, key)
		}
	}
}

// Clear drops every entry and orphans every flight. Called on logout
// and on global 401 teardown so late results cannot repopulate state
// belonging to the old session.
func (q *Queries) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.epoch++
	q.entries = make(map[string]*entry)
	q.flights = make(map[string]*flight)
	q.gens = make(map[string]uint64)
}

// Has reports whether a fresh (non-error) entry exists for key.
func (q *Queries) Has(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.entries[key]
	return ok && e.err == nil && !e.stale(time.Now())
}

// Close stops the background cleanup goroutine.
func (q *Queries) Close() {
	q.closeOnce.Do(func() {
		close(q.stopCleanup)
	})
}

// cleanup periodically removes stale entries to bound memory.
func (q *Queries) cleanup() {
	ticker := time.NewTicker(q.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			q.removeStale()
		case <-q.stopCleanup:
			return
		}
	}
}

// removeStale removes all entries past their window.
func (q *Queries) removeStale() {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := time.Now()
	for key, e := range q.entries {
		if e.stale(now) {
			delete(q.entries, key)
		}
	}
}

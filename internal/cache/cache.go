// Package cache keeps the live working set of pet snapshots between the
// interaction engine and durable storage.
//
// The in-memory copy is authoritative for the process: a commit replaces the
// snapshot synchronously under a per-pet lock and the durable write happens
// asynchronously with retry. Different pets never share a lock.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"petkeeper/internal/domain/pet"
	"petkeeper/internal/infra"
	"petkeeper/internal/pkg/clock"
	"petkeeper/internal/pkg/config"
	"petkeeper/internal/pkg/errs"
)

// Store is the durable backend the cache reconciles against. Load must
// report infra.KindNotFound for unknown ids.
type Store interface {
	Load(ctx context.Context, id uuid.UUID) (pet.Pet, error)
	Save(ctx context.Context, p pet.Pet) error
}

type entry struct {
	mu sync.Mutex

	snap   pet.Pet
	loaded bool

	// dirty marks an unpersisted in-memory commit; deferred marks a commit
	// whose durable write already exhausted its retries.
	dirty      bool
	deferred   bool
	persisting bool

	// evicted marks an entry that has been removed from the map. A holder
	// that finds it set must retry the lookup; writing through an evicted
	// entry would fork the pet's version history.
	evicted bool

	lastUsed time.Time
}

type Cache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry

	store  Store
	clock  clock.Clock
	logger *slog.Logger

	idleTTL       time.Duration
	sweepInterval time.Duration
	persistMax    time.Duration

	stop chan struct{}
	wg   sync.WaitGroup
}

func New(store Store, clk clock.Clock, logger *slog.Logger, cfg config.GameConfig) *Cache {
	return &Cache{
		entries:       map[uuid.UUID]*entry{},
		store:         store,
		clock:         clk,
		logger:        logger,
		idleTTL:       cfg.CacheIdleTTL,
		sweepInterval: cfg.CacheSweepInterval,
		persistMax:    cfg.PersistMaxElapsed,
		stop:          make(chan struct{}),
	}
}

// lockEntry returns the live entry for id with its lock held. The map lock
// is never held while waiting on an entry lock, so between the map lookup
// and the lock acquisition the janitor may evict the entry; the evicted flag
// detects that and the lookup is retried against the map.
func (c *Cache) lockEntry(id uuid.UUID) *entry {
	for {
		c.mu.Lock()
		e, ok := c.entries[id]
		if !ok {
			e = &entry{}
			c.entries[id] = e
		}
		c.mu.Unlock()

		e.mu.Lock()
		if e.evicted {
			e.mu.Unlock()
			continue
		}
		e.lastUsed = c.clock.Now()
		return e
	}
}

// load fills an unloaded entry from storage. Caller holds e.mu; at most one
// storage load happens per miss because concurrent callers queue on the
// entry lock.
func (c *Cache) load(ctx context.Context, id uuid.UUID, e *entry) error {
	if e.loaded {
		return nil
	}
	snap, err := c.store.Load(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrPetNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	e.snap = snap
	e.loaded = true
	return nil
}

// Get returns the current snapshot, loading from storage on a miss.
func (c *Cache) Get(ctx context.Context, id uuid.UUID) (pet.Pet, error) {
	e := c.lockEntry(id)
	defer e.mu.Unlock()

	if err := c.load(ctx, id, e); err != nil {
		return pet.Pet{}, err
	}
	return e.snap, nil
}

// Put inserts a freshly created pet. The caller must have persisted it
// already (creation is storage-first).
func (c *Cache) Put(p pet.Pet) {
	e := c.lockEntry(p.ID())
	defer e.mu.Unlock()
	e.snap = p
	e.loaded = true
}

// Commit runs mutate against the current snapshot inside the pet's exclusive
// critical section and, when it succeeds, replaces the in-memory snapshot
// with the next version and schedules the durable write.
//
// mutate receives the committed snapshot and must return a successor with
// the same version; the version advances here, exactly once per accepted
// mutation. A mismatch means the mutator worked from a stale snapshot and
// yields errs.ErrVersionConflict with nothing committed.
//
// When a previous durable write has exhausted its retries the commit still
// succeeds in memory (read-your-writes holds) but the returned error is
// errs.ErrPersistenceDeferred so the caller can surface degraded durability.
func (c *Cache) Commit(ctx context.Context, id uuid.UUID, mutate func(cur pet.Pet) (pet.Pet, error)) (pet.Pet, error) {
	e := c.lockEntry(id)
	defer e.mu.Unlock()

	if err := c.load(ctx, id, e); err != nil {
		return pet.Pet{}, err
	}

	next, err := mutate(e.snap)
	if err != nil {
		return pet.Pet{}, err
	}
	if next.Version() != e.snap.Version() || next.ID() != e.snap.ID() {
		return pet.Pet{}, errs.ErrVersionConflict
	}

	e.snap = next.NextVersion()
	e.dirty = true
	c.schedulePersist(id, e)

	if e.deferred {
		return e.snap, errs.ErrPersistenceDeferred
	}
	return e.snap, nil
}

// Forget flushes and drops an entry, used when a pet is deleted. The entry
// is marked evicted and removed while its lock is still held so no caller
// can slip in between the flush and the removal. Taking the map lock here is
// safe: nothing blocks on an entry lock while holding the map lock (the
// janitor only TryLocks).
func (c *Cache) Forget(ctx context.Context, id uuid.UUID) error {
	e := c.lockEntry(id)
	defer e.mu.Unlock()

	if e.dirty {
		if err := c.store.Save(ctx, e.snap); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		e.dirty = false
	}
	e.evicted = true

	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
	return nil
}

// schedulePersist starts the background writer for the entry unless one is
// already running. Caller holds e.mu.
func (c *Cache) schedulePersist(id uuid.UUID, e *entry) {
	if e.persisting {
		return
	}
	e.persisting = true
	c.wg.Add(1)
	go c.persist(id, e)
}

// persist drains the dirty flag: it writes the latest snapshot with
// exponential backoff and loops in case new commits landed meanwhile. On
// exhausted retries the entry stays dirty and is flagged deferred; the
// in-memory state remains authoritative and the next commit retries.
func (c *Cache) persist(id uuid.UUID, e *entry) {
	defer c.wg.Done()

	for {
		e.mu.Lock()
		if !e.dirty || e.evicted {
			e.persisting = false
			e.mu.Unlock()
			return
		}
		snap := e.snap
		e.dirty = false
		e.mu.Unlock()

		bo := backoff.NewExponentialBackOff()
		bo.MaxElapsedTime = c.persistMax
		err := backoff.Retry(func() error {
			if err := c.store.Save(context.Background(), snap); err != nil {
				// A missing row will not come back; retrying only delays
				// the verdict.
				if infra.IsKind(err, infra.KindNotFound) {
					return backoff.Permanent(err)
				}
				return err
			}
			return nil
		}, bo)

		e.mu.Lock()
		if e.evicted {
			// The pet was forgotten while the write was in flight; the
			// failure (if any) is expected and the entry is gone.
			e.persisting = false
			e.mu.Unlock()
			return
		}
		if err != nil {
			// Operational alert path: memory and storage now disagree
			// until a later commit or the shutdown flush succeeds.
			c.logger.Error("durable write failed, in-memory state stays authoritative",
				"pet_id", id, "version", snap.Version(), "error", err)
			e.dirty = true
			e.deferred = true
			e.persisting = false
			e.mu.Unlock()
			return
		}
		e.deferred = false
		e.mu.Unlock()
	}
}

// Start launches the TTL janitor.
func (c *Cache) Start() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(c.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.sweep()
			case <-c.stop:
				return
			}
		}
	}()
}

// sweep evicts entries idle past the TTL. Dirty entries are never evicted;
// persistence must complete first.
func (c *Cache) sweep() {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, e := range c.entries {
		if !e.mu.TryLock() {
			continue
		}
		if !e.dirty && !e.persisting && now.Sub(e.lastUsed) > c.idleTTL {
			e.evicted = true
			delete(c.entries, id)
		}
		e.mu.Unlock()
	}
}

// Stop halts the janitor, waits for in-flight writers and synchronously
// flushes every dirty entry.
func (c *Cache) Stop(ctx context.Context) error {
	close(c.stop)
	c.wg.Wait()
	return c.Flush(ctx)
}

// Flush writes all dirty entries to storage synchronously.
func (c *Cache) Flush(ctx context.Context) error {
	c.mu.Lock()
	ids := make([]uuid.UUID, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	var firstErr error
	for _, id := range ids {
		c.mu.Lock()
		e, ok := c.entries[id]
		c.mu.Unlock()
		if !ok {
			continue
		}

		e.mu.Lock()
		if e.dirty {
			if err := c.store.Save(ctx, e.snap); err != nil {
				c.logger.Error("flush failed", "pet_id", id, "error", err)
				if firstErr == nil {
					firstErr = err
				}
			} else {
				e.dirty = false
				e.deferred = false
			}
		}
		e.mu.Unlock()
	}
	return firstErr
}

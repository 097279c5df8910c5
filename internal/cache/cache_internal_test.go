//go:build unit

package cache

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"log/slog"

	"petkeeper/internal/domain/pet"
	"petkeeper/internal/infra"
	"petkeeper/internal/pkg/clock"
	"petkeeper/internal/pkg/config"
	"petkeeper/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore is a minimal in-memory Store for exercising cache internals.
type stubStore struct {
	mu   sync.Mutex
	pets map[uuid.UUID]pet.Pet

	// releaseSave, when set, blocks every Save until the channel is closed.
	releaseSave chan struct{}
}

func newStubStore(pets ...pet.Pet) *stubStore {
	s := &stubStore{pets: map[uuid.UUID]pet.Pet{}}
	for _, p := range pets {
		s.pets[p.ID()] = p
	}
	return s
}

func (s *stubStore) Load(_ context.Context, id uuid.UUID) (pet.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pets[id]
	if !ok {
		return pet.Pet{}, infra.WrapRepoErr(infra.KindNotFound, "pet not found", nil)
	}
	return p, nil
}

func (s *stubStore) Save(_ context.Context, p pet.Pet) error {
	if s.releaseSave != nil {
		<-s.releaseSave
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pets[p.ID()]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "pet row missing", nil)
	}
	s.pets[p.ID()] = p
	return nil
}

func (s *stubStore) drop(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pets, id)
}

func keepSame(cur pet.Pet) (pet.Pet, error) { return cur, nil }

func newWhiteboxCache(store Store, clk clock.Clock, logBuf *bytes.Buffer) *Cache {
	cfg := config.NewTestGameConfig()
	cfg.PersistMaxElapsed = 50 * time.Millisecond
	return New(store, clk, slog.New(slog.NewTextHandler(logBuf, nil)), cfg)
}

// A janitor pass between a writer's map lookup and its entry-lock
// acquisition must not leave the writer committing on an entry the map no
// longer holds; that would let two commits mint the same version.
func TestEvictionFlagsTheDroppedEntry(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p := builder.NewPetBuilder().BuildDomain()
	store := newStubStore(p)
	clk := clock.NewMockClock(base)
	c := newWhiteboxCache(store, clk, &bytes.Buffer{})

	c.Put(p)

	// The writer's view before the janitor runs.
	c.mu.Lock()
	stale := c.entries[p.ID()]
	c.mu.Unlock()

	clk.Add(time.Hour)
	c.sweep()

	stale.mu.Lock()
	assert.True(t, stale.evicted, "a swept entry must be flagged for late lock holders")
	stale.mu.Unlock()

	c.mu.Lock()
	_, present := c.entries[p.ID()]
	c.mu.Unlock()
	assert.False(t, present)

	// Post-eviction commits go through a live entry and each take a
	// distinct version.
	first, err := c.Commit(ctx, p.ID(), keepSame)
	require.NoError(t, err)
	second, err := c.Commit(ctx, p.ID(), keepSame)
	require.NoError(t, err)

	assert.Equal(t, p.Version()+1, first.Version())
	assert.Equal(t, p.Version()+2, second.Version())
}

func TestWriterRetriesLookupWhenEntryEvictedUnderIt(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p := builder.NewPetBuilder().BuildDomain()
	store := newStubStore(p)
	c := newWhiteboxCache(store, clock.NewMockClock(base), &bytes.Buffer{})

	_, err := c.Get(ctx, p.ID())
	require.NoError(t, err)

	c.mu.Lock()
	stale := c.entries[p.ID()]
	c.mu.Unlock()

	// Hold the entry like an in-flight commit; the writer below queues on
	// the entry lock after it has already resolved the map entry.
	stale.mu.Lock()

	done := make(chan pet.Pet, 1)
	go func() {
		got, commitErr := c.Commit(ctx, p.ID(), keepSame)
		assert.NoError(t, commitErr)
		done <- got
	}()
	time.Sleep(20 * time.Millisecond)

	// Evict under the held lock, exactly as the janitor does.
	stale.evicted = true
	c.mu.Lock()
	delete(c.entries, p.ID())
	c.mu.Unlock()
	stale.mu.Unlock()

	select {
	case got := <-done:
		assert.Equal(t, p.Version()+1, got.Version())

		reread, err := c.Get(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, got.Version(), reread.Version(), "the retried commit must land on the live entry")
	case <-time.After(2 * time.Second):
		t.Fatal("writer never completed after eviction")
	}
}

// A persist writer whose pet is forgotten mid-flight stands down without
// re-marking the orphaned entry or logging a durability failure.
func TestForgetSilencesInFlightWriter(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p := builder.NewPetBuilder().BuildDomain()
	store := newStubStore(p)
	store.releaseSave = make(chan struct{})

	var logBuf bytes.Buffer
	c := newWhiteboxCache(store, clock.NewMockClock(base), &logBuf)

	_, err := c.Commit(ctx, p.ID(), keepSame)
	require.NoError(t, err)

	c.mu.Lock()
	e := c.entries[p.ID()]
	c.mu.Unlock()

	// Wait until the writer has claimed the snapshot and is blocked in Save.
	require.Eventually(t, func() bool {
		e.mu.Lock()
		defer e.mu.Unlock()
		return !e.dirty && e.persisting
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, c.Forget(ctx, p.ID()))
	store.drop(p.ID())
	close(store.releaseSave)

	require.NoError(t, c.Stop(ctx))

	assert.NotContains(t, logBuf.String(), "durable write failed",
		"a deliberately deleted pet must not raise a durability alert")

	e.mu.Lock()
	assert.False(t, e.dirty)
	assert.False(t, e.persisting)
	e.mu.Unlock()
}

package journal_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/locator/pkg/locator/journal"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) journal.Store

// record builds a test record with a deterministic timestamp offset.
func record(id int, op, capability string) journal.Record {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return journal.Record{
		ID:         fmt.Sprintf("rec-%03d", id),
		Op:         op,
		Capability: capability,
		At:         base.Add(time.Duration(id) * time.Second),
	}
}

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	ctx := context.Background()

	t.Run(name+"/Append_and_List", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Append(ctx, record(1, "registered", "app/audio.System")))
		require.NoError(t, store.Append(ctx, record(2, "unregistered", "app/audio.System")))

		recs, err := store.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, recs, 2)

		// Newest first.
		assert.Equal(t, "rec-002", recs[0].ID)
		assert.Equal(t, "unregistered", recs[0].Op)
		assert.Equal(t, "rec-001", recs[1].ID)
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		recs, err := store.List(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run(name+"/List_Limit", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		for i := 1; i <= 5; i++ {
			require.NoError(t, store.Append(ctx, record(i, "registered", "app/audio.System")))
		}

		recs, err := store.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "rec-005", recs[0].ID)
		assert.Equal(t, "rec-004", recs[1].ID)
	})

	t.Run(name+"/ListByCapability", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Append(ctx, record(1, "registered", "app/audio.System")))
		require.NoError(t, store.Append(ctx, record(2, "registered", "app/log.Logger")))
		require.NoError(t, store.Append(ctx, record(3, "unregistered", "app/audio.System")))

		recs, err := store.ListByCapability(ctx, "app/audio.System", 0)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "rec-003", recs[0].ID)
		assert.Equal(t, "rec-001", recs[1].ID)

		recs, err = store.ListByCapability(ctx, "app/net.Client", 0)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run(name+"/Count", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		require.NoError(t, store.Append(ctx, record(1, "registered", "app/audio.System")))
		require.NoError(t, store.Append(ctx, record(2, "registered", "app/log.Logger")))

		n, err = store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run(name+"/Round_trip_fields", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		rec := record(7, "replaced", "app/audio.System")
		require.NoError(t, store.Append(ctx, rec))

		recs, err := store.List(ctx, 1)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, rec.ID, recs[0].ID)
		assert.Equal(t, rec.Op, recs[0].Op)
		assert.Equal(t, rec.Capability, recs[0].Capability)
		assert.True(t, rec.At.Equal(recs[0].At))
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())

		err := store.Append(ctx, record(1, "registered", "app/audio.System"))
		assert.ErrorIs(t, err, journal.ErrStoreClosed)

		_, err = store.List(ctx, 0)
		assert.ErrorIs(t, err, journal.ErrStoreClosed)

		_, err = store.ListByCapability(ctx, "app/audio.System", 0)
		assert.ErrorIs(t, err, journal.ErrStoreClosed)

		_, err = store.Count(ctx)
		assert.ErrorIs(t, err, journal.ErrStoreClosed)
	})
}

func TestMemoryStoreContract(t *testing.T) {
	storeContractTest(t, "memory", func(t *testing.T) journal.Store {
		return journal.NewMemoryStore()
	})
}

func TestSQLiteStoreContract(t *testing.T) {
	storeContractTest(t, "sqlite", func(t *testing.T) journal.Store {
		store, err := journal.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		return store
	})
}

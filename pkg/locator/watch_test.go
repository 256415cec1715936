package locator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/locator/pkg/locator"
	"github.com/randalmurphal/locator/pkg/locator/journal"
)

func TestChangeKindString(t *testing.T) {
	assert.Equal(t, "registered", locator.ServiceRegistered.String())
	assert.Equal(t, "replaced", locator.ServiceReplaced.String())
	assert.Equal(t, "unregistered", locator.ServiceUnregistered.String())
	assert.Equal(t, "unknown", locator.ChangeKind(99).String())
}

func TestOnChangeHooks(t *testing.T) {
	var changes []locator.Change
	reg := locator.New(locator.WithOnChange(func(ch locator.Change) {
		changes = append(changes, ch)
	}))

	require.NoError(t, locator.Register[AudioSystem](reg, &audioBackend{id: 1}))
	require.NoError(t, locator.Replace[AudioSystem](reg, &audioBackend{id: 2}))
	require.True(t, locator.Unregister[AudioSystem](reg))

	require.Len(t, changes, 3)
	assert.Equal(t, locator.ServiceRegistered, changes[0].Kind)
	assert.Equal(t, locator.ServiceReplaced, changes[1].Kind)
	assert.Equal(t, locator.ServiceUnregistered, changes[2].Kind)

	ident := locator.MustFor[AudioSystem]()
	for _, ch := range changes {
		assert.Equal(t, ident, ch.Capability)
		assert.NotEmpty(t, ch.ID)
		assert.False(t, ch.At.IsZero())
	}
	assert.NotEqual(t, changes[0].ID, changes[1].ID)
}

func TestOnChangeHookOrder(t *testing.T) {
	var order []string
	reg := locator.New(
		locator.WithOnChange(func(locator.Change) { order = append(order, "first") }),
		locator.WithOnChange(func(locator.Change) { order = append(order, "second") }),
	)

	require.NoError(t, locator.Register[AudioSystem](reg, &audioBackend{}))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestReplaceOfAbsentEmitsRegistered(t *testing.T) {
	var changes []locator.Change
	reg := locator.New(locator.WithOnChange(func(ch locator.Change) {
		changes = append(changes, ch)
	}))

	require.NoError(t, locator.Replace[AudioSystem](reg, &audioBackend{}))
	require.Len(t, changes, 1)
	assert.Equal(t, locator.ServiceRegistered, changes[0].Kind)
}

func TestJournalRecordsMutations(t *testing.T) {
	store := journal.NewMemoryStore()
	defer store.Close()

	reg := locator.New(locator.WithJournal(store))
	require.NoError(t, locator.Register[AudioSystem](reg, &audioBackend{id: 1}))
	require.NoError(t, locator.Replace[AudioSystem](reg, &audioBackend{id: 2}))
	require.True(t, locator.Unregister[AudioSystem](reg))

	recs, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Newest first.
	assert.Equal(t, "unregistered", recs[0].Op)
	assert.Equal(t, "replaced", recs[1].Op)
	assert.Equal(t, "registered", recs[2].Op)

	ident := locator.MustFor[AudioSystem]().String()
	for _, rec := range recs {
		assert.Equal(t, ident, rec.Capability)
		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.At.IsZero())
	}
}

func TestJournalFailureDoesNotBlockMutation(t *testing.T) {
	store := journal.NewMemoryStore()
	require.NoError(t, store.Close()) // appends now fail

	reg := locator.New(locator.WithJournal(store))
	require.NoError(t, locator.Register[AudioSystem](reg, &audioBackend{}))
	assert.True(t, locator.Has[AudioSystem](reg))
}

func TestCloseEmitsUnregistered(t *testing.T) {
	var kinds []locator.ChangeKind
	reg := locator.New(locator.WithOnChange(func(ch locator.Change) {
		kinds = append(kinds, ch.Kind)
	}))

	require.NoError(t, locator.Register[AudioSystem](reg, &audioBackend{}))
	require.NoError(t, locator.Register[Telemetry](reg, telemetrySink{}))
	require.NoError(t, reg.Close())

	require.Len(t, kinds, 4)
	assert.Equal(t, locator.ServiceUnregistered, kinds[2])
	assert.Equal(t, locator.ServiceUnregistered, kinds[3])
}

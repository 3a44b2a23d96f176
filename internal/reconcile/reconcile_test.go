package reconcile

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type remoteThing struct {
	ID   string
	Name string
}

type localThing struct {
	RowID int64
	Key   string
	Name  string
}

func thingSpec(index map[string]*localThing) Spec[remoteThing, localThing] {
	return Spec[remoteThing, localThing]{
		Key: func(r remoteThing) string { return r.ID },
		Lookup: func(key string) (*localThing, bool) {
			local, ok := index[key]
			return local, ok
		},
		Build: func(r remoteThing) (*localThing, error) {
			return &localThing{Key: r.ID, Name: r.Name}, nil
		},
		Apply: func(r remoteThing, local *localThing) (bool, error) {
			if local.Name == r.Name {
				return false, nil
			}
			local.Name = r.Name
			return true, nil
		},
	}
}

func TestReconcilePartition(t *testing.T) {
	t.Parallel()

	index := map[string]*localThing{
		"b": {RowID: 1, Key: "b", Name: "same"},
		"c": {RowID: 2, Key: "c", Name: "old"},
	}
	remotes := []remoteThing{
		{ID: "a", Name: "new"},
		{ID: "b", Name: "same"},
		{ID: "c", Name: "fresh"},
	}

	plan := Reconcile(remotes, thingSpec(index))

	require.Len(t, plan.Inserts, 1)
	require.Len(t, plan.Updates, 1)
	assert.Empty(t, plan.Skips)
	assert.Equal(t, 1, plan.Unchanged)
	assert.Equal(t, 0, plan.Duplicates)

	assert.Equal(t, "a", plan.Inserts[0].Key)
	assert.Equal(t, "c", plan.Updates[0].Key)
	assert.Equal(t, "fresh", plan.Updates[0].Name)

	total := len(plan.Inserts) + len(plan.Updates) + len(plan.Skips) + plan.Unchanged + plan.Duplicates
	assert.Equal(t, len(remotes), total)
}

func TestReconcileInsertsAndUpdatesDisjoint(t *testing.T) {
	t.Parallel()

	index := map[string]*localThing{}
	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("known-%d", i)
		index[key] = &localThing{RowID: int64(i), Key: key, Name: "stale"}
	}

	var remotes []remoteThing
	for i := 0; i < 5; i++ {
		remotes = append(remotes, remoteThing{ID: fmt.Sprintf("known-%d", i), Name: "live"})
		remotes = append(remotes, remoteThing{ID: fmt.Sprintf("new-%d", i), Name: "live"})
	}

	plan := Reconcile(remotes, thingSpec(index))

	require.Len(t, plan.Inserts, 5)
	require.Len(t, plan.Updates, 5)

	seen := map[string]struct{}{}
	for _, l := range plan.Inserts {
		seen[l.Key] = struct{}{}
	}
	for _, l := range plan.Updates {
		_, dup := seen[l.Key]
		assert.False(t, dup, "key %s landed in both sets", l.Key)
	}
}

func TestReconcileDuplicateKeysFirstWins(t *testing.T) {
	t.Parallel()

	remotes := []remoteThing{
		{ID: "x", Name: "first"},
		{ID: "x", Name: "second"},
		{ID: "x", Name: "third"},
	}

	plan := Reconcile(remotes, thingSpec(map[string]*localThing{}))

	require.Len(t, plan.Inserts, 1)
	assert.Equal(t, "first", plan.Inserts[0].Name)
	assert.Equal(t, 2, plan.Duplicates)
}

func TestReconcileBuildErrorSkips(t *testing.T) {
	t.Parallel()

	errNoRef := errors.New("reference not resolved")
	spec := thingSpec(map[string]*localThing{})
	spec.Build = func(r remoteThing) (*localThing, error) {
		if r.ID == "orphan" {
			return nil, errNoRef
		}
		return &localThing{Key: r.ID, Name: r.Name}, nil
	}

	plan := Reconcile([]remoteThing{
		{ID: "orphan", Name: "a"},
		{ID: "fine", Name: "b"},
	}, spec)

	require.Len(t, plan.Inserts, 1)
	require.Len(t, plan.Skips, 1)
	assert.Equal(t, "orphan", plan.Skips[0].Key)
	assert.ErrorIs(t, plan.Skips[0].Err, errNoRef)
}

func TestReconcileApplyErrorSkips(t *testing.T) {
	t.Parallel()

	errBad := errors.New("bad record")
	index := map[string]*localThing{
		"x": {RowID: 1, Key: "x", Name: "old"},
	}
	spec := thingSpec(index)
	spec.Apply = func(r remoteThing, local *localThing) (bool, error) {
		return false, errBad
	}

	plan := Reconcile([]remoteThing{{ID: "x", Name: "new"}}, spec)

	assert.Empty(t, plan.Inserts)
	assert.Empty(t, plan.Updates)
	require.Len(t, plan.Skips, 1)
	assert.ErrorIs(t, plan.Skips[0].Err, errBad)
}

func TestReconcileSecondRunIsEmpty(t *testing.T) {
	t.Parallel()

	remotes := []remoteThing{
		{ID: "a", Name: "one"},
		{ID: "b", Name: "two"},
	}

	index := map[string]*localThing{}
	first := Reconcile(remotes, thingSpec(index))
	require.Len(t, first.Inserts, 2)

	// Pretend the inserts were persisted and run the same batch again.
	for i, l := range first.Inserts {
		l.RowID = int64(i + 1)
		index[l.Key] = l
	}

	second := Reconcile(remotes, thingSpec(index))
	assert.Empty(t, second.Inserts)
	assert.Empty(t, second.Updates)
	assert.Equal(t, 2, second.Unchanged)
}

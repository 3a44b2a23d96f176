// Package reconcile computes, for a batch of freshly fetched remote
// records, which local rows must be inserted and which must be updated.
// Matching is by external identifier only; the local index is built once
// per pass by the caller, never queried per record.
package reconcile

// Spec describes how one entity type is diffed.
type Spec[R any, L any] struct {
	// Key returns the external identifier of a remote record.
	Key func(remote R) string

	// Lookup resolves the existing local row for an external identifier.
	Lookup func(key string) (*L, bool)

	// Build constructs a new unsaved local row from a remote record.
	// An error marks the record as skipped, it never aborts the batch.
	Build func(remote R) (*L, error)

	// Apply overwrites the tracked mutable fields of an existing local
	// row in place and reports whether any of them differed. An error
	// marks the record as skipped.
	Apply func(remote R, local *L) (changed bool, err error)
}

// Skip records one remote record excluded from both sets.
type Skip struct {
	Key string
	Err error
}

// Plan is the outcome of a diff pass. Inserts and Updates are disjoint;
// every remote record lands in exactly one of Inserts, Updates, Skips,
// or is counted as an unchanged match or duplicate.
type Plan[L any] struct {
	Inserts []*L
	Updates []*L
	Skips   []Skip

	Unchanged  int
	Duplicates int
}

// Reconcile diffs remote records against the local index described by
// spec. Remote order is not meaningful; when the same external id
// appears more than once in the batch the first occurrence wins.
func Reconcile[R any, L any](remotes []R, spec Spec[R, L]) Plan[L] {
	plan := Plan[L]{}
	seen := make(map[string]struct{}, len(remotes))

	for _, remote := range remotes {
		key := spec.Key(remote)
		if _, dup := seen[key]; dup {
			plan.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		local, ok := spec.Lookup(key)
		if !ok {
			built, err := spec.Build(remote)
			if err != nil {
				plan.Skips = append(plan.Skips, Skip{Key: key, Err: err})
				continue
			}
			plan.Inserts = append(plan.Inserts, built)
			continue
		}

		changed, err := spec.Apply(remote, local)
		if err != nil {
			plan.Skips = append(plan.Skips, Skip{Key: key, Err: err})
			continue
		}
		if changed {
			plan.Updates = append(plan.Updates, local)
		} else {
			plan.Unchanged++
		}
	}

	return plan
}

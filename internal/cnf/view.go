package cnf

import "sort"

// ClauseLookup resolves a clause id back to its clause. Both *Store and
// *View satisfy it, so any consumer that only needs to resolve reasons
// (such as trail.WalkReasons) can accept whichever one it was handed.
type ClauseLookup interface {
	Get(ClauseID) *Clause
}

// View is a read-only restriction of a Store to a subset of clause ids,
// used by the DPLL Search (over the full CNF) and by the MUS Shrinker (over
// successively smaller candidate subsets). A View never mutates its Store.
type View struct {
	store *Store
	ids   map[ClauseID]bool
}

// MaxVar delegates to the underlying Store.
func (v *View) MaxVar() int {
	return v.store.MaxVar()
}

// Contains reports whether cid is part of this view.
func (v *View) Contains(cid ClauseID) bool {
	return v.ids[cid]
}

// Get returns the clause with the given id, which must be part of this
// view.
func (v *View) Get(cid ClauseID) *Clause {
	return v.store.Get(cid)
}

// CIDs returns the view's clause ids in ascending order. The Propagator and
// the DPLL Search both rely on this ascending order for deterministic,
// reproducible conflict selection (§4.3).
func (v *View) CIDs() []ClauseID {
	ids := make([]ClauseID, 0, len(v.ids))
	for id := range v.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Without returns a new View equal to v minus the given clause id, used by
// the MUS Shrinker to probe a single clause's removal.
func (v *View) Without(cid ClauseID) *View {
	ids := make([]ClauseID, 0, len(v.ids))
	for id := range v.ids {
		if id != cid {
			ids = append(ids, id)
		}
	}
	return v.store.WithSubset(ids)
}

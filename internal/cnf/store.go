package cnf

// Store is the immutable catalogue of clauses for one top-level solve,
// built once and never mutated afterwards (§3 Lifecycle). Clauses
// containing a complementary literal pair are elided entirely at
// construction; clauses with duplicate literals are de-duplicated in place;
// an empty clause is kept (it becomes a permanent, trivial conflict).
type Store struct {
	maxVar  int
	clauses []*Clause
}

// NewStore builds a Store from the loader's raw clauses, assigning dense
// ClauseIDs to every clause that survives tautology elision, in input
// order (a dropped tautology leaves no gap: the next surviving clause takes
// the next id).
func NewStore(raw []RawClause, maxVar int) *Store {
	s := &Store{maxVar: maxVar}
	for _, rc := range raw {
		lits, tautology := dedupe(append([]Literal(nil), rc.Literals...))
		if tautology {
			continue
		}
		s.clauses = append(s.clauses, &Clause{
			ID:       ClauseID(len(s.clauses)),
			Literals: lits,
			RuleID:   rc.RuleID,
			Note:     rc.Note,
		})
	}
	return s
}

// MaxVar returns the highest variable identifier that may appear in any
// clause, literal, assumption, or hint for this store.
func (s *Store) MaxVar() int {
	return s.maxVar
}

// Get returns the clause with the given id. It panics if cid is out of
// range, which would indicate a caller bug (an id that never came from
// this Store).
func (s *Store) Get(cid ClauseID) *Clause {
	return s.clauses[cid]
}

// AllCIDs returns every clause id in the store, in ascending order.
func (s *Store) AllCIDs() []ClauseID {
	ids := make([]ClauseID, len(s.clauses))
	for i, c := range s.clauses {
		ids[i] = c.ID
	}
	return ids
}

// Len returns the number of clauses in the store.
func (s *Store) Len() int {
	return len(s.clauses)
}

// WithSubset returns a read-only View restricted to the given clause ids,
// used by the MUS Shrinker to probe hypothetical clause removals without
// mutating the Store.
func (s *Store) WithSubset(ids []ClauseID) *View {
	set := make(map[ClauseID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return &View{store: s, ids: set}
}

// Full returns a View over every clause currently in the store.
func (s *Store) Full() *View {
	return s.WithSubset(s.AllCIDs())
}

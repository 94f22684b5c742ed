package cnf

// ClauseID is a dense identifier assigned to a clause at Store construction
// time, stable for the lifetime of a solve.
type ClauseID int

// Clause is a disjunction of literals carrying the caller's rule metadata.
// A surviving Clause never contains a duplicate literal or a complementary
// pair; it may be empty (zero literals), in which case it is trivially
// falsified by any trail.
type Clause struct {
	ID       ClauseID
	Literals []Literal
	RuleID   string
	Note     string
}

// RawClause is the loader-facing shape handed to NewStore, before
// de-duplication/tautology-elision and before a ClauseID is assigned.
type RawClause struct {
	Literals []Literal
	RuleID   string
	Note     string
}

// dedupe removes duplicate literals and reports whether the clause is a
// tautology (contains both l and its negation, and so is always true and
// must be dropped entirely). The input slice is reused as scratch space and
// must not be read again by the caller afterwards.
func dedupe(lits []Literal) (out []Literal, tautology bool) {
	seen := make(map[Literal]bool, len(lits))
	out = lits[:0]
	for _, l := range lits {
		if seen[l.Neg()] {
			return nil, true
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out, false
}

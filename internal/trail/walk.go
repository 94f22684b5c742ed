package trail

import "github.com/corewhy/unsatexplain/internal/cnf"

// WalkReasons performs the reason-graph traversal shared by the DPLL
// Search's decision-dependence check and the Explanation Builder: starting
// from a worklist of literals to explain, it looks up each literal's
// variable on the trail, calls visit once per distinct variable (first-seen
// order, per I5 the graph is acyclic so no variable needs revisiting), and
// if the reason is Propagated pushes every other literal of that clause
// onto the worklist. Traversal stops early if visit returns true.
//
// store resolves the clauses referenced by Propagated reasons; it may be a
// restricted View's backing Store or the full Store, since reasons on this
// trail were always recorded against clauses that exist in whatever view
// produced them (I3).
func (t *Trail) WalkReasons(store cnf.ClauseLookup, roots []cnf.Literal, visit func(Entry) (stop bool)) {
	seen := make([]bool, len(t.pos))
	worklist := append([]cnf.Literal(nil), roots...)

	for i := 0; i < len(worklist); i++ {
		v := worklist[i].Var()
		if seen[v] {
			continue
		}
		seen[v] = true

		e := t.Entry(v)
		if visit(e) {
			return
		}

		if e.Reason.Kind == Propagated {
			c := store.Get(e.Reason.ClauseID)
			propagated := e.Lit()
			for _, l := range c.Literals {
				if l != propagated {
					worklist = append(worklist, l)
				}
			}
		}
	}
}

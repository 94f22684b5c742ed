// Package unsatexplain diagnoses why a CNF is unsatisfiable under a set of
// unit assumptions, returning either a satisfying model or a structured
// explanation: the directly falsified clause, the chain of assumptions that
// produced it, the rules that participated, and a subset-minimal
// unsatisfiable subset of the clauses (§1 Purpose & Scope). It re-exports
// the Core Driver (internal/driver) as the module's single public entry
// point; CNF parsing, CLI handling, and JSON emission live in
// internal/dimacsfmt, main.go, and internal/report respectively, all
// external collaborators per §1.
package unsatexplain

import (
	"context"

	"github.com/corewhy/unsatexplain/internal/cnf"
	"github.com/corewhy/unsatexplain/internal/driver"
	"github.com/corewhy/unsatexplain/internal/explain"
)

// Re-exported so a caller never needs to import internal/driver directly.
type (
	Outcome     = driver.Outcome
	Result      = driver.Result
	Explanation = explain.Explanation
	ClauseID    = cnf.ClauseID
	Literal     = cnf.Literal
	Store       = cnf.Store
	RawClause   = cnf.RawClause
)

const (
	Sat           = driver.Sat
	UnsatWithCore = driver.UnsatWithCore
	Error         = driver.Error
)

// NewStore builds an immutable Clause Store from raw clauses (§4.1); the
// usual way to obtain one outside of a test is internal/dimacsfmt.Load.
func NewStore(raw []RawClause, maxVar int) *Store {
	return cnf.NewStore(raw, maxVar)
}

// Explain runs the Core Driver: Search once over store, and on UNSAT builds
// the causal Explanation and shrinks a subset-minimal unsatisfiable subset
// of its clauses (§4.7). hintVars biases both decision order and MUS
// seeding; signs on hint literals are ignored (§6 Core hints).
func Explain(ctx context.Context, store *Store, assumptions []Literal, hintVars []int) Result {
	return driver.Explain(ctx, store, assumptions, hintVars)
}

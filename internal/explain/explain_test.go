package explain

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/corewhy/unsatexplain/internal/cnf"
	"github.com/corewhy/unsatexplain/internal/search"
)

func TestBuild_UnitPropagationChain(t *testing.T) {
	store := cnf.NewStore([]cnf.RawClause{
		{Literals: []cnf.Literal{-1, 2}, RuleID: "a"},
		{Literals: []cnf.Literal{-2, 3}, RuleID: "b"},
		{Literals: []cnf.Literal{-3}, RuleID: "c"},
	}, 3)

	res, err := search.Solve(store.Full(), []cnf.Literal{1}, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Satisfiable {
		t.Fatalf("Solve: want Unsat")
	}

	exp, err := Build(res.Conflict, res.Trail, store)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if exp.ConflictClauseID != 2 {
		t.Errorf("ConflictClauseID = %d, want 2", exp.ConflictClauseID)
	}
	if diff := cmp.Diff([]cnf.Literal{1}, exp.AssumptionCauses); diff != "" {
		t.Errorf("AssumptionCauses mismatch (-want +got):\n%s", diff)
	}
	var gotCIDs []cnf.ClauseID
	for _, r := range exp.InvolvedRules {
		gotCIDs = append(gotCIDs, r.ClauseID)
	}
	if diff := cmp.Diff([]cnf.ClauseID{2, 1, 0}, gotCIDs); diff != "" {
		t.Errorf("InvolvedRules clause order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_AssumptionClashIsSynthetic(t *testing.T) {
	store := cnf.NewStore([]cnf.RawClause{
		{Literals: []cnf.Literal{1, 2}, RuleID: "r1"},
		{Literals: []cnf.Literal{-1, 2}, RuleID: "r2"},
	}, 2)

	res, err := search.Solve(store.Full(), []cnf.Literal{1, -1}, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Satisfiable {
		t.Fatalf("Solve: want Unsat")
	}

	exp, err := Build(res.Conflict, res.Trail, store)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(exp.InvolvedRules) != 0 {
		t.Errorf("InvolvedRules = %v, want none for a synthetic assumption conflict", exp.InvolvedRules)
	}
	if diff := cmp.Diff([]cnf.Literal{1, -1}, exp.AssumptionCauses); diff != "" {
		t.Errorf("AssumptionCauses mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_DecisionBelowConflictIsPseudoAssumption(t *testing.T) {
	// No clause is unit at the start, so Search must decide var 1 before
	// propagation can reach a conflict: every one of the 4 possible
	// assignments over 2 variables is individually forbidden.
	store := cnf.NewStore([]cnf.RawClause{
		{Literals: []cnf.Literal{1, 2}, RuleID: "a"},
		{Literals: []cnf.Literal{1, -2}, RuleID: "b"},
		{Literals: []cnf.Literal{-1, 2}, RuleID: "c"},
		{Literals: []cnf.Literal{-1, -2}, RuleID: "d"},
	}, 2)

	res, err := search.Solve(store.Full(), nil, []int{1})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Satisfiable {
		t.Fatalf("Solve: want Unsat")
	}

	exp, err := Build(res.Conflict, res.Trail, store)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(exp.AssumptionCauses) == 0 {
		t.Errorf("AssumptionCauses empty, want the decision on var 1 recorded as a pseudo-assumption")
	}
}

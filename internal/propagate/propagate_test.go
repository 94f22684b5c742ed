package propagate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/corewhy/unsatexplain/internal/cnf"
	"github.com/corewhy/unsatexplain/internal/trail"
)

func TestPropagate_UnitChainToConflict(t *testing.T) {
	store := cnf.NewStore([]cnf.RawClause{
		{Literals: []cnf.Literal{-1, 2}, RuleID: "a"},
		{Literals: []cnf.Literal{-2, 3}, RuleID: "b"},
		{Literals: []cnf.Literal{-3}, RuleID: "c"},
	}, 3)

	tr := trail.New(3)
	tr.Assign(1, true, trail.AssumptionReason(1))

	conflict, err := Propagate(store.Full(), tr)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if conflict == nil {
		t.Fatalf("Propagate: want conflict, got none")
	}
	if got, want := conflict.ClauseID, cnf.ClauseID(2); got != want {
		t.Errorf("ClauseID = %d, want %d", got, want)
	}
	if diff := cmp.Diff([]cnf.Literal{-3}, conflict.Falsified); diff != "" {
		t.Errorf("Falsified mismatch (-want +got):\n%s", diff)
	}
}

func TestPropagate_EmptyClauseAlwaysFalsified(t *testing.T) {
	store := cnf.NewStore([]cnf.RawClause{{Literals: nil, RuleID: "empty"}}, 1)
	tr := trail.New(1)

	conflict, err := Propagate(store.Full(), tr)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if conflict == nil {
		t.Fatalf("want conflict for empty clause, got none")
	}
	if len(conflict.Falsified) != 0 {
		t.Errorf("Falsified = %v, want empty", conflict.Falsified)
	}
}

func TestPropagate_NoConflictReturnsNil(t *testing.T) {
	store := cnf.NewStore([]cnf.RawClause{
		{Literals: []cnf.Literal{1, 2}},
	}, 2)
	tr := trail.New(2)
	tr.Assign(1, true, trail.AssumptionReason(1))

	conflict, err := Propagate(store.Full(), tr)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if conflict != nil {
		t.Errorf("Propagate: got conflict %+v, want none", conflict)
	}
}

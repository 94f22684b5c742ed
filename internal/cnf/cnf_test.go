package cnf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewStore_TautologyElided(t *testing.T) {
	s := NewStore([]RawClause{
		{Literals: []Literal{1, -1, 2}, RuleID: "r1"},
		{Literals: []Literal{1, 2}, RuleID: "r2"},
	}, 2)

	if got, want := s.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if s.Get(0).RuleID != "r2" {
		t.Errorf("surviving clause RuleID = %q, want %q", s.Get(0).RuleID, "r2")
	}
}

func TestNewStore_DuplicateLiteralsDeduped(t *testing.T) {
	s := NewStore([]RawClause{
		{Literals: []Literal{1, 2, 1, 2}, RuleID: "r1"},
	}, 2)

	got := s.Get(0).Literals
	want := []Literal{1, 2}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Literals mismatch (-want +got):\n%s", diff)
	}
}

func TestNewStore_EmptyClauseKept(t *testing.T) {
	s := NewStore([]RawClause{
		{Literals: nil, RuleID: "empty"},
		{Literals: []Literal{1}, RuleID: "unit"},
	}, 1)

	if got, want := s.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got := s.Get(0).Literals; len(got) != 0 {
		t.Errorf("empty clause Literals = %v, want empty", got)
	}
}

func TestView_WithoutAndCIDs(t *testing.T) {
	s := NewStore([]RawClause{
		{Literals: []Literal{1, 2}},
		{Literals: []Literal{-1, 2}},
		{Literals: []Literal{-2}},
	}, 2)

	full := s.Full()
	if diff := cmp.Diff([]ClauseID{0, 1, 2}, full.CIDs()); diff != "" {
		t.Errorf("CIDs mismatch (-want +got):\n%s", diff)
	}

	reduced := full.Without(1)
	if diff := cmp.Diff([]ClauseID{0, 2}, reduced.CIDs()); diff != "" {
		t.Errorf("CIDs after Without mismatch (-want +got):\n%s", diff)
	}
	if reduced.Contains(1) {
		t.Errorf("Without(1) view still contains clause 1")
	}
}

package dimacsfmt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/corewhy/unsatexplain/internal/cnf"
)

func TestLoad_RuleAndNoteAttachedToFollowingClause(t *testing.T) {
	const instance = `c a plain leading comment
p cnf 3 2
c rule:r1 note:first clause
-1 2 0
c rule:r2
-2 3 0
`
	store, maxVar, err := Load(strings.NewReader(instance))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if maxVar != 3 {
		t.Errorf("maxVar = %d, want 3", maxVar)
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}

	c0 := store.Get(0)
	if c0.RuleID != "r1" || c0.Note != "first clause" {
		t.Errorf("clause 0 = %+v, want RuleID=r1 Note=%q", c0, "first clause")
	}
	if diff := cmp.Diff([]cnf.Literal{-1, 2}, c0.Literals); diff != "" {
		t.Errorf("clause 0 literals mismatch (-want +got):\n%s", diff)
	}

	c1 := store.Get(1)
	if c1.RuleID != "r2" || c1.Note != "" {
		t.Errorf("clause 1 = %+v, want RuleID=r2 Note=empty", c1)
	}
}

func TestLoad_ClauseWithoutRuleCommentGetsEmptyMetadata(t *testing.T) {
	const instance = `p cnf 2 1
1 2 0
`
	store, _, err := Load(strings.NewReader(instance))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := store.Get(0)
	if c.RuleID != "" || c.Note != "" {
		t.Errorf("clause = %+v, want empty rule/note", c)
	}
}

func TestParseAssumptions(t *testing.T) {
	got, err := ParseAssumptions("1, -2,3")
	if err != nil {
		t.Fatalf("ParseAssumptions: %v", err)
	}
	if diff := cmp.Diff([]cnf.Literal{1, -2, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAssumptions_Empty(t *testing.T) {
	got, err := ParseAssumptions("")
	if err != nil {
		t.Fatalf("ParseAssumptions: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestParseHints_SignsIgnoredByCaller(t *testing.T) {
	got, err := ParseHints("-4, 7")
	if err != nil {
		t.Fatalf("ParseHints: %v", err)
	}
	if diff := cmp.Diff([]int{-4, 7}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAssumptions_RejectsZero(t *testing.T) {
	if _, err := ParseAssumptions("0"); err == nil {
		t.Errorf("ParseAssumptions(\"0\") = nil error, want error")
	}
}

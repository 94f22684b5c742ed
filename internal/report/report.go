// Package report serializes a driver.Result to the JSON wire shape §6
// specifies. It is a small pure transform from the domain type to
// encoding/json-tagged mirror structs — no business logic lives here.
package report

import (
	"encoding/json"
	"io"

	"github.com/corewhy/unsatexplain/internal/cnf"
	"github.com/corewhy/unsatexplain/internal/driver"
)

// ClauseRef mirrors one (cid, rule_id, note, literals) tuple (§6).
type ClauseRef struct {
	CID      cnf.ClauseID  `json:"cid"`
	RuleID   string        `json:"rule_id"`
	Note     string        `json:"note"`
	Literals []cnf.Literal `json:"literals"`
}

// PrimaryExplanation mirrors §6's "primary_explanation" object.
type PrimaryExplanation struct {
	ConflictClause    ClauseRef     `json:"conflict_clause"`
	FalsifiedLiterals []cnf.Literal `json:"falsified_literals"`
	AssumptionCauses  []cnf.Literal `json:"assumption_causes"`
	InvolvedRules     []ClauseRef   `json:"involved_rules"`
}

// Document is the top-level wire value, covering both the "sat" and
// "unsat_with_core" shapes of §6. Per §6 the "unsat_with_core" shape is a
// fixed set of fields — mus_size, mus_clauses, mus_rules, and hints_used are
// always present, even when the MUS or hint list is empty (§8 scenario 1
// documents "mus_clauses = []" for an assumption-only clash, an empty
// array, not an absent key) — so only `model`, `primary_explanation`, and
// `error` (meaningful for exactly one of the three Outcome cases each) carry
// `omitempty`.
type Document struct {
	Type string `json:"type"`

	Model map[int]bool `json:"model,omitempty"`

	PrimaryExplanation *PrimaryExplanation `json:"primary_explanation,omitempty"`
	MUSSize            int                 `json:"mus_size"`
	MUSClauses         []ClauseRef         `json:"mus_clauses"`
	MUSRules           []string            `json:"mus_rules"`
	HintsUsed          []int               `json:"hints_used"`
	HintFallback       bool                `json:"hint_fallback"`

	Error string `json:"error,omitempty"`
}

// FromResult converts a driver.Result into its wire Document. store
// resolves the MUS clause ids back to their (rule_id, note, literals)
// tuples, since driver.Result only carries ids for the MUS (§4.7).
func FromResult(res driver.Result, store *cnf.Store) Document {
	switch res.Outcome {
	case driver.Sat:
		return Document{Type: "sat", Model: res.Model}
	case driver.UnsatWithCore:
		return unsatDocument(res, store)
	default:
		msg := "unknown driver outcome"
		if res.Err != nil {
			msg = res.Err.Error()
		}
		return Document{Type: "error", Error: msg}
	}
}

func unsatDocument(res driver.Result, store *cnf.Store) Document {
	exp := res.Explanation

	involved := make([]ClauseRef, len(exp.InvolvedRules))
	for i, r := range exp.InvolvedRules {
		involved[i] = ClauseRef{CID: r.ClauseID, RuleID: r.RuleID, Note: r.Note, Literals: r.Literals}
	}

	musClauses := make([]ClauseRef, len(res.MUSClauses))
	musRules := make([]string, 0, len(res.MUSClauses))
	rulesSeen := make(map[string]bool, len(res.MUSClauses))
	for i, cid := range res.MUSClauses {
		c := store.Get(cid)
		musClauses[i] = ClauseRef{CID: c.ID, RuleID: c.RuleID, Note: c.Note, Literals: c.Literals}
		if !rulesSeen[c.RuleID] {
			rulesSeen[c.RuleID] = true
			musRules = append(musRules, c.RuleID)
		}
	}

	var conflictRef ClauseRef
	if exp.ConflictClauseID >= 0 {
		c := store.Get(exp.ConflictClauseID)
		conflictRef = ClauseRef{CID: c.ID, RuleID: c.RuleID, Note: c.Note, Literals: c.Literals}
	} else {
		conflictRef = ClauseRef{CID: exp.ConflictClauseID}
	}

	return Document{
		Type: "unsat_with_core",
		PrimaryExplanation: &PrimaryExplanation{
			ConflictClause:    conflictRef,
			FalsifiedLiterals: nonNil(exp.FalsifiedLiterals),
			AssumptionCauses:  nonNil(exp.AssumptionCauses),
			InvolvedRules:     involved,
		},
		MUSSize:      len(res.MUSClauses),
		MUSClauses:   musClauses,
		MUSRules:     musRules,
		HintsUsed:    nonNil(res.HintsUsed),
		HintFallback: res.HintFallback,
	}
}

// nonNil returns s unchanged if it already has a backing array, or a
// non-nil empty slice otherwise, so that encoding/json marshals an absent
// collection as "[]" rather than "null" — the wire shape §6 documents
// (e.g. §8 scenario 1's "mus_clauses = []") never uses a null array.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Encode writes res as indented JSON to w.
func Encode(w io.Writer, res driver.Result, store *cnf.Store) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FromResult(res, store))
}

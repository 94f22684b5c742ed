package trail

import "github.com/corewhy/unsatexplain/internal/cnf"

// Kind tags why a variable ended up on the trail.
type Kind uint8

const (
	// Assumption marks a literal the caller asserted directly, with no
	// originating clause.
	Assumption Kind = iota
	// Decision marks a literal the DPLL Search chose to branch on.
	Decision
	// Propagated marks a literal forced true by unit propagation over a
	// specific clause.
	Propagated
)

func (k Kind) String() string {
	switch k {
	case Assumption:
		return "assumption"
	case Decision:
		return "decision"
	case Propagated:
		return "propagated"
	default:
		return "unknown"
	}
}

// Reason records why a variable's current value was assigned: either it
// was asserted by the caller (Assumption, carrying the asserted literal),
// chosen by the search (Decision), or forced by a unit clause (Propagated,
// carrying the forcing clause's id).
type Reason struct {
	Kind     Kind
	Lit      cnf.Literal // set for Assumption: the asserted literal
	ClauseID cnf.ClauseID
}

// AssumptionReason builds the reason for an asserted literal.
func AssumptionReason(lit cnf.Literal) Reason {
	return Reason{Kind: Assumption, Lit: lit}
}

// DecisionReason builds the reason for a branched-on literal.
func DecisionReason() Reason {
	return Reason{Kind: Decision}
}

// PropagatedReason builds the reason for a unit-propagated literal.
func PropagatedReason(cid cnf.ClauseID) Reason {
	return Reason{Kind: Propagated, ClauseID: cid}
}

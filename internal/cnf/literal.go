// Package cnf holds the immutable clause catalogue that the rest of the
// solver reads from: literals, rule-tagged clauses, and restricted views
// over subsets of clause ids.
package cnf

import "fmt"

// Literal is a signed, nonzero integer: positive asserts a variable true,
// negative asserts its negation. Unlike a literal-indexed solver, the raw
// caller-supplied integer is kept as-is (no var*2 packing) so that falsified
// literals and assumption causes can be echoed back to the caller verbatim.
type Literal int

// Var returns the variable identifier of l, always positive.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Neg returns the complementary literal.
func (l Literal) Neg() Literal {
	return -l
}

// IsPositive reports whether l asserts its variable true.
func (l Literal) IsPositive() bool {
	return l > 0
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}

// Package dimacsfmt loads the augmented-DIMACS CNF format this system
// consumes: standard DIMACS clause lines, plus an optional
// "c rule:<id> note:<text>" comment line immediately preceding a clause to
// tag it with the caller's rule metadata (§6 Input CNF). It wraps
// github.com/rhartert/dimacs's callback-based reader the same way the
// teacher's parsers.LoadDIMACS wraps it for a plain SAT solver.
package dimacsfmt

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/corewhy/unsatexplain/internal/cnf"
)

// LoadError distinguishes a malformed-input problem (bad token, non-CNF
// problem line) from a wrapped I/O error, mirroring the teacher's
// fmt.Errorf("...: %w", err) style rather than a bespoke error type
// hierarchy.
type LoadError struct {
	Op  string
	Err error
}

func (e *LoadError) Error() string { return fmt.Sprintf("dimacsfmt: %s: %s", e.Op, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// Load reads an augmented-DIMACS CNF from r and builds the Clause Store.
// maxVar is the highest variable id declared by the "p cnf <vars> <clauses>"
// header line.
func Load(r io.Reader) (store *cnf.Store, maxVar int, err error) {
	b := &builder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, 0, &LoadError{Op: "parse", Err: err}
	}
	return cnf.NewStore(b.clauses, b.maxVar), b.maxVar, nil
}

// Open opens filename (transparently gzip-decompressing if gzipped is set,
// same convention as the teacher's reader helper) and loads it.
func Open(filename string, gzipped bool) (store *cnf.Store, maxVar int, err error) {
	f, err := openReader(filename, gzipped)
	if err != nil {
		return nil, 0, &LoadError{Op: "open", Err: err}
	}
	defer f.Close()
	return Load(f)
}

func openReader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// builder implements dimacs.Builder, accumulating clauses plus whatever
// rule/note metadata the preceding comment line supplied. State (the
// pending rule/note) is held across calls the same way the teacher's
// builder/modelBuilder pair holds state across Clause callbacks.
type builder struct {
	maxVar  int
	clauses []cnf.RawClause

	pendingRuleID string
	pendingNote   string
	havePending   bool
}

const rulePrefix = "rule:"
const notePrefix = "note:"

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("instance of type %q is not supported", problem)
	}
	b.maxVar = nVars
	b.clauses = make([]cnf.RawClause, 0, nClauses)
	return nil
}

// Comment recognizes a "rule:<id> note:<text>" tag and holds it pending for
// the next Clause call; any other comment is ignored, exactly as the
// teacher's builder.Comment does (dimacs comment lines carry no other
// meaning here).
func (b *builder) Comment(text string) error {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, rulePrefix) {
		return nil
	}

	ruleID, rest := text, ""
	if idx := strings.Index(text, notePrefix); idx >= 0 {
		ruleID = strings.TrimSpace(text[:idx])
		rest = strings.TrimSpace(text[idx+len(notePrefix):])
	}
	ruleID = strings.TrimSpace(strings.TrimPrefix(ruleID, rulePrefix))

	b.pendingRuleID = ruleID
	b.pendingNote = rest
	b.havePending = true
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	lits := make([]cnf.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l == 0 {
			return fmt.Errorf("clause literal must be nonzero")
		}
		lits[i] = cnf.Literal(l)
	}

	rc := cnf.RawClause{Literals: lits}
	if b.havePending {
		rc.RuleID = b.pendingRuleID
		rc.Note = b.pendingNote
		b.havePending = false
	}
	b.clauses = append(b.clauses, rc)
	return nil
}

// parseSignedInts parses a comma-separated list of signed nonzero integers,
// the shared CLI convention for -assume and -hint (main.go).
func parseSignedInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid literal %q: %w", f, err)
		}
		if v == 0 {
			return nil, fmt.Errorf("literal must be nonzero")
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseAssumptions parses the -assume CLI flag value into signed literals.
func ParseAssumptions(s string) ([]cnf.Literal, error) {
	ints, err := parseSignedInts(s)
	if err != nil {
		return nil, err
	}
	lits := make([]cnf.Literal, len(ints))
	for i, v := range ints {
		lits[i] = cnf.Literal(v)
	}
	return lits, nil
}

// ParseHints parses the -hint CLI flag value into hint variable ids (signs
// are caller convenience only; §6 Core hints says only |lit| is consulted).
func ParseHints(s string) ([]int, error) {
	return parseSignedInts(s)
}

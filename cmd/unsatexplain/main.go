package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/corewhy/unsatexplain/internal/cnf"
	"github.com/corewhy/unsatexplain/internal/dimacsfmt"
	"github.com/corewhy/unsatexplain/internal/driver"
	"github.com/corewhy/unsatexplain/internal/explain"
	"github.com/corewhy/unsatexplain/internal/mus"
	"github.com/corewhy/unsatexplain/internal/report"
)

var (
	flagAssume    = flag.String("assume", "", "comma-separated list of signed-literal assumptions, e.g. 1,-2,3")
	flagHint      = flag.String("hint", "", "comma-separated list of core-hint literals (signs ignored)")
	flagOutFormat = flag.String("out-format", "text", "output format: text or json")
	flagGzip      = flag.Bool("gzip", false, "instance file is gzip-compressed")
	flagVerbose   = flag.Bool("v", false, "log each MUS deletion probe and its trail to stderr")
)

// exit status codes per spec.md §6.
const (
	exitSat           = 0
	exitUnsat         = 1
	exitMalformed     = 2
	exitInternalError = 3
)

type config struct {
	instanceFile string
	assumptions  string
	hints        string
	outFormat    string
	gzipped      bool
	verbose      bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	if *flagOutFormat != "text" && *flagOutFormat != "json" {
		return nil, fmt.Errorf("invalid -out-format %q: want text or json", *flagOutFormat)
	}
	return &config{
		instanceFile: flag.Arg(0),
		assumptions:  *flagAssume,
		hints:        *flagHint,
		outFormat:    *flagOutFormat,
		gzipped:      *flagGzip,
		verbose:      *flagVerbose,
	}, nil
}

// run loads and solves cfg.instanceFile, printing the result in the
// requested format. Its int return is the process exit status (§6).
func run(cfg *config) int {
	store, maxVar, err := dimacsfmt.Open(cfg.instanceFile, cfg.gzipped)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load instance: %s\n", err)
		return exitMalformed
	}

	assumptions, err := dimacsfmt.ParseAssumptions(cfg.assumptions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -assume: %s\n", err)
		return exitMalformed
	}
	hints, err := dimacsfmt.ParseHints(cfg.hints)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -hint: %s\n", err)
		return exitMalformed
	}

	fmt.Printf("c variables: %d\n", maxVar)
	fmt.Printf("c clauses:   %d\n", store.Len())

	if cfg.verbose {
		mus.Verbose = os.Stderr
	}
	res := driver.Explain(context.Background(), store, assumptions, hints)

	switch cfg.outFormat {
	case "json":
		if err := report.Encode(os.Stdout, res, store); err != nil {
			fmt.Fprintf(os.Stderr, "could not encode result: %s\n", err)
			return exitInternalError
		}
	default:
		printText(res, store)
	}

	switch res.Outcome {
	case driver.Sat:
		return exitSat
	case driver.UnsatWithCore:
		return exitUnsat
	default:
		return exitInternalError
	}
}

// printText prints a human-readable summary, in the same "c "-prefixed
// status-line style as the teacher's main.go.
func printText(res driver.Result, store *cnf.Store) {
	switch res.Outcome {
	case driver.Sat:
		fmt.Printf("c status: SAT\n")
		for v := 1; v <= store.MaxVar(); v++ {
			if val, ok := res.Model[v]; ok {
				fmt.Printf("%d=%t ", v, val)
			}
		}
		fmt.Println()
	case driver.UnsatWithCore:
		exp := res.Explanation
		fmt.Printf("c status: UNSAT\n")
		fmt.Printf("c conflict clause: cid=%d rule=%q falsified=%v\n", exp.ConflictClauseID, conflictRuleID(exp, store), exp.FalsifiedLiterals)
		fmt.Printf("c assumption causes: %v\n", exp.AssumptionCauses)
		fmt.Printf("c mus size: %d\n", len(res.MUSClauses))
		for _, cid := range res.MUSClauses {
			c := store.Get(cid)
			fmt.Printf("c   cid=%d rule=%q note=%q literals=%v\n", c.ID, c.RuleID, c.Note, c.Literals)
		}
		if res.HintFallback {
			fmt.Printf("c hint_fallback: true\n")
		}
	default:
		fmt.Printf("c status: ERROR: %s\n", res.Err)
	}
}

// conflictRuleID resolves the conflict clause's rule id, or "" for a
// synthetic assumption-clash conflict (§7 AssumptionConflict), which has no
// backing clause to resolve.
func conflictRuleID(exp explain.Explanation, store *cnf.Store) string {
	if exp.ConflictClauseID < 0 {
		return ""
	}
	return store.Get(exp.ConflictClauseID).RuleID
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(run(cfg))
}

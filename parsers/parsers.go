package parsers

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"
	"github.com/rhartert/walksat/sat"
)

type SATSolver interface {
	Literal(name string, positive bool) sat.Literal
	AddClause(disjuncts ...sat.Literal) error
	ParseClause(expr string) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
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

// LoadClauses parses a clause file and loads its clauses in the given SAT
// solver. The format is one clause per line, with '|' separating disjuncts
// and a leading '!' negating a literal. Blank lines and lines starting with
// '#' are skipped.
func LoadClauses(filename string, gzipped bool, solver SATSolver) error {
	reader, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer reader.Close()

	scanner := bufio.NewScanner(reader)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := solver.ParseClause(text); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

// LoadDIMACS parses the DIMACS CNF file and loads its CNF formula in the
// given SAT solver. DIMACS variable i is registered as proposition "x<i>".
func LoadDIMACS(filename string, gzipped bool, solver SATSolver) error {
	reader, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer reader.Close()

	b := &builder{solver}
	return dimacs.ReadBuilder(reader, b)
}

// builder wraps the solver to implement dimacs.Builder.
type builder struct {
	solver SATSolver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	// Register all variables upfront so that proposition indices follow the
	// DIMACS variable order.
	for i := 1; i <= nVars; i++ {
		b.solver.Literal(variableName(i), true)
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = b.solver.Literal(variableName(-l), false)
		} else {
			clause[i] = b.solver.Literal(variableName(l), true)
		}
	}
	return b.solver.AddClause(clause...)
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

func variableName(i int) string {
	return fmt.Sprintf("x%d", i)
}

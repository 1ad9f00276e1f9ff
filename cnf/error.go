package cnf

import (
	"fmt"
	"strings"

	"github.com/arr-ai/cnf/grammar"
)

// CyclicUnitProductionError reports unit productions that derive their own
// lhs, e.g. A -> B, B -> A. Cycle starts and ends with the same nonterminal.
type CyclicUnitProductionError struct {
	Cycle []grammar.Nonterminal
}

func (e *CyclicUnitProductionError) Error() string {
	names := make([]string, 0, len(e.Cycle))
	for _, nt := range e.Cycle {
		names = append(names, nt.Name())
	}
	return fmt.Sprintf("cyclic unit production: %s", strings.Join(names, " > "))
}

type ShapeError struct {
	Production grammar.Production
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("not in Chomsky normal form: %s", e.Production)
}

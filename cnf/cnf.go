package cnf

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/cnf/grammar"
)

// ToCNF converts g to a weakly equivalent grammar in Chomsky normal form.
func ToCNF(g grammar.Grammar) (grammar.Grammar, error) {
	split := SplitHybrid(g)
	logStage("hybrid", g, split)

	units, err := EliminateUnits(split)
	if err != nil {
		return grammar.Grammar{}, err
	}
	logStage("unit", split, units)

	binary := Binarize(units)
	logStage("long", units, binary)
	return binary, nil
}

// IsCNF returns a *ShapeError for the first production that is neither
// A -> 'a' nor A -> B C.
func IsCNF(g grammar.Grammar) error {
	for _, p := range g.Productions() {
		switch len(p.Rhs) {
		case 1:
			if p.Rhs[0].IsTerminal() {
				continue
			}
		case 2:
			if !p.Rhs[0].IsTerminal() && !p.Rhs[1].IsTerminal() {
				continue
			}
		}
		return &ShapeError{Production: p}
	}
	return nil
}

func logStage(stage string, in, out grammar.Grammar) {
	logrus.WithFields(logrus.Fields{
		"stage": stage,
		"in":    in.Len(),
		"out":   out.Len(),
	}).Debug("cnf stage done")
}

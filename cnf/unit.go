package cnf

import (
	"github.com/arr-ai/frozen"

	"github.com/arr-ai/cnf/grammar"
)

// pendingUnit is a unit production A -> B still to be chased, along with the
// nonterminals already passed through to reach B from A.
type pendingUnit struct {
	prod  grammar.Production
	chain frozen.Set[string]
	path  []grammar.Nonterminal
}

func (u pendingUnit) target() grammar.Nonterminal {
	return grammar.Nonterminal(u.prod.Rhs[0].Name())
}

// EliminateUnits replaces every unit production A -> B with A -> α for each
// non-unit production B -> α reachable from B through unit productions.
//
// g must not contain hybrid productions. A cycle of unit productions fails
// with *CyclicUnitProductionError.
func EliminateUnits(g grammar.Grammar) (grammar.Grammar, error) {
	b := grammar.NewBuilder(g.Start())
	var queue []pendingUnit
	for _, p := range g.Productions() {
		if p.IsUnit() {
			queue = append(queue, pendingUnit{
				prod:  p,
				chain: frozen.NewSet[string](p.Lhs.Name()),
				path:  []grammar.Nonterminal{p.Lhs},
			})
		} else {
			b.Add(p)
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		target := u.target()
		if u.chain.Has(target.Name()) {
			return grammar.Grammar{}, &CyclicUnitProductionError{
				Cycle: append(append([]grammar.Nonterminal{}, u.path...), target),
			}
		}
		chain := u.chain.With(target.Name())
		path := append(append([]grammar.Nonterminal{}, u.path...), target)

		for _, cascade := range g.ProductionsFor(target) {
			candidate := grammar.NewProduction(u.prod.Lhs, cascade.Rhs...)
			if cascade.IsUnit() {
				queue = append(queue, pendingUnit{prod: candidate, chain: chain, path: path})
			} else {
				b.Add(candidate)
			}
		}
	}
	return b.Grammar(), nil
}

package cnf

import "github.com/arr-ai/cnf/grammar"

// Binarize shortens every rhs longer than two symbols. Each pass pairs the
// rhs left to right, replacing each pair with a synthetic nonterminal, until
// at most two symbols remain. Equal pairs share one synthetic nonterminal.
func Binarize(g grammar.Grammar) grammar.Grammar {
	namer := grammar.NewNamerFor(g)
	b := grammar.NewBuilder(g.Start())
	var queue []grammar.Production
	for _, p := range g.Productions() {
		if p.IsLong() {
			queue = append(queue, p)
		} else {
			b.Add(p)
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		rhs := make([]grammar.Symbol, 0, (len(p.Rhs)+1)/2)
		for i := 0; i+1 < len(p.Rhs); i += 2 {
			pair := namer.ForPair(p.Rhs[i], p.Rhs[i+1])
			b.Add(grammar.NewProduction(pair, p.Rhs[i], p.Rhs[i+1]))
			rhs = append(rhs, pair)
		}
		if len(p.Rhs)%2 == 1 {
			rhs = append(rhs, p.Rhs[len(p.Rhs)-1])
		}

		shorter := grammar.NewProduction(p.Lhs, rhs...)
		if shorter.IsLong() {
			queue = append(queue, shorter)
		} else {
			b.Add(shorter)
		}
	}
	return b.Grammar()
}

package cnf

import "github.com/arr-ai/cnf/grammar"

// SplitHybrid replaces every terminal in a rhs that also holds other symbols
// with a synthetic nonterminal deriving only that terminal. A terminal value
// maps to the same synthetic nonterminal throughout the grammar.
func SplitHybrid(g grammar.Grammar) grammar.Grammar {
	namer := grammar.NewNamerFor(g)
	b := grammar.NewBuilder(g.Start())
	for _, p := range g.Productions() {
		if !p.IsHybrid() {
			b.Add(p)
			continue
		}
		rhs := make([]grammar.Symbol, 0, len(p.Rhs))
		for _, sym := range p.Rhs {
			t, ok := sym.(grammar.Terminal)
			if !ok {
				rhs = append(rhs, sym)
				continue
			}
			nt := namer.ForTerminal(t)
			b.Add(grammar.NewProduction(nt, t))
			rhs = append(rhs, nt)
		}
		b.Add(grammar.NewProduction(p.Lhs, rhs...))
	}
	return b.Grammar()
}

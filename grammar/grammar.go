package grammar

import (
	"strings"

	"github.com/arr-ai/frozen"
)

// Grammar is a start symbol with an ordered set of productions. A Grammar is
// never modified once built.
type Grammar struct {
	start       Nonterminal
	productions []Production
	byLhs       map[Nonterminal][]int
}

// New builds a grammar from prods, keeping the first of any duplicates.
func New(start Nonterminal, prods ...Production) Grammar {
	b := NewBuilder(start)
	for _, p := range prods {
		b.Add(p)
	}
	return b.Grammar()
}

func (g Grammar) Start() Nonterminal {
	return g.start
}

func (g Grammar) Len() int {
	return len(g.productions)
}

// Productions returns the productions in generation order.
func (g Grammar) Productions() []Production {
	return append([]Production{}, g.productions...)
}

// ProductionsFor returns every production whose lhs is lhs, in order.
func (g Grammar) ProductionsFor(lhs Nonterminal) []Production {
	indices := g.byLhs[lhs]
	out := make([]Production, 0, len(indices))
	for _, i := range indices {
		out = append(out, g.productions[i])
	}
	return out
}

// Nonterminals returns the names of every nonterminal mentioned by g,
// including the start symbol.
func (g Grammar) Nonterminals() frozen.Set[string] {
	names := frozen.NewSet[string](g.start.Name())
	for _, p := range g.productions {
		names = names.With(p.Lhs.Name())
		for _, s := range p.Rhs {
			if !s.IsTerminal() {
				names = names.With(s.Name())
			}
		}
	}
	return names
}

// Equal reports whether both grammars have the same start symbol and the
// same productions in the same order.
func (g Grammar) Equal(h Grammar) bool {
	if g.start != h.start || len(g.productions) != len(h.productions) {
		return false
	}
	for i, p := range g.productions {
		if !p.Equal(h.productions[i]) {
			return false
		}
	}
	return true
}

func (g Grammar) String() string {
	var sb strings.Builder
	sb.WriteString("% start " + g.start.String() + "\n")
	for _, p := range g.productions {
		sb.WriteString(p.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Builder accumulates productions for a new Grammar, collapsing structural
// duplicates while preserving insertion order.
type Builder struct {
	start       Nonterminal
	productions []Production
	seen        map[string]struct{}
	byLhs       map[Nonterminal][]int
}

func NewBuilder(start Nonterminal) *Builder {
	return &Builder{
		start: start,
		seen:  map[string]struct{}{},
		byLhs: map[Nonterminal][]int{},
	}
}

// Add appends p unless an equal production was already added. Returns
// whether p was new.
func (b *Builder) Add(p Production) bool {
	key := p.Key()
	if _, has := b.seen[key]; has {
		return false
	}
	b.seen[key] = struct{}{}
	b.byLhs[p.Lhs] = append(b.byLhs[p.Lhs], len(b.productions))
	b.productions = append(b.productions, NewProduction(p.Lhs, p.Rhs...))
	return true
}

func (b *Builder) Len() int {
	return len(b.productions)
}

// Grammar freezes the productions added so far. The builder may continue to
// be used afterwards without affecting the result.
func (b *Builder) Grammar() Grammar {
	byLhs := make(map[Nonterminal][]int, len(b.byLhs))
	for lhs, indices := range b.byLhs {
		byLhs[lhs] = append([]int{}, indices...)
	}
	return Grammar{
		start:       b.start,
		productions: append([]Production{}, b.productions...),
		byLhs:       byLhs,
	}
}

package grammar

import (
	"fmt"
	"strings"

	"github.com/arr-ai/frozen"
	"github.com/iancoleman/strcase"
)

// Namer allocates synthetic nonterminals that are distinct from a reserved
// set of names and from each other. The same origin (a terminal, or an
// ordered pair of symbols) always maps to the same nonterminal.
type Namer struct {
	used   frozen.Set[string]
	issued map[string]Nonterminal
}

func NewNamer(reserved frozen.Set[string]) *Namer {
	return &Namer{used: reserved, issued: map[string]Nonterminal{}}
}

// NewNamerFor reserves every nonterminal of g.
func NewNamerFor(g Grammar) *Namer {
	return NewNamer(g.Nonterminals())
}

// ForTerminal names the nonterminal that derives exactly t.
func (n *Namer) ForTerminal(t Terminal) Nonterminal {
	base := "T"
	if frag := strings.Trim(identFragment(strcase.ToScreamingSnake(t.Name())), "_"); frag != "" {
		base += "_" + frag
	}
	return n.fresh(symbolKey(t), base)
}

// ForPair names the nonterminal that derives exactly the sequence a b.
func (n *Namer) ForPair(a, b Symbol) Nonterminal {
	return n.fresh(
		symbolKey(a)+"\x00"+symbolKey(b),
		identFragment(a.Name())+"_"+identFragment(b.Name()),
	)
}

func (n *Namer) fresh(origin, base string) Nonterminal {
	if nt, has := n.issued[origin]; has {
		return nt
	}
	name := base
	for i := 2; n.used.Has(name); i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}
	n.used = n.used.With(name)
	nt := Nonterminal(name)
	n.issued[origin] = nt
	return nt
}

// identFragment keeps only the characters the grammar loader accepts in every
// position of a nonterminal name.
func identFragment(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return -1
	}, s)
}

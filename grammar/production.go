package grammar

import "strings"

// Production rewrites Lhs to the non-empty sequence Rhs.
type Production struct {
	Lhs Nonterminal
	Rhs []Symbol
}

func NewProduction(lhs Nonterminal, rhs ...Symbol) Production {
	return Production{Lhs: lhs, Rhs: append([]Symbol{}, rhs...)}
}

// IsLexical reports whether the rhs contains at least one terminal.
func (p Production) IsLexical() bool {
	for _, s := range p.Rhs {
		if s.IsTerminal() {
			return true
		}
	}
	return false
}

func (p Production) IsNonLexical() bool {
	return !p.IsLexical()
}

// IsUnit reports a rhs consisting of a single nonterminal.
func (p Production) IsUnit() bool {
	return len(p.Rhs) == 1 && !p.Rhs[0].IsTerminal()
}

// IsHybrid reports a rhs that mixes terminals with other symbols.
func (p Production) IsHybrid() bool {
	return len(p.Rhs) > 1 && p.IsLexical()
}

func (p Production) IsLong() bool {
	return len(p.Rhs) > 2
}

// Key identifies the production structurally.
func (p Production) Key() string {
	var sb strings.Builder
	sb.WriteString(symbolKey(p.Lhs))
	for _, s := range p.Rhs {
		sb.WriteByte(0)
		sb.WriteString(symbolKey(s))
	}
	return sb.String()
}

func (p Production) Equal(q Production) bool {
	return p.Key() == q.Key()
}

func (p Production) String() string {
	parts := make([]string, 0, len(p.Rhs))
	for _, s := range p.Rhs {
		parts = append(parts, s.String())
	}
	return p.Lhs.String() + " -> " + strings.Join(parts, " ")
}

package grammar

import (
	"fmt"
	"strings"
)

// Symbol is either a Nonterminal or a Terminal.
type Symbol interface {
	Name() string
	IsTerminal() bool
	String() string
	isSymbol()
}

// Nonterminal is identified by its name.
type Nonterminal string

func (n Nonterminal) Name() string     { return string(n) }
func (n Nonterminal) IsTerminal() bool { return false }
func (n Nonterminal) String() string   { return string(n) }
func (Nonterminal) isSymbol()          {}

// Terminal is an opaque token value.
type Terminal string

func (t Terminal) Name() string     { return string(t) }
func (t Terminal) IsTerminal() bool { return true }
func (Terminal) isSymbol()          {}

// String renders the terminal quoted, preferring single quotes.
func (t Terminal) String() string {
	if strings.ContainsRune(string(t), '\'') && !strings.ContainsRune(string(t), '"') {
		return `"` + string(t) + `"`
	}
	return "'" + string(t) + "'"
}

// Quote is String, but fails for values that no quote style can enclose.
func (t Terminal) Quote() (string, error) {
	if strings.ContainsRune(string(t), '\'') && strings.ContainsRune(string(t), '"') {
		return "", fmt.Errorf("terminal %q contains both quote characters", string(t))
	}
	return t.String(), nil
}

var (
	_ Symbol = Nonterminal("")
	_ Symbol = Terminal("")
)

func symbolKey(s Symbol) string {
	if s.IsTerminal() {
		return "t:" + s.Name()
	}
	return "n:" + s.Name()
}

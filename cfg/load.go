// Package cfg reads and writes grammars in the line-oriented CFG notation
// used by NLTK:
//
//	% start S
//	S -> NP VP
//	NP -> Det N | 'john'
//
// Terminals are quoted with ' or " (no escapes). Lines starting with # are
// comments and a trailing \ continues a line.
package cfg

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/arr-ai/cnf/grammar"
	"github.com/arr-ai/cnf/parse"
)

var (
	wsRE       = regexp.MustCompile(`\A(?:[ \t\r]|\\\r?\n)*`)
	nontermRE  = regexp.MustCompile(`\A[\w/][\w/^<>-]*`)
	terminalRE = regexp.MustCompile(`\A(?:"[^"\n]*"|'[^'\n]*')`)
	directRE   = regexp.MustCompile(`\A\w+`)
)

// Load reads the grammar in the file at path.
func Load(path string) (grammar.Grammar, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return grammar.Grammar{}, fmt.Errorf("reading grammar: %w", err)
	}
	return Parse(path, string(buf))
}

// Parse reads a grammar from src. filename is only used in diagnostics.
func Parse(filename, src string) (grammar.Grammar, error) {
	l := loader{}
	for _, line := range logicalLines(parse.NewScannerWithFilename(src, filename)) {
		l.line(line)
	}
	if len(l.errs) > 0 {
		return grammar.Grammar{}, &LoadError{Filename: filename, Errors: l.errs}
	}
	if len(l.prods) == 0 {
		return grammar.Grammar{}, &LoadError{Filename: filename, Errors: []error{
			fmt.Errorf("no productions found"),
		}}
	}

	start := l.prods[0].Lhs
	if l.start != nil {
		start = grammar.Nonterminal(l.start.String())
		g := grammar.New(start, l.prods...)
		if len(g.ProductionsFor(start)) == 0 {
			return grammar.Grammar{}, &LoadError{Filename: filename, Errors: []error{
				syntaxErrorf(*l.start, "start symbol %s has no productions", start),
			}}
		}
		return g, nil
	}
	return grammar.New(start, l.prods...), nil
}

// logicalLines joins physical lines ending in a backslash with their
// successors and drops blank and comment lines.
func logicalLines(src *parse.Scanner) []parse.Scanner {
	var out []parse.Scanner
	lines := src.Lines()
	for i := 0; i < len(lines); i++ {
		first := lines[i]
		last := first
		for strings.HasSuffix(last.TrimSpace().String(), `\`) && i+1 < len(lines) {
			i++
			last = lines[i]
		}
		joined := src.Slice(first.Offset(), last.Offset()+last.Len()).TrimSpace()
		if joined.IsEmpty() || strings.HasPrefix(joined.String(), "#") {
			continue
		}
		out = append(out, *joined)
	}
	return out
}

type loader struct {
	start *parse.Scanner
	prods []grammar.Production
	errs  []error
}

func (l *loader) line(s parse.Scanner) {
	var err error
	if s.EatString("%", nil) {
		err = l.directive(&s)
	} else {
		err = l.production(&s)
	}
	if err != nil {
		l.errs = append(l.errs, err)
	}
}

func (l *loader) directive(s *parse.Scanner) error {
	skipSpace(s)
	at := *s
	var name parse.Scanner
	if _, ok := s.EatRegexp(directRE, &name, nil); !ok || name.String() != "start" {
		return syntaxErrorf(at, "bad directive")
	}
	skipSpace(s)
	var start parse.Scanner
	if _, ok := s.EatRegexp(nontermRE, &start, nil); !ok {
		return syntaxErrorf(*s, "expecting start symbol")
	}
	skipSpace(s)
	if !s.IsEmpty() {
		return syntaxErrorf(*s, "bad argument to start directive")
	}
	l.start = &start
	return nil
}

func (l *loader) production(s *parse.Scanner) error {
	var lhs parse.Scanner
	if _, ok := s.EatRegexp(nontermRE, &lhs, nil); !ok {
		return syntaxErrorf(*s, "expecting nonterminal")
	}
	skipSpace(s)
	if !s.EatString("->", nil) {
		return syntaxErrorf(*s, "expecting '->'")
	}
	skipSpace(s)

	var prods []grammar.Production
	var rhs []grammar.Symbol
	alt := *s
	for {
		atEnd := s.IsEmpty()
		if atEnd || s.EatString("|", nil) {
			if len(rhs) == 0 {
				return syntaxErrorf(alt, "empty alternative (empty productions are not supported)")
			}
			prods = append(prods, grammar.NewProduction(grammar.Nonterminal(lhs.String()), rhs...))
			if atEnd {
				break
			}
			skipSpace(s)
			rhs = nil
			alt = *s
			continue
		}

		var sym parse.Scanner
		switch {
		case eat(s, terminalRE, &sym):
			text := sym.String()
			rhs = append(rhs, grammar.Terminal(text[1:len(text)-1]))
		case eat(s, nontermRE, &sym):
			rhs = append(rhs, grammar.Nonterminal(sym.String()))
		case strings.HasPrefix(s.String(), "'"), strings.HasPrefix(s.String(), `"`):
			return syntaxErrorf(*s, "unterminated terminal")
		default:
			return syntaxErrorf(*s, "unexpected %q", firstRune(s.String()))
		}
		skipSpace(s)
	}
	l.prods = append(l.prods, prods...)
	return nil
}

func eat(s *parse.Scanner, re *regexp.Regexp, match *parse.Scanner) bool {
	_, ok := s.EatRegexp(re, match, nil)
	return ok
}

func skipSpace(s *parse.Scanner) {
	s.EatRegexp(wsRE, nil, nil)
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

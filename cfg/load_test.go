package cfg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/cnf/grammar"
)

func productionStrings(g grammar.Grammar) []string {
	out := make([]string, 0, g.Len())
	for _, p := range g.Productions() {
		out = append(out, p.String())
	}
	return out
}

func TestLoad(t *testing.T) {
	g, err := Load(filepath.Join("testdata", "toy.cfg"))
	require.NoError(t, err)

	assert.Equal(t, grammar.Nonterminal("S"), g.Start())
	assert.Equal(t, []string{
		"S -> NP VP",
		"NP -> Det N",
		"NP -> 'john'",
		"NP -> NP PP",
		"VP -> V NP",
		"VP -> V",
		"PP -> P NP",
		"Det -> 'the'",
		"Det -> 'a'",
		"N -> 'dog'",
		`N -> "man's"`,
		"V -> 'saw'",
		"P -> 'with'",
	}, productionStrings(g))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.cfg"))
	assert.Error(t, err)
}

func TestParseDefaultStart(t *testing.T) {
	g, err := Parse("", "A -> B\nB -> 'b'\n")
	require.NoError(t, err)
	assert.Equal(t, grammar.Nonterminal("A"), g.Start())
}

func TestParseSymbols(t *testing.T) {
	g, err := Parse("", `S/x -> NP-SBJ 'a b' "c'd" ''`)
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	p := g.Productions()[0]
	assert.Equal(t, grammar.Nonterminal("S/x"), p.Lhs)
	assert.Equal(t, []grammar.Symbol{
		grammar.Nonterminal("NP-SBJ"),
		grammar.Terminal("a b"),
		grammar.Terminal("c'd"),
		grammar.Terminal(""),
	}, p.Rhs)
}

func TestParseCollapsesDuplicates(t *testing.T) {
	g, err := Parse("", "S -> 'a' | 'a'\nS -> 'a'")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name, src, location, msg string
	}{
		{"missing arrow", "S NP", "g.cfg:1:3", "expecting '->'"},
		{"missing lhs", "-> NP", "g.cfg:1:1", "expecting nonterminal"},
		{"empty rhs", "S ->", "g.cfg:1:5", "empty alternative"},
		{"empty alternative", "S -> A | | B\nA -> 'a'\nB -> 'b'", "g.cfg:1:10", "empty alternative"},
		{"trailing bar", "S -> A |", "g.cfg:1:9", "empty alternative"},
		{"unterminated", "S -> 'a", "g.cfg:1:6", "unterminated terminal"},
		{"junk", "S -> A ;", "g.cfg:1:8", `unexpected ";"`},
		{"bad directive", "% begin S\nS -> 'a'", "g.cfg:1:3", "bad directive"},
		{"bad start", "% start S T\nS -> 'a'", "g.cfg:1:11", "bad argument to start directive"},
		{"undefined start", "% start X\nS -> 'a'", "g.cfg:1:9", "start symbol X has no productions"},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse("g.cfg", test.src)
			require.Error(t, err)
			var le *LoadError
			require.ErrorAs(t, err, &le)
			require.Len(t, le.Errors, 1)
			se, ok := le.Errors[0].(SyntaxError)
			require.True(t, ok, "%T", le.Errors[0])
			assert.Equal(t, test.location, se.Location)
			assert.Contains(t, se.Msg, test.msg)
			assert.Contains(t, err.Error(), test.msg)
		})
	}
}

func TestParseCollectsAllErrors(t *testing.T) {
	_, err := Parse("g.cfg", "S -> A\nA B\nB -> 'b\nA -> 'a'")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Len(t, le.Errors, 2)
	assert.Equal(t,
		"\ngrammar load failed: g.cfg\n"+
			"├── g.cfg:2:3 - expecting '->'\n"+
			"└── g.cfg:3:6 - unterminated terminal\n",
		err.Error(),
	)
}

func TestParseNoProductions(t *testing.T) {
	_, err := Parse("g.cfg", "# nothing\n\n% start S\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no productions found")
}

func TestParseContinuationPositions(t *testing.T) {
	_, err := Parse("g.cfg", "S -> A \\\n  | ;")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "g.cfg:2:5", le.Errors[0].(SyntaxError).Location)
}

package cnf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arr-ai/frozen"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arr-ai/cnf/cfg"
	"github.com/arr-ai/cnf/grammar"
)

type stageCase struct {
	Name  string `yaml:"name"`
	Stage string `yaml:"stage"`
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
}

func loadStageCases(t *testing.T) []stageCase {
	t.Helper()
	buf, err := os.ReadFile(filepath.Join("testdata", "stages.yaml"))
	require.NoError(t, err)
	var cases []stageCase
	require.NoError(t, yaml.Unmarshal(buf, &cases))
	require.NotEmpty(t, cases)
	return cases
}

func mustParse(t *testing.T, src string) grammar.Grammar {
	t.Helper()
	g, err := cfg.Parse(t.Name(), src)
	require.NoError(t, err)
	return g
}

func lines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func productionStrings(g grammar.Grammar) []string {
	out := make([]string, 0, g.Len())
	for _, p := range g.Productions() {
		out = append(out, p.String())
	}
	return out
}

// language enumerates every terminal string of at most maxLen tokens that g
// derives, joining tokens with spaces. g must have no empty productions, so
// a sentential form never derives a shorter string.
func language(g grammar.Grammar, maxLen int) frozen.Set[string] {
	lang := frozen.NewSet[string]()
	seen := map[string]bool{}
	queue := [][]grammar.Symbol{{g.Start()}}
	for len(queue) > 0 {
		form := queue[0]
		queue = queue[1:]
		if len(form) > maxLen {
			continue
		}

		i := firstNonterminal(form)
		if i < 0 {
			words := make([]string, 0, len(form))
			for _, s := range form {
				words = append(words, s.Name())
			}
			lang = lang.With(strings.Join(words, " "))
			continue
		}

		for _, p := range g.ProductionsFor(grammar.Nonterminal(form[i].Name())) {
			next := make([]grammar.Symbol, 0, len(form)+len(p.Rhs)-1)
			next = append(next, form[:i]...)
			next = append(next, p.Rhs...)
			next = append(next, form[i+1:]...)
			if key := grammar.NewProduction("", next...).Key(); !seen[key] {
				seen[key] = true
				queue = append(queue, next)
			}
		}
	}
	return lang
}

func firstNonterminal(form []grammar.Symbol) int {
	for i, s := range form {
		if !s.IsTerminal() {
			return i
		}
	}
	return -1
}

func sorted(s frozen.Set[string]) []string {
	return s.OrderedElements(func(a, b string) bool { return a < b })
}

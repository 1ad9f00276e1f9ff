package cfg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arr-ai/cnf/grammar"
)

// Write renders g in the notation read by Parse: a start directive followed
// by one production per line, in grammar order.
func Write(w io.Writer, g grammar.Grammar) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%% start %s\n", g.Start()); err != nil {
		return err
	}
	for _, p := range g.Productions() {
		line, err := formatProduction(p)
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes g to path, replacing any existing file.
func WriteFile(path string, g grammar.Grammar) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing grammar: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("writing grammar: %w", cerr)
		}
	}()
	if err := Write(f, g); err != nil {
		return fmt.Errorf("writing grammar: %w", err)
	}
	return nil
}

func formatProduction(p grammar.Production) (string, error) {
	parts := make([]string, 0, len(p.Rhs))
	for _, sym := range p.Rhs {
		switch sym := sym.(type) {
		case grammar.Terminal:
			q, err := sym.Quote()
			if err != nil {
				return "", fmt.Errorf("%s: %w", p.Lhs, err)
			}
			parts = append(parts, q)
		default:
			parts = append(parts, sym.String())
		}
	}
	return p.Lhs.String() + " -> " + strings.Join(parts, " "), nil
}

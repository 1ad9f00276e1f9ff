package cfg

import (
	"fmt"

	"github.com/arr-ai/cnf/gotree"
	"github.com/arr-ai/cnf/parse"
)

// SyntaxError is a problem at one position of a grammar source.
type SyntaxError struct {
	Location string
	Msg      string
}

func syntaxErrorf(at parse.Scanner, format string, args ...interface{}) error {
	return SyntaxError{Location: at.Location(), Msg: fmt.Sprintf(format, args...)}
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s - %s", e.Location, e.Msg)
}

// LoadError collects every problem found in one grammar source.
type LoadError struct {
	Filename string
	Errors   []error
}

func (e *LoadError) Error() string {
	title := "grammar load failed"
	if e.Filename != "" {
		title += ": " + e.Filename
	}
	tree := gotree.New(title)
	for _, err := range e.Errors {
		tree.Add(err.Error())
	}
	return "\n" + tree.Print()
}

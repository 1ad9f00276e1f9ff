package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/cnf/cfg"
	"github.com/arr-ai/cnf/cnf"
	"github.com/arr-ai/cnf/errors"
)

func convert(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: %s %s (got %d arguments)", c.App.Name, c.App.ArgsUsage, c.NArg())
	}
	inFile, outFile := c.Args().Get(0), c.Args().Get(1)

	g, err := cfg.Load(inFile)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file":        inFile,
		"start":       g.Start(),
		"productions": g.Len(),
	}).Debug("loaded grammar")

	normal, err := cnf.ToCNF(g)
	if err != nil {
		return fmt.Errorf("%s: %w", inFile, err)
	}
	if err := cnf.IsCNF(normal); err != nil {
		panic(fmt.Errorf("%w: %v", errors.Inconceivable, err))
	}

	if err := cfg.WriteFile(outFile, normal); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file":        outFile,
		"productions": normal.Len(),
	}).Debug("wrote grammar")

	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func Main(info VersionTags) {
	if err := NewApp(info).Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// NewApp returns the cnf command line application.
func NewApp(info VersionTags) *cli.App {
	app := cli.NewApp()

	app.Name = "cnf"
	app.Usage = "convert a context-free grammar to Chomsky normal form"
	app.ArgsUsage = "INPUT OUTPUT"
	app.Version = fmt.Sprintf("%s (commit %s, built %s on %s)",
		info.Version, info.GitCommit, info.BuildDate, info.BuildOS)

	app.Action = convert

	return app
}

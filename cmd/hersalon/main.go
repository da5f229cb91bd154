package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "hersalon",
		Usage: "HERSALON | Inner Circle marketing site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-prefix",
				Aliases: []string{"p"},
				Usage:   "Environment variable prefix (unprefixed names are still read)",
				Value:   "APP",
			},
		},
		Commands: []*cli.Command{
			serveCommand,
			applyCommand,
			configCommand,
			keysCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}

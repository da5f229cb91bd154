package main

import (
	"fmt"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

const masked = "********"

var configCommand = &cli.Command{
	Name:  "config",
	Usage: "Print the resolved configuration with secrets masked",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "no-color", Usage: "Disable colored output"},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c.String("env-prefix"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out := *cfg
		for _, secret := range []*string{&out.ApplyEndpointKey, &out.CookieHashKey, &out.CookieBlockKey} {
			if *secret != "" {
				*secret = masked
			}
		}

		printer := pp.New()
		printer.SetColoringEnabled(!c.Bool("no-color"))
		_, err = printer.Println(out)
		return err
	},
}

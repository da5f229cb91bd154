package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"hersalon/internal/leadform"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var applyCommand = &cli.Command{
	Name:  "apply",
	Usage: "Send one application to the configured lead endpoint",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "Full name", Required: true},
		&cli.StringFlag{Name: "phone", Usage: "Phone number", Required: true},
		&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
		&cli.BoolFlag{Name: "can-attend", Usage: "Confirm the weekly in-person meeting"},
	},
	Action: func(c *cli.Context) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		cfg, err := loadConfig(c.String("env-prefix"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		submitter, err := newSubmitter(cfg)
		if err != nil {
			return err
		}

		ctrl := leadform.NewController(ctx, submitter)
		defer ctrl.Close()

		ctrl.UpdateField(leadform.FieldFullName, c.String("name"))
		ctrl.UpdateField(leadform.FieldPhone, c.String("phone"))
		ctrl.UpdateField(leadform.FieldEmail, c.String("email"))
		ctrl.SetCanAttend(c.Bool("can-attend"))

		if problems := leadform.Problems(ctrl.Snapshot().Request); len(problems) > 0 {
			names := make([]string, len(problems))
			for i, p := range problems {
				names[i] = string(p)
			}
			return fmt.Errorf("application is not submittable, check: %s", strings.Join(names, ", "))
		}

		logrus.WithField("endpoint", submitter.Endpoint()).Info("sending application")

		if err := ctrl.Submit(ctx); err != nil {
			return fmt.Errorf("submission failed (status %s): %w", ctrl.Status(), err)
		}

		logrus.WithField("status", ctrl.Status()).Info("application sent")
		return nil
	},
}

// Package cli wires the predictord commands: a long-running assessment
// server and a one-shot terminal assessment.
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/chynaenye/microinsurance-predictor/pkg/observability"
)

// Run executes the predictord command line interface.
func Run(ctx context.Context, args []string, version string) error {
	var logLevel string
	var logFormat string

	app := &cli.Command{
		Name:    "predictord",
		Usage:   "Microinsurance beneficiary dropout risk predictor",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level (debug, info, warn, error)",
				Value:       "info",
				Sources:     cli.EnvVars("PREDICTOR_LOG_LEVEL"),
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format (json, text)",
				Value:       "json",
				Sources:     cli.EnvVars("PREDICTOR_LOG_FORMAT"),
				Destination: &logFormat,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			observability.InitLogger(observability.LogConfig{
				Level:  logLevel,
				Format: logFormat,
			})
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(version),
			cmdAssess(),
		},
	}

	return app.Run(ctx, args)
}

package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/continuum/pkg/service/export"
	"github.com/urfave/cli/v3"
)

// Export holds the CLI flag for the report destination
type Export struct {
	destination string
}

func (x *Export) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "export",
			Usage:       "Report destination: a local directory, gs://bucket/prefix or s3://bucket/prefix",
			Category:    "Report",
			Sources:     cli.EnvVars("CONTINUUM_EXPORT"),
			Destination: &x.destination,
		},
	}
}

func (x Export) LogValue() slog.Value {
	return slog.StringValue(x.destination)
}

// Configure returns the report sink, or nil when no destination is given
func (x *Export) Configure(ctx context.Context) (export.Sink, error) {
	if x.destination == "" {
		return nil, nil
	}
	return export.New(ctx, x.destination)
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var format string
	var appCfg appConfig

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format [summary|markdown|json]",
			Value:       "summary",
			Sources:     cli.EnvVars("CONTINUUM_REPORT_FORMAT"),
			Destination: &format,
		},
	}
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Compile the compliance report, print it and publish it to the configured targets",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := appCfg.build(ctx)
			if err != nil {
				return err
			}
			defer closeRepository(repo)

			state, err := uc.Initialize(ctx)
			if err != nil {
				return err
			}

			report := uc.Report.Compile(state)
			w := output(c)

			switch format {
			case "summary":
				printSummary(w, report)
			case "markdown":
				md, err := uc.Report.Markdown(report)
				if err != nil {
					return err
				}
				_, _ = w.Write(md)
			case "json":
				encoder := json.NewEncoder(w)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(report); err != nil {
					return goerr.Wrap(err, "failed to encode report")
				}
			default:
				return goerr.New("unsupported report format", goerr.V("format", format))
			}

			if _, err := uc.Report.Publish(ctx, report); err != nil {
				return err
			}
			return nil
		},
	}
}

func printSummary(w io.Writer, r *model.Report) {
	title := color.New(color.Bold, color.FgCyan)
	label := color.New(color.Bold)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed, color.Bold)

	_, _ = title.Fprintf(w, "Business Continuity Report: %s\n", r.Organization)
	_, _ = fmt.Fprintf(w, "%s, generated %s\n\n", r.Standard, r.GeneratedAt.Format("2006-01-02"))

	_, _ = label.Fprintln(w, "Executive Summary")
	_, _ = fmt.Fprintf(w, "  Total activities:   %d (%d critical)\n", r.TotalActivities, r.CriticalActivities)
	_, _ = fmt.Fprintf(w, "  High risks:         %d\n", r.HighRisks)
	_, _ = fmt.Fprintf(w, "  Strategy coverage:  %s\n", percent(r.Coverage, ok, warn, bad))
	_, _ = fmt.Fprintf(w, "  Readiness:          %s\n\n", percent(r.Readiness, ok, warn, bad))

	_, _ = label.Fprintln(w, "Critical Activities & Strategies")
	if len(r.KeyActivities) == 0 {
		_, _ = fmt.Fprintln(w, "  No Critical or High priority activities recorded.")
	}
	for _, a := range r.KeyActivities {
		strategy := bad.Sprint("none selected")
		if a.HasStrategy() {
			strategy = fmt.Sprintf("%s (%s)", a.StrategyName, a.RTOAchievable)
		}
		_, _ = fmt.Fprintf(w, "  - %s [%s, %s] RTO %s: %s\n", a.Name, a.Department, a.Priority, a.RTO, strategy)
	}
	_, _ = fmt.Fprintln(w)

	_, _ = label.Fprintln(w, "Risk Register Highlights")
	if len(r.RiskHighlights) == 0 {
		_, _ = fmt.Fprintln(w, "  No high risks recorded.")
	}
	for _, h := range r.RiskHighlights {
		level := warn.Sprint(h.Level)
		if h.Level == types.RiskLevelCritical {
			level = bad.Sprint(h.Level)
		}
		_, _ = fmt.Fprintf(w, "  - %s: %s (score %d, %s)\n", h.Category, h.Description, h.Score, level)
	}
}

func percent(v int, ok, warn, bad *color.Color) string {
	switch {
	case v >= 80:
		return ok.Sprintf("%d%%", v)
	case v >= 50:
		return warn.Sprintf("%d%%", v)
	default:
		return bad.Sprintf("%d%%", v)
	}
}

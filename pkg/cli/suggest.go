package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdSuggest() *cli.Command {
	var appCfg appConfig

	return &cli.Command{
		Name:      "suggest",
		Usage:     "Draft description and recovery objectives of an activity with AI",
		ArgsUsage: "<activity name> <department>",
		Flags:     appCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return goerr.New("activity name and department are required", goerr.V("args", c.Args().Slice()))
			}

			uc, repo, err := appCfg.build(ctx)
			if err != nil {
				return err
			}
			defer closeRepository(repo)

			if !uc.Suggestion.Enabled() {
				return goerr.New("AI suggestions are disabled, set --gemini-project")
			}

			s, err := uc.Suggestion.Suggest(ctx, c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return err
			}

			w := output(c)
			label := color.New(color.Bold)
			_, _ = label.Fprint(w, "Description: ")
			_, _ = fmt.Fprintln(w, s.Description)
			_, _ = label.Fprint(w, "RTO: ")
			_, _ = fmt.Fprintln(w, s.RTO)
			_, _ = label.Fprint(w, "RPO: ")
			_, _ = fmt.Fprintln(w, s.RPO)
			_, _ = label.Fprint(w, "Impact: ")
			_, _ = fmt.Fprintln(w, s.ImpactNarrative)
			if len(s.SuggestedResources) > 0 {
				_, _ = label.Fprintln(w, "Resources:")
				for _, r := range s.SuggestedResources {
					_, _ = fmt.Fprintf(w, "  - %s\n", r)
				}
			}
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var appCfg appConfig

	return &cli.Command{
		Name:  "seed",
		Usage: "Initialize the store, writing the starter records when it is empty",
		Flags: appCfg.Flags(),
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

			w := output(c)
			bold := color.New(color.Bold)
			_, _ = bold.Fprintln(w, "Store initialized")
			_, _ = fmt.Fprintf(w, "  resources:  %d\n", len(state.Resources))
			_, _ = fmt.Fprintf(w, "  activities: %d\n", len(state.Activities))
			_, _ = fmt.Fprintf(w, "  risks:      %d\n", len(state.Risks))
			_, _ = fmt.Fprintf(w, "  strategies: %d\n", len(state.Strategies))
			return nil
		},
	}
}

/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/savortool/savor/pkg/mealie"
	"github.com/savortool/savor/pkg/organizer"
	"github.com/savortool/savor/pkg/suggest"
)

func categorizeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "auto-categorize-recipes",
		EnableShellCompletion: true,
		Usage:                 "Assign AI-suggested categories to uncategorized recipes",
		Description: `Fetch every recipe and, for each one without a category, ask the
configured AI model to pick the best fit from the categories defined on
the server. Suggestions are matched against the server's category names;
a recipe is only updated on a confident match. Recipes that already have
a category are left alone.

Recipes are processed one at a time. A failure on one recipe is logged
and skipped while the run continues. The run report can be output in
JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Process at most N recipes, leaving the rest pending (0 = no limit)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := setup()
			if err != nil {
				return err
			}

			org := organizer.New(
				mealie.NewClient(cfg.Mealie),
				suggest.NewEngine(cfg.Ollama),
			)

			report, err := org.AutoCategorize(ctx, int(cmd.Int("limit")))
			if err != nil {
				return err
			}

			return writeOut(outFormat, cmd.String("output"), report)
		},
	}
}

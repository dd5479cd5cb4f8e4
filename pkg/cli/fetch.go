/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/savortool/savor/pkg/mealie"
)

func fetchRecipesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "fetch-recipes",
		EnableShellCompletion: true,
		Usage:                 "List all recipes on the recipe server",
		Description: `Fetch every recipe from the configured recipe server, following
pagination until the full catalog is retrieved.

The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
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

			recipes, err := mealie.NewClient(cfg.Mealie).FetchRecipes(ctx)
			if err != nil {
				return err
			}

			return writeOut(outFormat, cmd.String("output"), recipes)
		},
	}
}

func fetchCategoriesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "fetch-categories",
		EnableShellCompletion: true,
		Usage:                 "List all recipe categories on the recipe server",
		Description: `Fetch every category defined on the configured recipe server.

The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
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

			categories, err := mealie.NewClient(cfg.Mealie).FetchCategories(ctx)
			if err != nil {
				return err
			}

			return writeOut(outFormat, cmd.String("output"), categories)
		},
	}
}

func fetchTagsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "fetch-tags",
		EnableShellCompletion: true,
		Usage:                 "List all recipe tags on the recipe server",
		Description: `Fetch every tag defined on the configured recipe server.

The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
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

			tags, err := mealie.NewClient(cfg.Mealie).FetchTags(ctx)
			if err != nil {
				return err
			}

			return writeOut(outFormat, cmd.String("output"), tags)
		},
	}
}

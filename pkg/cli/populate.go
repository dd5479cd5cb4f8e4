/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/savortool/savor/pkg/mealie"
	"github.com/savortool/savor/pkg/organizer"
	"github.com/savortool/savor/pkg/suggest"
)

func populateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "populate-categories",
		EnableShellCompletion: true,
		Usage:                 "Create categories on the recipe server from a file",
		Description: `Read category names from a file, one per line, and create each one
that does not already exist on the server. Blank lines are skipped and
names that already exist are left unchanged.

The import report can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to the category list (one name per line)",
				Required: true,
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

			path := cmd.String("file")
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open category list %q: %w", path, err)
			}
			defer func() {
				if err := file.Close(); err != nil {
					slog.Warn("failed to close category list", "path", path, "error", err)
				}
			}()

			org := organizer.New(
				mealie.NewClient(cfg.Mealie),
				suggest.NewEngine(cfg.Ollama),
			)

			report, err := org.PopulateCategories(ctx, file)
			if err != nil {
				return err
			}

			return writeOut(outFormat, cmd.String("output"), report)
		},
	}
}

/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/savortool/savor/pkg/mealie"
	"github.com/savortool/savor/pkg/organizer"
	"github.com/savortool/savor/pkg/suggest"
)

func tagCmd() *cli.Command {
	return &cli.Command{
		Name:                  "auto-tag",
		EnableShellCompletion: true,
		Usage:                 "Apply a tag to the recipes the AI model says it fits",
		Description: `Check every recipe against a single tag: the configured AI model is
asked, per recipe, whether the tag describes it based on its name,
description, and ingredients. Matching recipes are listed and the tag is
applied after confirmation (or immediately with --yes).

Recipes that already carry the tag are not re-checked. The run report
can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "tag",
				Usage:    "Tag name to check and apply (must exist on the server)",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Check at most N recipes, leaving the rest pending (0 = no limit)",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Apply the tag without asking for confirmation",
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

			tag := cmd.String("tag")
			scan, err := org.ScanForTag(ctx, tag, int(cmd.Int("limit")))
			if err != nil {
				return err
			}

			if len(scan.Matches) == 0 {
				fmt.Fprintf(cmd.Writer, "No recipes matched tag %q (%d checked).\n", tag, scan.Checked)
				return nil
			}

			fmt.Fprintf(cmd.Writer, "Recipes matching tag %q:\n", tag)
			for _, recipe := range scan.Matches {
				fmt.Fprintf(cmd.Writer, "  - %s\n", recipe.Name)
			}

			if !cmd.Bool("yes") {
				prompt := fmt.Sprintf("Apply tag %q to %d recipe(s)?", tag, len(scan.Matches))
				if !confirm(cmd.Reader, cmd.Writer, prompt) {
					fmt.Fprintln(cmd.Writer, "Aborted, no changes made.")
					return nil
				}
			}

			report := org.ApplyTag(ctx, tag, scan.Matches)
			return writeOut(outFormat, cmd.String("output"), report)
		},
	}
}

// confirm asks a yes/no question and reads a single line answer. Anything
// other than y/yes declines.
func confirm(r io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

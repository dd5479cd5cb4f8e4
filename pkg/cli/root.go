/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/savortool/savor/pkg/config"
	"github.com/savortool/savor/pkg/logging"
	"github.com/savortool/savor/pkg/serializer"
)

const (
	name           = "savor"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write output to file (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %v)",
			serializer.SupportedFormats()),
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "AI-assisted recipe organization for Mealie",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			fetchRecipesCmd(),
			fetchCategoriesCmd(),
			fetchTagsCmd(),
			categorizeCmd(),
			tagCmd(),
			populateCmd(),
		},
	}
}

// Run executes the CLI and returns the process exit code.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, args); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintln(os.Stderr, "canceled")
			return 2
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// setup loads the configuration and wires the default logger. Called at
// the top of every command action; configuration errors are fatal.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"mealie", cfg.Mealie.URL,
		"token", config.MaskToken(cfg.Mealie.APIToken),
		"ollama", cfg.Ollama.URL,
		"model", cfg.Ollama.Model)

	return cfg, nil
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %v)",
			f, serializer.SupportedFormats())
	}
	return f, nil
}

// writeOut serializes data to the --output destination, or stdout.
func writeOut(format serializer.Format, path string, data any) error {
	w := serializer.NewFileWriterOrStdout(format, path)
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output writer", "error", err)
		}
	}()
	return w.Serialize(data)
}

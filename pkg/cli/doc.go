// Package cli implements the command-line interface for the savor tool.
//
// # Overview
//
// The savor CLI organizes a Mealie recipe collection with help from a
// locally hosted AI model: it fetches recipes and organizer labels,
// asks the model for category and tag suggestions, resolves the model's
// free text against the labels actually defined on the server, and
// writes the assignments back.
//
// # Commands
//
// fetch-recipes - List all recipes:
//
//	savor fetch-recipes [--output FILE] [--format yaml|json|table]
//
// Fetches the full recipe catalog, following pagination. Output defaults
// to stdout in YAML format.
//
// fetch-categories, fetch-tags - List organizer labels:
//
//	savor fetch-categories
//	savor fetch-tags
//
// auto-categorize-recipes - Assign AI-suggested categories:
//
//	savor auto-categorize-recipes [--limit N] [--output report.yaml]
//
// Asks the model to pick a category for each uncategorized recipe and
// applies confident matches. Produces a run report listing each recipe
// as processed, skipped, or pending.
//
// auto-tag - Apply a tag where the model says it fits:
//
//	savor auto-tag --tag vegetarian [--limit N] [--yes]
//
// Checks every recipe against a single tag, lists the matches, and
// applies the tag after confirmation. --yes skips the prompt.
//
// populate-categories - Import categories from a file:
//
//	savor populate-categories --file categories.txt
//
// Creates each listed category that does not already exist.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	MEALIE_URL        Recipe server base URL
//	MEALIE_API_TOKEN  Recipe server API token
//	MEALIE_PAGE_SIZE  Recipes fetched per page
//	OLLAMA_URL        AI service base URL
//	OLLAMA_MODEL      Model name to query
//	OLLAMA_TIMEOUT    Per-request AI timeout
//	LOG_LEVEL         Logging verbosity (debug, info, warn, error)
//
// A .env file in the working directory is loaded if present.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/mealie - Recipe server client
//   - pkg/suggest - AI suggestion engine
//   - pkg/matcher - Free-text to label resolution
//   - pkg/organizer - Run orchestration
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/savortool/savor/pkg/cli.version=1.0.0'"
package cli

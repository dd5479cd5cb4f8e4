/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package organizer

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/savortool/savor/pkg/errors"
)

// PopulateReport summarizes a category import.
type PopulateReport struct {
	Created  []string `json:"created,omitempty" yaml:"created,omitempty"`
	Existing []string `json:"existing,omitempty" yaml:"existing,omitempty"`
	Failed   []string `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// PopulateCategories reads category names from r, one per line, and
// creates each one that does not already exist on the server. Blank lines
// are ignored, surrounding whitespace is trimmed, and names that already
// exist (on the server or earlier in the input) are left unchanged without
// raising an error. A failed create is logged and the import continues.
func (o *Organizer) PopulateCategories(ctx context.Context, r io.Reader) (*PopulateReport, error) {
	existing, err := o.dir.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(existing))
	for _, cat := range existing {
		known[strings.ToLower(cat.Name)] = true
	}

	report := &PopulateReport{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}

		if known[strings.ToLower(name)] {
			slog.Debug("category exists", "category", name)
			report.Existing = append(report.Existing, name)
			continue
		}

		if _, err := o.dir.CreateCategory(ctx, name); err != nil {
			slog.Warn("failed to create category", "category", name, "error", err)
			report.Failed = append(report.Failed, name)
			continue
		}
		known[strings.ToLower(name)] = true
		report.Created = append(report.Created, name)
		slog.Info("category created", "category", name)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "reading category list", err)
	}

	slog.Info("populate finished",
		"created", len(report.Created),
		"existing", len(report.Existing),
		"failed", len(report.Failed))

	return report, nil
}

/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package organizer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/savortool/savor/pkg/mealie"
)

// TagScan is the result of checking the catalog against a single tag.
// Matches hold the recipes the suggestion engine judged to carry the tag;
// nothing has been written yet.
type TagScan struct {
	Tag     string          `json:"tag" yaml:"tag"`
	Checked int             `json:"checked" yaml:"checked"`
	Pending int             `json:"pending" yaml:"pending"`
	Matches []mealie.Recipe `json:"matches" yaml:"matches"`
}

// ScanForTag fetches all recipes and asks the suggestion engine, one
// recipe at a time, whether tag applies. Recipes that already carry the
// tag are not re-checked. A positive limit bounds how many recipes are
// examined; per-recipe failures are logged and the scan continues.
func (o *Organizer) ScanForTag(ctx context.Context, tag string, limit int) (*TagScan, error) {
	recipes, err := o.dir.FetchRecipes(ctx)
	if err != nil {
		return nil, err
	}

	scan := &TagScan{Tag: tag}
	for _, recipe := range recipes {
		if limit > 0 && scan.Checked >= limit {
			scan.Pending++
			continue
		}
		if hasTag(recipe, tag) {
			slog.Debug("recipe already tagged", "recipe", recipe.Name, "tag", tag)
			continue
		}
		scan.Checked++

		applies, err := o.ai.TagApplies(ctx, recipe, tag)
		if err != nil {
			slog.Warn("tag check failed", "recipe", recipe.Name, "tag", tag, "error", err)
			continue
		}
		if applies {
			slog.Info("tag match", "recipe", recipe.Name, "tag", tag)
			scan.Matches = append(scan.Matches, recipe)
		}
	}

	slog.Info("tag scan finished",
		"tag", tag,
		"checked", scan.Checked,
		"matches", len(scan.Matches),
		"pending", scan.Pending)

	return scan, nil
}

// ApplyTag adds tag to each of the given recipes. Failed updates are
// logged and counted as skipped; the rest of the batch still applies.
func (o *Organizer) ApplyTag(ctx context.Context, tag string, recipes []mealie.Recipe) *Report {
	report := &Report{Total: len(recipes)}
	for _, recipe := range recipes {
		res := RecipeResult{Recipe: recipe.Name, Slug: recipe.Slug}
		if err := o.dir.AddRecipeTag(ctx, recipe.Slug, tag); err != nil {
			res.State = StateSkipped
			res.Reason = "update failed"
			slog.Warn("failed to tag recipe", "recipe", recipe.Name, "tag", tag, "error", err)
		} else {
			res.State = StateProcessed
			slog.Info("recipe tagged", "recipe", recipe.Name, "tag", tag)
		}
		report.add(res)
	}
	return report
}

func hasTag(recipe mealie.Recipe, tag string) bool {
	for _, t := range recipe.Tags {
		if strings.EqualFold(t.Name, tag) {
			return true
		}
	}
	return false
}

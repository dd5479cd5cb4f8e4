/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package organizer

import (
	"context"
	"log/slog"

	"github.com/savortool/savor/pkg/matcher"
	"github.com/savortool/savor/pkg/mealie"
)

// State tracks the outcome of a recipe within a run.
type State string

const (
	// StatePending means the recipe was not examined, e.g. because the
	// processing limit was reached first.
	StatePending State = "pending"
	// StateProcessed means a suggestion was applied to the recipe.
	StateProcessed State = "processed"
	// StateSkipped means the recipe was examined but left unchanged.
	StateSkipped State = "skipped"
)

// Directory is the subset of the recipe server client the organizer uses.
type Directory interface {
	FetchRecipes(ctx context.Context) ([]mealie.Recipe, error)
	FetchCategories(ctx context.Context) ([]mealie.Category, error)
	CreateCategory(ctx context.Context, name string) (*mealie.Category, error)
	SetRecipeCategories(ctx context.Context, slug string, categories []mealie.Category) error
	AddRecipeTag(ctx context.Context, slug, tagName string) error
}

// Suggester is the subset of the suggestion engine the organizer uses.
type Suggester interface {
	SuggestCategory(ctx context.Context, recipeName string, candidates []string) (string, error)
	TagApplies(ctx context.Context, recipe mealie.Recipe, tag string) (bool, error)
}

// RecipeResult records the outcome for a single recipe.
type RecipeResult struct {
	Recipe   string `json:"recipe" yaml:"recipe"`
	Slug     string `json:"slug" yaml:"slug"`
	State    State  `json:"state" yaml:"state"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Reason   string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Report summarizes a categorization run.
type Report struct {
	Total     int            `json:"total" yaml:"total"`
	Processed int            `json:"processed" yaml:"processed"`
	Skipped   int            `json:"skipped" yaml:"skipped"`
	Pending   int            `json:"pending" yaml:"pending"`
	Results   []RecipeResult `json:"results" yaml:"results"`
}

func (r *Report) add(res RecipeResult) {
	r.Results = append(r.Results, res)
	switch res.State {
	case StateProcessed:
		r.Processed++
	case StateSkipped:
		r.Skipped++
	case StatePending:
		r.Pending++
	}
}

// Organizer drives suggestion runs against the recipe server. Processing
// is strictly sequential: each recipe's suggestion and write complete
// before the next recipe begins.
type Organizer struct {
	dir Directory
	ai  Suggester
}

// New creates an Organizer.
func New(dir Directory, ai Suggester) *Organizer {
	return &Organizer{dir: dir, ai: ai}
}

// AutoCategorize fetches all recipes and assigns each uncategorized one
// the category the suggestion engine picks, resolved through the matcher.
// A positive limit bounds how many recipes are examined; the rest stay
// pending. Per-recipe failures are logged and skipped, the run continues.
func (o *Organizer) AutoCategorize(ctx context.Context, limit int) (*Report, error) {
	categories, err := o.dir.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		slog.Warn("no categories defined on server, nothing to assign")
	}

	// Candidate order is the server's listing order; the matcher
	// tie-breaks on it.
	names := make([]string, 0, len(categories))
	byName := make(map[string]mealie.Category, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
		byName[cat.Name] = cat
	}

	recipes, err := o.dir.FetchRecipes(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Total: len(recipes)}
	for i, recipe := range recipes {
		if limit > 0 && i >= limit {
			report.add(RecipeResult{
				Recipe: recipe.Name,
				Slug:   recipe.Slug,
				State:  StatePending,
				Reason: "limit reached",
			})
			continue
		}

		report.add(o.categorizeOne(ctx, recipe, names, byName))
	}

	slog.Info("auto-categorize finished",
		"total", report.Total,
		"processed", report.Processed,
		"skipped", report.Skipped,
		"pending", report.Pending)

	return report, nil
}

func (o *Organizer) categorizeOne(ctx context.Context, recipe mealie.Recipe, names []string, byName map[string]mealie.Category) RecipeResult {
	res := RecipeResult{Recipe: recipe.Name, Slug: recipe.Slug}

	if len(recipe.Categories) > 0 {
		res.State = StateSkipped
		res.Reason = "already categorized"
		slog.Debug("skipping categorized recipe", "recipe", recipe.Name)
		return res
	}

	suggestion, err := o.ai.SuggestCategory(ctx, recipe.Name, names)
	if err != nil {
		res.State = StateSkipped
		res.Reason = "suggestion failed"
		slog.Warn("suggestion failed", "recipe", recipe.Name, "error", err)
		return res
	}

	name, ok := matcher.Match(suggestion, names)
	if !ok {
		res.State = StateSkipped
		res.Reason = "no confident match"
		slog.Info("no confident match", "recipe", recipe.Name, "suggestion", suggestion)
		return res
	}

	category := byName[name]
	if err := o.dir.SetRecipeCategories(ctx, recipe.Slug, []mealie.Category{category}); err != nil {
		res.State = StateSkipped
		res.Reason = "update failed"
		slog.Warn("failed to update recipe", "recipe", recipe.Name, "category", name, "error", err)
		return res
	}

	res.State = StateProcessed
	res.Category = name
	slog.Info("recipe categorized", "recipe", recipe.Name, "category", name)
	return res
}

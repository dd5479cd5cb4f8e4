/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package mealie

import "github.com/google/uuid"

// Category is a named label on the recipe server. Categories and tags are
// structurally identical but live in separate namespaces.
type Category struct {
	ID   uuid.UUID `json:"id" yaml:"id"`
	Name string    `json:"name" yaml:"name"`
	Slug string    `json:"slug" yaml:"slug"`
}

// Tag is a named label on the recipe server, assignable to recipes
// independently of categories.
type Tag struct {
	ID   uuid.UUID `json:"id" yaml:"id"`
	Name string    `json:"name" yaml:"name"`
	Slug string    `json:"slug" yaml:"slug"`
}

// Recipe is a read-only snapshot of a recipe as held by the server.
type Recipe struct {
	ID          uuid.UUID    `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Slug        string       `json:"slug" yaml:"slug"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Categories  []Category   `json:"recipeCategory" yaml:"categories"`
	Tags        []Tag        `json:"tags" yaml:"tags"`
	Ingredients []Ingredient `json:"recipeIngredient,omitempty" yaml:"ingredients,omitempty"`
	Image       string       `json:"image,omitempty" yaml:"image,omitempty"`
}

// Ingredient is a single recipe ingredient entry.
type Ingredient struct {
	Ingredient *IngredientFood `json:"ingredient,omitempty" yaml:"ingredient,omitempty"`
	Note       string          `json:"note,omitempty" yaml:"note,omitempty"`
}

// IngredientFood is the named food referenced by an ingredient entry.
type IngredientFood struct {
	Name string `json:"name" yaml:"name"`
}

// IngredientNames returns the non-empty ingredient names of r, capped at
// limit when limit is positive.
func (r Recipe) IngredientNames(limit int) []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if ing.Ingredient == nil || ing.Ingredient.Name == "" {
			continue
		}
		names = append(names, ing.Ingredient.Name)
		if limit > 0 && len(names) >= limit {
			break
		}
	}
	return names
}

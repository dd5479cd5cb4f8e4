/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/savortool/savor/pkg/config"
	"github.com/savortool/savor/pkg/errors"
	"github.com/savortool/savor/pkg/mealie"
)

const generatePath = "/api/generate"

// noneSentinel is what the model is instructed to answer when no category
// fits; it maps to an empty suggestion.
const noneSentinel = "NONE"

// maxPromptIngredients caps how many ingredient names are included in a
// tag-check prompt.
const maxPromptIngredients = 15

// generateRequest is the Ollama generate API request body.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse holds the relevant fields of the Ollama generate API
// response. Response is a pointer so a missing field can be told apart
// from an empty completion.
type generateResponse struct {
	Model     string  `json:"model"`
	CreatedAt string  `json:"created_at"`
	Response  *string `json:"response"`
	Done      bool    `json:"done"`
}

// Engine produces category and tag suggestions for recipes using a local
// Ollama text-generation service.
type Engine struct {
	rest  *resty.Client
	model string
}

// NewEngine creates a suggestion engine from the given configuration.
func NewEngine(cfg config.OllamaConfig) *Engine {
	rest := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout)

	return &Engine{
		rest:  rest,
		model: cfg.Model,
	}
}

// SuggestCategory asks the model which of the candidate category names
// best fits the named recipe. The returned string is the model's raw
// (trimmed) answer; an empty string means the model declined to pick one.
func (e *Engine) SuggestCategory(ctx context.Context, recipeName string, candidates []string) (string, error) {
	prompt := fmt.Sprintf(`Given the recipe name %q, select which of these categories it belongs to: %s

Return only the category name that best fits the recipe name
Return only the category name, no other text
`, recipeName, strings.Join(candidates, ", "))

	text, err := e.generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if strings.EqualFold(text, noneSentinel) {
		return "", nil
	}
	return text, nil
}

// TagApplies asks the model whether the given tag describes the recipe.
// The prompt includes the recipe name, description, and a bounded list of
// ingredient names.
func (e *Engine) TagApplies(ctx context.Context, recipe mealie.Recipe, tag string) (bool, error) {
	var ingredientText string
	if names := recipe.IngredientNames(maxPromptIngredients); len(names) > 0 {
		ingredientText = fmt.Sprintf("\nIngredients: %s", strings.Join(names, ", "))
	}

	prompt := fmt.Sprintf(`Based on this recipe, does it appear to be %s?

Recipe Name: %s
Description: %s%s

Answer with only "YES" or "NO", nothing else.
`, tag, recipe.Name, recipe.Description, ingredientText)

	text, err := e.generate(ctx, prompt)
	if err != nil {
		return false, err
	}

	return strings.HasPrefix(strings.ToUpper(text), "YES"), nil
}

// generate performs a single non-streaming generate call and returns the
// trimmed completion text.
func (e *Engine) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := e.rest.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Model:  e.model,
			Prompt: prompt,
			Stream: false,
		}).
		Post(generatePath)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSuggestion, "suggestion request failed", err)
	}
	if resp.IsError() {
		return "", errors.NewWithContext(errors.ErrCodeSuggestion,
			fmt.Sprintf("suggestion service returned %s", resp.Status()),
			map[string]any{"status": resp.StatusCode()})
	}

	var result generateResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", errors.Wrap(errors.ErrCodeSuggestion, "malformed suggestion response", err)
	}
	if result.Response == nil {
		return "", errors.New(errors.ErrCodeSuggestion, "suggestion response missing completion text")
	}

	return strings.TrimSpace(*result.Response), nil
}

/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package mealie

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/savortool/savor/pkg/config"
	"github.com/savortool/savor/pkg/errors"
)

const (
	recipesPath    = "/api/recipes"
	categoriesPath = "/api/organizers/categories"
	tagsPath       = "/api/organizers/tags"
)

// Client wraps the recipe server's REST API.
type Client struct {
	rest     *resty.Client
	pageSize int
}

// NewClient creates a recipe server client from the given configuration.
func NewClient(cfg config.MealieConfig) *Client {
	rest := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetHeader("Accept", "application/json")
	if cfg.APIToken != "" {
		rest.SetAuthToken(cfg.APIToken)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	return &Client{
		rest:     rest,
		pageSize: pageSize,
	}
}

// FetchRecipes fetches all recipes from the server, following pagination.
func (c *Client) FetchRecipes(ctx context.Context) ([]Recipe, error) {
	return fetchPaged[Recipe](ctx, c, recipesPath, "fetch recipes")
}

// FetchCategories fetches all categories from the server, following
// pagination.
func (c *Client) FetchCategories(ctx context.Context) ([]Category, error) {
	return fetchPaged[Category](ctx, c, categoriesPath, "fetch categories")
}

// FetchTags fetches all tags from the server.
func (c *Client) FetchTags(ctx context.Context) ([]Tag, error) {
	resp, err := c.rest.R().SetContext(ctx).Get(tagsPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRemote, "fetch tags", err)
	}
	if resp.IsError() {
		return nil, statusError("fetch tags", resp)
	}

	tags, _, err := decodeItems[Tag](resp.Body())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRemote, "fetch tags: decode response", err)
	}
	return tags, nil
}

// GetCategory fetches a single category by its identifier.
func (c *Client) GetCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	var cat Category
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&cat).
		Get(categoriesPath + "/" + id.String())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRemote, "get category", err)
	}
	if resp.IsError() {
		return nil, statusError("get category", resp)
	}
	return &cat, nil
}

// GetCategoryBySlug fetches a single category by its slug.
func (c *Client) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	var cat Category
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&cat).
		Get(categoriesPath + "/slug/" + slug)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRemote, "get category by slug", err)
	}
	if resp.IsError() {
		return nil, statusError("get category by slug", resp)
	}
	return &cat, nil
}

// CreateCategory creates a new category with the given name and returns
// the created category. The server rejects duplicate names; the caller
// decides whether that is an error.
func (c *Client) CreateCategory(ctx context.Context, name string) (*Category, error) {
	var cat Category
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]string{"name": name}).
		SetResult(&cat).
		Post(categoriesPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRemote, "create category", err)
	}
	if resp.IsError() {
		return nil, statusError("create category", resp)
	}
	return &cat, nil
}

// SetRecipeCategories replaces the category list of the recipe identified
// by slug.
func (c *Client) SetRecipeCategories(ctx context.Context, slug string, categories []Category) error {
	payload := make([]map[string]string, 0, len(categories))
	for _, cat := range categories {
		payload = append(payload, map[string]string{
			"id":   cat.ID.String(),
			"name": cat.Name,
			"slug": cat.Slug,
		})
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]any{"recipeCategory": payload}).
		Patch(recipesPath + "/" + slug)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRemote, "update recipe categories", err)
	}
	if resp.IsError() {
		return statusError("update recipe categories", resp)
	}
	return nil
}

// AddRecipeTag assigns the named tag to the recipe identified by slug.
// The tag must already exist on the server; names are matched
// case-insensitively.
func (c *Client) AddRecipeTag(ctx context.Context, slug, tagName string) error {
	tags, err := c.FetchTags(ctx)
	if err != nil {
		return err
	}

	var match *Tag
	for i := range tags {
		if strings.EqualFold(tags[i].Name, tagName) {
			match = &tags[i]
			break
		}
	}
	if match == nil {
		return errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("tag %q not found on server", tagName),
			map[string]any{"recipe": slug})
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]any{"tags": []Tag{*match}}).
		Patch(recipesPath + "/" + slug)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRemote, "tag recipe", err)
	}
	if resp.IsError() {
		return statusError("tag recipe", resp)
	}
	return nil
}

// fetchPaged walks the server's page/pageSize pagination until all items
// are retrieved. Servers that return a plain list instead of a page
// envelope are handled as a single page.
func fetchPaged[T any](ctx context.Context, c *Client, path, op string) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		resp, err := c.rest.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"page":     strconv.Itoa(page),
				"pageSize": strconv.Itoa(c.pageSize),
			}).
			Get(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRemote, op, err)
		}
		if resp.IsError() {
			return nil, statusError(op, resp)
		}

		items, total, err := decodeItems[T](resp.Body())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRemote, op+": decode response", err)
		}
		if len(items) == 0 {
			break
		}
		all = append(all, items...)

		// A plain list response has no envelope and therefore no
		// further pages; a paged response is done once total is met.
		if total < 0 || len(all) >= total {
			break
		}
	}
	return all, nil
}

// decodeItems decodes either a page envelope ({"items": [...], "total": N})
// or a plain JSON list. For plain lists the returned total is -1.
func decodeItems[T any](body []byte) ([]T, int, error) {
	var pg struct {
		Items []T `json:"items"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(body, &pg); err == nil && pg.Items != nil {
		return pg.Items, pg.Total, nil
	}

	var list []T
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, 0, err
	}
	return list, -1, nil
}

// statusError maps an HTTP error response to a structured error kind.
func statusError(op string, resp *resty.Response) error {
	msg := fmt.Sprintf("%s: server returned %s", op, resp.Status())
	ctx := map[string]any{
		"status": resp.StatusCode(),
		"body":   truncate(resp.String(), 512),
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return errors.NewWithContext(errors.ErrCodeUnauthorized, msg, ctx)
	case resp.StatusCode() == http.StatusNotFound:
		return errors.NewWithContext(errors.ErrCodeNotFound, msg, ctx)
	default:
		return errors.NewWithContext(errors.ErrCodeRemote, msg, ctx)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

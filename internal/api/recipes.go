package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dshills/recipectl/internal/schema"
)

// ListRecipes fetches GET /recipes.
func (c *Client) ListRecipes(ctx context.Context) ([]schema.Recipe, error) {
	return c.recipes(ctx, "/recipes")
}

// SearchRecipes asks the backend to filter by name via GET /recipes?name=.
func (c *Client) SearchRecipes(ctx context.Context, name string) ([]schema.Recipe, error) {
	q := url.Values{}
	q.Set("name", name)
	return c.recipes(ctx, "/recipes?"+q.Encode())
}

func (c *Client) recipes(ctx context.Context, path string) ([]schema.Recipe, error) {
	var items []schema.Recipe
	if err := c.getJSON(ctx, path, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []schema.Recipe{}
	}
	return items, nil
}

// CreateRecipe posts a new recipe. Only HTTP 201 counts as success.
func (c *Client) CreateRecipe(ctx context.Context, name, instructions string) error {
	body := schema.CreateRecipeRequest{Name: name, Instructions: instructions}
	_, err := c.expect(ctx, http.MethodPost, "/recipes", body, http.StatusCreated)
	return err
}

// UpdateRecipe replaces the instructions of /recipes/{id}. The name is not sent.
func (c *Client) UpdateRecipe(ctx context.Context, id schema.ID, instructions string) error {
	body := schema.UpdateRecipeRequest{Instructions: instructions}
	_, err := c.expect(ctx, http.MethodPut, "/recipes/"+url.PathEscape(id.String()), body, 0)
	return err
}

// DeleteRecipe deletes /recipes/{id}.
func (c *Client) DeleteRecipe(ctx context.Context, id schema.ID) error {
	_, err := c.expect(ctx, http.MethodDelete, "/recipes/"+url.PathEscape(id.String()), nil, 0)
	return err
}

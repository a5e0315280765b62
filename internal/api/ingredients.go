package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dshills/recipectl/internal/schema"
)

// ListIngredients fetches GET /ingredients.
func (c *Client) ListIngredients(ctx context.Context) ([]schema.Ingredient, error) {
	var items []schema.Ingredient
	if err := c.getJSON(ctx, "/ingredients", &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []schema.Ingredient{}
	}
	return items, nil
}

// CreateIngredient posts a new ingredient. Only HTTP 201 counts as success.
func (c *Client) CreateIngredient(ctx context.Context, name string) error {
	_, err := c.expect(ctx, http.MethodPost, "/ingredients", schema.CreateIngredientRequest{Name: name}, http.StatusCreated)
	return err
}

// DeleteIngredient deletes /ingredients/{id}.
func (c *Client) DeleteIngredient(ctx context.Context, id schema.ID) error {
	_, err := c.expect(ctx, http.MethodDelete, "/ingredients/"+url.PathEscape(id.String()), nil, 0)
	return err
}

package controller

import (
	"context"
	"sync"

	"github.com/dshills/recipectl/internal/page"
	"github.com/dshills/recipectl/internal/schema"
	"github.com/dshills/recipectl/internal/session"
	"github.com/dshills/recipectl/internal/view"
)

// IngredientAPI is the slice of the backend the ingredient page uses.
type IngredientAPI interface {
	ListIngredients(ctx context.Context) ([]schema.Ingredient, error)
	CreateIngredient(ctx context.Context, name string) error
	DeleteIngredient(ctx context.Context, id schema.ID) error
}

// IngredientForm holds the ingredient page inputs.
type IngredientForm struct {
	AddName    *page.Field
	DeleteName *page.Field
}

// IngredientController drives the admin-only ingredient page.
type IngredientController struct {
	base

	api  IngredientAPI
	Form IngredientForm
	List *view.List

	mu    sync.RWMutex
	cache []schema.Ingredient
}

// NewIngredientController returns a controller with empty fields, an empty
// cache and an empty "ingredient-list" container.
func NewIngredientController(a IngredientAPI, env Env) *IngredientController {
	return &IngredientController{
		base: newBase(env, "ingredients"),
		api:  a,
		Form: IngredientForm{AddName: page.NewField(""), DeleteName: page.NewField("")},
		List: view.NewList("ingredient-list"),
	}
}

// Load guards the page: only authenticated admins get the list fetched.
// Everyone else is alerted and redirected to the login page.
func (c *IngredientController) Load(ctx context.Context) error {
	if !session.Authenticated(c.env.Session) || !session.IsAdmin(c.env.Session) {
		c.alert("Access denied. Admins only.")
		c.redirect(c.env.loginPage())
		return ErrAccessDenied
	}
	return c.Fetch(ctx)
}

// Add creates the ingredient named in the add field. Only HTTP 201 counts as
// success, after which the field is cleared and the list refreshed.
func (c *IngredientController) Add(ctx context.Context) error {
	name := c.Form.AddName.Trimmed()
	if name == "" {
		return c.reject("Please enter an ingredient name.", ErrEmptyName)
	}

	c.setState(StateLoading)
	if err := c.api.CreateIngredient(ctx, name); err != nil {
		return c.fail("adding ingredient", err, "Failed to add ingredient.", "Error adding ingredient.")
	}
	c.setState(StateIdle)
	c.log.Info("ingredient added", "name", name)

	c.Form.AddName.Clear()
	return c.Fetch(ctx)
}

// Fetch replaces the cache with GET /ingredients and re-renders. On failure
// the cache keeps its previous value.
func (c *IngredientController) Fetch(ctx context.Context) error {
	c.setState(StateLoading)
	items, err := c.api.ListIngredients(ctx)
	if err != nil {
		return c.fail("loading ingredients", err, "Error loading ingredients.", "Error loading ingredients.")
	}
	c.setState(StateIdle)

	c.mu.Lock()
	c.cache = items
	c.mu.Unlock()
	c.log.Debug("ingredients loaded", "count", len(items))

	c.Render()
	return nil
}

// Delete removes the cached ingredient whose name matches the delete field,
// ignoring case. Nothing is sent when no cached name matches.
func (c *IngredientController) Delete(ctx context.Context) error {
	name := c.Form.DeleteName.Trimmed()
	if name == "" {
		return c.reject("Enter an ingredient name to delete.", ErrEmptyName)
	}

	target, ok := schema.FindIngredient(c.Cache(), name)
	if !ok {
		return c.reject("Ingredient not found.", ErrNotFound)
	}

	c.setState(StateLoading)
	if err := c.api.DeleteIngredient(ctx, target.ID); err != nil {
		return c.fail("deleting ingredient", err, "Failed to delete ingredient.", "Error deleting ingredient.")
	}
	c.setState(StateIdle)
	c.log.Info("ingredient deleted", "name", target.Name, "id", target.ID)

	c.Form.DeleteName.Clear()
	return c.Fetch(ctx)
}

// Render clears the container and appends one item per cached ingredient,
// in cache order.
func (c *IngredientController) Render() {
	items := c.Cache()
	c.List.Clear()
	for _, it := range items {
		c.List.Append(view.Item{Title: it.Name})
	}
}

// Cache returns a copy of the last successful fetch.
func (c *IngredientController) Cache() []schema.Ingredient {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]schema.Ingredient(nil), c.cache...)
}

package controller

import (
	"context"
	"sync"

	"github.com/dshills/recipectl/internal/page"
	"github.com/dshills/recipectl/internal/schema"
	"github.com/dshills/recipectl/internal/session"
	"github.com/dshills/recipectl/internal/view"
)

// RecipeAPI is the slice of the backend the recipe page uses.
type RecipeAPI interface {
	ListRecipes(ctx context.Context) ([]schema.Recipe, error)
	SearchRecipes(ctx context.Context, name string) ([]schema.Recipe, error)
	CreateRecipe(ctx context.Context, name, instructions string) error
	UpdateRecipe(ctx context.Context, id schema.ID, instructions string) error
	DeleteRecipe(ctx context.Context, id schema.ID) error
	Logout(ctx context.Context) (int, error)
}

// RecipeForm holds the recipe page inputs.
type RecipeForm struct {
	AddName            *page.Field
	AddInstructions    *page.Field
	UpdateName         *page.Field
	UpdateInstructions *page.Field
	DeleteName         *page.Field
	Search             *page.Field
}

// RecipeController drives the recipe page.
type RecipeController struct {
	base

	api  RecipeAPI
	Form RecipeForm
	List *view.List

	LogoutButton *view.Element
	AdminLink    *view.Element

	mu    sync.RWMutex
	cache []schema.Recipe
}

// NewRecipeController returns a controller with empty fields, an empty
// cache, an empty "recipe-list" container and hidden session controls.
func NewRecipeController(a RecipeAPI, env Env) *RecipeController {
	return &RecipeController{
		base: newBase(env, "recipes"),
		api:  a,
		Form: RecipeForm{
			AddName:            page.NewField(""),
			AddInstructions:    page.NewField(""),
			UpdateName:         page.NewField(""),
			UpdateInstructions: page.NewField(""),
			DeleteName:         page.NewField(""),
			Search:             page.NewField(""),
		},
		List:         view.NewList("recipe-list"),
		LogoutButton: view.NewElement("logout-button"),
		AdminLink:    view.NewElement("admin-link"),
	}
}

// Load sets control visibility from the session once, then fetches the
// list. Visibility is not re-evaluated later.
func (c *RecipeController) Load(ctx context.Context) error {
	if session.Authenticated(c.env.Session) {
		c.LogoutButton.Show()
	}
	if session.IsAdmin(c.env.Session) {
		c.AdminLink.Show()
	}
	return c.Fetch(ctx)
}

// Add creates a recipe from the add fields; both are required.
func (c *RecipeController) Add(ctx context.Context) error {
	name := c.Form.AddName.Trimmed()
	instructions := c.Form.AddInstructions.Trimmed()
	if err := required(name, instructions); err != nil {
		return c.reject("Please enter both name and instructions.", err)
	}

	c.setState(StateLoading)
	if err := c.api.CreateRecipe(ctx, name, instructions); err != nil {
		return c.fail("adding recipe", err, "Failed to add recipe.", "Error while adding recipe.")
	}
	c.setState(StateIdle)
	c.log.Info("recipe added", "name", name)

	c.Form.AddName.Clear()
	c.Form.AddInstructions.Clear()
	return c.Fetch(ctx)
}

// Update replaces the instructions of the cached recipe named in the update
// field. The recipe name itself is never changed.
func (c *RecipeController) Update(ctx context.Context) error {
	name := c.Form.UpdateName.Trimmed()
	instructions := c.Form.UpdateInstructions.Trimmed()
	if err := required(name, instructions); err != nil {
		return c.reject("Please provide recipe name and new instructions.", err)
	}

	target, ok := c.Find(name)
	if !ok {
		return c.reject("Recipe not found.", ErrNotFound)
	}

	c.setState(StateLoading)
	if err := c.api.UpdateRecipe(ctx, target.ID, instructions); err != nil {
		return c.fail("updating recipe", err, "Failed to update recipe.", "Error while updating recipe.")
	}
	c.setState(StateIdle)
	c.log.Info("recipe updated", "name", target.Name, "id", target.ID)

	c.Form.UpdateName.Clear()
	c.Form.UpdateInstructions.Clear()
	return c.Fetch(ctx)
}

// Delete removes the cached recipe named in the delete field.
func (c *RecipeController) Delete(ctx context.Context) error {
	name := c.Form.DeleteName.Trimmed()
	if name == "" {
		return c.reject("Please enter recipe name to delete.", ErrEmptyName)
	}

	target, ok := c.Find(name)
	if !ok {
		return c.reject("Recipe not found.", ErrNotFound)
	}

	c.setState(StateLoading)
	if err := c.api.DeleteRecipe(ctx, target.ID); err != nil {
		return c.fail("deleting recipe", err, "Failed to delete recipe.", "Error while deleting recipe.")
	}
	c.setState(StateIdle)
	c.log.Info("recipe deleted", "name", target.Name, "id", target.ID)

	c.Form.DeleteName.Clear()
	return c.Fetch(ctx)
}

// Fetch replaces the cache with GET /recipes and re-renders it.
func (c *RecipeController) Fetch(ctx context.Context) error {
	c.setState(StateLoading)
	items, err := c.api.ListRecipes(ctx)
	if err != nil {
		return c.fail("loading recipes", err, "Could not load recipes.", "Could not load recipes.")
	}
	c.setState(StateIdle)

	c.mu.Lock()
	c.cache = items
	c.mu.Unlock()
	c.log.Debug("recipes loaded", "count", len(items))

	c.RenderCache()
	return nil
}

// Search renders the cached recipes whose name contains the search term,
// ignoring case. An empty term renders the whole cache. The cache is not
// modified and the backend is not contacted.
func (c *RecipeController) Search() {
	term := c.Form.Search.Trimmed()
	c.Render(schema.FilterRecipes(c.Cache(), term))
}

// SearchRemote renders the backend's own name filter (GET /recipes?name=)
// without replacing the cache.
func (c *RecipeController) SearchRemote(ctx context.Context) error {
	term := c.Form.Search.Trimmed()
	if term == "" {
		c.RenderCache()
		return nil
	}

	c.setState(StateLoading)
	items, err := c.api.SearchRecipes(ctx, term)
	if err != nil {
		return c.fail("searching recipes", err, "Could not search recipes.", "Could not search recipes.")
	}
	c.setState(StateIdle)

	c.Render(items)
	return nil
}

// Logout posts to /logout. Once the request completes, whatever its status,
// the session is cleared and the user is sent to the login page. If the
// request never completes the user is alerted and stays logged in.
func (c *RecipeController) Logout(ctx context.Context) error {
	c.setState(StateLoading)
	code, err := c.api.Logout(ctx)
	if err != nil {
		return c.fail("logging out", err, "Logout failed.", "Logout failed.")
	}
	c.setState(StateIdle)
	c.log.Debug("logout response", "status", code)

	clearErr := c.env.Session.Clear()
	if clearErr != nil {
		c.log.Error("clearing session failed", "err", clearErr)
	}
	c.redirect(c.env.loginPage())
	return clearErr
}

// Render clears the container and appends one item per recipe, with the
// name as heading and the instructions as body.
func (c *RecipeController) Render(list []schema.Recipe) {
	c.List.Clear()
	for _, r := range list {
		c.List.Append(view.Item{Title: r.Name, Body: r.Instructions})
	}
}

// RenderCache renders the full cache.
func (c *RecipeController) RenderCache() {
	c.Render(c.Cache())
}

// Find returns the first cached recipe whose name matches, ignoring case.
func (c *RecipeController) Find(name string) (schema.Recipe, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return schema.FindRecipe(c.cache, name)
}

// Cache returns a copy of the last successful fetch.
func (c *RecipeController) Cache() []schema.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]schema.Recipe(nil), c.cache...)
}

func required(name, instructions string) error {
	if name == "" {
		return ErrEmptyName
	}
	if instructions == "" {
		return ErrEmptyInstructions
	}
	return nil
}

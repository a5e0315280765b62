package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ID is an opaque backend-assigned identifier. The backend may send it as a
// JSON number or a JSON string; the textual form is kept as-is.
type ID string

// UnmarshalJSON accepts both numeric and string IDs.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or string, got %s", data)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emits canonical integer IDs as JSON numbers and everything
// else as strings, so "007" or "+5" received as strings stay strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// canonicalInt matches integers written the way a JSON encoder would: no
// sign other than a leading minus, no leading zeros, no "-0".
var canonicalInt = regexp.MustCompile(`^(?:0|-?[1-9][0-9]*)$`)

func (id ID) numeric() bool {
	return canonicalInt.MatchString(string(id))
}

// String returns the textual form of the ID.
func (id ID) String() string { return string(id) }

// Ingredient is a named ingredient as stored by the backend.
type Ingredient struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Recipe is a named recipe with free-text instructions.
type Recipe struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
}

// CreateIngredientRequest is the body of POST /ingredients.
type CreateIngredientRequest struct {
	Name string `json:"name"`
}

// CreateRecipeRequest is the body of POST /recipes.
type CreateRecipeRequest struct {
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
}

// UpdateRecipeRequest is the body of PUT /recipes/{id}. The name is never sent.
type UpdateRecipeRequest struct {
	Instructions string `json:"instructions"`
}

// FindIngredient returns the first ingredient whose name equals name,
// ignoring case.
func FindIngredient(items []Ingredient, name string) (Ingredient, bool) {
	for _, it := range items {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return Ingredient{}, false
}

// FindRecipe returns the first recipe whose name equals name, ignoring case.
func FindRecipe(items []Recipe, name string) (Recipe, bool) {
	for _, r := range items {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Recipe{}, false
}

// FilterRecipes returns the recipes whose name contains term, ignoring case.
// An empty term returns items unchanged. The input slice is never modified.
func FilterRecipes(items []Recipe, term string) []Recipe {
	term = strings.ToLower(term)
	if term == "" {
		return items
	}
	out := make([]Recipe, 0, len(items))
	for _, r := range items {
		if strings.Contains(strings.ToLower(r.Name), term) {
			out = append(out, r)
		}
	}
	return out
}

package schema

import (
	"encoding/json"
	"testing"
)

func TestID_UnmarshalNumberAndString(t *testing.T) {
	var items []Ingredient
	if err := json.Unmarshal([]byte(`[{"id":1,"name":"Salt"},{"id":"abc-2","name":"Pepper"}]`), &items); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if items[0].ID != "1" {
		t.Errorf("numeric id = %q, want 1", items[0].ID)
	}
	if items[1].ID != "abc-2" {
		t.Errorf("string id = %q, want abc-2", items[1].ID)
	}
}

func TestID_UnmarshalRejectsObject(t *testing.T) {
	var r Recipe
	if err := json.Unmarshal([]byte(`{"id":{"x":1},"name":"Soup"}`), &r); err == nil {
		t.Error("expected error for object id, got nil")
	}
}

func TestID_MarshalKeepsNumbersNumeric(t *testing.T) {
	out, err := json.Marshal(Ingredient{ID: "7", Name: "Salt"})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"id":7,"name":"Salt"}` {
		t.Errorf("got %s", out)
	}

	out, err = json.Marshal(Ingredient{ID: "x7", Name: "Salt"})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"id":"x7","name":"Salt"}` {
		t.Errorf("got %s", out)
	}

	tests := []struct {
		id   ID
		want string
	}{
		{"0", `0`},
		{"-12", `-12`},
		{"007", `"007"`},
		{"+5", `"+5"`},
		{"-0", `"-0"`},
		{"1.5", `"1.5"`},
		{"123456789012345678901234567890", `123456789012345678901234567890`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.id)
		if err != nil {
			t.Errorf("Marshal(%q): %v", tt.id, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%q) = %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestID_RoundTripNonCanonicalStrings(t *testing.T) {
	in := `[{"id":"007","name":"Soup","instructions":"a"},{"id":"+5","name":"Stew","instructions":"b"},{"id":123456789012345678901234567890,"name":"Pie","instructions":"c"}]`
	var items []Recipe
	if err := json.Unmarshal([]byte(in), &items); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	out, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var again []Recipe
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("re-Unmarshal %s: %v", out, err)
	}
	for i := range items {
		if again[i].ID != items[i].ID {
			t.Errorf("item %d: id %q became %q", i, items[i].ID, again[i].ID)
		}
	}
}

func TestUpdateRecipeRequest_OmitsName(t *testing.T) {
	out, err := json.Marshal(UpdateRecipeRequest{Instructions: "Boil it"})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"instructions":"Boil it"}` {
		t.Errorf("got %s", out)
	}
}

func TestFindIngredient_CaseInsensitiveFirstMatch(t *testing.T) {
	items := []Ingredient{{ID: "1", Name: "Salt"}, {ID: "2", Name: "SALT"}}
	got, ok := FindIngredient(items, "salt")
	if !ok {
		t.Fatal("expected match")
	}
	if got.ID != "1" {
		t.Errorf("first match should win, got id %s", got.ID)
	}
	if _, ok := FindIngredient(items, "sal"); ok {
		t.Error("partial name must not match")
	}
}

func TestFindRecipe_NotFound(t *testing.T) {
	if _, ok := FindRecipe(nil, "Soup"); ok {
		t.Error("expected no match in empty list")
	}
}

func TestFilterRecipes(t *testing.T) {
	items := []Recipe{
		{ID: "1", Name: "Tomato Soup"},
		{ID: "2", Name: "Pancakes"},
		{ID: "3", Name: "soup of the day"},
	}

	got := FilterRecipes(items, "SOUP")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("FilterRecipes(SOUP) = %+v", got)
	}

	all := FilterRecipes(items, "")
	if len(all) != len(items) {
		t.Errorf("empty term should return all items, got %d", len(all))
	}

	if len(items) != 3 || items[1].Name != "Pancakes" {
		t.Error("input slice was modified")
	}
}

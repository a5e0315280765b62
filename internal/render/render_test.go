package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dshills/recipectl/internal/view"
)

func ingredientDoc() *Document {
	l := view.NewList("ingredient-list")
	l.Append(view.Item{Title: "Salt"})
	l.Append(view.Item{Title: "Pepper"})
	return Snapshot("Ingredients", l, false)
}

func recipeDoc() *Document {
	l := view.NewList("recipe-list")
	l.Append(view.Item{Title: "Soup", Body: "Simmer"})
	l.Append(view.Item{Title: "Pancakes", Body: "Mix\nFlip"})
	return Snapshot("Recipes", l, true)
}

func render(t *testing.T, format string, doc *Document) []byte {
	t.Helper()
	r, err := NewRenderer(format)
	require.NoError(t, err)
	out, err := r.Render(doc)
	require.NoError(t, err)
	return out
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer("xml")
	assert.Error(t, err)
}

func TestNewRenderer_AllFormats(t *testing.T) {
	for _, f := range Formats {
		_, err := NewRenderer(f)
		assert.NoError(t, err, f)
	}
}

func TestSnapshot_EmptyListHasEmptyItems(t *testing.T) {
	doc := Snapshot("Ingredients", view.NewList("ingredient-list"), false)
	assert.NotNil(t, doc.Items)
	assert.Equal(t, "ingredient-list", doc.ListID)
}

func TestText_Ingredients(t *testing.T) {
	out := render(t, "text", ingredientDoc())
	assert.Equal(t, "Salt\nPepper\n", string(out))
}

func TestText_Recipes(t *testing.T) {
	out := render(t, "text", recipeDoc())
	assert.Equal(t, "Soup\n    Simmer\n\nPancakes\n    Mix\n    Flip\n", string(out))
}

func TestText_Empty(t *testing.T) {
	out := render(t, "text", Snapshot("Ingredients", view.NewList("x"), false))
	assert.Empty(t, out)
}

func TestJSON(t *testing.T) {
	out := render(t, "json", recipeDoc())
	var decoded Document
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Recipes", decoded.Title)
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, "Mix\nFlip", decoded.Items[1].Body)
}

func TestMarkdown_Ingredients(t *testing.T) {
	out := render(t, "md", ingredientDoc())
	assert.Equal(t, "# Ingredients\n\n- Salt\n- Pepper\n", string(out))
}

func TestMarkdown_RecipesAndEscaping(t *testing.T) {
	l := view.NewList("recipe-list")
	l.Append(view.Item{Title: "C# *special*", Body: "Use [fresh] herbs"})
	out := string(render(t, "md", Snapshot("Recipes", l, true)))

	assert.Contains(t, out, `- ### C\# \*special\*`)
	assert.Contains(t, out, `  Use \[fresh\] herbs`)
}

func TestHTML_IngredientStructure(t *testing.T) {
	out := render(t, "html", ingredientDoc())
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Find("section#ingredient-list").Length())
	var names []string
	doc.Find("section#ingredient-list ul > li").Each(func(_ int, s *goquery.Selection) {
		names = append(names, strings.TrimSpace(s.Text()))
	})
	assert.Equal(t, []string{"Salt", "Pepper"}, names)
}

func TestHTML_RecipeHeadingAndParagraph(t *testing.T) {
	out := render(t, "html", recipeDoc())
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)

	items := doc.Find("section#recipe-list ul > li")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "Soup", items.First().Find("h3").Text())
	assert.Equal(t, "Simmer", items.First().Find("p").Text())
	assert.Equal(t, "Pancakes", items.Last().Find("h3").Text())
	assert.Contains(t, items.Last().Find("p").Text(), "Flip")
}

func TestHTML_EscapesNames(t *testing.T) {
	l := view.NewList("ingredient-list")
	l.Append(view.Item{Title: "<script>alert(1)</script>"})
	out := string(render(t, "html", Snapshot("Ingredients", l, false)))
	assert.NotContains(t, out, "<script>")
}

func TestXLSX_Recipes(t *testing.T) {
	out := render(t, "xlsx", recipeDoc())
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Instructions"}, rows[0])
	assert.Equal(t, []string{"Soup", "Simmer"}, rows[1])
	assert.Contains(t, rows[2][1], "Flip")
}

func TestXLSX_IngredientsSingleColumn(t *testing.T) {
	out := render(t, "xlsx", ingredientDoc())
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Name"}, {"Salt"}, {"Pepper"}}, rows)
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n\n  b", indent("a\n   \nb"))
}

func TestHTML_ListLikeInstructionsStayParagraph(t *testing.T) {
	l := view.NewList("recipe-list")
	l.Append(view.Item{Title: "Soup", Body: "1. Boil water\n2. Add salt"})
	l.Append(view.Item{Title: "Tea", Body: "- steep\n+ sip\n    pour slowly"})
	out := render(t, "html", Snapshot("Recipes", l, true))
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)

	items := doc.Find("section#recipe-list > ul > li")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, 2, doc.Find("li > h3 + p").Length())
	assert.Equal(t, 0, doc.Find("li ol, li ul, li pre").Length())

	soup := items.First().Find("p").Text()
	assert.Contains(t, soup, "1. Boil water")
	assert.Contains(t, soup, "2. Add salt")

	tea := items.Last().Find("p").Text()
	assert.Contains(t, tea, "- steep")
	assert.Contains(t, tea, "+ sip")
	assert.Contains(t, tea, "pour slowly")
}

func TestHTML_ListLikeIngredientNames(t *testing.T) {
	l := view.NewList("ingredient-list")
	l.Append(view.Item{Title: "1. Salt"})
	l.Append(view.Item{Title: "- Pepper"})
	out := render(t, "html", Snapshot("Ingredients", l, false))
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)

	var names []string
	doc.Find("section#ingredient-list > ul > li").Each(func(_ int, s *goquery.Selection) {
		names = append(names, strings.TrimSpace(s.Text()))
	})
	assert.Equal(t, []string{"1. Salt", "- Pepper"}, names)
	assert.Equal(t, 0, doc.Find("li ol, li ul").Length())
}

func TestEscapeMarkdown_LineStarts(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1. Boil", `1\. Boil`},
		{"12) Stir", `12\) Stir`},
		{"- steep", `\- steep`},
		{"+ sip", `\+ sip`},
		{"===", `\===`},
		{"~~~", `\~~~`},
		{"    indented", "indented"},
		{"a\n2. b", "a\n2\\. b"},
		{"Bake at 180. Serve", "Bake at 180. Serve"},
		{"salt-free", "salt-free"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeMarkdown(tt.in), tt.in)
	}
}

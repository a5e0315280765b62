package view

import "testing"

func TestList_ClearAppend(t *testing.T) {
	l := NewList("ingredient-list")
	l.Append(Item{Title: "Salt"})
	l.Append(Item{Title: "Pepper"})
	if l.Len() != 2 {
		t.Fatalf("Len = %d", l.Len())
	}

	items := l.Items()
	items[0].Title = "changed"
	if l.Items()[0].Title != "Salt" {
		t.Error("Items must return a copy")
	}

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len after Clear = %d", l.Len())
	}
}

func TestElement_HiddenByDefault(t *testing.T) {
	e := NewElement("logout-button")
	if e.Visible() {
		t.Error("new element should be hidden")
	}
	e.Show()
	if !e.Visible() {
		t.Error("element should be visible after Show")
	}
}

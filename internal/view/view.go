// Package view is the in-memory stand-in for the page's DOM: list
// containers that controllers render into and elements whose visibility
// they toggle.
package view

import "sync"

// Item is one rendered list entry: a heading and an optional body paragraph.
type Item struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

// Container is the target a controller renders into.
type Container interface {
	Clear()
	Append(Item)
}

// List is a Container that keeps its items in memory.
type List struct {
	mu    sync.RWMutex
	ID    string
	items []Item
}

// NewList returns an empty list with the given element id.
func NewList(id string) *List { return &List{ID: id} }

func (l *List) Clear() {
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()
}

func (l *List) Append(it Item) {
	l.mu.Lock()
	l.items = append(l.items, it)
	l.mu.Unlock()
}

// Items returns a copy of the current contents.
func (l *List) Items() []Item {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Item(nil), l.items...)
}

// Len returns the number of items.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Element is a page element that is hidden until shown.
type Element struct {
	mu      sync.RWMutex
	ID      string
	visible bool
}

// NewElement returns a hidden element.
func NewElement(id string) *Element { return &Element{ID: id} }

// Show makes the element visible.
func (e *Element) Show() {
	e.mu.Lock()
	e.visible = true
	e.mu.Unlock()
}

// Visible reports whether Show has been called.
func (e *Element) Visible() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.visible
}

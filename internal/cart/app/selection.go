package app

import (
	"context"
	"sort"
	"sync"

	"github.com/stonique/storefront/internal/cart/domain"
)

// Selection is the set of checked line items on the cart page.
type Selection struct {
	mu  sync.Mutex
	ids map[int]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[int]struct{})}
}

// Toggle flips the selected state of one line.
func (sel *Selection) Toggle(id int) {
	sel.mu.Lock()
	defer sel.mu.Unlock()

	if _, ok := sel.ids[id]; ok {
		delete(sel.ids, id)
	} else {
		sel.ids[id] = struct{}{}
	}
}

// SelectAll marks every given line as selected, replacing the current set.
func (sel *Selection) SelectAll(items []domain.LineItem) {
	sel.mu.Lock()
	defer sel.mu.Unlock()

	sel.ids = make(map[int]struct{}, len(items))
	for _, it := range items {
		sel.ids[it.ID] = struct{}{}
	}
}

// Deselect unchecks one line. Missing ids are a no-op.
func (sel *Selection) Deselect(id int) {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	delete(sel.ids, id)
}

// Clear deselects everything.
func (sel *Selection) Clear() {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	sel.ids = make(map[int]struct{})
}

// Selected reports whether the line is checked.
func (sel *Selection) Selected(id int) bool {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	_, ok := sel.ids[id]
	return ok
}

// IDs returns the selected ids as a sorted snapshot.
func (sel *Selection) IDs() []int {
	sel.mu.Lock()
	defer sel.mu.Unlock()

	out := make([]int, 0, len(sel.ids))
	for id := range sel.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// RemoveSelected removes every selected line from the cart, then clears the
// selection. It iterates a snapshot of the set so removals cannot skip ids
// while the cart mutates underneath.
func (sel *Selection) RemoveSelected(ctx context.Context, cart *Service) {
	for _, id := range sel.IDs() {
		cart.Remove(ctx, id)
	}
	sel.Clear()
}

// Package catalog holds the in-memory item catalog and the service that
// combines it with a persistence store.
package catalog

import (
	"errors"
	"fmt"
	"log"

	"libcatalog/internal/item"
)

// ErrNotFound is returned when a remove finds no structurally equal item.
var ErrNotFound = errors.New("item not found")

// Catalog is an ordered, unindexed collection of items. Insertion order is
// preserved and duplicates are allowed. Lookups are linear scans; the item
// count is expected to stay small and no index is maintained.
//
// A Catalog has exactly one logical owner. Concurrent mutation requires
// external mutual exclusion.
type Catalog struct {
	items  []item.Item
	logger *log.Logger
}

// New returns an empty catalog. Every successful Add and Remove is recorded
// on logger; a nil logger falls back to the process default.
func New(logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.Default()
	}
	return &Catalog{logger: logger}
}

// Add appends it to the end of the catalog. It never fails.
func (c *Catalog) Add(it item.Item) {
	c.items = append(c.items, it)
	c.logger.Printf("Added to catalog: %s", it.Describe())
}

// Remove deletes the first element structurally equal to it. When no element
// matches, it returns ErrNotFound wrapping the item's description. Later
// duplicates are left in place.
func (c *Catalog) Remove(it item.Item) error {
	for i, held := range c.items {
		if held.Equal(it) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.logger.Printf("Removed from catalog: %s", it.Describe())
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, it.Describe())
}

// Items returns a snapshot of the catalog in insertion order. The returned
// slice is the caller's to keep; later mutation of the catalog does not
// affect it.
func (c *Catalog) Items() []item.Item {
	out := make([]item.Item, len(c.items))
	copy(out, c.items)
	return out
}

// ByAuthor returns the items whose author equals author, in insertion order.
// Journals match through their inherited author field. Each call produces a
// fresh slice.
func (c *Catalog) ByAuthor(author string) []item.Item {
	var out []item.Item
	for _, it := range c.items {
		if item.AuthorOf(it) == author {
			out = append(out, it)
		}
	}
	return out
}

// Len reports the number of items held.
func (c *Catalog) Len() int {
	return len(c.items)
}

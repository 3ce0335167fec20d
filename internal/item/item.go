// Package item defines the catalog's item variants.
//
// The set of variants is closed: a catalog item is either a Book or a
// Journal. Equality is structural and strictly same-variant — a Book is
// never equal to a Journal, even when every shared field matches. Removal
// and deduplication in the catalog depend on that rule.
package item

import "fmt"

// Item is a catalog entry. Both variants are immutable value types.
type Item interface {
	// Describe returns the human-readable one-line form of the item.
	Describe() string
	// Equal reports structural, same-variant equality.
	Equal(other Item) bool

	// sealed keeps the variant set closed to this package.
	sealed()
}

// Book is the base variant.
type Book struct {
	Title  string
	Author string
	Year   int
}

func (b Book) Describe() string {
	return fmt.Sprintf("Book: %s by %s (%d)", b.Title, b.Author, b.Year)
}

func (b Book) Equal(other Item) bool {
	o, ok := other.(Book)
	return ok && o == b
}

func (Book) sealed() {}

// Journal extends Book with a volume designation.
type Journal struct {
	Book
	Volume string
}

func (j Journal) Describe() string {
	return fmt.Sprintf("Journal: %s by %s (%d), volume: %s", j.Title, j.Author, j.Year, j.Volume)
}

func (j Journal) Equal(other Item) bool {
	o, ok := other.(Journal)
	return ok && o == j
}

func (Journal) sealed() {}

// AuthorOf returns the author field shared by both variants.
func AuthorOf(it Item) string {
	switch v := it.(type) {
	case Book:
		return v.Author
	case Journal:
		return v.Author
	}
	return ""
}

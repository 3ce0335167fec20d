package catalog

import (
	"bytes"
	"log"
	"testing"

	"libcatalog/internal/item"

	"github.com/stretchr/testify/assert"
)

var (
	testBook    = item.Book{Title: "Cyberpunk", Author: "CD Project RED", Year: 2077}
	testJournal = item.Journal{
		Book:   item.Book{Title: "something", Author: "Pepsi", Year: 1999},
		Volume: "Learn python xd",
	}
)

func newTestCatalog() (*Catalog, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(log.New(&buf, "", 0)), &buf
}

func TestCatalogAdd(t *testing.T) {
	c, logs := newTestCatalog()

	c.Add(testBook)
	c.Add(testJournal)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []item.Item{testBook, testJournal}, c.Items())
	assert.Contains(t, logs.String(), "Added to catalog: Book: Cyberpunk by CD Project RED (2077)")
	assert.Contains(t, logs.String(), "Added to catalog: Journal: something by Pepsi (1999), volume: Learn python xd")
}

func TestCatalogRemove(t *testing.T) {
	t.Run("removes first match and logs it", func(t *testing.T) {
		c, logs := newTestCatalog()
		c.Add(testBook)
		c.Add(testJournal)

		err := c.Remove(testBook)
		assert.NoError(t, err)
		assert.Equal(t, []item.Item{testJournal}, c.Items())
		assert.Contains(t, logs.String(), "Removed from catalog: Book: Cyberpunk by CD Project RED (2077)")
	})

	t.Run("empty catalog", func(t *testing.T) {
		c, _ := newTestCatalog()
		err := c.Remove(testBook)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), testBook.Describe())
	})

	t.Run("item never added", func(t *testing.T) {
		c, _ := newTestCatalog()
		c.Add(testJournal)
		err := c.Remove(testBook)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("only one occurrence removed for duplicates", func(t *testing.T) {
		c, _ := newTestCatalog()
		c.Add(testBook)
		c.Add(testBook)
		c.Add(testBook)

		assert.NoError(t, c.Remove(testBook))
		assert.Equal(t, 2, c.Len())
	})

	t.Run("journal does not match book with same base fields", func(t *testing.T) {
		c, _ := newTestCatalog()
		c.Add(item.Journal{Book: testBook, Volume: "v1"})

		err := c.Remove(testBook)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 1, c.Len())
	})
}

func TestCatalogItemsSnapshot(t *testing.T) {
	c, _ := newTestCatalog()
	c.Add(testBook)

	snapshot := c.Items()
	c.Add(testJournal)

	// The earlier snapshot is unaffected by later mutation.
	assert.Len(t, snapshot, 1)
	assert.Len(t, c.Items(), 2)
}

func TestCatalogByAuthor(t *testing.T) {
	c, _ := newTestCatalog()
	c.Add(testBook)
	c.Add(testJournal)

	t.Run("matches journal through inherited author", func(t *testing.T) {
		got := c.ByAuthor("Pepsi")
		assert.Equal(t, []item.Item{testJournal}, got)
	})

	t.Run("matches book", func(t *testing.T) {
		got := c.ByAuthor("CD Project RED")
		assert.Equal(t, []item.Item{testBook}, got)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.ByAuthor("Nobody"))
	})

	t.Run("fresh slice per call", func(t *testing.T) {
		first := c.ByAuthor("Pepsi")
		second := c.ByAuthor("Pepsi")
		assert.Equal(t, first, second)
		if len(first) > 0 && len(second) > 0 {
			assert.NotSame(t, &first[0], &second[0])
		}
	})

	t.Run("order preserved with duplicates", func(t *testing.T) {
		c, _ := newTestCatalog()
		other := item.Book{Title: "Second", Author: "Pepsi", Year: 2001}
		c.Add(testJournal)
		c.Add(testBook)
		c.Add(other)

		got := c.ByAuthor("Pepsi")
		assert.Equal(t, []item.Item{testJournal, other}, got)
	})
}

package catalog

import (
	"libcatalog/internal/item"
)

// Store defines the contract for catalog persistence.
type Store interface {
	Save(items []item.Item) error
	Load() ([]item.Item, error)
}

package catalog

import (
	"sync"

	"libcatalog/internal/item"
)

// Service combines the in-memory catalog with a persistence store. The
// catalog assumes a single logical owner, so the service serializes access
// for its concurrent HTTP callers.
type Service struct {
	mu      sync.Mutex
	catalog *Catalog
	store   Store
}

// NewService creates a new catalog service.
func NewService(catalog *Catalog, store Store) *Service {
	return &Service{catalog: catalog, store: store}
}

// List returns all items in insertion order.
func (s *Service) List() []item.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Items()
}

// ByAuthor returns the items with the given author.
func (s *Service) ByAuthor(author string) []item.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.ByAuthor(author)
}

// Add appends an item to the catalog.
func (s *Service) Add(it item.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.Add(it)
}

// Remove deletes the first structurally equal item. Returns ErrNotFound
// when no item matches.
func (s *Service) Remove(it item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Remove(it)
}

// Save writes the current catalog contents to the store.
func (s *Service) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(s.catalog.Items())
}

// Load reads items from the store and appends them to the catalog. It
// returns the number of items merged in.
func (s *Service) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.store.Load()
	if err != nil {
		return 0, err
	}
	for _, it := range items {
		s.catalog.Add(it)
	}
	return len(items), nil
}

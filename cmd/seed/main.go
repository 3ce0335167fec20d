// Command seed writes a small sample catalog file for local development.
package main

import (
	"log"
	"os"

	"libcatalog/internal/item"
	"libcatalog/internal/store"
)

func main() {
	path := os.Getenv("CATALOG_PATH")
	if path == "" {
		path = "books.json"
	}

	items := []item.Item{
		item.Book{Title: "Dune", Author: "Frank Herbert", Year: 1965},
		item.Book{Title: "Neuromancer", Author: "William Gibson", Year: 1984},
		item.Book{Title: "The Dispossessed", Author: "Ursula K. Le Guin", Year: 1974},
		item.Journal{Book: item.Book{Title: "Nature", Author: "Springer Nature", Year: 2024}, Volume: "625"},
		item.Journal{Book: item.Book{Title: "Science", Author: "AAAS", Year: 2024}, Volume: "383"},
	}

	if err := store.NewJSONFile(path).Save(items); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	log.Printf("Wrote %d items to %s", len(items), path)
}

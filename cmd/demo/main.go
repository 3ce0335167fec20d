// Command demo walks the catalog through an add / filter / save / remove /
// reload sequence against a local JSON file.
package main

import (
	"fmt"
	"log"
	"os"

	"libcatalog/internal/catalog"
	"libcatalog/internal/item"
	"libcatalog/internal/store"
)

func main() {
	logFile, err := os.OpenFile("library.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("cannot open library.log: %v", err)
	}
	defer logFile.Close()

	lib := catalog.New(log.New(logFile, "", log.LstdFlags))

	book := item.Book{Title: "Cyberpunk", Author: "CD Project RED", Year: 2077}
	journal := item.Journal{
		Book:   item.Book{Title: "something", Author: "Pepsi", Year: 1999},
		Volume: "Learn python xd",
	}

	lib.Add(book)
	lib.Add(journal)

	fmt.Println("All items in library:")
	printItems(lib.Items())

	fmt.Println("\nItems by CD Project RED:")
	printItems(lib.ByAuthor("CD Project RED"))

	fileStore := store.NewJSONFile("books.json")
	if err := fileStore.Save(lib.Items()); err != nil {
		log.Fatalf("save failed: %v", err)
	}

	if err := lib.Remove(book); err != nil {
		log.Fatalf("remove failed: %v", err)
	}

	fmt.Println("\nAfter removal:")
	printItems(lib.Items())

	loaded, err := fileStore.Load()
	if err != nil {
		log.Fatalf("load failed: %v", err)
	}
	for _, it := range loaded {
		lib.Add(it)
	}

	fmt.Println("\nAfter loading from file:")
	printItems(lib.Items())
}

func printItems(items []item.Item) {
	for _, it := range items {
		fmt.Println("  ", it.Describe())
	}
}

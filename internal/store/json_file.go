// Package store persists catalog contents to disk as a JSON document.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"libcatalog/internal/item"
)

// ErrParse is returned by Load when the file is not valid JSON or a record
// is missing a required field for its type.
var ErrParse = errors.New("catalog file malformed")

const (
	typeBook    = "Book"
	typeJournal = "Journal"
)

// record is the on-disk form of a single item. The type field is the sole
// discriminator. Fields are pointers so that Load can tell a missing field
// from a zero value.
type record struct {
	Type   string  `json:"type"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Year   *int    `json:"year"`
	Volume *string `json:"volume,omitempty"`
}

func recordOf(it item.Item) record {
	switch v := it.(type) {
	case item.Book:
		return record{Type: typeBook, Title: &v.Title, Author: &v.Author, Year: &v.Year}
	case item.Journal:
		return record{Type: typeJournal, Title: &v.Title, Author: &v.Author, Year: &v.Year, Volume: &v.Volume}
	}
	return record{}
}

func (r record) book(i int) (item.Book, error) {
	if r.Title == nil || r.Author == nil || r.Year == nil {
		return item.Book{}, fmt.Errorf("%w: record %d is missing a required Book field", ErrParse, i)
	}
	return item.Book{Title: *r.Title, Author: *r.Author, Year: *r.Year}, nil
}

func (r record) journal(i int) (item.Journal, error) {
	base, err := r.book(i)
	if err != nil {
		return item.Journal{}, err
	}
	if r.Volume == nil {
		return item.Journal{}, fmt.Errorf("%w: record %d is missing the Journal volume field", ErrParse, i)
	}
	return item.Journal{Book: base, Volume: *r.Volume}, nil
}

// JSONFile stores the catalog as a JSON array at a fixed path.
type JSONFile struct {
	path   string
	strict bool
}

// NewJSONFile returns a store bound to path. Unrecognized type values are
// silently dropped on load.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// NewStrictJSONFile is like NewJSONFile but rejects unrecognized type
// values on load instead of dropping them.
func NewStrictJSONFile(path string) *JSONFile {
	return &JSONFile{path: path, strict: true}
}

// Save writes items to the store's path as an indented JSON array,
// overwriting any existing file. Non-ASCII text is written as-is.
func (s *JSONFile) Save(items []item.Item) (err error) {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open catalog file for writing: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close catalog file: %w", cerr)
		}
	}()

	records := make([]record, 0, len(items))
	for _, it := range items {
		records = append(records, recordOf(it))
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}

// Load reads the JSON array at the store's path and reconstructs its
// records into items, in file order. File access errors are returned
// wrapped (use errors.Is with fs.ErrNotExist for a missing file); malformed
// content is reported as ErrParse.
func (s *JSONFile) Load() ([]item.Item, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	var records []record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	items := make([]item.Item, 0, len(records))
	for i, rec := range records {
		switch rec.Type {
		case typeBook:
			b, err := rec.book(i)
			if err != nil {
				return nil, err
			}
			items = append(items, b)
		case typeJournal:
			j, err := rec.journal(i)
			if err != nil {
				return nil, err
			}
			items = append(items, j)
		default:
			if s.strict {
				return nil, fmt.Errorf("%w: record %d has unrecognized type %q", ErrParse, i, rec.Type)
			}
		}
	}
	return items, nil
}

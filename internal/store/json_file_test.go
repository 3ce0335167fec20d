package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"libcatalog/internal/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) (*JSONFile, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.json")
	return NewJSONFile(path), path
}

func TestRoundTrip(t *testing.T) {
	s, _ := tempStore(t)

	items := []item.Item{
		item.Book{Title: "Dune", Author: "Herbert", Year: 1965},
		item.Journal{Book: item.Book{Title: "X", Author: "Y", Year: 2000}, Volume: "v1"},
	}

	require.NoError(t, s.Save(items))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestRoundTripEmpty(t *testing.T) {
	s, _ := tempStore(t)

	require.NoError(t, s.Save(nil))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveOverwrites(t *testing.T) {
	s, _ := tempStore(t)

	require.NoError(t, s.Save([]item.Item{
		item.Book{Title: "Old", Author: "A", Year: 1900},
		item.Book{Title: "Older", Author: "B", Year: 1800},
	}))
	require.NoError(t, s.Save([]item.Item{
		item.Book{Title: "New", Author: "C", Year: 2000},
	}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []item.Item{item.Book{Title: "New", Author: "C", Year: 2000}}, got)
}

func TestSaveFormat(t *testing.T) {
	s, path := tempStore(t)

	require.NoError(t, s.Save([]item.Item{
		item.Book{Title: "Мастер и Маргарита", Author: "Булгаков", Year: 1967},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// 4-space indentation, non-ASCII written as-is.
	assert.Contains(t, string(data), "    {")
	assert.Contains(t, string(data), `"title": "Мастер и Маргарита"`)
	assert.NotContains(t, string(data), `\u`)
}

func TestSaveOmitsVolumeForBooks(t *testing.T) {
	s, path := tempStore(t)

	require.NoError(t, s.Save([]item.Item{item.Book{Title: "Dune", Author: "Herbert", Year: 1965}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "volume")
}

func TestLoadSkipsUnrecognizedTypes(t *testing.T) {
	s, path := tempStore(t)

	content := `[
    {"type": "Magazine", "title": "Vogue", "author": "Conde Nast", "year": 1892},
    {"type": "Book", "title": "Dune", "author": "Herbert", "year": 1965}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []item.Item{item.Book{Title: "Dune", Author: "Herbert", Year: 1965}}, got)
}

func TestStrictLoadRejectsUnrecognizedTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	s := NewStrictJSONFile(path)

	content := `[{"type": "Magazine", "title": "Vogue", "author": "Conde Nast", "year": 1892}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "Magazine")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "invalid json",
			content: "not json at all",
			wantErr: ErrParse,
		},
		{
			name:    "book missing year",
			content: `[{"type": "Book", "title": "Dune", "author": "Herbert"}]`,
			wantErr: ErrParse,
		},
		{
			name:    "journal missing volume",
			content: `[{"type": "Journal", "title": "X", "author": "Y", "year": 2000}]`,
			wantErr: ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := tempStore(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := s.Load()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := NewJSONFile(filepath.Join(t.TempDir(), "missing.json"))

	_, err := s.Load()
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrParse)
}

func TestSaveUnwritablePath(t *testing.T) {
	s := NewJSONFile(filepath.Join(t.TempDir(), "no", "such", "dir", "books.json"))

	err := s.Save([]item.Item{item.Book{Title: "Dune", Author: "Herbert", Year: 1965}})
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

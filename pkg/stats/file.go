package stats

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File represents a file containing statistical data.
// This is typically a comma separated table, but XLS and XLSX
// spreadsheets are read as well.
type File struct {
	Name    string
	URL     string
	Content []byte
}

// OpenFile reads a data file from disk.
func OpenFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{Name: filepath.Base(path), Content: data}, nil
}

func (f *File) DownloadContent(ctx context.Context) error {
	data, err := download(ctx, f.URL)
	if err != nil {
		return fmt.Errorf("download %s: %w", f.URL, err)
	}
	f.Content = data
	return nil
}

// ReadTable reads a data file into a table, using its first row as header.
func ReadTable(f *File) (*Table, error) {
	var t *Table
	err := ExtractDataFromFile(f, func(row []string) {
		if t == nil {
			t = NewTable(row...)
			return
		}
		t.Append(row)
	})
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: %s has no header row", ErrMalformedFile, f.Name)
	}
	return t, nil
}

// LoadTable is a shorthand for OpenFile followed by ReadTable.
func LoadTable(path string) (*Table, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	return ReadTable(f)
}

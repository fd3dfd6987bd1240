package stats

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Database is the bundled data a session works with: the country reference,
// loaded once, and the location of the sample file of every subject.
// Sample tables are read from disk each time they are asked for.
type Database struct {
	Dir       string
	Reference *Reference
	Samples   map[string]string
	Loaded    time.Time
}

// Open loads the reference table and records the sample file locations.
// Relative paths are resolved against dir.
func Open(dir, reference string, samples map[string]string) (*Database, error) {
	db := &Database{Dir: dir, Samples: make(map[string]string, len(samples))}
	for name, p := range samples {
		db.Samples[name] = db.resolve(p)
	}

	ref, err := LoadReference(db.resolve(reference))
	if err != nil {
		return nil, err
	}
	db.Reference = ref
	db.Loaded = time.Now()
	return db, nil
}

func (db *Database) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(db.Dir, p)
}

// SamplePath returns where the sample of a subject lives.
func (db *Database) SamplePath(s Subject) (string, bool) {
	p, found := db.Samples[s.Name]
	return p, found && p != ""
}

// Sample reads the bundled sample table of a subject.
func (db *Database) Sample(s Subject) (*Table, error) {
	p, found := db.SamplePath(s)
	if !found {
		return nil, fmt.Errorf("no sample file configured for %s", s.Name)
	}
	t, err := LoadTable(p)
	if err != nil {
		return nil, fmt.Errorf("load %s sample: %w", s.Name, err)
	}
	return t, nil
}

// Info prints a short summary of the reference and sample tables.
func (db *Database) Info(w io.Writer) error {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "\n\tData Dir     : %s\n", db.Dir)
	p.Fprintf(w, "\tReference    : %d countries\n", db.Reference.Len())

	for _, s := range Subjects {
		path, found := db.SamplePath(s)
		if !found {
			p.Fprintf(w, "\t%-12s : not configured\n", s.Name)
			continue
		}
		t, err := LoadTable(path)
		if err != nil {
			p.Fprintf(w, "\t%-12s : %s (%v)\n", s.Name, path, err)
			continue
		}
		first, last, _ := t.Years(s.YearColumn)
		p.Fprintf(w, "\t%-12s : %s  %d rows  %s - %s\n", s.Name, path, t.Len(), strconv.Itoa(first), strconv.Itoa(last))
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Dump writes a debug dump of the database.
func (db *Database) Dump(w io.Writer) {
	spew.Fdump(w, db)
}

// DownloadSamples fetches the published sample file of every subject and
// writes it to the configured sample path.
func DownloadSamples(ctx context.Context, samples map[string]string) ([]string, error) {
	var written []string
	for _, s := range Subjects {
		dest, found := samples[s.Name]
		if !found || dest == "" {
			continue
		}

		f := &File{Name: filepath.Base(dest), URL: s.SampleURL}
		if err := f.DownloadContent(ctx); err != nil {
			return written, err
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(dest, f.Content, 0o644); err != nil {
			return written, err
		}
		written = append(written, dest)
	}
	return written, nil
}

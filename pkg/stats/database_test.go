package stats

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anrid/malaria-stats/pkg/testutil"
)

func openTestDatabase(t *testing.T) *Database {
	t.Helper()
	dir := testutil.WriteDataDir(t)

	db, err := Open(dir, "additional/continents2.csv", map[string]string{
		Deaths.Name:      "malaria_deaths.txt",
		Incidence.Name:   "malaria_inc.txt",
		DeathsByAge.Name: filepath.Join(dir, "malaria_deaths_age.txt"),
	})
	require.NoError(t, err)
	return db
}

func TestOpen(t *testing.T) {
	db := openTestDatabase(t)

	assert.Equal(t, 6, db.Reference.Len())
	assert.False(t, db.Loaded.IsZero())

	p, found := db.SamplePath(Deaths)
	require.True(t, found)
	assert.Equal(t, filepath.Join(db.Dir, "malaria_deaths.txt"), p)

	p, found = db.SamplePath(DeathsByAge)
	require.True(t, found)
	assert.Equal(t, filepath.Join(db.Dir, "malaria_deaths_age.txt"), p)
}

func TestOpen_MissingReference(t *testing.T) {
	_, err := Open(t.TempDir(), "continents2.csv", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load reference")
}

func TestDatabase_Sample(t *testing.T) {
	db := openTestDatabase(t)

	tbl, err := db.Sample(Incidence)
	require.NoError(t, err)
	assert.True(t, tbl.Has(Incidence.Columns()...))
	assert.Equal(t, 8, tbl.Len())

	delete(db.Samples, Incidence.Name)
	_, err = db.Sample(Incidence)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sample file configured for incidence")
}

func TestDatabase_Info(t *testing.T) {
	db := openTestDatabase(t)

	var buf bytes.Buffer
	require.NoError(t, db.Info(&buf))

	out := buf.String()
	assert.Contains(t, out, "Reference    : 6 countries")
	assert.Contains(t, out, "15 rows  2000 - 2001")
	assert.Contains(t, out, "8 rows  2000 - 2005")
	assert.Contains(t, out, "8 rows  2000 - 2002")
}

func TestDatabase_Dump(t *testing.T) {
	db := openTestDatabase(t)

	var buf bytes.Buffer
	db.Dump(&buf)
	assert.Contains(t, buf.String(), "NGA")
}

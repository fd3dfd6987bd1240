// Package testutil holds small malaria datasets shaped like the bundled
// sample files, for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Continents is a reference table with the columns of the bundled
// continents file. Melanesia and Western Europe have no intermediate region.
const Continents = `name,alpha-2,alpha-3,country-code,iso_3166-2,region,sub-region,intermediate-region,region-code,sub-region-code,intermediate-region-code
Nigeria,NG,NGA,566,ISO 3166-2:NG,Africa,Sub-Saharan Africa,Western Africa,2,202,11
Ghana,GH,GHA,288,ISO 3166-2:GH,Africa,Sub-Saharan Africa,Western Africa,2,202,11
Kenya,KE,KEN,404,ISO 3166-2:KE,Africa,Sub-Saharan Africa,Eastern Africa,2,202,14
Brazil,BR,BRA,076,ISO 3166-2:BR,Americas,Latin America and the Caribbean,South America,19,419,5
Papua New Guinea,PG,PNG,598,ISO 3166-2:PG,Oceania,Melanesia,,9,54,
France,FR,FRA,250,ISO 3166-2:FR,Europe,Western Europe,,150,155,
`

// Deaths has two aggregate rows without a code and one unknown code (ATL).
const Deaths = `Entity,Code,Year,"Deaths - Malaria - Sex: Both - Age: Age-standardized (Rate) (per 100,000 people)"
Nigeria,NGA,2000,100
Nigeria,NGA,2001,80
Ghana,GHA,2000,60
Ghana,GHA,2001,40
Kenya,KEN,2000,30
Kenya,KEN,2001,20
Brazil,BRA,2000,2
Brazil,BRA,2001,1
Papua New Guinea,PNG,2000,10
Papua New Guinea,PNG,2001,14
France,FRA,2000,0
France,FRA,2001,0
World,,2000,50
World,,2001,40
Atlantis,ATL,2000,7
`

// Incidence has a missing value for Kenya in 2005.
const Incidence = `Entity,Code,Year,"Incidence of malaria (per 1,000 population at risk) (per 1,000 population at risk)"
Nigeria,NGA,2000,400
Nigeria,NGA,2005,300
Ghana,GHA,2000,200
Ghana,GHA,2005,100
Kenya,KEN,2000,150
Kenya,KEN,2005,
Brazil,BRA,2000,20
Atlantis,ATL,2000,5
`

// DeathsByAge skips 2001 and starts with an unnamed index column.
const DeathsByAge = `,entity,code,year,age_group,deaths
1,Nigeria,NGA,2000,Under 5,1000
2,Nigeria,NGA,2000,5-14,100
3,Ghana,GHA,2000,Under 5,3000
4,Ghana,GHA,2000,5-14,300
5,Nigeria,NGA,2002,Under 5,2000.5
6,Nigeria,NGA,2002,5-14,50
7,Kenya,KEN,2000,Under 5,999
8,Atlantis,ATL,2000,Under 5,1
`

// WriteDataDir lays the fixtures out like the default data directory and
// returns its path.
func WriteDataDir(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"additional/continents2.csv": Continents,
		"malaria_deaths.txt":         Deaths,
		"malaria_inc.txt":            Incidence,
		"malaria_deaths_age.txt":     DeathsByAge,
	}
	for name, content := range files {
		WriteFile(t, filepath.Join(dir, name), content)
	}
	return dir
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

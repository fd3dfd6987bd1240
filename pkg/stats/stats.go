package stats

// Subject describes the column layout of one kind of subject table.
// Column names are the contract with uploaded files.
type Subject struct {
	Name       string
	Title      string
	CodeColumn string
	NameColumn string
	YearColumn string
	// AgeColumn is only set for tables broken down by age group.
	AgeColumn    string
	MetricColumn string
	// SampleURL is where the bundled sample can be downloaded from.
	SampleURL string
}

// Columns lists every column a file of this subject must carry.
func (s Subject) Columns() []string {
	cols := []string{s.CodeColumn, s.YearColumn}
	if s.AgeColumn != "" {
		cols = append(cols, s.AgeColumn)
	}
	return append(cols, s.MetricColumn)
}

const sampleBaseURL = "https://raw.githubusercontent.com/rfordatascience/tidytuesday/master/data/2018/2018-11-13/"

var (
	// Deaths is the age-standardized malaria death rate per country and year.
	Deaths = Subject{
		Name:         "deaths",
		Title:        "Malaria Deaths by Country for all ages across the world and time",
		CodeColumn:   "Code",
		NameColumn:   "Entity",
		YearColumn:   "Year",
		MetricColumn: "Deaths - Malaria - Sex: Both - Age: Age-standardized (Rate) (per 100,000 people)",
		SampleURL:    sampleBaseURL + "malaria_deaths.csv",
	}

	// Incidence is the malaria incidence per 1,000 population at risk.
	Incidence = Subject{
		Name:         "incidence",
		Title:        "Malaria Incidence by Country for all ages across the world across time",
		CodeColumn:   "Code",
		NameColumn:   "Entity",
		YearColumn:   "Year",
		MetricColumn: "Incidence of malaria (per 1,000 population at risk) (per 1,000 population at risk)",
		SampleURL:    sampleBaseURL + "malaria_inc.csv",
	}

	// DeathsByAge is the raw death count per country, year and age group.
	DeathsByAge = Subject{
		Name:         "deaths-by-age",
		Title:        "Malaria deaths by age group across the world and time",
		CodeColumn:   "code",
		NameColumn:   "entity",
		YearColumn:   "year",
		AgeColumn:    "age_group",
		MetricColumn: "deaths",
		SampleURL:    sampleBaseURL + "malaria_deaths_age.csv",
	}
)

// Subjects lists the supported subject tables.
var Subjects = []Subject{Deaths, Incidence, DeathsByAge}

// SubjectByName finds a subject by its short name.
func SubjectByName(name string) (Subject, bool) {
	for _, s := range Subjects {
		if s.Name == name {
			return s, true
		}
	}
	return Subject{}, false
}

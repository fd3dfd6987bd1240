package dashboard

import (
	"fmt"
	"sort"

	"github.com/anrid/malaria-stats/pkg/chart"
	"github.com/anrid/malaria-stats/pkg/stats"
)

// SubRegions are the sub-regions offered for the incidence view.
var SubRegions = []string{
	"Latin America and the Caribbean",
	"Sub-Saharan Africa",
}

// AfricanRegions are the intermediate regions offered for the age group view.
var AfricanRegions = []string{
	"Eastern Africa",
	"Middle Africa",
	"Southern Africa",
	"Western Africa",
}

// DeathsBySubRegion averages the age-standardized death rate per sub-region.
// Unmatched country codes are not filled, so they drop out of the groups.
var DeathsBySubRegion = View{
	Name:        "deaths-by-subregion",
	Heading:     "Average Malaria Death by Region",
	Subject:     stats.Deaths,
	Keys:        []string{stats.Deaths.YearColumn, stats.SubRegionColumn},
	Series:      stats.SubRegionColumn,
	Value:       "average",
	RangeSlider: true,
	Labels: map[string]string{
		stats.SubRegionColumn: "Sub-region",
		"average":             "Average Malaria Deaths (per 1,000 population at risk)",
	},
	HoverFormat: chart.HoverTwoDecimals,
	Title: func(_ string, years string) string {
		return "Average Malaria Deaths by Region" + years
	},
	Observations: `Malaria deaths have been decreasing steadily for all regions from 1990 onwards.
All regions except "Sub-Saharan Africa" and "Melanesia" stay low throughout 1990 to 2016.
Deaths in "Melanesia" rose around 1998 and fell back after 2004.
"Sub-Saharan Africa" has consistently the highest malaria deaths and deserves a closer look.`,
}

// IncidenceByIntermediateRegion averages incidence per intermediate region
// within one sub-region.
var IncidenceByIntermediateRegion = View{
	Name:        "incidence-by-intermediate-region",
	Heading:     "Incidence of Malaria by Region",
	Subject:     stats.Incidence,
	Keys:        []string{stats.IntermediateRegionColumn, stats.Incidence.YearColumn},
	Series:      stats.IntermediateRegionColumn,
	Value:       "incidence",
	FillMissing: true,
	Filter: &Filter{
		Column:  stats.SubRegionColumn,
		Default: "Sub-Saharan Africa",
		Choices: SubRegions,
	},
	Labels: map[string]string{
		"incidence": "Average Incidence of malaria (per 1,000 population at risk)",
	},
	HoverFormat: chart.HoverTwoDecimals,
	Title: func(region string, years string) string {
		return "Incidence of Malaria by Region in " + region + years
	},
	Observations: `Incidence of malaria has been decreasing steadily from 2000 to 2015.
Incidence is significantly lower for "Southern Africa".
"Western Africa" has consistently the highest incidence over the years.`,
}

// DeathsByAgeGroup averages death counts per age group within one
// intermediate region.
var DeathsByAgeGroup = View{
	Name:        "deaths-by-age-group",
	Heading:     "Malaria Deaths in the Least Controlled Region in Sub-Saharan Africa",
	Subject:     stats.DeathsByAge,
	Keys:        []string{stats.DeathsByAge.YearColumn, stats.DeathsByAge.AgeColumn},
	Series:      stats.DeathsByAge.AgeColumn,
	Value:       "deaths",
	FillMissing: true,
	Filter: &Filter{
		Column:  stats.IntermediateRegionColumn,
		Default: "Western Africa",
		Choices: AfricanRegions,
	},
	Ticks: TicksContiguousYears,
	Labels: map[string]string{
		"deaths": "Average Deaths",
	},
	HoverFormat: chart.HoverThousandsTwo,
	Title: func(region string, years string) string {
		return "Average Malaria Deaths by Age Group in " + region + years
	},
	Observations: `The average deaths for the "Under 5" age group are much higher than for every other age group in "Western Africa".
Deaths in the remaining age groups are close to zero in comparison.`,
}

// Views holds every registered view by name.
var Views = map[string]View{
	DeathsBySubRegion.Name:             DeathsBySubRegion,
	IncidenceByIntermediateRegion.Name: IncidenceByIntermediateRegion,
	DeathsByAgeGroup.Name:              DeathsByAgeGroup,
}

// Lookup finds a registered view.
func Lookup(name string) (View, error) {
	v, found := Views[name]
	if !found {
		return View{}, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
	return v, nil
}

// Names returns the registered view names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Views))
	for n := range Views {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

package dashboard

import (
	"github.com/anrid/malaria-stats/pkg/stats"
)

// RunSample runs a view on the bundled sample of its subject. Observations
// are attached when the default region was used, since they describe it.
func RunSample(db *stats.Database, v View, region string) (*Result, error) {
	t, err := db.Sample(v.Subject)
	if err != nil {
		return nil, err
	}
	res, err := v.Run(t, db.Reference, region)
	if err != nil {
		return nil, err
	}
	if v.Filter == nil || region == "" || region == v.Filter.Default {
		res.Observations = v.Observations
	}
	return res, nil
}

// SampleOverview computes the world overview from the bundled deaths sample.
func SampleOverview(db *stats.Database) (*Result, error) {
	t, err := db.Sample(stats.Deaths)
	if err != nil {
		return nil, err
	}
	return Overview(t, db.Reference)
}

package dataset

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/aerolens/flighteval/internal/model"
)

// rawFixture pairs a query with the extraction recorded for it.
type rawFixture struct {
	Query     string             `yaml:"query"`
	Extracted model.FlightRecord `yaml:"extracted"`
}

type fixtureFile struct {
	Fixtures []rawFixture `yaml:"fixtures"`
}

// LoadFixtures reads pre-recorded extractions keyed by query, for scoring
// without calling a live provider.
func LoadFixtures(path string) (map[string]*model.FlightRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read fixtures")
	}

	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "dataset: parse fixtures yaml")
	}
	if len(f.Fixtures) == 0 {
		return nil, eris.Errorf("dataset: %s contains no fixtures", path)
	}

	records := make(map[string]*model.FlightRecord, len(f.Fixtures))
	for i, fx := range f.Fixtures {
		if fx.Query == "" {
			return nil, eris.Errorf("dataset: fixture %d has no query", i)
		}
		rec := fx.Extracted
		rec.Normalize()
		records[fx.Query] = &rec
	}
	return records, nil
}

package compare

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/aerolens/flighteval/internal/config"
	"github.com/aerolens/flighteval/internal/model"
)

// DefaultConfig returns the stock scoring policy.
func DefaultConfig() config.ScoringConfig {
	return config.ScoringConfig{
		QueryFieldWeight:      0.5,
		DiscoveredFieldWeight: 1.5,

		// Up to 15 minutes is schedule/reporting noise; 15-30 is a soft
		// signal of a real discrepancy; past 30 the extraction is wrong.
		DurationFullCreditMins:    15,
		DurationPartialCreditMins: 30,
		DurationPartialGrade:      0.7,

		AircraftFamilyGrade: 0.8,

		LowQualityMissingFields: 3,

		AircraftFamilies: model.DefaultAircraftFamilies(),
	}
}

// ValidateConfig checks that a ScoringConfig is internally consistent.
func ValidateConfig(c config.ScoringConfig) error {
	var errs []string

	if c.QueryFieldWeight < 0 {
		errs = append(errs, "query_field_weight must be >= 0")
	}
	if c.DiscoveredFieldWeight < 0 {
		errs = append(errs, "discovered_field_weight must be >= 0")
	}
	if c.QueryFieldWeight+c.DiscoveredFieldWeight <= 0 {
		errs = append(errs, "weight sum must be > 0")
	}

	if c.DurationFullCreditMins < 0 {
		errs = append(errs, "duration_full_credit_mins must be >= 0")
	}
	if c.DurationPartialCreditMins < c.DurationFullCreditMins {
		errs = append(errs, "duration_partial_credit_mins must be >= duration_full_credit_mins")
	}
	if c.DurationPartialGrade < 0 || c.DurationPartialGrade > 1 {
		errs = append(errs, "duration_partial_grade must be between 0 and 1")
	}

	if c.AircraftFamilyGrade < 0 || c.AircraftFamilyGrade > 1 {
		errs = append(errs, "aircraft_family_grade must be between 0 and 1")
	}

	if c.LowQualityMissingFields < 1 || c.LowQualityMissingFields > len(model.Fields) {
		errs = append(errs, fmt.Sprintf("low_quality_missing_fields must be between 1 and %d", len(model.Fields)))
	}

	// A canonical name must belong to at most one family.
	seen := make(map[string]string)
	for family, members := range c.AircraftFamilies {
		for _, name := range members {
			if prev, ok := seen[name]; ok && prev != family {
				errs = append(errs, fmt.Sprintf("aircraft %q appears in families %q and %q", name, prev, family))
			}
			seen[name] = family
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("compare: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

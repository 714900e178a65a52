// Package compare implements per-field comparison of extracted flight
// records against ground truth. All matching policy (exact, family-based,
// duration tolerance) lives in the ScoringConfig rule table.
package compare

import (
	"strconv"
	"strings"

	"github.com/aerolens/flighteval/internal/config"
	"github.com/aerolens/flighteval/internal/model"
)

// Comparator classifies extracted-vs-truth field pairs. It is stateless
// apart from the read-only policy and family index, so a single instance is
// safe for concurrent use.
type Comparator struct {
	cfg      config.ScoringConfig
	familyOf map[string]string
}

// New creates a Comparator from a validated scoring config. The family
// table is inverted once into a name-to-family index.
func New(cfg config.ScoringConfig) (*Comparator, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	familyOf := make(map[string]string)
	for family, members := range cfg.AircraftFamilies {
		for _, name := range members {
			familyOf[name] = family
		}
	}

	return &Comparator{cfg: cfg, familyOf: familyOf}, nil
}

// Compare classifies one field's extracted-vs-truth pair. It never errors:
// missing or malformed input degrades to a mismatch, because an unusable
// field is itself the signal under test.
func (c *Comparator) Compare(field model.Field, extracted, truth *string) model.FieldComparison {
	// Flight number is never scored: a route+date can have several valid
	// flight numbers, so the comparison is ambiguous either way.
	if field == model.FieldFlightNumber {
		return model.FieldComparison{Field: field, Match: model.VerdictExcluded}
	}

	if model.IsMissing(extracted) || model.IsMissing(truth) {
		return mismatch(field)
	}

	ev := strings.TrimSpace(*extracted)
	tv := strings.TrimSpace(*truth)

	switch field {
	case model.FieldAircraftName:
		return c.compareAircraft(field, ev, tv)
	case model.FieldFlightTime:
		return c.compareDuration(field, ev, tv)
	default:
		if ev == tv {
			return matched(field, 1.0)
		}
		return mismatch(field)
	}
}

// CompareRecord evaluates all seven fields of a record pair.
func (c *Comparator) CompareRecord(extracted, truth *model.FlightRecord) map[model.Field]model.FieldComparison {
	out := make(map[model.Field]model.FieldComparison, len(model.Fields))
	for _, f := range model.Fields {
		out[f] = c.Compare(f, extracted.Value(f), truth.Value(f))
	}
	return out
}

// compareAircraft grades exact matches at 1.0 and same-family matches at
// the configured family grade. A name outside the family table is its own
// singleton family.
func (c *Comparator) compareAircraft(field model.Field, extracted, truth string) model.FieldComparison {
	if extracted == truth {
		return matched(field, 1.0)
	}
	ef, et := c.family(extracted), c.family(truth)
	if ef == et {
		return matched(field, c.cfg.AircraftFamilyGrade)
	}
	return mismatch(field)
}

// family returns the family grouping for a canonical name, falling back to
// the name itself as a singleton.
func (c *Comparator) family(name string) string {
	if f, ok := c.familyOf[name]; ok {
		return f
	}
	return name
}

// compareDuration parses both values as HH:MM durations and grades by the
// absolute difference in minutes. Unparsable values fail closed.
func (c *Comparator) compareDuration(field model.Field, extracted, truth string) model.FieldComparison {
	diff, ok := c.DurationDiffMins(extracted, truth)
	if !ok {
		return mismatch(field)
	}
	switch {
	case diff <= c.cfg.DurationFullCreditMins:
		return matched(field, 1.0)
	case diff <= c.cfg.DurationPartialCreditMins:
		return matched(field, c.cfg.DurationPartialGrade)
	default:
		return mismatch(field)
	}
}

// DurationDiffMins returns the absolute difference in minutes between two
// HH:MM duration strings, or ok=false if either is unparsable. The review
// flagger uses the same computation and the same cutoff as the comparator,
// so a duration_error flag fires exactly when the grade is zero.
func (c *Comparator) DurationDiffMins(extracted, truth string) (int, bool) {
	em, ok := parseDurationMins(extracted)
	if !ok {
		return 0, false
	}
	tm, ok := parseDurationMins(truth)
	if !ok {
		return 0, false
	}
	diff := em - tm
	if diff < 0 {
		diff = -diff
	}
	return diff, true
}

// WrongDurationMins returns the cutoff beyond which a duration counts as
// wrong (and is flagged for review).
func (c *Comparator) WrongDurationMins() int {
	return c.cfg.DurationPartialCreditMins
}

// parseDurationMins converts an "HH:MM" duration (not clock time) to total
// minutes. time.ParseDuration does not accept this wire format.
func parseDurationMins(s string) (int, bool) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || h == "" || m == "" {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return 0, false
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 {
		return 0, false
	}
	return hours*60 + mins, true
}

func matched(field model.Field, grade float64) model.FieldComparison {
	return model.FieldComparison{Field: field, Match: model.VerdictMatch, Grade: &grade}
}

func mismatch(field model.Field) model.FieldComparison {
	zero := 0.0
	return model.FieldComparison{Field: field, Match: model.VerdictMismatch, Grade: &zero}
}

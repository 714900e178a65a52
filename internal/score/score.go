// Package score reduces batches of evaluated cases into per-field
// precision/recall/F1, a weighted overall score, summary statistics, and
// per-case review flags.
package score

import (
	"math"

	"github.com/aerolens/flighteval/internal/compare"
	"github.com/aerolens/flighteval/internal/config"
	"github.com/aerolens/flighteval/internal/model"
)

// Scorer aggregates evaluation cases. It holds only read-only policy and is
// safe for concurrent use.
type Scorer struct {
	cfg config.ScoringConfig
	cmp *compare.Comparator
}

// New creates a Scorer sharing the comparator's policy. The comparator is
// needed so the duration_error flag reads the exact threshold the
// comparator scores with.
func New(cmp *compare.Comparator, cfg config.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg, cmp: cmp}
}

// FieldMetrics computes the per-field aggregate over a batch.
// Degenerate inputs (no cases, no extractions) yield zeroes, never NaN:
// a report over an empty subset must still be valid and sortable.
func (s *Scorer) FieldMetrics(cases []model.EvaluationCase, field model.Field) model.FieldMetrics {
	m := model.FieldMetrics{Field: field, Total: len(cases)}

	for i := range cases {
		c := &cases[i]
		if c.Extracted.Present(field) {
			m.Extracted++
		}
		if cmp, ok := c.Comparisons[field]; ok && cmp.Scored() {
			if cmp.Match == model.VerdictMatch {
				m.Correct++
			}
			m.GradeSum += cmp.GradeValue()
		}
	}

	if m.Extracted > 0 {
		m.Precision = m.GradeSum / float64(m.Extracted)
	}
	if m.Total > 0 {
		m.Recall = m.GradeSum / float64(m.Total)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// AllFieldMetrics computes metrics for every scored field.
func (s *Scorer) AllFieldMetrics(cases []model.EvaluationCase) map[model.Field]model.FieldMetrics {
	out := make(map[model.Field]model.FieldMetrics, len(model.ScoredFields))
	for _, f := range model.ScoredFields {
		out[f] = s.FieldMetrics(cases, f)
	}
	return out
}

// Overall computes the weighted mean of per-field F1 scores. Flight number
// carries no metrics and never contributes.
func (s *Scorer) Overall(perField map[model.Field]model.FieldMetrics) float64 {
	var weighted, total float64
	for _, f := range model.ScoredFields {
		m, ok := perField[f]
		if !ok {
			continue
		}
		w := s.cfg.FieldWeight(f)
		weighted += w * m.F1
		total += w
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// Summary computes batch-level statistics: perfect-match count, count of
// cases with any data, and the mean of all defined grades.
func (s *Scorer) Summary(cases []model.EvaluationCase) model.SummaryStats {
	stats := model.SummaryStats{Cases: len(cases)}

	var gradeSum float64
	var gradeCount int
	for i := range cases {
		c := &cases[i]
		if c.Perfect() {
			stats.PerfectMatches++
		}
		if c.HasData() {
			stats.WithData++
		}
		for _, cmp := range c.Comparisons {
			if cmp.Scored() {
				gradeSum += cmp.GradeValue()
				gradeCount++
			}
		}
	}
	if gradeCount > 0 {
		stats.AvgGrade = gradeSum / float64(gradeCount)
	}
	return stats
}

// Flags derives review flags for one case. Pure classification over
// already-computed data; flags are non-exclusive.
func (s *Scorer) Flags(c *model.EvaluationCase) []model.ReviewFlag {
	var flags []model.ReviewFlag

	aircraftPresent := c.Extracted.Present(model.FieldAircraftName)
	durationPresent := c.Extracted.Present(model.FieldFlightTime)

	// Finding a duration typically implies a source that also names the
	// aircraft, so its absence is inconsistent.
	if !aircraftPresent && durationPresent {
		flags = append(flags, model.FlagAircraftMissing)
	}

	// Wrong answer, not missing answer.
	if aircraftPresent {
		if cmp, ok := c.Comparisons[model.FieldAircraftName]; ok && cmp.Scored() && cmp.GradeValue() == 0 {
			flags = append(flags, model.FlagAircraftMismatch)
		}
	}

	// Same cutoff the comparator scores zero at, read from the comparator.
	if durationPresent && c.Truth.Present(model.FieldFlightTime) {
		if diff, ok := s.cmp.DurationDiffMins(*c.Extracted.FlightTime, *c.Truth.FlightTime); ok && diff > s.cmp.WrongDurationMins() {
			flags = append(flags, model.FlagDurationError)
		}
	}

	if missing := missingExtractedFields(c); missing >= s.cfg.LowQualityMissingFields {
		flags = append(flags, model.FlagLowQuality)
	}

	return flags
}

// Report assembles the full batch result. Call only after every case's
// extraction has completed; aggregation is not streamed.
func (s *Scorer) Report(cases []model.EvaluationCase) *model.RunResult {
	perField := s.AllFieldMetrics(cases)
	return &model.RunResult{
		Fields:  perField,
		Overall: round4(s.Overall(perField)),
		Summary: s.Summary(cases),
		Cases:   cases,
	}
}

func missingExtractedFields(c *model.EvaluationCase) int {
	if c.Extracted == nil {
		return len(model.Fields)
	}
	return c.Extracted.MissingCount()
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

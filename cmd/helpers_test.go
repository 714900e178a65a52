//go:build !integration

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aerolens/flighteval/internal/model"
)

func sampleRunResult() *model.RunResult {
	fields := make(map[model.Field]model.FieldMetrics, len(model.ScoredFields))
	for _, f := range model.ScoredFields {
		fields[f] = model.FieldMetrics{
			Field: f, Total: 4, Extracted: 4, Correct: 3,
			GradeSum: 3.5, Precision: 0.875, Recall: 0.875, F1: 0.875,
		}
	}
	return &model.RunResult{
		Fields:  fields,
		Overall: 0.875,
		Summary: model.SummaryStats{Cases: 4, PerfectMatches: 2, WithData: 4, AvgGrade: 0.875},
		Cases: []model.EvaluationCase{
			{Query: "AA100 JFK to LAX"},
			{
				Query: "DL200 ATL to SEA",
				Flags: []model.ReviewFlag{model.FlagAircraftMismatch, model.FlagDurationError},
			},
		},
	}
}

func TestRenderResult(t *testing.T) {
	out := renderResult(sampleRunResult())

	for _, f := range model.ScoredFields {
		assert.Contains(t, out, string(f))
	}
	assert.NotContains(t, out, string(model.FieldFlightNumber))

	assert.Contains(t, out, "overall weighted f1: 0.8750")
	assert.Contains(t, out, "perfect matches:     2/4")
	assert.Contains(t, out, "cases with data:     4/4")
	assert.Contains(t, out, "average grade:       0.8750")

	assert.Contains(t, out, "flagged for review:")
	assert.Contains(t, out, "DL200 ATL to SEA  [aircraft_mismatch, duration_error]")
	assert.NotContains(t, out, "AA100 JFK to LAX  [")
}

func TestRenderResult_NoFlags(t *testing.T) {
	result := sampleRunResult()
	result.Cases = result.Cases[:1]

	out := renderResult(result)
	assert.NotContains(t, out, "flagged for review:")
}

func TestFlaggedCases_SortsFlagNames(t *testing.T) {
	result := &model.RunResult{
		Cases: []model.EvaluationCase{
			{
				Query: "q",
				Flags: []model.ReviewFlag{model.FlagLowQuality, model.FlagAircraftMissing},
			},
		},
	}

	lines := flaggedCases(result)
	assert.Equal(t, []string{"q  [aircraft_missing, low_quality]"}, lines)
}

package model

import "time"

// MatchVerdict is the tri-state outcome of a single field comparison.
type MatchVerdict string

const (
	VerdictMatch    MatchVerdict = "match"
	VerdictMismatch MatchVerdict = "mismatch"
	// VerdictExcluded marks a field that never counts toward scoring.
	VerdictExcluded MatchVerdict = "excluded"
)

// FieldComparison is the result of comparing one field between an extracted
// record and ground truth. Grade is defined iff the verdict is not excluded.
type FieldComparison struct {
	Field Field        `json:"field"`
	Match MatchVerdict `json:"match"`
	Grade *float64     `json:"grade,omitempty"`
}

// Scored reports whether this comparison participates in metrics.
func (c FieldComparison) Scored() bool {
	return c.Match != VerdictExcluded
}

// GradeValue returns the grade, or 0 when undefined.
func (c FieldComparison) GradeValue() float64 {
	if c.Grade == nil {
		return 0
	}
	return *c.Grade
}

// ReviewFlag tags a case for human triage, orthogonal to its numeric grade.
type ReviewFlag string

const (
	// FlagAircraftMissing: duration was found but the aircraft was not.
	// A source that reports duration usually names the aircraft too.
	FlagAircraftMissing ReviewFlag = "aircraft_missing"
	// FlagAircraftMismatch: aircraft extracted but graded zero.
	FlagAircraftMismatch ReviewFlag = "aircraft_mismatch"
	// FlagDurationError: extracted duration is off by more than the
	// comparator's wrong-answer cutoff.
	FlagDurationError ReviewFlag = "duration_error"
	// FlagLowQuality: too many fields came back empty.
	FlagLowQuality ReviewFlag = "low_quality"
)

// TestCase is one dataset entry: a natural-language query and the verified
// record it should resolve to.
type TestCase struct {
	Query string       `json:"query" yaml:"query"`
	Truth FlightRecord `json:"truth" yaml:"truth"`
}

// EvaluationCase holds everything known about one evaluated test case.
// Built once after extraction completes; immutable thereafter.
type EvaluationCase struct {
	Query       string                    `json:"query"`
	Truth       FlightRecord              `json:"truth"`
	Extracted   *FlightRecord             `json:"extracted,omitempty"`
	Comparisons map[Field]FieldComparison `json:"comparisons"`
	Flags       []ReviewFlag              `json:"flags,omitempty"`
	Elapsed     time.Duration             `json:"elapsed_ns"`
	Error       string                    `json:"error,omitempty"`
}

// Perfect reports whether every scored comparison matched.
func (c *EvaluationCase) Perfect() bool {
	if len(c.Comparisons) == 0 {
		return false
	}
	for _, cmp := range c.Comparisons {
		if cmp.Scored() && cmp.Match != VerdictMatch {
			return false
		}
	}
	return true
}

// HasData reports whether at least one extracted field is present.
func (c *EvaluationCase) HasData() bool {
	if c.Extracted == nil {
		return false
	}
	return c.Extracted.MissingCount() < len(Fields)
}

// FieldMetrics is the per-field aggregate over a batch of cases.
// Precision and recall are grade-weighted: partial-credit matches (same
// aircraft family, near-miss duration) contribute their grade instead of a
// full count. For fields whose grades are binary this reduces to the plain
// correct/extracted and correct/total ratios.
type FieldMetrics struct {
	Field     Field   `json:"field"`
	Total     int     `json:"total"`
	Extracted int     `json:"extracted"`
	Correct   int     `json:"correct"`
	GradeSum  float64 `json:"grade_sum"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// SummaryStats summarizes a batch beyond per-field metrics.
type SummaryStats struct {
	Cases          int     `json:"cases"`
	PerfectMatches int     `json:"perfect_matches"`
	WithData       int     `json:"with_data"`
	AvgGrade       float64 `json:"avg_grade"`
}

// RunResult is the full outcome of evaluating one dataset.
type RunResult struct {
	Fields  map[Field]FieldMetrics `json:"fields"`
	Overall float64                `json:"overall"`
	Summary SummaryStats           `json:"summary"`
	Cases   []EvaluationCase       `json:"cases"`
}

// RunStatus represents the state of an evaluation run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run is a persisted evaluation run.
type Run struct {
	ID        string     `json:"id"`
	Dataset   string     `json:"dataset"`
	Provider  string     `json:"provider"`
	Status    RunStatus  `json:"status"`
	Result    *RunResult `json:"result,omitempty"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

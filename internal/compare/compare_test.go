package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerolens/flighteval/internal/model"
)

func newTestComparator(t *testing.T) *Comparator {
	t.Helper()
	cmp, err := New(DefaultConfig())
	require.NoError(t, err)
	return cmp
}

func TestCompareFlightNumberAlwaysExcluded(t *testing.T) {
	t.Parallel()
	cmp := newTestComparator(t)

	tests := []struct {
		name      string
		extracted *string
		truth     *string
	}{
		{"both present", model.StringPtr("1234"), model.StringPtr("1234")},
		{"different", model.StringPtr("1234"), model.StringPtr("5678")},
		{"extracted nil", nil, model.StringPtr("1234")},
		{"both nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := cmp.Compare(model.FieldFlightNumber, tt.extracted, tt.truth)
			assert.Equal(t, model.VerdictExcluded, got.Match)
			assert.Nil(t, got.Grade, "excluded comparisons carry no grade")
		})
	}
}

func TestCompareMissingExtractedFailsClosed(t *testing.T) {
	t.Parallel()
	cmp := newTestComparator(t)

	for _, f := range model.ScoredFields {
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()
			got := cmp.Compare(f, nil, model.StringPtr("anything"))
			assert.Equal(t, model.VerdictMismatch, got.Match)
			require.NotNil(t, got.Grade)
			assert.Equal(t, 0.0, *got.Grade)
		})
	}
}

func TestCompareExactFields(t *testing.T) {
	t.Parallel()
	cmp := newTestComparator(t)

	exactFields := []model.Field{
		model.FieldAirlineCode,
		model.FieldDepartureAirport,
		model.FieldArrivalAirport,
		model.FieldFlightDate,
	}

	for _, f := range exactFields {
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()

			same := cmp.Compare(f, model.StringPtr("WN"), model.StringPtr("WN"))
			assert.Equal(t, model.VerdictMatch, same.Match)
			assert.Equal(t, 1.0, same.GradeValue())

			diff := cmp.Compare(f, model.StringPtr("WN"), model.StringPtr("DL"))
			assert.Equal(t, model.VerdictMismatch, diff.Match)
			assert.Equal(t, 0.0, diff.GradeValue())
		})
	}
}

func TestCompareAircraft(t *testing.T) {
	t.Parallel()
	cmp := newTestComparator(t)

	tests := []struct {
		name      string
		extracted string
		truth     string
		verdict   model.MatchVerdict
		grade     float64
	}{
		{"exact", "Boeing 737NG", "Boeing 737NG", model.VerdictMatch, 1.0},
		{"same family", "Boeing 737MAX", "Boeing 737NG", model.VerdictMatch, 0.8},
		{"same family reversed", "Boeing 737NG", "Boeing 737MAX", model.VerdictMatch, 0.8},
		{"a320 family", "Airbus A321neo", "Airbus A320", model.VerdictMatch, 0.8},
		{"different family", "Airbus A320", "Boeing 737NG", model.VerdictMismatch, 0.0},
		{"unknown name exact", "Concorde", "Concorde", model.VerdictMatch, 1.0},
		{"unknown vs known", "Concorde", "Boeing 737NG", model.VerdictMismatch, 0.0},
		{"two unknowns", "Concorde", "Tu-144", model.VerdictMismatch, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := cmp.Compare(model.FieldAircraftName, model.StringPtr(tt.extracted), model.StringPtr(tt.truth))
			assert.Equal(t, tt.verdict, got.Match)
			assert.Equal(t, tt.grade, got.GradeValue())
		})
	}
}

func TestCompareDurationBoundaries(t *testing.T) {
	t.Parallel()
	cmp := newTestComparator(t)

	tests := []struct {
		name      string
		extracted string
		truth     string
		verdict   model.MatchVerdict
		grade     float64
	}{
		{"equal", "01:30", "01:30", model.VerdictMatch, 1.0},
		{"exactly 15 min is full credit", "01:30", "01:45", model.VerdictMatch, 1.0},
		{"16 min is partial", "01:30", "01:46", model.VerdictMatch, 0.7},
		{"exactly 30 min is partial credit", "01:30", "02:00", model.VerdictMatch, 0.7},
		{"31 min is wrong", "01:30", "02:01", model.VerdictMismatch, 0.0},
		{"symmetric diff", "02:00", "01:30", model.VerdictMatch, 0.7},
		{"multi-hour", "10:00", "01:00", model.VerdictMismatch, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := cmp.Compare(model.FieldFlightTime, model.StringPtr(tt.extracted), model.StringPtr(tt.truth))
			assert.Equal(t, tt.verdict, got.Match)
			assert.Equal(t, tt.grade, got.GradeValue())
		})
	}
}

func TestCompareDurationUnparsableFailsClosed(t *testing.T) {
	t.Parallel()
	cmp := newTestComparator(t)

	bad := []string{"ninety minutes", "1h30m", "25:99", "-1:30", ":30", "01:", ""}
	for _, v := range bad {
		got := cmp.Compare(model.FieldFlightTime, model.StringPtr(v), model.StringPtr("01:30"))
		assert.Equal(t, model.VerdictMismatch, got.Match, "value %q", v)
		assert.Equal(t, 0.0, got.GradeValue(), "value %q", v)
	}
}

func TestParseDurationMins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"01:30", 90, true},
		{"12:05", 725, true},
		{"01:60", 0, false},
		{"abc", 0, false},
		{"1:5", 65, true},
	}

	for _, tt := range tests {
		got, ok := parseDurationMins(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestCompareRecordCoversAllFields(t *testing.T) {
	t.Parallel()
	cmp := newTestComparator(t)

	truth := model.FlightRecord{
		AirlineCode:  model.StringPtr("WN"),
		FlightTime:   model.StringPtr("01:30"),
		AircraftName: model.StringPtr("Boeing 737NG"),
	}
	got := cmp.CompareRecord(&model.FlightRecord{}, &truth)

	assert.Len(t, got, 7, "one comparison per fixed field")
	for _, f := range model.Fields {
		assert.Contains(t, got, f)
	}
	assert.Equal(t, model.VerdictExcluded, got[model.FieldFlightNumber].Match)
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateConfig(DefaultConfig()))

	neg := DefaultConfig()
	neg.QueryFieldWeight = -1
	assert.Error(t, ValidateConfig(neg))

	tiers := DefaultConfig()
	tiers.DurationPartialCreditMins = 10 // below full-credit tier
	assert.Error(t, ValidateConfig(tiers))

	grade := DefaultConfig()
	grade.AircraftFamilyGrade = 1.5
	assert.Error(t, ValidateConfig(grade))

	dup := DefaultConfig()
	dup.AircraftFamilies = map[string][]string{
		"Boeing 737": {"Boeing 737NG"},
		"Boeing 73x": {"Boeing 737NG"},
	}
	assert.Error(t, ValidateConfig(dup))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.DurationPartialGrade = 2.0
	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

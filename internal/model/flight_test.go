package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightRecordValue(t *testing.T) {
	t.Parallel()

	rec := FlightRecord{
		FlightNumber:     StringPtr("1234"),
		AirlineCode:      StringPtr("WN"),
		DepartureAirport: StringPtr("LAS"),
		ArrivalAirport:   StringPtr("ABQ"),
		FlightDate:       StringPtr("16-12-2025"),
		FlightTime:       StringPtr("01:30"),
		AircraftName:     StringPtr("Boeing 737NG"),
	}

	tests := []struct {
		field Field
		want  string
	}{
		{FieldFlightNumber, "1234"},
		{FieldAirlineCode, "WN"},
		{FieldDepartureAirport, "LAS"},
		{FieldArrivalAirport, "ABQ"},
		{FieldFlightDate, "16-12-2025"},
		{FieldFlightTime, "01:30"},
		{FieldAircraftName, "Boeing 737NG"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			t.Parallel()
			v := rec.Value(tt.field)
			require.NotNil(t, v)
			assert.Equal(t, tt.want, *v)
		})
	}

	assert.Nil(t, rec.Value(Field("bogus")))
	assert.Nil(t, (*FlightRecord)(nil).Value(FieldAirlineCode))
}

func TestIsMissing(t *testing.T) {
	t.Parallel()

	assert.True(t, IsMissing(nil))
	assert.True(t, IsMissing(StringPtr("")))
	assert.True(t, IsMissing(StringPtr("  ")))
	assert.True(t, IsMissing(StringPtr("N/A")))
	assert.True(t, IsMissing(StringPtr("n/a")))
	assert.True(t, IsMissing(StringPtr("null")))
	assert.False(t, IsMissing(StringPtr("WN")))
}

func TestFlightRecordNormalize(t *testing.T) {
	t.Parallel()

	rec := &FlightRecord{
		AirlineCode:  StringPtr("  WN "),
		FlightTime:   StringPtr("N/A"),
		AircraftName: StringPtr(""),
		FlightDate:   StringPtr("null"),
	}
	rec.Normalize()

	require.NotNil(t, rec.AirlineCode)
	assert.Equal(t, "WN", *rec.AirlineCode)
	assert.Nil(t, rec.FlightTime)
	assert.Nil(t, rec.AircraftName)
	assert.Nil(t, rec.FlightDate)
	assert.Nil(t, rec.FlightNumber)
}

func TestMissingCount(t *testing.T) {
	t.Parallel()

	empty := &FlightRecord{}
	assert.Equal(t, 7, empty.MissingCount())

	partial := &FlightRecord{
		AirlineCode: StringPtr("WN"),
		FlightTime:  StringPtr("01:30"),
	}
	assert.Equal(t, 5, partial.MissingCount())
}

func TestScoredFieldsExcludeFlightNumber(t *testing.T) {
	t.Parallel()

	assert.Len(t, Fields, 7)
	assert.Len(t, ScoredFields, 6)
	assert.NotContains(t, ScoredFields, FieldFlightNumber)
}

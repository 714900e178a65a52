package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerolens/flighteval/internal/model"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "groundtruth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, `
cases:
  - query: "Find flight details for WN from LAS to ABQ on 16-12-2025"
    truth:
      flightNumber: "1234"
      airlineCode: WN
      departureAirportCode: LAS
      arrivalAirportCode: ABQ
      flightDate: 16-12-2025
      flightTime: "01:30"
      aircraftCode: B738
  - truth:
      airlineCode: DL
      departureAirportCode: ATL
      arrivalAirportCode: JFK
      flightDate: 01-01-2026
      flightTime: "02:15"
      aircraftName: Airbus A321neo
`)

	cases, err := LoadYAML(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)

	first := cases[0]
	assert.Equal(t, "Find flight details for WN from LAS to ABQ on 16-12-2025", first.Query)
	require.NotNil(t, first.Truth.AircraftName)
	assert.Equal(t, "Boeing 737NG", *first.Truth.AircraftName, "ICAO code mapped to display name")
	require.NotNil(t, first.Truth.FlightNumber)
	assert.Equal(t, "1234", *first.Truth.FlightNumber)

	second := cases[1]
	assert.Contains(t, second.Query, "DL flight from ATL to JFK on 01-01-2026", "query synthesized from truth")
	require.NotNil(t, second.Truth.AircraftName)
	assert.Equal(t, "Airbus A321neo", *second.Truth.AircraftName)
}

func TestLoadYAMLUnknownAircraftCode(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, `
cases:
  - query: q
    truth:
      airlineCode: WN
      aircraftCode: ZZZZ
`)

	_, err := LoadYAML(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized aircraft type code")
}

func TestLoadYAMLBadFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		truth string
	}{
		{"bad date", `flightDate: "2025-12-16"`},
		{"bad time", `flightTime: "1h30m"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeDataset(t, `
cases:
  - query: q
    truth:
      airlineCode: WN
      `+tt.truth+`
`)
			_, err := LoadYAML(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadYAMLEmpty(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, "cases: []\n")
	_, err := LoadYAML(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cases")
}

func TestLoadUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := Load("whatever.csv", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	full := model.FlightRecord{
		AirlineCode:      model.StringPtr("WN"),
		DepartureAirport: model.StringPtr("LAS"),
		ArrivalAirport:   model.StringPtr("ABQ"),
		FlightDate:       model.StringPtr("16-12-2025"),
	}
	q := BuildQuery(full)
	assert.Contains(t, q, "WN flight from LAS to ABQ on 16-12-2025")

	assert.Empty(t, BuildQuery(model.FlightRecord{AirlineCode: model.StringPtr("WN")}))
}

func TestParseRows(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"query", "airlineCode", "departureAirportCode", "arrivalAirportCode", "flightDate", "flightTime", "aircraftCode"},
		{"find it", "WN", "LAS", "ABQ", "16-12-2025", "01:30", "B38M"},
		{"", "", "", "", "", "", ""}, // blank rows are skipped
	}

	cases, err := parseRows(rows)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "find it", cases[0].Query)
	require.NotNil(t, cases[0].Truth.AircraftName)
	assert.Equal(t, "Boeing 737MAX", *cases[0].Truth.AircraftName)
}

func TestParseRowsErrors(t *testing.T) {
	t.Parallel()

	_, err := parseRows([][]string{{"query"}})
	assert.Error(t, err, "missing data rows")

	_, err = parseRows([][]string{
		{"unrelated", "columns"},
		{"a", "b"},
	})
	assert.Error(t, err, "no recognized columns")
}

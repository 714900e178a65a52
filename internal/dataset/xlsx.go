package dataset

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/aerolens/flighteval/internal/model"
)

// xlsxColumns maps header names (lowercased) to raw-case setters. Column
// order in the sheet does not matter.
var xlsxColumns = map[string]func(*rawCase, string){
	"query":                func(c *rawCase, v string) { c.Query = v },
	"flightnumber":         func(c *rawCase, v string) { c.Truth.FlightNumber = v },
	"airlinecode":          func(c *rawCase, v string) { c.Truth.AirlineCode = v },
	"departureairportcode": func(c *rawCase, v string) { c.Truth.DepartureAirport = v },
	"arrivalairportcode":   func(c *rawCase, v string) { c.Truth.ArrivalAirport = v },
	"flightdate":           func(c *rawCase, v string) { c.Truth.FlightDate = v },
	"flighttime":           func(c *rawCase, v string) { c.Truth.FlightTime = v },
	"aircraftcode":         func(c *rawCase, v string) { c.Truth.AircraftCode = v },
	"aircraftname":         func(c *rawCase, v string) { c.Truth.AircraftName = v },
}

// LoadXLSX reads test cases from the first sheet of an XLSX workbook. The
// first row must be a header naming the record fields.
func LoadXLSX(path string) ([]model.TestCase, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("dataset: %s has no sheets", path)
	}

	var rows [][]string
	for _, row := range f.Sheets[0].Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.String()
		}
		rows = append(rows, cells)
	}

	cases, err := parseRows(rows)
	if err != nil {
		return nil, err
	}

	zap.L().Info("dataset: loaded",
		zap.String("path", path),
		zap.Int("cases", len(cases)),
	)
	return cases, nil
}

// parseRows converts a header row plus data rows into normalized cases.
func parseRows(rows [][]string) ([]model.TestCase, error) {
	if len(rows) < 2 {
		return nil, eris.New("dataset: xlsx needs a header row and at least one case")
	}

	header := rows[0]
	setters := make([]func(*rawCase, string), len(header))
	known := 0
	for i, name := range header {
		if set, ok := xlsxColumns[strings.ToLower(strings.TrimSpace(name))]; ok {
			setters[i] = set
			known++
		}
	}
	if known == 0 {
		return nil, eris.New("dataset: xlsx header has no recognized columns")
	}

	cases := make([]model.TestCase, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		var rc rawCase
		for i, v := range row {
			if i < len(setters) && setters[i] != nil {
				setters[i](&rc, v)
			}
		}
		tc, err := normalizeCase(rc)
		if err != nil {
			return nil, eris.Wrapf(err, "dataset: row %d", n+2)
		}
		cases = append(cases, tc)
	}
	if len(cases) == 0 {
		return nil, eris.New("dataset: xlsx contains no cases")
	}
	return cases, nil
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

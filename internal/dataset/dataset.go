// Package dataset loads ground-truth test cases from YAML or XLSX files and
// normalizes them to the FlightRecord shape, including the ICAO-to-display
// name mapping for aircraft.
package dataset

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/aerolens/flighteval/internal/model"
)

var (
	dateRe = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`) // DD-MM-YYYY
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)       // HH:MM duration
)

// rawCase is the on-disk shape of one test case. The aircraft may be given
// as a raw ICAO type code, which is mapped to its canonical display name at
// load time.
type rawCase struct {
	Query string `yaml:"query"`
	Truth struct {
		FlightNumber     string `yaml:"flightNumber"`
		AirlineCode      string `yaml:"airlineCode"`
		DepartureAirport string `yaml:"departureAirportCode"`
		ArrivalAirport   string `yaml:"arrivalAirportCode"`
		FlightDate       string `yaml:"flightDate"`
		FlightTime       string `yaml:"flightTime"`
		AircraftCode     string `yaml:"aircraftCode"`
		AircraftName     string `yaml:"aircraftName"`
	} `yaml:"truth"`
}

type rawFile struct {
	Cases []rawCase `yaml:"cases"`
}

// Load reads a dataset in the given format ("yaml" or "xlsx").
func Load(path, format string) ([]model.TestCase, error) {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		return LoadYAML(path)
	case "xlsx":
		return LoadXLSX(path)
	default:
		return nil, eris.Errorf("dataset: unsupported format %q", format)
	}
}

// LoadYAML reads test cases from a YAML file.
func LoadYAML(path string) ([]model.TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read file")
	}

	var f rawFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "dataset: parse yaml")
	}
	if len(f.Cases) == 0 {
		return nil, eris.Errorf("dataset: %s contains no cases", path)
	}

	cases := make([]model.TestCase, 0, len(f.Cases))
	for i, rc := range f.Cases {
		tc, err := normalizeCase(rc)
		if err != nil {
			return nil, eris.Wrapf(err, "dataset: case %d", i)
		}
		cases = append(cases, tc)
	}

	zap.L().Info("dataset: loaded",
		zap.String("path", path),
		zap.Int("cases", len(cases)),
	)
	return cases, nil
}

// normalizeCase validates a raw case and converts it to the canonical shape.
func normalizeCase(rc rawCase) (model.TestCase, error) {
	t := rc.Truth

	rec := model.FlightRecord{
		FlightNumber:     optional(t.FlightNumber),
		AirlineCode:      optional(t.AirlineCode),
		DepartureAirport: optional(t.DepartureAirport),
		ArrivalAirport:   optional(t.ArrivalAirport),
		FlightDate:       optional(t.FlightDate),
		FlightTime:       optional(t.FlightTime),
	}

	switch {
	case t.AircraftName != "":
		rec.AircraftName = model.StringPtr(t.AircraftName)
	case t.AircraftCode != "":
		name, err := model.AircraftFromICAO(strings.ToUpper(strings.TrimSpace(t.AircraftCode)))
		if err != nil {
			return model.TestCase{}, err
		}
		rec.AircraftName = model.StringPtr(string(name))
	}

	if rec.FlightDate != nil && !dateRe.MatchString(*rec.FlightDate) {
		return model.TestCase{}, eris.Errorf("flightDate %q is not DD-MM-YYYY", *rec.FlightDate)
	}
	if rec.FlightTime != nil && !timeRe.MatchString(*rec.FlightTime) {
		return model.TestCase{}, eris.Errorf("flightTime %q is not HH:MM", *rec.FlightTime)
	}

	rec.Normalize()

	query := strings.TrimSpace(rc.Query)
	if query == "" {
		query = BuildQuery(rec)
	}
	if query == "" {
		return model.TestCase{}, eris.New("case has no query and not enough truth fields to build one")
	}

	return model.TestCase{Query: query, Truth: rec}, nil
}

// BuildQuery synthesizes a natural-language research query from the fields
// the ground truth supplies directly (airline, route, date).
func BuildQuery(rec model.FlightRecord) string {
	if rec.AirlineCode == nil || rec.DepartureAirport == nil || rec.ArrivalAirport == nil || rec.FlightDate == nil {
		return ""
	}
	return fmt.Sprintf("Find the aircraft type and flight duration for the %s flight from %s to %s on %s.",
		*rec.AirlineCode, *rec.DepartureAirport, *rec.ArrivalAirport, *rec.FlightDate)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

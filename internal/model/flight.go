// Package model defines the flight records, comparison verdicts, and run
// types shared across the evaluation pipeline.
package model

import "strings"

// Field identifies one of the seven fixed flight-record fields.
type Field string

const (
	FieldFlightNumber     Field = "flightNumber"
	FieldAirlineCode      Field = "airlineCode"
	FieldDepartureAirport Field = "departureAirportCode"
	FieldArrivalAirport   Field = "arrivalAirportCode"
	FieldFlightDate       Field = "flightDate"
	FieldFlightTime       Field = "flightTime"
	FieldAircraftName     Field = "aircraftName"
)

// Fields lists all record fields in canonical report order.
var Fields = []Field{
	FieldFlightNumber,
	FieldAirlineCode,
	FieldDepartureAirport,
	FieldArrivalAirport,
	FieldFlightDate,
	FieldFlightTime,
	FieldAircraftName,
}

// ScoredFields lists the fields that participate in metrics. Flight number
// is excluded: a route+date can map to several valid flight numbers, so a
// ground-truth comparison is ambiguous.
var ScoredFields = []Field{
	FieldAirlineCode,
	FieldDepartureAirport,
	FieldArrivalAirport,
	FieldFlightDate,
	FieldFlightTime,
	FieldAircraftName,
}

// MissingSentinel is the literal placeholder some extraction providers emit
// instead of omitting a field.
const MissingSentinel = "N/A"

// FlightRecord is the shape shared by ground truth and extracted data.
// Every field is optional; nil means the value was not found.
type FlightRecord struct {
	FlightNumber     *string `json:"flightNumber,omitempty" yaml:"flightNumber,omitempty"`
	AirlineCode      *string `json:"airlineCode,omitempty" yaml:"airlineCode,omitempty"`
	DepartureAirport *string `json:"departureAirportCode,omitempty" yaml:"departureAirportCode,omitempty"`
	ArrivalAirport   *string `json:"arrivalAirportCode,omitempty" yaml:"arrivalAirportCode,omitempty"`
	FlightDate       *string `json:"flightDate,omitempty" yaml:"flightDate,omitempty"`
	FlightTime       *string `json:"flightTime,omitempty" yaml:"flightTime,omitempty"`
	AircraftName     *string `json:"aircraftName,omitempty" yaml:"aircraftName,omitempty"`
}

// Value returns the record's value for the given field, or nil for an
// unknown field name.
func (r *FlightRecord) Value(f Field) *string {
	if r == nil {
		return nil
	}
	switch f {
	case FieldFlightNumber:
		return r.FlightNumber
	case FieldAirlineCode:
		return r.AirlineCode
	case FieldDepartureAirport:
		return r.DepartureAirport
	case FieldArrivalAirport:
		return r.ArrivalAirport
	case FieldFlightDate:
		return r.FlightDate
	case FieldFlightTime:
		return r.FlightTime
	case FieldAircraftName:
		return r.AircraftName
	}
	return nil
}

// Present reports whether the field holds a usable value: non-nil,
// non-empty, and not the missing sentinel.
func (r *FlightRecord) Present(f Field) bool {
	return !IsMissing(r.Value(f))
}

// MissingCount returns how many of the seven fields are absent.
func (r *FlightRecord) MissingCount() int {
	n := 0
	for _, f := range Fields {
		if !r.Present(f) {
			n++
		}
	}
	return n
}

// Normalize strips whitespace and nils out empty or sentinel values so the
// rest of the pipeline only ever sees nil or a real value.
func (r *FlightRecord) Normalize() {
	if r == nil {
		return
	}
	for _, p := range []**string{
		&r.FlightNumber, &r.AirlineCode, &r.DepartureAirport,
		&r.ArrivalAirport, &r.FlightDate, &r.FlightTime, &r.AircraftName,
	} {
		if *p == nil {
			continue
		}
		v := strings.TrimSpace(**p)
		if v == "" || strings.EqualFold(v, MissingSentinel) || strings.EqualFold(v, "null") {
			*p = nil
			continue
		}
		**p = v
	}
}

// IsMissing reports whether a field value counts as absent.
func IsMissing(v *string) bool {
	if v == nil {
		return true
	}
	s := strings.TrimSpace(*v)
	return s == "" || strings.EqualFold(s, MissingSentinel) || strings.EqualFold(s, "null")
}

// StringPtr returns a pointer to s. Convenience for building records.
func StringPtr(s string) *string {
	return &s
}

package model

import "github.com/rotisserie/eris"

// Aircraft is a canonical family-level display name. The set is closed:
// values outside this enumeration never enter a normalized record.
type Aircraft string

const (
	AircraftB737NG    Aircraft = "Boeing 737NG"
	AircraftB737MAX   Aircraft = "Boeing 737MAX"
	AircraftB747      Aircraft = "Boeing 747"
	AircraftB757      Aircraft = "Boeing 757"
	AircraftB767      Aircraft = "Boeing 767"
	AircraftB777      Aircraft = "Boeing 777"
	AircraftB787      Aircraft = "Boeing 787"
	AircraftA220      Aircraft = "Airbus A220"
	AircraftA319      Aircraft = "Airbus A319"
	AircraftA320      Aircraft = "Airbus A320"
	AircraftA321      Aircraft = "Airbus A321"
	AircraftA320neo   Aircraft = "Airbus A320neo"
	AircraftA321neo   Aircraft = "Airbus A321neo"
	AircraftA330      Aircraft = "Airbus A330"
	AircraftA330neo   Aircraft = "Airbus A330neo"
	AircraftA350      Aircraft = "Airbus A350"
	AircraftA380      Aircraft = "Airbus A380"
	AircraftE170      Aircraft = "Embraer E170"
	AircraftE175      Aircraft = "Embraer E175"
	AircraftE190      Aircraft = "Embraer E190"
	AircraftE195      Aircraft = "Embraer E195"
	AircraftCRJ       Aircraft = "Bombardier CRJ"
	AircraftATR72     Aircraft = "ATR 72"
	AircraftDash8Q400 Aircraft = "De Havilland Dash 8-400"
)

// ErrUnrecognizedCode is returned when an ICAO type code has no canonical
// display name. Callers must not substitute a sentinel.
var ErrUnrecognizedCode = eris.New("model: unrecognized aircraft type code")

// icaoToAircraft maps raw ICAO type designators to canonical names.
var icaoToAircraft = map[string]Aircraft{
	"B736": AircraftB737NG,
	"B737": AircraftB737NG,
	"B738": AircraftB737NG,
	"B739": AircraftB737NG,
	"B37M": AircraftB737MAX,
	"B38M": AircraftB737MAX,
	"B39M": AircraftB737MAX,
	"B3XM": AircraftB737MAX,
	"B744": AircraftB747,
	"B748": AircraftB747,
	"B752": AircraftB757,
	"B753": AircraftB757,
	"B762": AircraftB767,
	"B763": AircraftB767,
	"B764": AircraftB767,
	"B772": AircraftB777,
	"B773": AircraftB777,
	"B77L": AircraftB777,
	"B77W": AircraftB777,
	"B788": AircraftB787,
	"B789": AircraftB787,
	"B78X": AircraftB787,
	"BCS1": AircraftA220,
	"BCS3": AircraftA220,
	"A319": AircraftA319,
	"A320": AircraftA320,
	"A321": AircraftA321,
	"A19N": AircraftA320neo,
	"A20N": AircraftA320neo,
	"A21N": AircraftA321neo,
	"A332": AircraftA330,
	"A333": AircraftA330,
	"A338": AircraftA330neo,
	"A339": AircraftA330neo,
	"A359": AircraftA350,
	"A35K": AircraftA350,
	"A388": AircraftA380,
	"E170": AircraftE170,
	"E75L": AircraftE175,
	"E75S": AircraftE175,
	"E175": AircraftE175,
	"E190": AircraftE190,
	"E195": AircraftE195,
	"E290": AircraftE190,
	"E295": AircraftE195,
	"CRJ2": AircraftCRJ,
	"CRJ7": AircraftCRJ,
	"CRJ9": AircraftCRJ,
	"CRJX": AircraftCRJ,
	"AT72": AircraftATR72,
	"AT75": AircraftATR72,
	"AT76": AircraftATR72,
	"DH8D": AircraftDash8Q400,
}

// AircraftFromICAO maps a raw ICAO type designator (e.g. "B38M") to its
// canonical display name. Unknown codes return ErrUnrecognizedCode.
func AircraftFromICAO(code string) (Aircraft, error) {
	if a, ok := icaoToAircraft[code]; ok {
		return a, nil
	}
	return "", eris.Wrapf(ErrUnrecognizedCode, "code %q", code)
}

// DefaultAircraftFamilies groups canonical names that count as equivalent
// answers to "what aircraft operates this route". Membership is many-to-one;
// a name absent from every group is its own singleton family.
func DefaultAircraftFamilies() map[string][]string {
	return map[string][]string{
		"Boeing 737":  {string(AircraftB737NG), string(AircraftB737MAX)},
		"Boeing 747":  {string(AircraftB747)},
		"Boeing 777":  {string(AircraftB777)},
		"Boeing 787":  {string(AircraftB787)},
		"Airbus A320": {string(AircraftA319), string(AircraftA320), string(AircraftA321), string(AircraftA320neo), string(AircraftA321neo)},
		"Airbus A330": {string(AircraftA330), string(AircraftA330neo)},
		"Airbus A350": {string(AircraftA350)},
		"Embraer E-Jet": {
			string(AircraftE170), string(AircraftE175),
			string(AircraftE190), string(AircraftE195),
		},
	}
}

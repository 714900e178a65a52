package model

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAircraftFromICAO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want Aircraft
	}{
		{"B738", AircraftB737NG},
		{"B38M", AircraftB737MAX},
		{"A20N", AircraftA320neo},
		{"A321", AircraftA321},
		{"B789", AircraftB787},
		{"E75L", AircraftE175},
		{"CRJ9", AircraftCRJ},
		{"DH8D", AircraftDash8Q400},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			got, err := AircraftFromICAO(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAircraftFromICAOUnrecognized(t *testing.T) {
	t.Parallel()

	_, err := AircraftFromICAO("ZZZZ")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrUnrecognizedCode))
}

func TestDefaultAircraftFamiliesManyToOne(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	for family, members := range DefaultAircraftFamilies() {
		for _, name := range members {
			prev, dup := seen[name]
			assert.False(t, dup, "aircraft %q in both %q and %q", name, prev, family)
			seen[name] = family
		}
	}

	// The groups the comparator leans on hardest.
	assert.Equal(t, seen[string(AircraftB737NG)], seen[string(AircraftB737MAX)])
	assert.Equal(t, seen[string(AircraftA320)], seen[string(AircraftA321neo)])
	assert.NotEqual(t, seen[string(AircraftB737NG)], seen[string(AircraftA320)])
}

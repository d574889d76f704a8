package tolls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_StateCodes(t *testing.T) {
	tests := []struct {
		name   string
		states []string
		want   []Region
	}{
		{"northeast only", []string{"NJ", "NY"}, []Region{RegionNortheast}},
		{"two regions", []string{"NJ", "IL"}, []Region{RegionNortheast, RegionGreatLakes}},
		{"no toll regions", []string{"XX"}, nil},
		{"empty", nil, nil},
		{"louisiana", []string{"LA"}, []Region{RegionLouisiana}},
		{
			"cross country",
			[]string{"NJ", "PA", "OH", "IN", "IL", "MO", "KS", "CO", "UT", "NV", "CA"},
			[]Region{RegionNortheast, RegionGreatLakes, RegionMountainWest, RegionGreatPlains, RegionPacificCoast},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.states, ""))
		})
	}
}

func TestClassify_FreeText(t *testing.T) {
	text := "Take I-95 S through New Jersey Turnpike, continue on Ohio Turnpike toward Chicago Skyway"
	got := Classify(nil, text)
	assert.Equal(t, []Region{RegionNortheast, RegionGreatLakes}, got)
}

func TestClassify_LowercaseAndWhitespaceStates(t *testing.T) {
	got := Classify([]string{" nj ", "ny"}, "")
	assert.Equal(t, []Region{RegionNortheast}, got)
}

// Matched regions always come back in the fixed enumeration order, whatever
// order the route reported its states in.
func TestClassify_FixedOrder(t *testing.T) {
	got := Classify([]string{"CA", "TX", "NJ"}, "")
	assert.Equal(t, []Region{RegionNortheast, RegionTexas, RegionPacificCoast}, got)
}

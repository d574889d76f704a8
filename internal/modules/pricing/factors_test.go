package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"haulquote/internal/modules/pricingconfig"
)

func TestWeatherMultiplier(t *testing.T) {
	cfg := pricingconfig.Default().Weather

	tests := []struct {
		condition string
		want      float64
	}{
		{"Clear", 1.00},
		{"Partly Cloudy", 1.00},
		{"Light Rain", 1.05},
		{"Drizzle", 1.05},
		{"Heavy Snow", 1.20},
		{"Thunderstorm", 1.15},
		{"Severe Storm", 1.15},
		{"Blizzard Conditions", 1.20},
		{"Hurricane Warning", 1.20},
		{"Blizzard with Rain", 1.20}, // harshest class wins
		{"", 1.00},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WeatherMultiplier(tt.condition, cfg), "condition %q", tt.condition)
	}
}

func TestWorstWeatherMultiplier(t *testing.T) {
	cfg := pricingconfig.Default().Weather

	got := WorstWeatherMultiplier([]string{"Clear", "Light Rain", "Heavy Snow"}, cfg)
	assert.Equal(t, 1.20, got)

	assert.Equal(t, 1.0, WorstWeatherMultiplier(nil, cfg))
}

func TestFuelMultiplier(t *testing.T) {
	cfg := pricingconfig.Default().Fuel

	tests := []struct {
		change float64
		want   float64
	}{
		{0.20, 1.25},
		{0.12, 1.15},
		{0.07, 1.10},
		{0.03, 1.00},
		{0.0, 1.00},
		{-0.03, 1.00},
		{-0.07, 0.95},
		{-0.15, 0.90},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FuelMultiplier(tt.change, cfg), "change %v", tt.change)
	}
}

func TestTrafficMultiplier(t *testing.T) {
	cfg := pricingconfig.Default().Traffic

	tests := []struct {
		ratio float64
		want  float64
	}{
		{0, 1.0}, // unavailable
		{-1, 1.0},
		{1.0, 1.0},
		{1.29, 1.0},
		{1.3, 1.1},
		{1.59, 1.1},
		{1.6, 1.2},
		{2.5, 1.2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TrafficMultiplier(tt.ratio, cfg), "ratio %v", tt.ratio)
	}
}

func TestVehicleMultiplier(t *testing.T) {
	cfg := pricingconfig.Default().VehicleValue

	assert.Equal(t, 1.0, VehicleMultiplier(TierUnder100K, cfg))
	assert.Equal(t, 1.05, VehicleMultiplier(TierUnder300K, cfg))
	assert.Equal(t, 1.10, VehicleMultiplier(TierUnder500K, cfg))
	assert.Equal(t, 1.15, VehicleMultiplier(TierOver500K, cfg))
	assert.Equal(t, 1.0, VehicleMultiplier("unknown", cfg))
}

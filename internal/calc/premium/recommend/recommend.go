package recommend

import (
	"fmt"
	"strings"
)

type BearingRecommendInput struct {
	SoilType          string `json:"soil_type"`
	ShallowWaterTable bool   `json:"shallow_water_table"`
}

type BearingRecommendResult struct {
	QAllowKPa float64 `json:"q_allow_kpa"`
	Notes     string  `json:"notes"`
}

// Presumptive allowable bearing pressures for preliminary sizing, keyed by
// soil description. Values are conservative textbook figures and already
// include a global safety factor.
var presumptiveKPa = map[string]float64{
	"rock":                1000,
	"dense gravel":        600,
	"medium dense gravel": 400,
	"loose gravel":        200,
	"dense sand":          300,
	"medium dense sand":   150,
	"loose sand":          100,
	"stiff clay":          150,
	"firm clay":           75,
	"soft clay":           40,
}

// BearingPressure suggests an allowable bearing pressure for a soil
// description. Granular values are halved when the water table is within
// the foundation depth.
func BearingPressure(in BearingRecommendInput) (BearingRecommendResult, error) {
	key := strings.ToLower(strings.TrimSpace(in.SoilType))
	q, ok := presumptiveKPa[key]
	if !ok {
		return BearingRecommendResult{}, fmt.Errorf("unknown soil type %q", in.SoilType)
	}
	notes := "Presumptive value for preliminary sizing; confirm with a geotechnical investigation."
	if in.ShallowWaterTable && isGranular(key) {
		q /= 2
		notes = "Presumptive value halved for a shallow water table in granular soil."
	}
	return BearingRecommendResult{QAllowKPa: q, Notes: notes}, nil
}

func isGranular(key string) bool {
	return strings.Contains(key, "gravel") || strings.Contains(key, "sand")
}

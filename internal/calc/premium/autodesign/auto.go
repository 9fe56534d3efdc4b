package autodesign

import (
	"fmt"

	pad "github.com/Thenmitch/pad-foundation-tool/internal/calc/pad"
	recommend "github.com/Thenmitch/pad-foundation-tool/internal/calc/premium/recommend"
)

// PadAutoInput sizes a pad straight from a soil description: the allowable
// bearing pressure is taken from the presumptive table instead of being
// supplied by the caller.
type PadAutoInput struct {
	SoilType          string       `json:"soil_type"`
	ShallowWaterTable bool         `json:"shallow_water_table"`
	LoadCase          pad.LoadCase `json:"load_case"`
	TargetUtilisation float64      `json:"target_utilisation"`
	MinWidthM         float64      `json:"min_width_m"`
	RoundingM         float64      `json:"rounding_m"`
	IncludeSelfWeight *bool        `json:"include_self_weight"`
}

type PadAutoResult struct {
	QAllowKPa float64    `json:"q_allow_kpa"`
	SoilNotes string     `json:"soil_notes"`
	Result    pad.Result `json:"result"`
}

func Pad(in PadAutoInput) (PadAutoResult, error) {
	if in.SoilType == "" {
		return PadAutoResult{}, fmt.Errorf("invalid input")
	}
	soil, err := recommend.BearingPressure(recommend.BearingRecommendInput{
		SoilType:          in.SoilType,
		ShallowWaterTable: in.ShallowWaterTable,
	})
	if err != nil {
		return PadAutoResult{}, err
	}

	c := pad.Constraints{
		QAllowKPa:         soil.QAllowKPa,
		TargetUtilisation: in.TargetUtilisation,
		MinWidthM:         in.MinWidthM,
		RoundingM:         in.RoundingM,
		IncludeSelfWeight: true,
	}
	if c.TargetUtilisation <= 0 {
		c.TargetUtilisation = 0.90
	}
	if c.RoundingM <= 0 {
		c.RoundingM = 0.20
	}
	if in.IncludeSelfWeight != nil {
		c.IncludeSelfWeight = *in.IncludeSelfWeight
	}

	res, err := pad.Size(in.LoadCase, c)
	if err != nil {
		return PadAutoResult{}, err
	}
	return PadAutoResult{
		QAllowKPa: soil.QAllowKPa,
		SoilNotes: soil.Notes,
		Result:    res,
	}, nil
}

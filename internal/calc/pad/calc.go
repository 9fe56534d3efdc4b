package pad

import (
	"errors"
	"fmt"
	"math"
)

// Serviceability combination: unfactored loads, pad self-weight as a
// permanent action.
const (
	GammaConcrete = 24.0 // kN/m³
	gammaG        = 1.0
	gammaQ        = 1.0
)

const (
	widthStep = 0.01 // m, refinement step for the continuous width
	// Widths beyond this are treated as infeasible rather than stepping
	// forever when qAllow is tiny relative to the loads.
	maxWidthM = 25.0
)

var ErrInfeasible = errors.New("no feasible pad width within search limit")

var ErrInvalidInput = errors.New("invalid input")

// LoadCase is one column load applied at the centre of a square pad.
// Surcharges act over the full pad footprint and are resolved once a trial
// width is known.
type LoadCase struct {
	DeadKN           float64 `json:"dead_kn"`
	LiveKN           float64 `json:"live_kn"`
	SurchargeDeadKPa float64 `json:"surcharge_dead_kpa"`
	SurchargeLiveKPa float64 `json:"surcharge_live_kpa"`
}

// Constraints are shared by every pad in a schedule and are never mutated
// while solving.
type Constraints struct {
	QAllowKPa         float64 `json:"q_allow_kpa"`
	TargetUtilisation float64 `json:"target_utilisation"`
	MinWidthM         float64 `json:"min_width_m"`
	RoundingM         float64 `json:"rounding_m"`
	IncludeSelfWeight bool    `json:"include_self_weight"`
}

// Outcome is one fully resolved trial geometry: loads, bearing pressure and
// utilisation for a given width with depth tied to width/2.
type Outcome struct {
	WidthM          float64 `json:"width_m"`
	DepthM          float64 `json:"depth_m"`
	SelfWeightKN    float64 `json:"self_weight_kn"`
	SurchargeDeadKN float64 `json:"surcharge_dead_kn"`
	SurchargeLiveKN float64 `json:"surcharge_live_kn"`
	DesignLoadKN    float64 `json:"design_load_kn"`
	PressureKPa     float64 `json:"pressure_kpa"`
	Utilisation     float64 `json:"utilisation"`
	VolumeM3        float64 `json:"volume_m3"`
}

// Result carries the converged continuous optimum, the adopted (rounded)
// design, and the load-only seed figures used in the calculation report.
type Result struct {
	BaseLoadKN       float64 `json:"base_load_kn"`
	QTargetKPa       float64 `json:"q_target_kpa"`
	IndicativeAreaM2 float64 `json:"indicative_area_m2"`
	IndicativeWidthM float64 `json:"indicative_width_m"`
	Continuous       Outcome `json:"continuous"`
	Adopted          Outcome `json:"adopted"`
	Notes            string  `json:"notes"`
}

// depthFor applies the 45° load dispersion rule. Depth is never set any
// other way, rounded or not.
func depthFor(widthM float64) float64 {
	return widthM / 2.0
}

// outcomeFor resolves all width-dependent loads for one trial width.
// widthM must be positive.
func outcomeFor(lc LoadCase, c Constraints, widthM float64) Outcome {
	depth := depthFor(widthM)
	area := widthM * widthM

	selfWeight := 0.0
	if c.IncludeSelfWeight {
		selfWeight = area * depth * GammaConcrete
	}
	surDead := lc.SurchargeDeadKPa * area
	surLive := lc.SurchargeLiveKPa * area

	design := gammaG*(lc.DeadKN+selfWeight+surDead) + gammaQ*(lc.LiveKN+surLive)
	pressure := design / area

	return Outcome{
		WidthM:          widthM,
		DepthM:          depth,
		SelfWeightKN:    selfWeight,
		SurchargeDeadKN: surDead,
		SurchargeLiveKN: surLive,
		DesignLoadKN:    design,
		PressureKPa:     pressure,
		Utilisation:     pressure / c.QAllowKPa,
		VolumeM3:        area * depth,
	}
}

func validate(lc LoadCase, c Constraints) error {
	if lc.DeadKN < 0 || lc.LiveKN < 0 || lc.SurchargeDeadKPa < 0 || lc.SurchargeLiveKPa < 0 {
		return fmt.Errorf("%w: loads must not be negative", ErrInvalidInput)
	}
	if c.QAllowKPa <= 0 {
		return fmt.Errorf("%w: allowable bearing pressure must be positive", ErrInvalidInput)
	}
	if c.TargetUtilisation <= 0 || c.TargetUtilisation > 1 {
		return fmt.Errorf("%w: target utilisation must be in (0, 1]", ErrInvalidInput)
	}
	if c.MinWidthM < 0 {
		return fmt.Errorf("%w: minimum width must not be negative", ErrInvalidInput)
	}
	if c.RoundingM <= 0 {
		return fmt.Errorf("%w: rounding increment must be positive", ErrInvalidInput)
	}
	return nil
}

func roundUp(value, inc float64) float64 {
	// Small slack so an exact multiple is not pushed up a full increment
	// by float noise.
	return math.Ceil(value/inc-1e-9) * inc
}

// Size produces the converged pad design for one load case. The width is
// seeded from the load-only bearing area, refined forward in widthStep
// increments until the target utilisation is met (self-weight and surcharge
// grow with the footprint, so the seed is never an over-estimate and the
// width never needs to shrink), then rounded up to the constructability
// increment with depth re-derived from the dispersion rule.
func Size(lc LoadCase, c Constraints) (Result, error) {
	if err := validate(lc, c); err != nil {
		return Result{}, err
	}

	base := gammaG*lc.DeadKN + gammaQ*lc.LiveKN
	qTarget := c.TargetUtilisation * c.QAllowKPa
	areaReq := base / qTarget
	seed := math.Sqrt(areaReq)

	width := math.Max(seed, c.MinWidthM)
	if width < widthStep {
		// Zero loads with no minimum width: keep the trial area non-zero.
		width = widthStep
	}

	var cont Outcome
	for {
		if width > maxWidthM {
			return Result{}, ErrInfeasible
		}
		cont = outcomeFor(lc, c, width)
		if cont.Utilisation <= c.TargetUtilisation {
			break
		}
		width += widthStep
	}

	adopted := outcomeFor(lc, c, roundUp(cont.WidthM, c.RoundingM))

	return Result{
		BaseLoadKN:       base,
		QTargetKPa:       qTarget,
		IndicativeAreaM2: areaReq,
		IndicativeWidthM: seed,
		Continuous:       cont,
		Adopted:          adopted,
		Notes:            "Preliminary sizing of a square pad under central axial load; depth fixed at width/2.",
	}, nil
}

package pad

import "fmt"

// AssumptionParams feed the design-basis text shown alongside every pad
// schedule. The text is input-independent apart from these values.
type AssumptionParams struct {
	GammaG    float64 `json:"gamma_g"`
	GammaQ    float64 `json:"gamma_q"`
	GammaConc float64 `json:"gamma_conc"`
	MinWidthM float64 `json:"min_width_m"`
	RoundingM float64 `json:"rounding_m"`
}

func DefaultAssumptionParams() AssumptionParams {
	return AssumptionParams{
		GammaG:    gammaG,
		GammaQ:    gammaQ,
		GammaConc: GammaConcrete,
		MinWidthM: 1.5,
		RoundingM: 0.20,
	}
}

// Assumptions renders the engineering assumptions and design basis as
// markdown for the report and the assumptions endpoint.
func Assumptions(p AssumptionParams) string {
	return fmt.Sprintf(`### Structural assumptions
- Square unreinforced concrete pad foundation
- Uniform pad thickness
- Centrally applied axial load only
- No moments or horizontal loads considered
- Uniform bearing pressure distribution assumed

### Load assumptions
- Dead (G) and live (Q) loads applied at column base
- Serviceability limit state load combination: Nck = gG*G + gQ*Q
- Partial factors: gG = %.2f, gQ = %.2f
- Pad self-weight treated as a permanent action
- Concrete unit weight = %.1f kN/m3

### Ground assumptions
- Allowable bearing pressure provided by geotechnical design
- Allowable pressure assumed to already include appropriate safety factors
- Soil assumed homogeneous beneath the foundation
- No settlement or differential settlement assessment carried out

### Geometric assumptions
- Minimum pad width = %.2f m
- 45 degree load dispersion applied: depth = width / 2
- Foundation width rounded upwards only to %.2f m increments

### Design limitations
The following checks are not included: punching shear, one-way shear,
flexural reinforcement design, crack control, sliding, uplift, overturning,
groundwater effects, EC7 design approach combinations, settlement checks.

Preliminary sizing only. Not a substitute for full EC7 / EC2 design.
`, p.GammaG, p.GammaQ, p.GammaConc, p.MinWidthM, p.RoundingM)
}

package report

import (
	"fmt"
	"io"
	"time"

	pad "github.com/Thenmitch/pad-foundation-tool/internal/calc/pad"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project     string          `json:"project"`
	Author      string          `json:"author"`
	PadName     string          `json:"pad_name"`
	LoadCase    pad.LoadCase    `json:"load_case"`
	Constraints pad.Constraints `json:"constraints"`
}

// Write sizes the pad and renders the full calculation steps as an A4 PDF,
// following the step order of the on-screen calculation: loads, target
// pressure, indicative area, adopted geometry, self-weight, surcharge,
// design load, bearing check.
func Write(w io.Writer, in Input) error {
	res, err := pad.Size(in.LoadCase, in.Constraints)
	if err != nil {
		return err
	}

	title := in.PadName
	if title == "" {
		title = "Pad Foundation Sizing"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	adopted := res.Adopted
	lc := in.LoadCase

	section := func(heading string, lines ...string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, heading)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range lines {
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	section("1. Applied loads",
		fmt.Sprintf("Column dead load G = %.1f kN", lc.DeadKN),
		fmt.Sprintf("Column live load Q = %.1f kN", lc.LiveKN),
		"Surcharge loads act over the full pad area once the size is known.",
	)
	section("2. Target bearing pressure",
		fmt.Sprintf("q_target = %.2f x %.1f = %.1f kN/m2",
			in.Constraints.TargetUtilisation, in.Constraints.QAllowKPa, res.QTargetKPa),
	)
	section("3. Indicative bearing area (loads only)",
		fmt.Sprintf("Nck,base = %.1f kN", res.BaseLoadKN),
		fmt.Sprintf("A = %.1f / %.1f = %.2f m2", res.BaseLoadKN, res.QTargetKPa, res.IndicativeAreaM2),
		fmt.Sprintf("Indicative width B = %.2f m", res.IndicativeWidthM),
	)
	section("4. Adopted pad geometry",
		fmt.Sprintf("Converged width %.2f m, rounded upwards to %.2f m", res.Continuous.WidthM, adopted.WidthM),
		fmt.Sprintf("Depth from 45 degree dispersion, t = B/2 = %.2f m", adopted.DepthM),
	)
	section("5. Pad self-weight",
		fmt.Sprintf("W = %.2f^2 x %.2f x %.1f = %.1f kN",
			adopted.WidthM, adopted.DepthM, pad.GammaConcrete, adopted.SelfWeightKN),
	)
	section("6. Surcharge loads on pad area",
		fmt.Sprintf("Dead surcharge = %.1f kN", adopted.SurchargeDeadKN),
		fmt.Sprintf("Live surcharge = %.1f kN", adopted.SurchargeLiveKN),
	)
	section("7. Design axial load",
		fmt.Sprintf("Nck = %.1f kN", adopted.DesignLoadKN),
	)
	section("8. Bearing pressure check",
		fmt.Sprintf("q_ed = %.1f / %.2f^2 = %.1f kN/m2", adopted.DesignLoadKN, adopted.WidthM, adopted.PressureKPa),
		fmt.Sprintf("Utilisation = %.1f%% <= %.0f%% - bearing capacity OK",
			adopted.Utilisation*100, in.Constraints.TargetUtilisation*100),
		fmt.Sprintf("Concrete volume = %.2f m3", adopted.VolumeM3),
	)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Engineering Assumptions & Design Basis")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, pad.Assumptions(pad.AssumptionParams{
		GammaG:    1.0,
		GammaQ:    1.0,
		GammaConc: pad.GammaConcrete,
		MinWidthM: in.Constraints.MinWidthM,
		RoundingM: in.Constraints.RoundingM,
	}), "", "L", false)

	return pdf.Output(w)
}

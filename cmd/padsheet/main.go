// padsheet sizes a spreadsheet of pad load cases offline: it reads load
// cases from an XLSX file, runs the sizing solver for each row and writes
// the adopted schedule back out as a summary workbook, optionally with a
// calculation report PDF per pad.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	pad "github.com/Thenmitch/pad-foundation-tool/internal/calc/pad"
	importer "github.com/Thenmitch/pad-foundation-tool/internal/calc/premium/importer"
	report "github.com/Thenmitch/pad-foundation-tool/internal/calc/report"
	"github.com/Thenmitch/pad-foundation-tool/internal/repo"
	"github.com/Thenmitch/pad-foundation-tool/internal/schedule"

	"github.com/xuri/excelize/v2"
)

func main() {
	in := flag.String("in", "", "input XLSX with columns dead_kn, live_kn, surcharge_dead_kpa, surcharge_live_kpa (header row required)")
	out := flag.String("out", "pad-schedule.xlsx", "output XLSX summary")
	reportDir := flag.String("reports", "", "directory for per-pad calculation PDFs (skipped when empty)")
	qAllow := flag.Float64("q-allow", 150, "allowable bearing pressure (kN/m2)")
	target := flag.Float64("target", 0.90, "target bearing utilisation (0-1)")
	minWidth := flag.Float64("min-width", 1.5, "minimum pad width (m)")
	rounding := flag.Float64("rounding", 0.20, "width rounding increment (m)")
	selfWeight := flag.Bool("self-weight", true, "include pad self-weight")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	constraints := pad.Constraints{
		QAllowKPa:         *qAllow,
		TargetUtilisation: *target,
		MinWidthM:         *minWidth,
		RoundingM:         *rounding,
		IncludeSelfWeight: *selfWeight,
	}

	f, err := excelize.OpenFile(*in)
	if err != nil {
		log.Fatalf("open %s: %v", *in, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil || len(rows) < 2 {
		log.Fatalf("no load case rows in %s", *in)
	}

	var saved []repo.SavedPad
	for i := 1; i < len(rows); i++ {
		lc, err := importer.ParsePadRow(rows[i])
		if err != nil {
			log.Printf("row %d: skipped (%v)", i+1, err)
			continue
		}
		res, err := pad.Size(lc, constraints)
		if err != nil {
			log.Printf("row %d: %v", i+1, err)
			continue
		}

		name := fmt.Sprintf("Pad %d", len(saved)+1)
		saved = append(saved, repo.SavedPad{
			Name:             name,
			DeadKN:           lc.DeadKN,
			LiveKN:           lc.LiveKN,
			SurchargeDeadKPa: lc.SurchargeDeadKPa,
			SurchargeLiveKPa: lc.SurchargeLiveKPa,
			WidthM:           res.Adopted.WidthM,
			DepthM:           res.Adopted.DepthM,
			DesignLoadKN:     res.Adopted.DesignLoadKN,
			Utilisation:      res.Adopted.Utilisation,
			VolumeM3:         res.Adopted.VolumeM3,
		})

		if *reportDir != "" {
			if err := writeReport(*reportDir, name, lc, constraints); err != nil {
				log.Printf("%s: report not written: %v", name, err)
			}
		}
	}

	if len(saved) == 0 {
		log.Fatal("no pads could be sized")
	}

	wb, err := schedule.SummaryWorkbook(saved)
	if err != nil {
		log.Fatalf("build summary: %v", err)
	}
	defer wb.Close()
	if err := wb.SaveAs(*out); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("sized %d pads, schedule written to %s", len(saved), *out)
}

func writeReport(dir, name string, lc pad.LoadCase, c pad.Constraints) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.pdf", name))
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return report.Write(out, report.Input{PadName: name, LoadCase: lc, Constraints: c})
}

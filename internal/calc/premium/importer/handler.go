package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	pad "github.com/Thenmitch/pad-foundation-tool/internal/calc/pad"
	batch "github.com/Thenmitch/pad-foundation-tool/internal/calc/premium/batch"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type PadImportResult struct {
	Count   int                   `json:"count"`
	Skipped int                   `json:"skipped"`
	Results []batch.PadItemResult `json:"results"`
}

// Pads sizes every load-case row of an uploaded spreadsheet. Constraints
// are shared across the sheet and come from the form fields; missing fields
// fall back to the usual preliminary-design defaults.
func (h *Handler) Pads(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	constraints := constraintsFromForm(r)

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := PadImportResult{}
	for i := 1; i < len(rows); i++ {
		lc, err := ParsePadRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := pad.Size(lc, constraints)
		item := batch.PadItemResult{ID: i}
		switch {
		case err == nil:
			item.Feasible = true
			item.Result = &res
		case errors.Is(err, pad.ErrInfeasible):
			item.FailReason = "no feasible pad size found for this load case"
		default:
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, item)
		out.Count++
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// ParsePadRow reads one load case.
// Expected columns: dead_kn, live_kn, surcharge_dead_kpa (optional),
// surcharge_live_kpa (optional).
func ParsePadRow(row []string) (pad.LoadCase, error) {
	if len(row) < 2 {
		return pad.LoadCase{}, fmt.Errorf("bad row")
	}
	dead, err := toFloat(row[0])
	if err != nil {
		return pad.LoadCase{}, err
	}
	live, err := toFloat(row[1])
	if err != nil {
		return pad.LoadCase{}, err
	}
	surDead := 0.0
	if len(row) > 2 && row[2] != "" {
		surDead, _ = toFloat(row[2])
	}
	surLive := 0.0
	if len(row) > 3 && row[3] != "" {
		surLive, _ = toFloat(row[3])
	}
	return pad.LoadCase{
		DeadKN:           dead,
		LiveKN:           live,
		SurchargeDeadKPa: surDead,
		SurchargeLiveKPa: surLive,
	}, nil
}

func constraintsFromForm(r *http.Request) pad.Constraints {
	c := pad.Constraints{
		QAllowKPa:         150,
		TargetUtilisation: 0.90,
		MinWidthM:         1.5,
		RoundingM:         0.20,
		IncludeSelfWeight: true,
	}
	if v, err := toFloat(r.FormValue("q_allow_kpa")); err == nil && v > 0 {
		c.QAllowKPa = v
	}
	if v, err := toFloat(r.FormValue("target_utilisation")); err == nil && v > 0 {
		c.TargetUtilisation = v
	}
	if v, err := toFloat(r.FormValue("min_width_m")); err == nil && v >= 0 {
		c.MinWidthM = v
	}
	if v, err := toFloat(r.FormValue("rounding_m")); err == nil && v > 0 {
		c.RoundingM = v
	}
	if v := r.FormValue("include_self_weight"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.IncludeSelfWeight = b
		}
	}
	return c
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

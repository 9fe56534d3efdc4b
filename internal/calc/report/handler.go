package report

import (
	"encoding/json"
	"errors"
	"net/http"

	pad "github.com/Thenmitch/pad-foundation-tool/internal/calc/pad"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pad-report.pdf\"")
	if err := Write(w, input); err != nil {
		if errors.Is(err, pad.ErrInfeasible) {
			http.Error(w, "No feasible pad size found for this load case", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Report generation error", http.StatusBadRequest)
		return
	}
}

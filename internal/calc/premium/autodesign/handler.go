package autodesign

import (
	"encoding/json"
	"errors"
	"net/http"

	pad "github.com/Thenmitch/pad-foundation-tool/internal/calc/pad"
)

type Handler struct{}

func (h *Handler) Pad(w http.ResponseWriter, r *http.Request) {
	var input PadAutoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Pad(input)
	if err != nil {
		if errors.Is(err, pad.ErrInfeasible) {
			http.Error(w, "No feasible pad size found for this load case", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

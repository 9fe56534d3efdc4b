package pad

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct{}

type calcRequest struct {
	LoadCase    LoadCase    `json:"load_case"`
	Constraints Constraints `json:"constraints"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Size(req.LoadCase, req.Constraints)
	if err != nil {
		if errors.Is(err, ErrInfeasible) {
			http.Error(w, "No feasible pad size found for this load case", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Assumptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(Assumptions(DefaultAssumptionParams())))
}

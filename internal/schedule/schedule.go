package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Thenmitch/pad-foundation-tool/internal/auth"
	pad "github.com/Thenmitch/pad-foundation-tool/internal/calc/pad"
	"github.com/Thenmitch/pad-foundation-tool/internal/repo"

	"github.com/gorilla/mux"
)

// Handler persists sized pads into a per-user schedule. Each saved row is
// solved server-side from its inputs so the stored design figures always
// match the solver.
type Handler struct {
	Repo repo.Repository
}

type saveRequest struct {
	Name        string          `json:"name"`
	LoadCase    pad.LoadCase    `json:"load_case"`
	Constraints pad.Constraints `json:"constraints"`
}

type saveResponse struct {
	ID     int        `json:"id"`
	Result pad.Result `json:"result"`
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res, err := pad.Size(req.LoadCase, req.Constraints)
	if err != nil {
		if errors.Is(err, pad.ErrInfeasible) {
			http.Error(w, "No feasible pad size found for this load case", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.Repo.SavePad(r.Context(), userID, repo.SavedPad{
		Name:             req.Name,
		DeadKN:           req.LoadCase.DeadKN,
		LiveKN:           req.LoadCase.LiveKN,
		SurchargeDeadKPa: req.LoadCase.SurchargeDeadKPa,
		SurchargeLiveKPa: req.LoadCase.SurchargeLiveKPa,
		WidthM:           res.Adopted.WidthM,
		DepthM:           res.Adopted.DepthM,
		DesignLoadKN:     res.Adopted.DesignLoadKN,
		Utilisation:      res.Adopted.Utilisation,
		VolumeM3:         res.Adopted.VolumeM3,
	})
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saveResponse{ID: id, Result: res})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	pads, err := h.Repo.ListPads(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pads)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	padID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletePad(r.Context(), userID, padID); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	pads, err := h.Repo.ListPads(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	f, err := SummaryWorkbook(pads)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pad-schedule.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
	}
}

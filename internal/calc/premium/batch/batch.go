package batch

import (
	"errors"
	"fmt"

	pad "github.com/Thenmitch/pad-foundation-tool/internal/calc/pad"
)

// PadBatchInput sizes an ordered, caller-owned list of load cases against
// one shared set of constraints. There is no server-side pad list; callers
// resubmit the full schedule each time.
type PadBatchInput struct {
	Constraints pad.Constraints `json:"constraints"`
	Items       []pad.LoadCase  `json:"items"`
}

type PadItemResult struct {
	ID         int         `json:"id"`
	Feasible   bool        `json:"feasible"`
	Result     *pad.Result `json:"result,omitempty"`
	FailReason string      `json:"fail_reason,omitempty"`
}

type PadBatchResult struct {
	Results []PadItemResult `json:"results"`
}

// CalculatePads sizes every item in order. An infeasible pad is reported in
// place rather than aborting the schedule; invalid constraints fail the
// whole batch since they apply to every item.
func CalculatePads(in PadBatchInput) (PadBatchResult, error) {
	if len(in.Items) == 0 {
		return PadBatchResult{}, fmt.Errorf("no items")
	}
	out := PadBatchResult{Results: make([]PadItemResult, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := pad.Size(item, in.Constraints)
		if err != nil {
			if errors.Is(err, pad.ErrInfeasible) {
				out.Results = append(out.Results, PadItemResult{
					ID:         i + 1,
					FailReason: "no feasible pad size found for this load case",
				})
				continue
			}
			return PadBatchResult{}, err
		}
		out.Results = append(out.Results, PadItemResult{ID: i + 1, Feasible: true, Result: &res})
	}
	return out, nil
}

package batch

import (
	"testing"

	pad "github.com/Thenmitch/pad-foundation-tool/internal/calc/pad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePadsOrdered(t *testing.T) {
	in := PadBatchInput{
		Constraints: pad.Constraints{
			QAllowKPa:         150,
			TargetUtilisation: 0.90,
			MinWidthM:         1.5,
			RoundingM:         0.20,
			IncludeSelfWeight: true,
		},
		Items: []pad.LoadCase{
			{DeadKN: 750, LiveKN: 500},
			{DeadKN: 100, LiveKN: 50},
		},
	}

	out, err := CalculatePads(in)
	require.NoError(t, err)
	require.Len(t, out.Results, 2)

	assert.Equal(t, 1, out.Results[0].ID)
	assert.True(t, out.Results[0].Feasible)
	assert.InDelta(t, 3.80, out.Results[0].Result.Adopted.WidthM, 1e-9)

	// Light pad held at the 1.5 m minimum, rounded in place.
	assert.True(t, out.Results[1].Feasible)
	assert.GreaterOrEqual(t, out.Results[1].Result.Adopted.WidthM, 1.5)
}

func TestCalculatePadsInfeasibleItemReportedInPlace(t *testing.T) {
	in := PadBatchInput{
		Constraints: pad.Constraints{QAllowKPa: 25, TargetUtilisation: 0.90, RoundingM: 0.20},
		Items: []pad.LoadCase{
			{DeadKN: 1e6},
			{DeadKN: 100, LiveKN: 50},
		},
	}

	out, err := CalculatePads(in)
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.False(t, out.Results[0].Feasible)
	assert.NotEmpty(t, out.Results[0].FailReason)
	assert.Nil(t, out.Results[0].Result)
	assert.True(t, out.Results[1].Feasible)
}

func TestCalculatePadsEmpty(t *testing.T) {
	_, err := CalculatePads(PadBatchInput{})
	assert.Error(t, err)
}

func TestCalculatePadsInvalidConstraintsFailBatch(t *testing.T) {
	in := PadBatchInput{
		Constraints: pad.Constraints{QAllowKPa: -1, TargetUtilisation: 0.9, RoundingM: 0.2},
		Items:       []pad.LoadCase{{DeadKN: 100}},
	}
	_, err := CalculatePads(in)
	assert.Error(t, err)
}

package report

import (
	"bytes"
	"testing"

	pad "github.com/Thenmitch/pad-foundation-tool/internal/calc/pad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleInput() Input {
	return Input{
		Project: "Unit 4 warehouse",
		Author:  "RB",
		PadName: "Pad F3",
		LoadCase: pad.LoadCase{DeadKN: 750, LiveKN: 500},
		Constraints: pad.Constraints{
			QAllowKPa:         150,
			TargetUtilisation: 0.90,
			MinWidthM:         1.5,
			RoundingM:         0.20,
			IncludeSelfWeight: true,
		},
	}
}

func TestWriteProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, exampleInput()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestWriteInfeasible(t *testing.T) {
	in := exampleInput()
	in.LoadCase = pad.LoadCase{DeadKN: 1e7}
	in.Constraints.QAllowKPa = 25

	var buf bytes.Buffer
	err := Write(&buf, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, pad.ErrInfeasible)
	assert.Zero(t, buf.Len())
}

func TestWriteInvalidConstraints(t *testing.T) {
	in := exampleInput()
	in.Constraints.RoundingM = 0

	var buf bytes.Buffer
	assert.Error(t, Write(&buf, in))
}

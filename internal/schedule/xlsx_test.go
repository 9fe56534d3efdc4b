package schedule

import (
	"testing"

	"github.com/Thenmitch/pad-foundation-tool/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryWorkbook(t *testing.T) {
	pads := []repo.SavedPad{
		{Name: "F1", WidthM: 3.8, DepthM: 1.9, DesignLoadKN: 1908.5, Utilisation: 0.881, VolumeM3: 27.44},
		{WidthM: 1.6, DepthM: 0.8, DesignLoadKN: 199.2, Utilisation: 0.52, VolumeM3: 2.05},
	}

	f, err := SummaryWorkbook(pads)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Pad", rows[0][0])
	assert.Equal(t, "F1", rows[1][0])
	assert.Equal(t, "3.8", rows[1][1])
	// Unnamed pads are numbered by position.
	assert.Equal(t, "Pad 2", rows[2][0])
}

func TestSummaryWorkbookEmpty(t *testing.T) {
	f, err := SummaryWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

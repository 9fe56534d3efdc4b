package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func padWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"dead_kn", "live_kn", "surcharge_dead_kpa", "surcharge_live_kpa"}))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func multipartUpload(t *testing.T, workbook *bytes.Buffer, fields map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "pads.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook.Bytes())
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/tools-premium/import/xlsx", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImportPads(t *testing.T) {
	wb := padWorkbook(t, [][]any{
		{750.0, 500.0},
		{300.0, 200.0, 5.0, 2.5},
		{"not", "numbers"},
	})
	req := multipartUpload(t, wb, nil)
	rec := httptest.NewRecorder()

	(&Handler{}).Pads(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out PadImportResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, 1, out.Skipped)
	require.Len(t, out.Results, 2)
	assert.True(t, out.Results[0].Feasible)
	assert.InDelta(t, 3.80, out.Results[0].Result.Adopted.WidthM, 1e-9)
}

func TestImportPadsConstraintOverrides(t *testing.T) {
	wb := padWorkbook(t, [][]any{{750.0, 500.0}})
	req := multipartUpload(t, wb, map[string]string{
		"q_allow_kpa":         "200",
		"rounding_m":          "0.10",
		"include_self_weight": "false",
	})
	rec := httptest.NewRecorder()

	(&Handler{}).Pads(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out PadImportResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out.Results, 1)
	res := out.Results[0].Result
	require.NotNil(t, res)
	// 1250 kN / 180 kPa target => 2.64 m seed, no self-weight, 0.10 rounding.
	assert.Zero(t, res.Continuous.SelfWeightKN)
	assert.InDelta(t, 2.70, res.Adopted.WidthM, 1e-9)
}

func TestImportPadsMissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools-premium/import/xlsx", nil)
	rec := httptest.NewRecorder()
	(&Handler{}).Pads(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParsePadRow(t *testing.T) {
	lc, err := ParsePadRow([]string{"750", "500", "5", "2.5"})
	require.NoError(t, err)
	assert.Equal(t, 750.0, lc.DeadKN)
	assert.Equal(t, 500.0, lc.LiveKN)
	assert.Equal(t, 5.0, lc.SurchargeDeadKPa)
	assert.Equal(t, 2.5, lc.SurchargeLiveKPa)

	_, err = ParsePadRow([]string{"750"})
	assert.Error(t, err)
}

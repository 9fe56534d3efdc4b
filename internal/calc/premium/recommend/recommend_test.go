package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearingPressure(t *testing.T) {
	res, err := BearingPressure(BearingRecommendInput{SoilType: "stiff clay"})
	require.NoError(t, err)
	assert.Equal(t, 150.0, res.QAllowKPa)
}

func TestBearingPressureCaseInsensitive(t *testing.T) {
	res, err := BearingPressure(BearingRecommendInput{SoilType: "  Dense Gravel "})
	require.NoError(t, err)
	assert.Equal(t, 600.0, res.QAllowKPa)
}

func TestBearingPressureShallowWaterTable(t *testing.T) {
	res, err := BearingPressure(BearingRecommendInput{SoilType: "dense sand", ShallowWaterTable: true})
	require.NoError(t, err)
	assert.Equal(t, 150.0, res.QAllowKPa)

	// Cohesive soils are not halved.
	res, err = BearingPressure(BearingRecommendInput{SoilType: "firm clay", ShallowWaterTable: true})
	require.NoError(t, err)
	assert.Equal(t, 75.0, res.QAllowKPa)
}

func TestBearingPressureUnknownSoil(t *testing.T) {
	_, err := BearingPressure(BearingRecommendInput{SoilType: "peat"})
	assert.Error(t, err)
}

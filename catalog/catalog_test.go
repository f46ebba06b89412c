package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-report/models"
)

func TestDefaultModelMetrics(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 0.983, c.Model.PVR2)
	assert.Equal(t, 0.965, c.Model.WindR2)
	assert.Equal(t, 367.709, c.Model.PVMAE)
	assert.Equal(t, 178.476, c.Model.WindMAE)
	assert.Equal(t, 48, c.Model.WindowSize)
	assert.Contains(t, c.Model.Architecture, "LSTM")
}

func TestTypeFactor(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		typ  models.CommunityType
		want float64
	}{
		{models.RuralAgricultural, 1.0},
		{models.UrbanMixed, 1.15},
		{models.IndustrialZone, 1.25},
		{models.CoastalArea, 1.1},
		{"mountain_village", 1.0},
		{"", 1.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.TypeFactor(tt.typ), "TypeFactor(%q)", tt.typ)
	}
}

func TestDefaultTypeIsRural(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, models.RuralAgricultural, c.DefaultType())

	tpl, ok := c.Template(models.CoastalArea)
	require.True(t, ok)
	assert.Equal(t, "4-10 m/s", tpl.TypicalWindSpeed)
}

func TestMenuLabels(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Summer dominant (High solar, high cooling demand)", c.SeasonLabel("2"))
	assert.Equal(t, "Balanced across seasons", c.SeasonLabel("4"))
	assert.Equal(t, "Balanced across seasons", c.SeasonLabel("9"))

	assert.Equal(t, "Multiple energy challenges", c.ChallengeLabel("5"))
	assert.Equal(t, "Unreliable grid supply", c.ChallengeLabel("x"))
	assert.Len(t, c.Challenges, 5)
	assert.Len(t, c.SeasonPatterns, 4)
}

func TestParseRejectsBadCatalog(t *testing.T) {
	_, err := Parse([]byte("model: [unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte(`
model:
  window_size: 48
  architecture: x
  pv_r2: 1.7
  wind_r2: 0.9
community_types:
  - {key: a, description: d, factor: 1}
season_patterns:
  - {choice: "1", menu: m, label: l}
challenges:
  - {choice: "1", menu: m, label: l}
`))
	assert.Error(t, err, "R² above 1 must fail validation")
}

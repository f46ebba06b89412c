package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-report/models"
	"energy-report/utils"
)

func TestDashboardPanels(t *testing.T) {
	c := newTestCatalog(t)
	p := sampleProfile()
	m := NewImpactCalculator(c, utils.Discard()).Compute(p)

	d := NewDashboardBuilder(c).Build(p, &m)

	assert.Equal(t, "AI Impact Dashboard: Sample Community", d.Title)
	assert.Equal(t, 2, d.Columns)
	assert.Contains(t, d.Subtitle[1], "PV 98.3%, Wind 96.5%")
	require.Len(t, d.Panels, 4)

	titles := []string{
		"Economic Impact Analysis",
		"Environmental Impact",
		"Technical Performance (%)",
		"Social & Operational Impact",
	}
	for i, panel := range d.Panels {
		assert.Equal(t, titles[i], panel.Title)
		assert.Len(t, panel.Bars, 3, "bars in %s", panel.Title)
	}
}

func TestDashboardValueMapping(t *testing.T) {
	c := newTestCatalog(t)
	p := sampleProfile()
	m := NewImpactCalculator(c, utils.Discard()).Compute(p)
	d := NewDashboardBuilder(c).Build(p, &m)

	econ := d.Panels[0].Bars
	assert.InDelta(t, 39.05, econ[0].Value, eps)
	assert.InDelta(t, 2.64, econ[1].Value, eps)
	assert.InDelta(t, 24.204, econ[2].Value, eps)
	assert.Equal(t, []string{"39", "3", "24"}, []string{econ[0].Text, econ[1].Text, econ[2].Text})

	env := d.Panels[1].Bars
	assert.Equal(t, "17,600", env[0].Text)
	assert.Equal(t, "330,000", env[1].Text)
	assert.Equal(t, "68", env[2].Text)

	tech := d.Panels[2].Bars
	assert.Equal(t, "98.3%", tech[0].Text)
	assert.Equal(t, "96.5%", tech[1].Text)
	assert.Equal(t, "87.7%", tech[2].Text)

	social := d.Panels[3].Bars
	assert.Equal(t, 4.0, social[0].Value)
	assert.Equal(t, []string{"4", "20", "39"}, []string{social[0].Text, social[1].Text, social[2].Text})
}

func TestDashboardLargeSavingsLabel(t *testing.T) {
	c := newTestCatalog(t)
	p := sampleProfile()
	p.Type = models.IndustrialZone
	p.AvgDemandKW = 20_000_000

	m := NewImpactCalculator(c, utils.Discard()).Compute(p)
	d := NewDashboardBuilder(c).Build(p, &m)

	// 20e6 * 0.12 * 1.25 / 1000 = 3000
	assert.Equal(t, "₹3,000K", d.Panels[0].Bars[1].Text)
}

package services

import (
	"energy-report/catalog"
	"energy-report/chart"
	"energy-report/models"
)

// savingsLabelThreshold is the bar height above which the economic panel
// switches to a currency label in thousands.
const savingsLabelThreshold = 1000

// DashboardBuilder maps metrics onto the four dashboard panels.
type DashboardBuilder struct {
	catalog *catalog.Catalog
}

// NewDashboardBuilder creates a DashboardBuilder over the given catalog.
func NewDashboardBuilder(c *catalog.Catalog) *DashboardBuilder {
	return &DashboardBuilder{catalog: c}
}

// Build returns the 2x2 dashboard: economic, environmental, technical
// performance, social & operational.
func (b *DashboardBuilder) Build(p *models.CommunityProfile, m *models.ImpactMetrics) *chart.Dashboard {
	model := b.catalog.Model
	return &chart.Dashboard{
		Title: "AI Impact Dashboard: " + p.Name,
		Subtitle: []string{
			"CNN+LSTM Renewable Energy Prediction System",
			"Model Accuracy: PV " + percent(model.PVR2, 1) + ", Wind " + percent(model.WindR2, 1),
		},
		Columns: 2,
		Panels: []chart.Panel{
			economicPanel(m),
			environmentalPanel(m),
			technicalPanel(m),
			socialPanel(m),
		},
	}
}

func economicPanel(m *models.ImpactMetrics) chart.Panel {
	bars := []chart.Bar{
		{Label: "Cost Reduction", Value: m.CostReductionPercent, Color: "#2ecc71"},
		{Label: "Monthly Savings", Value: m.MonthlySavings / 1000, Color: "#3498db"},
		{Label: "Payback Period", Value: m.PaybackMonths, Color: "#e74c3c"},
	}
	for i := range bars {
		if bars[i].Value > savingsLabelThreshold {
			bars[i].Text = currency + grouped(bars[i].Value) + "K"
		} else {
			bars[i].Text = fixed(bars[i].Value, 0)
		}
	}
	return chart.Panel{Title: "Economic Impact Analysis", Bars: bars, RotateLabels: true}
}

func environmentalPanel(m *models.ImpactMetrics) chart.Panel {
	bars := []chart.Bar{
		{Label: "CO₂ Reduction\n(tons/year)", Value: m.CO2ReductionTons, Color: "#27ae60"},
		{Label: "Diesel Displaced\n(liters/month)", Value: m.DieselDisplacementLiters, Color: "#16a085"},
		{Label: "Renewable %", Value: m.RenewablePenetration, Color: "#2ecc71"},
	}
	for i := range bars {
		bars[i].Text = grouped(bars[i].Value)
	}
	return chart.Panel{Title: "Environmental Impact", Bars: bars, RotateLabels: true}
}

func technicalPanel(m *models.ImpactMetrics) chart.Panel {
	bars := []chart.Bar{
		{Label: "Solar\nAccuracy", Value: m.PredictionAccuracyPV * 100, Color: "#f39c12"},
		{Label: "Wind\nAccuracy", Value: m.PredictionAccuracyWind * 100, Color: "#3498db"},
		{Label: "Reliability\nGain", Value: m.ReliabilityImprovement, Color: "#9b59b6"},
	}
	for i := range bars {
		bars[i].Text = fixed(bars[i].Value, 1) + "%"
	}
	return chart.Panel{Title: "Technical Performance (%)", Bars: bars}
}

func socialPanel(m *models.ImpactMetrics) chart.Panel {
	bars := []chart.Bar{
		{Label: "Jobs Created", Value: float64(m.JobsCreated), Color: "#9b59b6"},
		{Label: "Peak Reduction", Value: m.PeakReduction, Color: "#e74c3c"},
		{Label: "Cost Savings %", Value: m.CostReductionPercent, Color: "#2ecc71"},
	}
	for i := range bars {
		bars[i].Text = fixed(bars[i].Value, 0)
	}
	return chart.Panel{Title: "Social & Operational Impact", Bars: bars, RotateLabels: true}
}

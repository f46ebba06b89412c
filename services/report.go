package services

import (
	"fmt"
	"strings"
	"time"

	"energy-report/catalog"
	"energy-report/models"
)

const currency = "₹"

// ReportRenderer interpolates a profile and its metrics into the fixed
// impact-report template. Every section is always present.
type ReportRenderer struct {
	catalog *catalog.Catalog
}

// NewReportRenderer creates a ReportRenderer over the given catalog.
func NewReportRenderer(c *catalog.Catalog) *ReportRenderer {
	return &ReportRenderer{catalog: c}
}

type reportSection func(sb *strings.Builder, p *models.CommunityProfile, m *models.ImpactMetrics)

// Render returns the full report text. generatedAt only feeds the footer.
func (r *ReportRenderer) Render(p *models.CommunityProfile, m *models.ImpactMetrics, generatedAt time.Time) string {
	sections := []reportSection{
		r.header,
		r.executiveSummary,
		r.energyProfile,
		r.optimizationStrategy,
		r.technicalAnalysis,
		r.quantifiedBenefits,
		r.valueProposition,
		r.recommendations,
		r.sustainability,
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, section := range sections {
		section(&sb, p, m)
		sb.WriteString("\n")
	}
	r.footer(&sb, p, generatedAt)
	return sb.String()
}

func (r *ReportRenderer) header(sb *strings.Builder, p *models.CommunityProfile, _ *models.ImpactMetrics) {
	model := r.catalog.Model
	fmt.Fprintf(sb, "🤖 AI-POWERED RENEWABLE ENERGY IMPACT REPORT\n")
	fmt.Fprintf(sb, "%s\n", strings.Repeat("=", 70))
	fmt.Fprintf(sb, "Powered by Hybrid CNN+LSTM Model (R²: %s PV, %s Wind)\n\n",
		fixed(model.PVR2, 3), fixed(model.WindR2, 3))
	fmt.Fprintf(sb, "COMMUNITY: %s\n", p.Name)
	fmt.Fprintf(sb, "REGION: %s\n", p.Region)
	fmt.Fprintf(sb, "POPULATION: %s\n", p.Population)
	fmt.Fprintf(sb, "COMMUNITY TYPE: %s\n", titleWords(string(p.Type)))
	fmt.Fprintf(sb, "ENERGY PROFILE: %s\n", p.SeasonPattern)
}

func (r *ReportRenderer) executiveSummary(sb *strings.Builder, p *models.CommunityProfile, m *models.ImpactMetrics) {
	fmt.Fprintf(sb, "📊 EXECUTIVE SUMMARY\n\n")
	fmt.Fprintf(sb, "Our AI model analysis shows exceptional potential for %s:\n\n", p.Name)
	fmt.Fprintf(sb, "• 💰 ECONOMIC: %s%% cost reduction (%s%s/month)\n",
		fixed(m.CostReductionPercent, 0), currency, grouped(m.MonthlySavings))
	fmt.Fprintf(sb, "• 🌱 ENVIRONMENTAL: %s tons CO₂ reduction annually\n", grouped(m.CO2ReductionTons))
	fmt.Fprintf(sb, "• ⚡ RELIABILITY: %s%% improvement in energy access\n", fixed(m.ReliabilityImprovement, 0))
	fmt.Fprintf(sb, "• 👥 SOCIAL: %d local green jobs created\n", m.JobsCreated)
}

func (r *ReportRenderer) energyProfile(sb *strings.Builder, p *models.CommunityProfile, m *models.ImpactMetrics) {
	fmt.Fprintf(sb, "🎯 ENERGY PROFILE ANALYSIS\n\n")
	fmt.Fprintf(sb, "Current Situation:\n")
	fmt.Fprintf(sb, "• Average Demand: %s kW\n", grouped(p.AvgDemandKW))
	fmt.Fprintf(sb, "• Peak Demand: %s kW\n", grouped(p.PeakDemandKW))
	fmt.Fprintf(sb, "• Solar Potential: %s W/m² GHI\n", plain(p.AvgGHI))
	fmt.Fprintf(sb, "• Wind Potential: %s m/s\n", plain(p.AvgWindSpeed))
	fmt.Fprintf(sb, "• Main Challenge: %s\n\n", p.MainChallenge)
	fmt.Fprintf(sb, "AI Model Confidence:\n")
	fmt.Fprintf(sb, "• Solar Prediction: %s accuracy\n", percent(m.PredictionAccuracyPV, 1))
	fmt.Fprintf(sb, "• Wind Prediction: %s accuracy\n", percent(m.PredictionAccuracyWind, 1))
	fmt.Fprintf(sb, "• Combined Reliability: %s\n",
		percent((m.PredictionAccuracyPV+m.PredictionAccuracyWind)/2, 1))
}

func (r *ReportRenderer) optimizationStrategy(sb *strings.Builder, _ *models.CommunityProfile, m *models.ImpactMetrics) {
	window := r.catalog.Model.WindowSize
	fmt.Fprintf(sb, "🚀 OPTIMIZATION STRATEGY\n\n")
	fmt.Fprintf(sb, "Phase 1: Smart Forecasting (Months 1-3)\n")
	fmt.Fprintf(sb, "• Deploy %d-hour ahead predictions using CNN+LSTM\n", window)
	fmt.Fprintf(sb, "• Integrate with existing grid infrastructure\n")
	fmt.Fprintf(sb, "• Train local operators on AI system\n\n")
	fmt.Fprintf(sb, "Phase 2: Renewable Integration (Months 4-8)\n")
	fmt.Fprintf(sb, "• Achieve %s%% renewable penetration\n", fixed(m.RenewablePenetration, 0))
	fmt.Fprintf(sb, "• Implement peak shaving strategies\n")
	fmt.Fprintf(sb, "• Establish maintenance protocols\n\n")
	fmt.Fprintf(sb, "Phase 3: Community Empowerment (Months 9-12)\n")
	fmt.Fprintf(sb, "• Local ownership transition\n")
	fmt.Fprintf(sb, "• Performance monitoring dashboard\n")
	fmt.Fprintf(sb, "• Expansion planning\n")
}

func (r *ReportRenderer) technicalAnalysis(sb *strings.Builder, p *models.CommunityProfile, m *models.ImpactMetrics) {
	window := r.catalog.Model.WindowSize
	fmt.Fprintf(sb, "🔧 TECHNICAL ANALYSIS (Based on Your CNN+LSTM Model)\n\n")
	fmt.Fprintf(sb, "MODEL PERFORMANCE IN %s:\n", strings.ToUpper(p.Name))
	fmt.Fprintf(sb, "• Solar Prediction Accuracy: %s (R² = %s)\n",
		percent(m.PredictionAccuracyPV, 1), fixed(m.PredictionAccuracyPV, 3))
	fmt.Fprintf(sb, "• Wind Prediction Accuracy: %s (R² = %s)\n",
		percent(m.PredictionAccuracyWind, 1), fixed(m.PredictionAccuracyWind, 3))
	fmt.Fprintf(sb, "• Prediction Error Margin: ±%s units (PV), ±%s units (Wind)\n\n",
		fixed(m.PredictionErrorPV, 0), fixed(m.PredictionErrorWind, 0))

	fmt.Fprintf(sb, "DATA FEATURES UTILIZED (From Your Database):\n")
	fmt.Fprintf(sb, "✓ Time-series patterns (%d-hour window)\n", window)
	fmt.Fprintf(sb, "✓ Seasonal variations (Season: %s)\n", p.SeasonPattern)
	fmt.Fprintf(sb, "✓ Solar irradiance (GHI: %s W/m²)\n", plain(p.AvgGHI))
	fmt.Fprintf(sb, "✓ Wind patterns (Wind speed: %s m/s)\n", plain(p.AvgWindSpeed))
	fmt.Fprintf(sb, "✓ Temperature and humidity correlations\n")
	fmt.Fprintf(sb, "✓ Historical production patterns\n\n")

	fmt.Fprintf(sb, "OPTIMIZATION OPPORTUNITIES:\n")
	fmt.Fprintf(sb, "• Load shifting potential: %s%% peak demand reduction\n", fixed(m.PeakReduction, 0))
	fmt.Fprintf(sb, "• Renewable integration: %s%% of total demand\n", fixed(m.RenewablePenetration, 0))
	fmt.Fprintf(sb, "• Storage optimization: Based on %d-hour prediction window\n", window)
	fmt.Fprintf(sb, "• Maintenance scheduling: Predictive alerts for system upkeep\n")
}

func (r *ReportRenderer) quantifiedBenefits(sb *strings.Builder, _ *models.CommunityProfile, m *models.ImpactMetrics) {
	fmt.Fprintf(sb, "📈 QUANTIFIED BENEFITS\n\n")
	fmt.Fprintf(sb, "IMMEDIATE (3-6 months):\n")
	fmt.Fprintf(sb, "• Energy cost reduction: %s%%\n", fixed(m.CostReductionPercent, 0))
	fmt.Fprintf(sb, "• Grid reliability: %s%% improvement\n", fixed(m.ReliabilityImprovement, 0))
	fmt.Fprintf(sb, "• Diesel displacement: %s liters/month\n\n", grouped(m.DieselDisplacementLiters))
	fmt.Fprintf(sb, "LONG-TERM (1-2 years):\n")
	fmt.Fprintf(sb, "• CO₂ reduction: %s tons annually\n", grouped(m.CO2ReductionTons))
	fmt.Fprintf(sb, "• Job creation: %d sustainable local jobs\n", m.JobsCreated)
	fmt.Fprintf(sb, "• Energy independence: %s%% self-sufficiency\n", fixed(m.RenewablePenetration, 0))
}

func (r *ReportRenderer) valueProposition(sb *strings.Builder, _ *models.CommunityProfile, _ *models.ImpactMetrics) {
	model := r.catalog.Model
	fmt.Fprintf(sb, "💡 UNIQUE VALUE PROPOSITION\n\n")
	fmt.Fprintf(sb, "YOUR AI MODEL EXCELLENCE:\n")
	fmt.Fprintf(sb, "• Exceptional accuracy (%s for solar, %s for wind)\n",
		percent(model.PVR2, 1), percent(model.WindR2, 1))
	fmt.Fprintf(sb, "• %d-hour prediction window for optimal planning\n", model.WindowSize)
	fmt.Fprintf(sb, "• Hybrid CNN-LSTM architecture for spatiotemporal patterns\n")
	fmt.Fprintf(sb, "• Proven performance on your dataset structure\n")
}

func (r *ReportRenderer) recommendations(sb *strings.Builder, p *models.CommunityProfile, m *models.ImpactMetrics) {
	window := r.catalog.Model.WindowSize
	fmt.Fprintf(sb, "🎯 RECOMMENDATIONS FOR %s\n\n", strings.ToUpper(p.Name))
	fmt.Fprintf(sb, "1. TECHNICAL DEPLOYMENT:\n")
	fmt.Fprintf(sb, "   • Leverage %d-hour prediction window for energy scheduling\n", window)
	fmt.Fprintf(sb, "   • Use seasonal patterns from your data for capacity planning\n")
	fmt.Fprintf(sb, "   • Implement real-time monitoring based on GHI and wind speed\n\n")
	fmt.Fprintf(sb, "2. ECONOMIC MODEL:\n")
	fmt.Fprintf(sb, "   • Payback period: %s months\n", fixed(m.PaybackMonths, 0))
	fmt.Fprintf(sb, "   • ROI: %s%% over 3 years\n", fixed(m.CostReductionPercent*3, 0))
	fmt.Fprintf(sb, "   • Operational savings: %s%s/month\n\n", currency, grouped(m.MonthlySavings))
	fmt.Fprintf(sb, "3. COMMUNITY ENGAGEMENT:\n")
	fmt.Fprintf(sb, "   • Train %d local technicians\n", m.JobsCreated)
	fmt.Fprintf(sb, "   • Establish community energy committee\n")
	fmt.Fprintf(sb, "   • Develop educational programs on renewable energy\n")
}

func (r *ReportRenderer) sustainability(sb *strings.Builder, p *models.CommunityProfile, m *models.ImpactMetrics) {
	fmt.Fprintf(sb, "🌍 SUSTAINABILITY IMPACT\n\n")
	fmt.Fprintf(sb, "ALIGNMENT WITH SDGs:\n")
	fmt.Fprintf(sb, "✓ SDG 7: Affordable & Clean Energy (%s%% renewable)\n", fixed(m.RenewablePenetration, 0))
	fmt.Fprintf(sb, "✓ SDG 8: Decent Work (%d green jobs)\n", m.JobsCreated)
	fmt.Fprintf(sb, "✓ SDG 13: Climate Action (%s tons CO₂ reduction)\n\n", grouped(m.CO2ReductionTons))
	fmt.Fprintf(sb, "SCALABILITY POTENTIAL:\n")
	fmt.Fprintf(sb, "• Template for similar %s communities\n", spaced(string(p.Type)))
	fmt.Fprintf(sb, "• Modular architecture for different regions\n")
	fmt.Fprintf(sb, "• Data-driven optimization continuous learning\n")
}

func (r *ReportRenderer) footer(sb *strings.Builder, p *models.CommunityProfile, generatedAt time.Time) {
	model := r.catalog.Model
	fmt.Fprintf(sb, "---\n")
	fmt.Fprintf(sb, "AI Model: Hybrid CNN-LSTM | Accuracy: PV %s, Wind %s\n",
		percent(model.PVR2, 1), percent(model.WindR2, 1))
	fmt.Fprintf(sb, "Generated for: %s | Date: %s\n", p.Name, generatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(sb, "Data Features: Time, Season, DHI, DNI, GHI, Wind_speed, Humidity, Temperature\n")
	fmt.Fprintf(sb, "%s\n", strings.Repeat("=", 70))
}

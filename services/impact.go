package services

import (
	"math"

	"energy-report/catalog"
	"energy-report/models"
	"energy-report/utils"
)

const (
	referenceGHI       = 400.0 // W/m²
	referenceWindSpeed = 3.0   // m/s
	maxGHIFactor       = 1.5
	maxWindFactor      = 1.8

	minJobs          = 3
	kWPerJob         = 5000.0
	minPaybackMonths = 18.0
)

// ImpactCalculator derives ImpactMetrics from a profile. It holds no state
// beyond the read-only catalog, so Compute is deterministic.
type ImpactCalculator struct {
	catalog *catalog.Catalog
	logger  *utils.Logger
}

// NewImpactCalculator creates an ImpactCalculator over the given catalog.
func NewImpactCalculator(c *catalog.Catalog, logger *utils.Logger) *ImpactCalculator {
	return &ImpactCalculator{catalog: c, logger: logger}
}

// factors are the per-profile multipliers.
type factors struct {
	typ  float64
	ghi  float64
	wind float64
}

func (c *ImpactCalculator) factorsFor(p *models.CommunityProfile) factors {
	return factors{
		typ:  c.catalog.TypeFactor(p.Type),
		ghi:  GHIFactor(p.AvgGHI),
		wind: WindFactor(p.AvgWindSpeed),
	}
}

// GHIFactor normalises irradiance to 400 W/m², clamped to [0, 1.5].
func GHIFactor(avgGHI float64) float64 {
	return clamp(avgGHI/referenceGHI, 0, maxGHIFactor)
}

// WindFactor normalises wind speed to 3 m/s, clamped to [0, 1.8].
func WindFactor(avgWindSpeed float64) float64 {
	return clamp(avgWindSpeed/referenceWindSpeed, 0, maxWindFactor)
}

// Compute applies the impact formulas. It never fails.
//
// Renewable penetration scales with the solar factor only; the wind factor
// is derived alongside it but does not feed any metric.
func (c *ImpactCalculator) Compute(p *models.CommunityProfile) models.ImpactMetrics {
	m := c.catalog.Model
	f := c.factorsFor(p)

	metrics := models.ImpactMetrics{
		CostReductionPercent:   (m.PVR2*25 + m.WindR2*15) * f.typ,
		MonthlySavings:         p.AvgDemandKW * 0.12 * f.typ,
		ReliabilityImprovement: (m.PVR2 + m.WindR2) * 45,
		RenewablePenetration:   (m.PVR2*40 + m.WindR2*30) * f.ghi,
		PeakReduction:          m.PVR2 * 20 * f.typ,

		CO2ReductionTons:         p.AvgDemandKW * 0.8 * f.typ,
		DieselDisplacementLiters: p.AvgDemandKW * 15 * f.typ,

		JobsCreated:   jobsFor(p.AvgDemandKW),
		PaybackMonths: math.Max(minPaybackMonths, 36-m.PVR2*12),

		PredictionAccuracyPV:   m.PVR2,
		PredictionAccuracyWind: m.WindR2,
		PredictionErrorPV:      m.PVMAE,
		PredictionErrorWind:    m.WindMAE,
	}

	if c.logger != nil {
		c.logger.Debug("[impact] %s: type=%.2f ghi=%.3f wind=%.3f -> cost %.2f%%, jobs %d",
			p.Name, f.typ, f.ghi, f.wind, metrics.CostReductionPercent, metrics.JobsCreated)
	}
	return metrics
}

// jobsFor is one job per 5 MW of average demand, never fewer than three.
func jobsFor(avgDemandKW float64) int {
	jobs := math.Floor(avgDemandKW / kWPerJob)
	if jobs < minJobs || math.IsNaN(jobs) {
		return minJobs
	}
	if jobs > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(jobs)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}

package models

// CommunityType is one of the enumerated community categories.
type CommunityType string

const (
	RuralAgricultural CommunityType = "rural_agricultural"
	UrbanMixed        CommunityType = "urban_mixed"
	IndustrialZone    CommunityType = "industrial_zone"
	CoastalArea       CommunityType = "coastal_area"
)

// CommunityProfile holds the answers collected for a single run.
// Population and SpecialNeeds are opaque free text.
type CommunityProfile struct {
	Name          string
	Region        string
	Type          CommunityType
	Population    string
	AvgDemandKW   float64
	PeakDemandKW  float64
	AvgGHI        float64
	AvgWindSpeed  float64
	SeasonPattern string
	MainChallenge string
	SpecialNeeds  string
}

// ImpactMetrics is derived from a CommunityProfile and the model constants.
type ImpactMetrics struct {
	CostReductionPercent     float64
	MonthlySavings           float64
	ReliabilityImprovement   float64
	RenewablePenetration     float64
	PeakReduction            float64
	CO2ReductionTons         float64
	DieselDisplacementLiters float64
	JobsCreated              int
	PaybackMonths            float64

	PredictionAccuracyPV   float64
	PredictionAccuracyWind float64
	PredictionErrorPV      float64
	PredictionErrorWind    float64
}

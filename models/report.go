package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportRun is the record of one completed generation, written to the
// optional metrics CSV and run-history table.
type ReportRun struct {
	ID            uuid.UUID
	GeneratedAt   time.Time
	Profile       CommunityProfile
	Metrics       ImpactMetrics
	ReportPath    string
	DashboardPath string
}

// NewReportRun stamps a fresh run with a random ID.
func NewReportRun(profile CommunityProfile, metrics ImpactMetrics, generatedAt time.Time) *ReportRun {
	return &ReportRun{
		ID:          uuid.New(),
		GeneratedAt: generatedAt,
		Profile:     profile,
		Metrics:     metrics,
	}
}

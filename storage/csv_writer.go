package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"energy-report/models"
)

var csvHeader = []string{
	"run_id", "generated_at",
	"community", "region", "community_type", "population",
	"avg_demand_kw", "peak_demand_kw", "avg_ghi", "avg_wind_speed",
	"season_pattern", "main_challenge", "special_needs",
	"cost_reduction_percent", "monthly_savings", "reliability_improvement",
	"renewable_penetration", "peak_reduction", "co2_reduction_tons",
	"diesel_displacement_liters", "jobs_created", "payback_months",
	"prediction_accuracy_pv", "prediction_accuracy_wind",
	"prediction_error_pv", "prediction_error_wind",
	"report_path", "dashboard_path",
}

// CSVWriter appends one metrics row per run to a CSV file, writing the
// header only when the file starts out empty.
type CSVWriter struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter opens (or creates) the CSV file at path for appending.
// Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("csv: open file %q: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: stat file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("csv: write header: %w", err)
		}
		w.Flush()
	}

	return &CSVWriter{path: path, file: f, writer: w}, nil
}

// Write appends the run as a single row.
func (c *CSVWriter) Write(run *models.ReportRun) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.writer.Write(csvRow(run)); err != nil {
		return fmt.Errorf("csv: write row: %w", err)
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func csvRow(run *models.ReportRun) []string {
	p, m := &run.Profile, &run.Metrics
	return []string{
		run.ID.String(),
		run.GeneratedAt.Format(time.RFC3339),
		p.Name, p.Region, string(p.Type), p.Population,
		num(p.AvgDemandKW), num(p.PeakDemandKW), num(p.AvgGHI), num(p.AvgWindSpeed),
		p.SeasonPattern, p.MainChallenge, p.SpecialNeeds,
		num(m.CostReductionPercent), num(m.MonthlySavings), num(m.ReliabilityImprovement),
		num(m.RenewablePenetration), num(m.PeakReduction), num(m.CO2ReductionTons),
		num(m.DieselDisplacementLiters), strconv.Itoa(m.JobsCreated), num(m.PaybackMonths),
		num(m.PredictionAccuracyPV), num(m.PredictionAccuracyWind),
		num(m.PredictionErrorPV), num(m.PredictionErrorWind),
		run.ReportPath, run.DashboardPath,
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

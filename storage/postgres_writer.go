package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"energy-report/models"
	"energy-report/utils"
)

// runColumns is the insert/select column order for report_runs.
var runColumns = []string{
	"id", "generated_at",
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

// PostgresWriter keeps a history of generated reports in PostgreSQL.
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter opens a connection to PostgreSQL, retrying the initial
// ping, runs schema migrations and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, retry *utils.RetryConfig, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do("postgres-ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db, logger: logger}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS report_runs (
			id                         UUID PRIMARY KEY,
			generated_at               TIMESTAMPTZ NOT NULL,
			community                  TEXT        NOT NULL,
			region                     TEXT        NOT NULL DEFAULT '',
			community_type             VARCHAR(50) NOT NULL,
			population                 TEXT        NOT NULL DEFAULT '',
			avg_demand_kw              DOUBLE PRECISION NOT NULL,
			peak_demand_kw             DOUBLE PRECISION NOT NULL,
			avg_ghi                    DOUBLE PRECISION NOT NULL,
			avg_wind_speed             DOUBLE PRECISION NOT NULL,
			season_pattern             TEXT        NOT NULL DEFAULT '',
			main_challenge             TEXT        NOT NULL DEFAULT '',
			special_needs              TEXT        NOT NULL DEFAULT '',
			cost_reduction_percent     DOUBLE PRECISION NOT NULL,
			monthly_savings            DOUBLE PRECISION NOT NULL,
			reliability_improvement    DOUBLE PRECISION NOT NULL,
			renewable_penetration      DOUBLE PRECISION NOT NULL,
			peak_reduction             DOUBLE PRECISION NOT NULL,
			co2_reduction_tons         DOUBLE PRECISION NOT NULL,
			diesel_displacement_liters DOUBLE PRECISION NOT NULL,
			jobs_created               INTEGER     NOT NULL,
			payback_months             DOUBLE PRECISION NOT NULL,
			prediction_accuracy_pv     DOUBLE PRECISION NOT NULL,
			prediction_accuracy_wind   DOUBLE PRECISION NOT NULL,
			prediction_error_pv        DOUBLE PRECISION NOT NULL,
			prediction_error_wind      DOUBLE PRECISION NOT NULL,
			report_path                TEXT        NOT NULL,
			dashboard_path             TEXT        NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_report_runs_generated_at ON report_runs(generated_at);
		CREATE INDEX IF NOT EXISTS idx_report_runs_community    ON report_runs(community);
		CREATE INDEX IF NOT EXISTS idx_report_runs_type         ON report_runs(community_type);
	`)
	return err
}

// Write inserts one run. Re-inserting the same run ID is a no-op.
func (pw *PostgresWriter) Write(run *models.ReportRun) error {
	if _, err := pw.db.Exec(insertRunQuery(), insertRunArgs(run)...); err != nil {
		return fmt.Errorf("postgres: insert run %s: %w", run.ID, err)
	}

	var total int
	if err := pw.db.QueryRow(`SELECT COUNT(*) FROM report_runs`).Scan(&total); err == nil {
		pw.logger.Debug("[postgres] report_runs now holds %d runs", total)
	}
	return nil
}

// FetchRecent returns up to limit runs, newest first.
func (pw *PostgresWriter) FetchRecent(limit int) ([]*models.ReportRun, error) {
	rows, err := pw.db.Query(selectRecentQuery(), limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch recent: %w", err)
	}
	defer rows.Close()

	var runs []*models.ReportRun
	for rows.Next() {
		run := &models.ReportRun{}
		p, m := &run.Profile, &run.Metrics
		var typ string
		if err := rows.Scan(
			&run.ID, &run.GeneratedAt,
			&p.Name, &p.Region, &typ, &p.Population,
			&p.AvgDemandKW, &p.PeakDemandKW, &p.AvgGHI, &p.AvgWindSpeed,
			&p.SeasonPattern, &p.MainChallenge, &p.SpecialNeeds,
			&m.CostReductionPercent, &m.MonthlySavings, &m.ReliabilityImprovement,
			&m.RenewablePenetration, &m.PeakReduction, &m.CO2ReductionTons,
			&m.DieselDisplacementLiters, &m.JobsCreated, &m.PaybackMonths,
			&m.PredictionAccuracyPV, &m.PredictionAccuracyWind,
			&m.PredictionErrorPV, &m.PredictionErrorWind,
			&run.ReportPath, &run.DashboardPath,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		p.Type = models.CommunityType(typ)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

func insertRunQuery() string {
	placeholders := make([]string, len(runColumns))
	for i := range runColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(`
		INSERT INTO report_runs (%s)
		VALUES (%s)
		ON CONFLICT (id) DO NOTHING
	`, strings.Join(runColumns, ", "), strings.Join(placeholders, ","))
}

func selectRecentQuery() string {
	return fmt.Sprintf(`
		SELECT %s
		FROM report_runs
		ORDER BY generated_at DESC
		LIMIT $1
	`, strings.Join(runColumns, ", "))
}

func insertRunArgs(run *models.ReportRun) []interface{} {
	p, m := &run.Profile, &run.Metrics
	return []interface{}{
		run.ID.String(), run.GeneratedAt.UTC().Truncate(time.Microsecond),
		p.Name, p.Region, string(p.Type), p.Population,
		p.AvgDemandKW, p.PeakDemandKW, p.AvgGHI, p.AvgWindSpeed,
		p.SeasonPattern, p.MainChallenge, p.SpecialNeeds,
		m.CostReductionPercent, m.MonthlySavings, m.ReliabilityImprovement,
		m.RenewablePenetration, m.PeakReduction, m.CO2ReductionTons,
		m.DieselDisplacementLiters, m.JobsCreated, m.PaybackMonths,
		m.PredictionAccuracyPV, m.PredictionAccuracyWind,
		m.PredictionErrorPV, m.PredictionErrorWind,
		run.ReportPath, run.DashboardPath,
	}
}

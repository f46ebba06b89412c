package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"energy-report/catalog"
	"energy-report/chart"
	"energy-report/config"
	"energy-report/input"
	"energy-report/models"
	"energy-report/services"
	"energy-report/storage"
	"energy-report/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		utils.NewLogger().Error("Invalid configuration: %v", err)
		return 1
	}
	logger := utils.NewLoggerWithWriters(utils.ParseLevel(cfg.LogLevel), os.Stdout, os.Stderr)

	cat, err := catalog.Default()
	if err != nil {
		logger.Error("Failed to load community catalog: %v", err)
		return 1
	}
	logger.Debug("Config: output dir %s | dashboard %s | csv %q | history %t",
		cfg.ReportOutputDir, cfg.DashboardFormat, cfg.MetricsCSVPath, cfg.HistoryEnabled)

	input.PrintBanner(os.Stdout, cat)

	profile, err := input.NewCollector(os.Stdin, os.Stdout, cat, logger).Collect()
	if err != nil {
		return fail(logger, err)
	}

	fmt.Println("\n🔮 Calculating personalized impact using your model metrics...")
	metrics := services.NewImpactCalculator(cat, logger).Compute(profile)

	fmt.Println("🤖 Generating AI-powered report with your model performance...")
	now := time.Now()
	report := services.NewReportRenderer(cat).Render(profile, &metrics, now)

	rule := strings.Repeat("=", 70)
	fmt.Printf("\n%s\n📋 YOUR PERSONALIZED AI-GENERATED REPORT\n%s\n", rule, rule)
	fmt.Println(report)

	fmt.Println("\n📊 Generating impact dashboard...")
	dashboard := services.NewDashboardBuilder(cat).Build(profile, &metrics)
	chart.RenderText(os.Stdout, dashboard)

	store := storage.NewFileStore(cfg.ReportOutputDir)
	record := models.NewReportRun(*profile, metrics, now)

	if cfg.ExportsDashboard() {
		path, err := exportDashboard(cfg, logger, store, profile.Name, now, dashboard)
		if err != nil {
			logger.Error("Dashboard export failed: %v", err)
		}
		record.DashboardPath = path
	}

	path, err := store.WriteReport(profile.Name, now, report)
	if err != nil {
		return fail(logger, err)
	}
	record.ReportPath = path
	fmt.Printf("\n💾 Report saved as: %s\n", path)

	recordRun(cfg, logger, record)

	fmt.Printf("\n✅ Report generation complete for %s!\n", profile.Name)
	fmt.Println("🌱 Thank you for using your AI model for social good!")
	return 0
}

// exportDashboard writes the SVG and, for png, a rasterised copy. It returns
// the path of the best artifact produced, even alongside an error.
func exportDashboard(cfg *config.Config, logger *utils.Logger, store *storage.FileStore,
	community string, at time.Time, d *chart.Dashboard) (string, error) {

	svgCfg := chart.DefaultSVGConfig()
	svgCfg.Width, svgCfg.Height = cfg.DashboardWidth, cfg.DashboardHeight
	svg := chart.RenderSVG(d, svgCfg)

	svgPath, err := store.WriteDashboard(community, at, "svg", []byte(svg))
	if err != nil {
		return "", err
	}
	logger.Info("Dashboard SVG saved to %s", svgPath)

	if cfg.DashboardFormat != config.DashboardPNG {
		return svgPath, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RenderTimeout*time.Duration(cfg.MaxRetries))
	defer cancel()

	rasterizer := chart.NewRasterizer(cfg.ChromeBin, cfg.RenderTimeout, cfg.MaxRetries, logger)
	png, err := rasterizer.RenderPNG(ctx, svg, cfg.DashboardWidth, cfg.DashboardHeight)
	if err != nil {
		return svgPath, err
	}

	pngPath, err := store.WriteDashboard(community, at, "png", png)
	if err != nil {
		return svgPath, err
	}
	logger.Info("Dashboard PNG saved to %s", pngPath)
	return pngPath, nil
}

// recordRun feeds the optional run sinks. Their failures are logged, not fatal.
func recordRun(cfg *config.Config, logger *utils.Logger, record *models.ReportRun) {
	var sinks []storage.RunWriter

	if cfg.MetricsCSVPath != "" {
		csvWriter, err := storage.NewCSVWriter(cfg.MetricsCSVPath)
		if err != nil {
			logger.Error("Failed to open metrics CSV: %v", err)
		} else {
			sinks = append(sinks, csvWriter)
		}
	}

	var history *storage.PostgresWriter
	if cfg.HistoryEnabled {
		retry := &utils.RetryConfig{MaxAttempts: cfg.MaxRetries, BaseDelay: 2 * time.Second, Logger: logger}
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), retry, logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
		} else {
			history = pgWriter
			sinks = append(sinks, pgWriter)
		}
	}

	for _, sink := range sinks {
		if err := sink.Write(record); err != nil {
			logger.Error("Run record write failed: %v", err)
		}
	}

	if history != nil {
		printHistory(logger, history)
	}

	for _, sink := range sinks {
		if err := sink.Close(); err != nil {
			logger.Warn("Closing run sink: %v", err)
		}
	}
	if len(sinks) > 0 {
		logger.Info("Run %s recorded in %d sink(s)", record.ID, len(sinks))
	}
}

func printHistory(logger *utils.Logger, reader storage.RunReader) {
	runs, err := reader.FetchRecent(5)
	if err != nil {
		logger.Warn("Could not list recent reports: %v", err)
		return
	}
	logger.Info("Recent reports:")
	for _, r := range runs {
		logger.Info("  %s  %-24s  %5.1f%% cost  %d jobs",
			r.GeneratedAt.Format("2006-01-02 15:04"), r.Profile.Name,
			r.Metrics.CostReductionPercent, r.Metrics.JobsCreated)
	}
}

// fail reports a fatal pipeline error and returns the process exit code.
func fail(logger *utils.Logger, err error) int {
	var inputErr *models.InputError
	var ioErr *models.IOError

	switch {
	case errors.As(err, &inputErr):
		logger.Error("Invalid input for field %q: %q is not a number", inputErr.Field, inputErr.Value)
	case errors.As(err, &ioErr):
		logger.Error("I/O failure on %s (%s): %v", ioErr.Path, ioErr.Op, ioErr.Err)
	default:
		logger.Error("Report generation failed: %v", err)
	}
	return 1
}

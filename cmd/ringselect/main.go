// Command ringselect selects the overlay rings of the jobs in a job file.
//
// Usage:
//
//	ringselect -job jobs.yaml [-config ringselect.yaml] [-env .env] [-o out.json]
//
// Each job names an operation (union, intersection or difference), one or two
// geometries and the rings already consumed by intersection processing. The
// selected rings are reported per job as JSON or YAML.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/internal/config"
	"github.com/gogpu/overlay/internal/job"
	"github.com/gogpu/overlay/internal/preview"
	"github.com/gogpu/overlay/metrics"
)

func main() {
	var (
		jobPath    = flag.String("job", "", "job file (YAML or JSON)")
		configPath = flag.String("config", "", "configuration file (YAML)")
		envFile    = flag.String("env", ".env", "environment file loaded before configuration")
		output     = flag.String("o", "", "output file (default stdout)")
	)
	flag.Parse()

	if *jobPath == "" {
		fmt.Fprintln(os.Stderr, "ringselect: -job is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *jobPath, *configPath, *envFile, *output); err != nil {
		fmt.Fprintf(os.Stderr, "ringselect: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, jobPath, configPath, envFile, output string) error {
	// A missing .env file is not an error.
	_ = godotenv.Load(envFile)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Logging, os.Stderr)
	overlay.SetLogger(logger)

	jobs, err := job.Load(jobPath)
	if err != nil {
		return err
	}
	logger.Info("jobs loaded", slog.String("file", jobPath), slog.Int("jobs", len(jobs)))

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(metrics.Config{
			Namespace: cfg.Metrics.Namespace,
			Subsystem: cfg.Metrics.Subsystem,
		}, prometheus.NewRegistry())
	}

	results, err := selectAll(ctx, jobs, cfg.Batch.Workers, collector)
	if err != nil {
		return err
	}

	reports := make([]job.Report, len(jobs))
	for i, j := range jobs {
		reports[i] = job.NewReport(j, results[i])
		logger.Debug("job done",
			slog.String("id", j.ID),
			slog.String("operation", j.Job.Operation.String()),
			slog.Int("selected", len(results[i])))
	}

	if err := writeReports(output, cfg.Output.Format, reports); err != nil {
		return err
	}

	if cfg.Preview.Enabled {
		if err := writePreviews(cfg.Preview, jobs, results, logger); err != nil {
			return err
		}
	}

	if collector != nil && cfg.Metrics.Textfile != "" {
		if err := collector.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
		logger.Info("metrics written", slog.String("file", cfg.Metrics.Textfile))
	}
	return nil
}

// selectAll runs the jobs on the worker pool. Jobs carrying their own within
// codes need their own options, so they run individually; the rest share one
// batch.
func selectAll(ctx context.Context, jobs []job.Job, workers int, collector *metrics.Collector) ([]overlay.SelectionMap, error) {
	var common []overlay.Option
	if collector != nil {
		common = append(common, overlay.WithObserver(collector))
	}

	results := make([]overlay.SelectionMap, len(jobs))
	var batch []overlay.Job
	var batchIdx []int
	for i, j := range jobs {
		if opts := j.Options(); len(opts) > 0 {
			results[i] = j.Job.Select(append(opts, common...)...)
			continue
		}
		batch = append(batch, j.Job)
		batchIdx = append(batchIdx, i)
	}

	selected, err := overlay.SelectBatch(ctx, batch, workers, common...)
	if err != nil {
		return nil, err
	}
	for k, sel := range selected {
		results[batchIdx[k]] = sel
	}
	return results, nil
}

func writeReports(output, format string, reports []job.Report) error {
	if output == "" {
		return job.WriteReports(os.Stdout, format, reports)
	}
	f, err := os.Create(output) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := job.WriteReports(f, format, reports); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writePreviews(cfg config.PreviewConfig, jobs []job.Job, results []overlay.SelectionMap, logger *slog.Logger) error {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return err
	}
	for i, j := range jobs {
		path := filepath.Join(cfg.Dir, j.ID+".png")
		err := preview.SavePNG(path, results[i], j.Job.A, j.Job.B, cfg.Size)
		if errors.Is(err, preview.ErrEmptySelection) {
			logger.Warn("nothing selected, preview skipped", slog.String("id", j.ID))
			continue
		}
		if err != nil {
			return err
		}
		logger.Info("preview written", slog.String("file", path))
	}
	return nil
}

func newLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

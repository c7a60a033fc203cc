package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/ppiankov/eggcorn/internal/metrics"
	"github.com/ppiankov/eggcorn/internal/pipeline"
	"github.com/ppiankov/eggcorn/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	workers      int
	reportPath   string
	repliesPath  string
	metricsAddr  string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <comments.jsonl>",
	Short: "Check a file of comments in parallel and answer the mistakes",
	Long: `Batch processes a file of comments concurrently:
- Read comments from the input file (one JSON object per line)
- Skip bots, saved comments, opted-out users and comments seen before
- Check each comment with a pool of workers
- Write one reply per detected mistake, rate limited per subreddit
- Count delivered corrections and the run in the stats file

Replies are written as JSON lines to --replies (stdout by default).

Example:
  eggcorn batch comments.jsonl
  eggcorn batch comments.jsonl --workers 8 --report run.json --replies replies.jsonl
  eggcorn batch comments.jsonl --metrics-addr :9090`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent workers (default: concurrency.workers)")
	batchCmd.Flags().StringVar(&reportPath, "report", "", "write the JSON batch report to this path")
	batchCmd.Flags().StringVar(&repliesPath, "replies", "-", "write replies as JSON lines to this path (- for stdout)")
	batchCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the run")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Bool("no-footer", false, "do not append the bot footer to replies")

	_ = viper.BindPFlag("metrics.addr", batchCmd.Flags().Lookup("metrics-addr"))
	_ = viper.BindPFlag("concurrency.workers", batchCmd.Flags().Lookup("workers"))
}

func runBatch(cmd *cobra.Command, args []string) (err error) {
	file := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noFooter, _ := cmd.Flags().GetBool("no-footer"); noFooter {
		cfg.Output.IncludeFooter = false
	}

	logger, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, batchTimeout)
	defer cancel()

	out, closeOut, err := openOutput(repliesPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOut(); closeErr != nil && err == nil {
			err = fmt.Errorf("close replies: %w", closeErr)
		}
	}()

	b, err := newBot(cfg, pipeline.NewWriterPublisher(out), logger)
	if err != nil {
		return err
	}

	if cfg.Metrics.Addr != "" {
		shutdown := serveMetrics(cfg.Metrics.Addr, logger)
		defer shutdown()
	}

	runID := uuid.NewString()
	startedAt := time.Now().UTC()
	logger.Info("batch started", "run", runID, "file", file, "workers", cfg.Concurrency.Workers)

	processor := worker.NewBatchProcessor(b.pipeline, cfg.Concurrency.Workers)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	report := pipeline.BuildReport(runID, file, startedAt, results)
	renderer := pipeline.NewRenderer(cmd.ErrOrStderr())
	renderer.RenderSummary(report)

	if reportPath != "" {
		if err := renderer.RenderJSON(report, reportPath); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		if cfg.Output.Verbose {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote report: %s\n", reportPath)
		}
	}

	if _, err := b.stats.AddRun(); err != nil {
		return fmt.Errorf("update run counter: %w", err)
	}

	if b.ledger != nil {
		pruned, err := b.ledger.Prune()
		if err != nil {
			logger.Warn("prune seen comments", "error", err)
		} else if pruned > 0 {
			logger.Debug("pruned seen comments", "count", pruned)
		}
	}

	return ctx.Err()
}

// openOutput opens path for writing; "-" or "" selects stdout
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, f.Close, nil
}

// serveMetrics exposes /metrics on addr until the returned func is called
func serveMetrics(addr string, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "addr", addr, "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

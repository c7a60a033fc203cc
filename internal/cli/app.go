package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ppiankov/eggcorn/internal/cache"
	"github.com/ppiankov/eggcorn/internal/mistake"
	"github.com/ppiankov/eggcorn/internal/model"
	"github.com/ppiankov/eggcorn/internal/pipeline"
	"github.com/ppiankov/eggcorn/internal/stats"
	"github.com/ppiankov/eggcorn/internal/worker"
)

// State files under data.dir
const (
	statsFile     = "stats.json"
	blocklistFile = "stopped_users.txt"
	ledgerDir     = "seen"
)

// newLogger builds the slog logger described by cfg
func newLogger(cfg model.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

// loadRules returns the configured catalog minus disabled rules.
// A non-empty path overrides catalog.path.
func loadRules(cfg model.CatalogConfig, path string) ([]mistake.Rule, error) {
	if path == "" {
		path = cfg.Path
	}

	rules := mistake.DefaultRules()
	if path != "" {
		var err error
		if rules, err = mistake.LoadRules(path); err != nil {
			return nil, err
		}
	}

	return mistake.Filter(rules, cfg.Disabled), nil
}

func loadChecker(cfg model.CatalogConfig, path string) (*mistake.Checker, error) {
	rules, err := loadRules(cfg, path)
	if err != nil {
		return nil, err
	}
	return mistake.NewChecker(rules)
}

// bot holds everything a batch or inbox run needs
type bot struct {
	pipeline  *pipeline.Pipeline
	ledger    *cache.Ledger
	stats     *stats.Store
	blocklist *stats.Blocklist
	limiter   *worker.Limiter
	logger    *slog.Logger
}

func newBot(cfg *model.Config, publisher pipeline.Publisher, logger *slog.Logger) (*bot, error) {
	checker, err := loadChecker(cfg.Catalog, "")
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	blocklist, err := stats.LoadBlocklist(filepath.Join(cfg.Data.Dir, blocklistFile))
	if err != nil {
		return nil, err
	}

	b := &bot{
		ledger:    cache.OpenLedger(ledgerConfig(cfg)),
		stats:     stats.NewStore(filepath.Join(cfg.Data.Dir, statsFile)),
		blocklist: blocklist,
		limiter:   newLimiter(cfg.RateLimiting),
		logger:    logger,
	}

	b.pipeline, err = pipeline.NewPipeline(pipeline.Options{
		Checker:   checker,
		Publisher: publisher,
		Ledger:    b.ledger,
		Stats:     b.stats,
		Blocklist: b.blocklist,
		Limiter:   b.limiter,
		Logger:    logger,
		Footer:    cfg.Output.IncludeFooter,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("bot ready", "rules", checker.Len(), "opted_out", blocklist.Len(), "ledger", b.ledger != nil)
	return b, nil
}

// ledgerConfig places the ledger under data.dir unless cache.dir is set
func ledgerConfig(cfg *model.Config) model.CacheConfig {
	c := cfg.Cache
	if c.Dir == "" {
		c.Dir = filepath.Join(cfg.Data.Dir, ledgerDir)
	}
	return c
}

func newLimiter(cfg model.RateLimitingConfig) *worker.Limiter {
	limiter := worker.NewLimiter(cfg.RequestsPerSecond, cfg.BurstSize)
	for subreddit, rps := range cfg.Overrides {
		limiter.SetRate(subreddit, rps, cfg.BurstSize)
	}
	return limiter
}

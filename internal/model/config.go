package model

import "time"

// Config is the complete eggcorn configuration.
// Field tags serve both viper (mapstructure) and `config show` (yaml).
type Config struct {
	Data         DataConfig         `mapstructure:"data" yaml:"data"`
	Catalog      CatalogConfig      `mapstructure:"catalog" yaml:"catalog"`
	Cache        CacheConfig        `mapstructure:"cache" yaml:"cache"`
	Concurrency  ConcurrencyConfig  `mapstructure:"concurrency" yaml:"concurrency"`
	RateLimiting RateLimitingConfig `mapstructure:"rate_limiting" yaml:"rate_limiting"`
	Output       OutputConfig       `mapstructure:"output" yaml:"output"`
	Log          LogConfig          `mapstructure:"log" yaml:"log"`
	Metrics      MetricsConfig      `mapstructure:"metrics" yaml:"metrics"`
}

// DataConfig locates the bot's state files
type DataConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"` // Holds stats.json and stopped_users.txt
}

// CatalogConfig selects the rule catalog
type CatalogConfig struct {
	Path     string   `mapstructure:"path" yaml:"path"`         // YAML catalog; empty uses the built-in rules
	Disabled []string `mapstructure:"disabled" yaml:"disabled"` // Rule keys to skip, e.g. "loose its"
}

// CacheConfig controls the seen-comment ledger
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	Dir       string        `mapstructure:"dir" yaml:"dir"` // Empty keeps the ledger in <data.dir>/seen
	MemoryTTL time.Duration `mapstructure:"memory_ttl" yaml:"memory_ttl"`
	DiskTTL   time.Duration `mapstructure:"disk_ttl" yaml:"disk_ttl"`
}

// ConcurrencyConfig sizes the worker pool
type ConcurrencyConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// RateLimitingConfig throttles replies per subreddit
type RateLimitingConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	BurstSize         int     `mapstructure:"burst_size" yaml:"burst_size"`

	// Overrides sets requests per second for single subreddits, e.g. {askreddit: 0.2}
	Overrides map[string]float64 `mapstructure:"overrides" yaml:"overrides,omitempty"`
}

// OutputConfig controls what gets printed and published
type OutputConfig struct {
	Verbose       bool `mapstructure:"verbose" yaml:"verbose"`
	IncludeFooter bool `mapstructure:"include_footer" yaml:"include_footer"` // Bot footer under each reply
}

// LogConfig configures the slog handler
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // text or json
}

// MetricsConfig exposes Prometheus metrics during batch runs
type MetricsConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"` // e.g. ":9090"; empty disables
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "./data",
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 24 * time.Hour,
			DiskTTL:   30 * 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 1,
			BurstSize:         5,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

package contract

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/rollcast/schema"
)

// Default values for configuration.
const (
	DefaultWindowSize    = 30
	DefaultBatchSize     = 32
	DefaultShuffleBuffer = 1000
	DefaultChunk         = 256
	DefaultSplitFraction = 0.8
	DefaultEMAAlpha      = 0.3
	DefaultResultLimit   = 25
	MaxResultLimit       = 1000
	DefaultPrecision     = 2
	DefaultTargetAcc     = 90.0
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a pipeline run.
// This struct remains the "final, validated" config.
type Config struct {
	SeriesPath  string
	SeriesName  string
	ValueColumn int

	WindowSize    int
	BatchSize     int
	ShuffleBuffer int
	Seed          int64

	Predictor schema.PredictorKind
	EMAAlpha  float64
	Chunk     int

	SplitFraction float64
	Normalize     bool

	TuneWindows    []int
	TargetAccuracy float64

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	RunBackend   schema.DatabaseBackend
	RunDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SeriesPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Column       int    `mapstructure:"column"`
	Window       int    `mapstructure:"window"`
	Batch        int    `mapstructure:"batch"`
	ShuffleBuf   int    `mapstructure:"shuffle-buffer"`
	Seed         int64  `mapstructure:"seed"`
	Predictor    string `mapstructure:"predictor"`
	EMAAlpha     float64 `mapstructure:"ema-alpha"`
	Chunk        int    `mapstructure:"chunk"`
	Limit        int    `mapstructure:"limit"`
	Precision    int    `mapstructure:"precision"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	RunBackend   string `mapstructure:"run-backend"`
	RunDBConnect string `mapstructure:"run-db-connect"`

	// --- Fields from evalCmd / tuneCmd flags ---
	Split     float64 `mapstructure:"split"`
	Normalize bool    `mapstructure:"normalize"`
	Windows   string  `mapstructure:"windows"`
	TargetAcc float64 `mapstructure:"target-accuracy"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.TuneWindows != nil {
		clone.TuneWindows = make([]int, len(c.TuneWindows))
		copy(clone.TuneWindows, c.TuneWindows)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSeriesPath(cfg, input); err != nil {
		return err
	}
	if err := validatePipelineInputs(cfg, input); err != nil {
		return err
	}
	if err := validateOutputInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSeriesPath checks the positional series path and derives the
// display name for the series.
func validateSeriesPath(cfg *Config, input *ConfigRawInput) error {
	path := strings.TrimSpace(input.SeriesPathStr)
	if path == "" {
		return fmt.Errorf("a series file path is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access series file %q: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("series path %q is a directory, expected a file", path)
	}
	cfg.SeriesPath = path
	cfg.SeriesName = schema.SeriesNameFromPath(path)

	if input.Column < 0 {
		return fmt.Errorf("column must be >= 0, got %d", input.Column)
	}
	cfg.ValueColumn = input.Column
	return nil
}

// validatePipelineInputs checks windowing, predictor, and split settings.
func validatePipelineInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Window < 1 {
		return fmt.Errorf("window must be >= 1, got %d", input.Window)
	}
	cfg.WindowSize = input.Window

	if input.Batch < 1 {
		return fmt.Errorf("batch must be >= 1, got %d", input.Batch)
	}
	cfg.BatchSize = input.Batch

	if input.ShuffleBuf < 1 {
		return fmt.Errorf("shuffle-buffer must be >= 1, got %d", input.ShuffleBuf)
	}
	cfg.ShuffleBuffer = input.ShuffleBuf
	cfg.Seed = input.Seed

	cfg.Predictor = schema.PredictorKind(strings.ToLower(input.Predictor))
	if _, ok := schema.ValidPredictorKinds[cfg.Predictor]; !ok {
		return fmt.Errorf("invalid predictor '%s'. must be one of naive, sma, wma, ema, drift, trend", input.Predictor)
	}

	if input.EMAAlpha <= 0 || input.EMAAlpha > 1 {
		return fmt.Errorf("ema-alpha must be in (0, 1], got %g", input.EMAAlpha)
	}
	cfg.EMAAlpha = input.EMAAlpha

	if input.Chunk < 1 {
		return fmt.Errorf("chunk must be >= 1, got %d", input.Chunk)
	}
	cfg.Chunk = input.Chunk

	if input.Split <= 0 || input.Split >= 1 {
		return fmt.Errorf("split must be in (0, 1), got %g", input.Split)
	}
	cfg.SplitFraction = input.Split
	cfg.Normalize = input.Normalize

	windows, err := ParseWindowList(input.Windows)
	if err != nil {
		return err
	}
	cfg.TuneWindows = windows

	if input.TargetAcc < 0 || input.TargetAcc > 100 {
		return fmt.Errorf("target-accuracy must be in [0, 100], got %g", input.TargetAcc)
	}
	cfg.TargetAccuracy = input.TargetAcc
	return nil
}

// validateOutputInputs checks output format, limit, and precision.
func validateOutputInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	if input.Limit < 1 {
		return fmt.Errorf("limit must be >= 1, got %d", input.Limit)
	}
	cfg.ResultLimit = min(input.Limit, MaxResultLimit)

	if input.Precision < 0 || input.Precision > 10 {
		return fmt.Errorf("precision must be in [0, 10], got %d", input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", input.Width)
	}
	cfg.Width = input.Width
	cfg.UseColors = ParseBoolFlag(input.Color)
	return nil
}

// validateBackendConfigs validates the run-tracking backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend := schema.DatabaseBackend(strings.ToLower(input.RunBackend))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid run backend '%s'. must be sqlite, mysql, postgresql, none", input.RunBackend)
	}
	cfg.RunBackend = backend
	cfg.RunDBConnect = input.RunDBConnect
	return ValidateDatabaseConnectionString(cfg.RunBackend, cfg.RunDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseWindowList parses a comma-separated list of window sizes, e.g.
// "7,14,30". An empty string yields nil (tuning disabled).
func ParseWindowList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	windows := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		w, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid window size %q in list: %w", p, err)
		}
		if w < 1 {
			return nil, fmt.Errorf("window sizes must be >= 1, got %d", w)
		}
		windows = append(windows, w)
	}
	if len(windows) == 0 {
		return nil, fmt.Errorf("window list %q contains no usable sizes", s)
	}
	return windows, nil
}

// ParseBoolFlag interprets a yes/no style flag value.
func ParseBoolFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	default:
		return false
	}
}

// ProcessProfilingConfig populates profiling config from the flag value.
func ProcessProfilingConfig(profile *ProfileConfig, prefix string) error {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil
	}
	if strings.ContainsAny(prefix, " \t") {
		return fmt.Errorf("profile prefix %q must not contain whitespace", prefix)
	}
	profile.Enabled = true
	profile.Prefix = prefix
	return nil
}

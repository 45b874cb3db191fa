package config

import "runtime"

// Default values for optional configuration fields.
const (
	DefaultInputDir      = "data"
	DefaultOutputDir     = "out"
	DefaultCalendarStart = "2017-08-01"
	DefaultCalendarEnd   = "2018-08-01"
	DefaultSeed          = 1000
	DefaultMinOptions    = 1500
	DefaultMaxOptions    = 2500
	DefaultLogLevel      = "info"
	DefaultDBPort        = 5432
	DefaultDBSSLMode     = "prefer"
	DefaultMaxConns      = 4
	DefaultMinConns      = 1
	DefaultMetricsPath   = "/metrics"
)

// DefaultWorkers leaves four CPUs free, with a minimum of one.
func DefaultWorkers() int {
	n := runtime.NumCPU() - 4
	if n < 1 {
		n = 1
	}
	return n
}

// ApplyDefaults fills zero-valued optional fields.
func (c *ExporterConfig) ApplyDefaults() {
	// Paths defaults
	if c.Paths.InputDir == "" {
		c.Paths.InputDir = DefaultInputDir
	}
	if c.Paths.OutputDir == "" {
		c.Paths.OutputDir = DefaultOutputDir
	}

	// Calendar defaults
	if c.Calendar.Start == "" {
		c.Calendar.Start = DefaultCalendarStart
	}
	if c.Calendar.End == "" {
		c.Calendar.End = DefaultCalendarEnd
	}

	// Replay defaults
	if c.Replay.Seed == 0 {
		c.Replay.Seed = DefaultSeed
	}
	if c.Replay.MinOptions == 0 {
		c.Replay.MinOptions = DefaultMinOptions
	}
	if c.Replay.MaxOptions == 0 {
		c.Replay.MaxOptions = DefaultMaxOptions
	}

	// Workers defaults
	if c.Workers.Count == 0 {
		c.Workers.Count = DefaultWorkers()
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	// Ledger defaults only matter when the ledger is on.
	if c.Ledger.Enabled {
		applyDBDefaults(&c.Ledger.Database)
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}

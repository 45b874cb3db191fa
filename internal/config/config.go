package config

import "time"

// DateLayout is the calendar date format used across config and snapshot files.
const DateLayout = "2006-01-02"

// ExporterConfig is the root configuration for an export run.
type ExporterConfig struct {
	Paths    PathsConfig    `yaml:"paths"`
	Calendar CalendarConfig `yaml:"calendar"`
	Replay   ReplayConfig   `yaml:"replay"`
	Workers  WorkersConfig  `yaml:"workers"`
	Log      LogConfig      `yaml:"log"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// PathsConfig holds input and output directory roots.
type PathsConfig struct {
	InputDir  string `yaml:"input_dir"`  // Contains equities/ and curves/
	OutputDir string `yaml:"output_dir"` // Receives equities/, snapshots/, settings/, config/, curves/
}

// CalendarConfig bounds the historical replay.
type CalendarConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Today string `yaml:"today"` // Present-day snapshot date; empty means the current UTC date
}

// ReplayConfig controls synthetic perturbation.
type ReplayConfig struct {
	Seed       uint64 `yaml:"seed"`
	MinOptions int    `yaml:"min_options"`
	MaxOptions int    `yaml:"max_options"`
}

// WorkersConfig holds the dispatcher pool settings.
type WorkersConfig struct {
	Count    int  `yaml:"count"`
	Progress bool `yaml:"progress"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LedgerConfig enables recording unit outcomes in PostgreSQL.
type LedgerConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Database DBConfig `yaml:"database"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// MetricsConfig holds Prometheus metrics settings. Port 0 disables the endpoint.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}

// StartDate returns the parsed calendar start.
func (c CalendarConfig) StartDate() (time.Time, error) {
	return time.Parse(DateLayout, c.Start)
}

// EndDate returns the parsed calendar end.
func (c CalendarConfig) EndDate() (time.Time, error) {
	return time.Parse(DateLayout, c.End)
}

// TodayDate returns the present-day snapshot date, falling back to now.
func (c CalendarConfig) TodayDate(now time.Time) (time.Time, error) {
	if c.Today == "" {
		now = now.UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(DateLayout, c.Today)
}

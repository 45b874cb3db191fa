package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *ExporterConfig) Validate() error {
	if c.Paths.InputDir == "" {
		return errors.New("paths.input_dir is required")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir is required")
	}

	start, err := c.Calendar.StartDate()
	if err != nil {
		return fmt.Errorf("calendar.start must be YYYY-MM-DD, got %q", c.Calendar.Start)
	}
	end, err := c.Calendar.EndDate()
	if err != nil {
		return fmt.Errorf("calendar.end must be YYYY-MM-DD, got %q", c.Calendar.End)
	}
	if end.Before(start) {
		return fmt.Errorf("calendar.end (%s) cannot precede calendar.start (%s)", c.Calendar.End, c.Calendar.Start)
	}
	if c.Calendar.Today != "" {
		if _, err := c.Calendar.TodayDate(start); err != nil {
			return fmt.Errorf("calendar.today must be YYYY-MM-DD, got %q", c.Calendar.Today)
		}
	}

	if c.Replay.MinOptions < 1 {
		return errors.New("replay.min_options must be >= 1")
	}
	if c.Replay.MinOptions > c.Replay.MaxOptions {
		return fmt.Errorf("replay.min_options (%d) cannot exceed max_options (%d)", c.Replay.MinOptions, c.Replay.MaxOptions)
	}

	if c.Workers.Count < 1 {
		return errors.New("workers.count must be >= 1")
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Ledger.Enabled {
		if err := c.Ledger.Database.validate("ledger.database"); err != nil {
			return err
		}
	}

	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port must be between 0 and 65535, got %d", c.Metrics.Port)
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}

// ParseLevel maps a log.level value to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", level)
	}
}

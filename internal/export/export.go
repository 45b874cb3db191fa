package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rickgao/mdexport/internal/assemble"
	"github.com/rickgao/mdexport/internal/calendar"
	"github.com/rickgao/mdexport/internal/metrics"
	"github.com/rickgao/mdexport/internal/model"
	"github.com/rickgao/mdexport/internal/perturb"
	"github.com/rickgao/mdexport/internal/snapshot"
)

// ErrMissingInput matches a unit whose snapshot files cannot be found.
var ErrMissingInput = errors.New("missing input file")

// Unit kinds.
const (
	KindEquity = "equity"
	KindCurve  = "curve"
)

// Input and output layout.
const (
	EquitiesDir  = "equities"
	CurvesDir    = "curves"
	SnapshotsDir = "snapshots"
	SettingsDir  = "settings"
	ConfigDir    = "config"
	CoreFile     = "FI.xml"
	MetaFile     = "marketdata_equity_fd.xml"
)

// Config holds everything a unit needs besides its id.
type Config struct {
	InputDir  string
	OutputDir string
	Today     time.Time
	Days      []calendar.Day
	Seed      uint64
	ChainSize assemble.ChainSize
}

// Result summarizes one unit.
type Result struct {
	Kind     string
	ID       string
	Archives int
	Entries  int
	Duration time.Duration
	Err      error
}

// OK reports whether the unit succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Exporter runs units. It holds no per-unit state and is safe for concurrent use.
type Exporter struct {
	cfg     Config
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New creates an Exporter. m may be nil.
func New(cfg Config, m *metrics.Metrics, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{cfg: cfg, metrics: m, logger: logger}
}

// Prepare creates the output directory tree.
func (e *Exporter) Prepare() error {
	for _, dir := range []string{EquitiesDir, SnapshotsDir, SettingsDir, ConfigDir, CurvesDir} {
		if err := os.MkdirAll(filepath.Join(e.cfg.OutputDir, dir), 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	return nil
}

// Equity exports one equity instrument.
func (e *Exporter) Equity(ctx context.Context, id string) Result {
	start := time.Now()
	logger := e.logger.With("kind", KindEquity, "id", id)
	logger.Info("unit started")

	res := Result{Kind: KindEquity, ID: id}
	res.Err = e.equity(ctx, id, &res)
	res.Duration = time.Since(start)
	e.finish(logger, res)
	return res
}

// Curve exports one discount curve.
func (e *Exporter) Curve(ctx context.Context, id string) Result {
	start := time.Now()
	logger := e.logger.With("kind", KindCurve, "id", id)
	logger.Info("unit started")

	res := Result{Kind: KindCurve, ID: id}
	res.Err = e.curve(ctx, id, &res)
	res.Duration = time.Since(start)
	e.finish(logger, res)
	return res
}

func (e *Exporter) finish(logger *slog.Logger, res Result) {
	e.metrics.ObserveUnit(res.Kind, res.OK(), res.Duration)
	if res.Err != nil {
		logger.Error("unit failed", "error", res.Err, "duration", res.Duration)
		return
	}
	logger.Info("unit finished",
		"archives", res.Archives,
		"entries", res.Entries,
		"duration", res.Duration,
	)
}

func (e *Exporter) equity(ctx context.Context, id string, res *Result) error {
	dir := filepath.Join(e.cfg.InputDir, EquitiesDir, id)
	doc, err := readInput(filepath.Join(dir, CoreFile), snapshot.ReadFile)
	if err != nil {
		return err
	}
	meta, err := readInput(filepath.Join(dir, MetaFile), snapshot.ReadSettingsFile)
	if err != nil {
		return err
	}

	g := perturb.New(perturb.SeedFor(e.cfg.Seed, KindEquity, id))
	u := newUnit(e.cfg.OutputDir, id)
	defer u.abort()

	err = u.series(ctx, EquitiesDir, e.cfg.Today, e.cfg.Days, func(target time.Time) (model.Record, error) {
		return assemble.Equity(target, id, doc, meta, g)
	})
	if err != nil {
		return err
	}

	err = u.series(ctx, SnapshotsDir, e.cfg.Today, e.cfg.Days, func(target time.Time) (model.Record, error) {
		return assemble.OptionChain(target, id, doc, e.cfg.ChainSize, g)
	})
	if err != nil {
		return err
	}

	if err := u.single(ConfigDir, assemble.Config(id)); err != nil {
		return err
	}
	if err := u.single(SettingsDir, assemble.Settings(id, g)); err != nil {
		return err
	}

	return u.commit(e.metrics, res)
}

func (e *Exporter) curve(ctx context.Context, id string, res *Result) error {
	doc, err := readInput(filepath.Join(e.cfg.InputDir, CurvesDir, id, CoreFile), snapshot.ReadFile)
	if err != nil {
		return err
	}

	g := perturb.New(perturb.SeedFor(e.cfg.Seed, KindCurve, id))
	u := newUnit(e.cfg.OutputDir, id)
	defer u.abort()

	err = u.series(ctx, CurvesDir, e.cfg.Today, e.cfg.Days, func(target time.Time) (model.Record, error) {
		return assemble.Curve(target, id, doc, g)
	})
	if err != nil {
		return err
	}

	return u.commit(e.metrics, res)
}

// readInput opens a snapshot file, mapping absent files to ErrMissingInput.
func readInput[T any](path string, read func(string) (*T, error)) (*T, error) {
	v, err := read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return v, nil
}

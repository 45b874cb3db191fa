package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rickgao/mdexport/internal/export"
)

// Runner executes single units.
type Runner interface {
	Equity(ctx context.Context, id string) export.Result
	Curve(ctx context.Context, id string) export.Result
}

// Job identifies one unit of work.
type Job struct {
	Kind string
	ID   string
}

// Jobs builds jobs of one kind from ids.
func Jobs(kind string, ids []string) []Job {
	jobs := make([]Job, len(ids))
	for i, id := range ids {
		jobs[i] = Job{Kind: kind, ID: id}
	}
	return jobs
}

// Config holds pool settings.
type Config struct {
	Workers  int       // Max concurrent units
	Progress io.Writer // Progress bar destination; nil disables it
}

// Summary is the outcome of a run, in job order.
type Summary struct {
	Results  []export.Result
	Duration time.Duration
}

// Succeeded counts successful units.
func (s Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

// Failed returns the failed units.
func (s Summary) Failed() []export.Result {
	var failed []export.Result
	for _, r := range s.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Dispatcher runs jobs on a bounded pool.
type Dispatcher struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

// New creates a Dispatcher.
func New(cfg Config, runner Runner, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Dispatcher{cfg: cfg, runner: runner, logger: logger}
}

// Run executes every job and waits for all of them.
func (d *Dispatcher) Run(ctx context.Context, jobs []Job) Summary {
	start := time.Now()
	results := make([]export.Result, len(jobs))

	var bar *progressbar.ProgressBar
	if d.cfg.Progress != nil {
		bar = progressbar.NewOptions(len(jobs),
			progressbar.OptionSetWriter(d.cfg.Progress),
			progressbar.OptionSetDescription("exporting"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	var g errgroup.Group
	g.SetLimit(d.cfg.Workers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			results[i] = d.runOne(ctx, job)
			if bar != nil {
				bar.Add(1)
			}
			// Failures are reported through results, never through the group.
			return nil
		})
	}
	g.Wait()

	if bar != nil {
		bar.Finish()
	}

	s := Summary{Results: results, Duration: time.Since(start)}
	d.logger.Info("dispatch complete",
		"units", len(jobs),
		"succeeded", s.Succeeded(),
		"failed", len(s.Failed()),
		"workers", d.cfg.Workers,
		"duration", s.Duration,
	)
	return s
}

func (d *Dispatcher) runOne(ctx context.Context, job Job) export.Result {
	if err := ctx.Err(); err != nil {
		return export.Result{Kind: job.Kind, ID: job.ID, Err: err}
	}
	switch job.Kind {
	case export.KindEquity:
		return d.runner.Equity(ctx, job.ID)
	case export.KindCurve:
		return d.runner.Curve(ctx, job.ID)
	default:
		return export.Result{Kind: job.Kind, ID: job.ID, Err: fmt.Errorf("unknown unit kind %q", job.Kind)}
	}
}

// Discover lists the immediate subdirectories of dir, sorted by name.
// Each subdirectory is one unit.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list units in %s: %w", dir, err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

package writer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/mdexport/internal/export"
)

// Unit statuses stored in export_units.status.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

const schema = `
CREATE TABLE IF NOT EXISTS export_units (
	run_id      UUID        NOT NULL,
	kind        TEXT        NOT NULL,
	unit        TEXT        NOT NULL,
	status      TEXT        NOT NULL,
	error       TEXT        NOT NULL DEFAULT '',
	archives    INTEGER     NOT NULL,
	entries     INTEGER     NOT NULL,
	duration_ms BIGINT      NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (run_id, kind, unit)
)`

// WriterMetrics counts ledger writes.
type WriterMetrics struct {
	Inserts   int64
	Conflicts int64
	Errors    int64
}

// RunWriter writes unit results for one run.
type RunWriter struct {
	db      *pgxpool.Pool
	runID   uuid.UUID
	logger  *slog.Logger
	metrics WriterMetrics
}

// unitRow is one export_units row.
type unitRow struct {
	RunID      uuid.UUID
	Kind       string
	Unit       string
	Status     string
	Error      string
	Archives   int
	Entries    int
	DurationMs int64
	FinishedAt time.Time
}

// NewRunWriter creates a RunWriter for runID.
func NewRunWriter(db *pgxpool.Pool, runID uuid.UUID, logger *slog.Logger) *RunWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &RunWriter{
		db:     db,
		runID:  runID,
		logger: logger.With("run_id", runID),
	}
}

// RunID returns the run identifier rows are written under.
func (w *RunWriter) RunID() uuid.UUID {
	return w.runID
}

// Stats returns current metrics.
func (w *RunWriter) Stats() WriterMetrics {
	return w.metrics
}

// EnsureSchema creates the export_units table if missing.
func (w *RunWriter) EnsureSchema(ctx context.Context) error {
	if _, err := w.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create export_units: %w", err)
	}
	return nil
}

// Write records results, all stamped with finishedAt.
func (w *RunWriter) Write(ctx context.Context, results []export.Result, finishedAt time.Time) error {
	if len(results) == 0 {
		return nil
	}

	rows := make([]unitRow, len(results))
	for i, r := range results {
		rows[i] = w.transform(r, finishedAt)
	}

	start := time.Now()
	conflicts, err := w.batchInsert(ctx, rows)
	if err != nil {
		w.metrics.Errors++
		w.logger.Error("ledger insert failed", "error", err, "count", len(rows))
		return fmt.Errorf("write run ledger: %w", err)
	}

	w.metrics.Inserts += int64(len(rows) - conflicts)
	w.metrics.Conflicts += int64(conflicts)

	w.logger.Info("ledger written",
		"count", len(rows),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)
	return nil
}

// transform converts a Result to a unitRow.
func (w *RunWriter) transform(r export.Result, finishedAt time.Time) unitRow {
	row := unitRow{
		RunID:      w.runID,
		Kind:       r.Kind,
		Unit:       r.ID,
		Status:     StatusOK,
		Archives:   r.Archives,
		Entries:    r.Entries,
		DurationMs: r.Duration.Milliseconds(),
		FinishedAt: finishedAt.UTC(),
	}
	if r.Err != nil {
		row.Status = StatusFailed
		row.Error = r.Err.Error()
	}
	return row
}

// batchInsert inserts rows using pgx.Batch with ON CONFLICT DO NOTHING.
func (w *RunWriter) batchInsert(ctx context.Context, rows []unitRow) (conflicts int, err error) {
	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(`
			INSERT INTO export_units (run_id, kind, unit, status, error, archives, entries, duration_ms, finished_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (run_id, kind, unit) DO NOTHING
		`, r.RunID, r.Kind, r.Unit, r.Status, r.Error, r.Archives, r.Entries, r.DurationMs, r.FinishedAt)
	}

	results := w.db.SendBatch(ctx, batch)
	defer results.Close()

	for range rows {
		ct, err := results.Exec()
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	return conflicts, nil
}

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rickgao/mdexport/internal/archive"
	"github.com/rickgao/mdexport/internal/calendar"
	"github.com/rickgao/mdexport/internal/metrics"
	"github.com/rickgao/mdexport/internal/model"
)

// unit tracks the archives of one unit of work until they are published.
type unit struct {
	outputDir string
	id        string
	writers   []*archive.Writer
	families  []string
}

func newUnit(outputDir, id string) *unit {
	return &unit{outputDir: outputDir, id: id}
}

func (u *unit) create(family string) (*archive.Writer, error) {
	w, err := archive.Create(filepath.Join(u.outputDir, family, u.id+".zip"))
	if err != nil {
		return nil, err
	}
	u.writers = append(u.writers, w)
	u.families = append(u.families, family)
	return w, nil
}

// series writes the present-day record, then one record per day in order.
func (u *unit) series(ctx context.Context, family string, today time.Time, days []calendar.Day, build func(time.Time) (model.Record, error)) error {
	w, err := u.create(family)
	if err != nil {
		return err
	}

	rec, err := build(today)
	if err != nil {
		return fmt.Errorf("%s %s: %w", family, archive.EntryName(u.id, nil), err)
	}
	if err := w.WriteJSON(archive.EntryName(u.id, nil), rec); err != nil {
		return err
	}

	for i := range days {
		if err := ctx.Err(); err != nil {
			return err
		}
		day := days[i]
		name := archive.EntryName(u.id, &day)

		rec, err := build(day.Time())
		if err != nil {
			return fmt.Errorf("%s %s: %w", family, name, err)
		}
		rec.SetDate(day)
		if err := w.WriteJSON(name, rec); err != nil {
			return err
		}
	}
	return nil
}

// single writes an archive holding only the present-day record.
func (u *unit) single(family string, rec any) error {
	w, err := u.create(family)
	if err != nil {
		return err
	}
	return w.WriteJSON(archive.EntryName(u.id, nil), rec)
}

// commit publishes every archive and fills in res. A failed publish
// withdraws the archives already published for this unit.
func (u *unit) commit(m *metrics.Metrics, res *Result) error {
	for i, w := range u.writers {
		if err := w.Commit(); err != nil {
			for _, done := range u.writers[:i] {
				os.Remove(done.Path())
			}
			return fmt.Errorf("%s: %w", u.families[i], err)
		}
	}

	for i, w := range u.writers {
		res.Archives++
		res.Entries += w.Entries()
		m.AddEntries(u.families[i], w.Entries())
	}
	return nil
}

// abort discards every archive not yet published.
func (u *unit) abort() {
	for _, w := range u.writers {
		w.Abort()
	}
}

package archive

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	"github.com/rickgao/mdexport/internal/calendar"
)

// EntryTime is stamped on every entry. It is the earliest time zip can encode.
var EntryTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// EntryName returns "<id>.json" for the present-day entry (day == nil) and
// "<id>.<yyyy>.<mm>.<dd>.json" for historical entries.
func EntryName(id string, day *calendar.Day) string {
	if day == nil {
		return id + ".json"
	}
	return id + "." + day.Suffix() + ".json"
}

// Writer builds one archive.
type Writer struct {
	path    string
	file    *os.File
	zw      *zip.Writer
	entries int
	done    bool
}

// Create starts an archive that will be published at path.
func Create(path string) (*Writer, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create temp archive: %w", err)
	}

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	return &Writer{path: path, file: f, zw: zw}, nil
}

// Path returns the final archive path.
func (w *Writer) Path() string {
	return w.path
}

// Entries returns the number of entries written so far.
func (w *Writer) Entries() int {
	return w.entries
}

// WriteJSON encodes v as a deflated entry named name.
func (w *Writer) WriteJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	hdr := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: EntryTime,
	}
	entry, err := w.zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	if _, err := entry.Write(data); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}

	w.entries++
	return nil
}

// Commit finishes the archive and moves it to its final path.
func (w *Writer) Commit() error {
	if w.done {
		return fmt.Errorf("archive %s already closed", w.path)
	}
	w.done = true

	tmp := w.file.Name()
	if err := w.zw.Close(); err != nil {
		w.file.Close()
		os.Remove(tmp)
		return fmt.Errorf("finish zip: %w", err)
	}
	if err := w.file.Sync(); err != nil {
		w.file.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync archive: %w", err)
	}
	if err := w.file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close archive: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("chmod archive: %w", err)
	}
	if err := os.Rename(tmp, w.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("publish archive: %w", err)
	}
	return nil
}

// Abort discards the archive. It is a no-op after Commit.
func (w *Writer) Abort() {
	if w.done {
		return
	}
	w.done = true
	w.zw.Close()
	w.file.Close()
	os.Remove(w.file.Name())
}

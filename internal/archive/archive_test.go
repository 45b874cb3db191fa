package archive

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/rickgao/mdexport/internal/calendar"
)

func TestEntryName(t *testing.T) {
	if got := EntryName("SX5E", nil); got != "SX5E.json" {
		t.Errorf("EntryName(nil) = %q, want SX5E.json", got)
	}
	day := &calendar.Day{Year: 2017, Month: 8, Day: 1}
	if got := EntryName("SX5E", day); got != "SX5E.2017.08.01.json" {
		t.Errorf("EntryName(day) = %q, want SX5E.2017.08.01.json", got)
	}
}

func TestWriter_Commit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "equities", "SX5E.zip")

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := w.WriteJSON("SX5E.json", map[string]any{"name": "SX5E"}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if err := w.WriteJSON("SX5E.2017.08.01.json", map[string]any{"name": "SX5E", "n": 1}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if w.Entries() != 2 {
		t.Errorf("Entries() = %d, want 2", w.Entries())
	}
	if err := w.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	if len(r.File) != 2 {
		t.Fatalf("archive has %d entries, want 2", len(r.File))
	}
	if r.File[0].Name != "SX5E.json" || r.File[1].Name != "SX5E.2017.08.01.json" {
		t.Errorf("entry names = %q, %q", r.File[0].Name, r.File[1].Name)
	}

	rc, err := r.File[0].Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil || decoded["name"] != "SX5E" {
		t.Errorf("entry content = %s, err %v", data, err)
	}

	assertNoTemp(t, filepath.Dir(path))
}

func TestWriter_Abort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "SX5E.zip")

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := w.WriteJSON("SX5E.json", 1); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	w.Abort()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("archive exists after Abort(), stat err = %v", err)
	}
	assertNoTemp(t, dir)

	// Abort after Commit must not remove the published archive.
	w, _ = Create(path)
	w.WriteJSON("SX5E.json", 1)
	if err := w.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	w.Abort()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("archive missing after Commit()+Abort(): %v", err)
	}
}

func TestWriter_Reproducible(t *testing.T) {
	dir := t.TempDir()

	build := func(name string) []byte {
		path := filepath.Join(dir, name)
		w, err := Create(path)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		for i := 0; i < 3; i++ {
			w.WriteJSON(EntryName("X", &calendar.Day{Year: 2018, Month: 1, Day: i + 1}), map[string]int{"i": i})
		}
		if err := w.Commit(); err != nil {
			t.Fatalf("Commit() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		return data
	}

	if !bytes.Equal(build("a.zip"), build("b.zip")) {
		t.Error("identical archives differ byte-wise")
	}
}

func assertNoTemp(t *testing.T, dir string) {
	t.Helper()
	matches, _ := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}

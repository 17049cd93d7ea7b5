package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// docFromLines builds an in-memory document for tests.
func docFromLines(t *testing.T, lines ...string) *Document {
	t.Helper()
	d, err := readDocument(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("readDocument: %v", err)
	}
	return d
}

func docLines(d *Document) []string {
	lines := make([]string, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		lines = append(lines, d.Row(i).Text())
	}
	return lines
}

func TestReadDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input has zero rows", "", []string{}},
		{"single line", "hello", []string{"hello"}},
		{"trailing newline", "hello\n", []string{"hello"}},
		{"two lines", "hello\nworld", []string{"hello", "world"}},
		{"crlf stripped", "hello\r\nworld\r\n", []string{"hello", "world"}},
		{"blank line kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := readDocument(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("readDocument: %v", err)
			}
			got := docLines(d)
			if len(got) != len(tt.want) {
				t.Fatalf("rows = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEmptyDocumentDistinctFromOneEmptyRow(t *testing.T) {
	empty := NewDocument()
	if !empty.IsEmpty() || empty.Len() != 0 {
		t.Errorf("new document: IsEmpty=%v Len=%d, want true 0", empty.IsEmpty(), empty.Len())
	}

	oneBlank, err := readDocument(strings.NewReader("\n"))
	if err != nil {
		t.Fatal(err)
	}
	if oneBlank.IsEmpty() || oneBlank.Len() != 1 {
		t.Errorf("one blank row: IsEmpty=%v Len=%d, want false 1", oneBlank.IsEmpty(), oneBlank.Len())
	}
}

func TestOpenDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	if err := os.WriteFile(path, []byte("package main\n\nfunc main() {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := OpenDocument(path)
	if err != nil {
		t.Fatalf("OpenDocument: %v", err)
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
	if d.Filename != path {
		t.Errorf("Filename = %q, want %q", d.Filename, path)
	}
	if d.IsDirty() {
		t.Error("freshly opened document is dirty")
	}
	if d.FileType() != "Go" {
		t.Errorf("FileType() = %q, want Go", d.FileType())
	}
}

func TestOpenDocumentMissingFile(t *testing.T) {
	_, err := OpenDocument(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	d := docFromLines(t, "hello", "world")
	d.SetFilename(path)
	if err := d.Insert(Position{X: 5, Y: 0}, '!'); err != nil {
		t.Fatal(err)
	}
	if !d.IsDirty() {
		t.Fatal("document not dirty after insert")
	}

	if err := d.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if d.IsDirty() {
		t.Error("document still dirty after save")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "hello!\nworld" {
		t.Errorf("saved %q, want %q", got, "hello!\nworld")
	}
}

func TestSaveWithoutFilename(t *testing.T) {
	d := docFromLines(t, "hello")
	if err := d.Save(); err == nil {
		t.Fatal("expected error saving without filename")
	}
}

func TestSaveFailureLeavesDirty(t *testing.T) {
	d := docFromLines(t, "hello")
	d.SetFilename(filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt"))
	if err := d.Insert(Position{X: 0, Y: 0}, 'x'); err != nil {
		t.Fatal(err)
	}
	if err := d.Save(); err == nil {
		t.Fatal("expected save error")
	}
	if !d.IsDirty() {
		t.Error("dirty flag cleared by failed save")
	}
}

func TestInsert(t *testing.T) {
	t.Run("newline splits row", func(t *testing.T) {
		d := docFromLines(t, "hello", "world")
		if err := d.Insert(Position{X: 5, Y: 0}, '\n'); err != nil {
			t.Fatal(err)
		}
		want := []string{"hello", "", "world"}
		got := docLines(d)
		if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
			t.Errorf("rows = %q, want %q", got, want)
		}
	})

	t.Run("newline mid row", func(t *testing.T) {
		d := docFromLines(t, "hello")
		if err := d.Insert(Position{X: 2, Y: 0}, '\n'); err != nil {
			t.Fatal(err)
		}
		got := docLines(d)
		if len(got) != 2 || got[0] != "he" || got[1] != "llo" {
			t.Errorf("rows = %q, want [he llo]", got)
		}
	})

	t.Run("newline at sentinel appends empty row", func(t *testing.T) {
		d := docFromLines(t, "hello")
		if err := d.Insert(Position{X: 0, Y: 1}, '\n'); err != nil {
			t.Fatal(err)
		}
		got := docLines(d)
		if len(got) != 2 || got[1] != "" {
			t.Errorf("rows = %q, want [hello \"\"]", got)
		}
	})

	t.Run("char at sentinel appends new row", func(t *testing.T) {
		d := docFromLines(t, "hello")
		if err := d.Insert(Position{X: 0, Y: 1}, 'x'); err != nil {
			t.Fatal(err)
		}
		got := docLines(d)
		if len(got) != 2 || got[1] != "x" {
			t.Errorf("rows = %q, want [hello x]", got)
		}
	})

	t.Run("char in empty document", func(t *testing.T) {
		d := NewDocument()
		if err := d.Insert(Position{X: 0, Y: 0}, 'x'); err != nil {
			t.Fatal(err)
		}
		if d.Len() != 1 || d.Row(0).Text() != "x" {
			t.Errorf("rows = %q, want [x]", docLines(d))
		}
	})

	t.Run("past sentinel is out of bounds", func(t *testing.T) {
		d := docFromLines(t, "hello")
		err := d.Insert(Position{X: 0, Y: 2}, 'x')
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("err = %v, want ErrOutOfBounds", err)
		}
		if d.IsDirty() {
			t.Error("failed insert marked document dirty")
		}
	})

	t.Run("sets dirty", func(t *testing.T) {
		d := docFromLines(t, "hello")
		if d.IsDirty() {
			t.Fatal("dirty before insert")
		}
		if err := d.Insert(Position{X: 0, Y: 0}, 'x'); err != nil {
			t.Fatal(err)
		}
		if !d.IsDirty() {
			t.Error("not dirty after insert")
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("char in row", func(t *testing.T) {
		d := docFromLines(t, "hello")
		d.Delete(Position{X: 1, Y: 0})
		if got := d.Row(0).Text(); got != "hllo" {
			t.Errorf("row = %q, want hllo", got)
		}
		if !d.IsDirty() {
			t.Error("not dirty after delete")
		}
	})

	t.Run("end of row merges next row", func(t *testing.T) {
		d := docFromLines(t, "hello", "world")
		d.Delete(Position{X: 5, Y: 0})
		got := docLines(d)
		if len(got) != 1 || got[0] != "helloworld" {
			t.Errorf("rows = %q, want [helloworld]", got)
		}
	})

	t.Run("end of last row is no-op", func(t *testing.T) {
		d := docFromLines(t, "hello")
		d.Delete(Position{X: 5, Y: 0})
		if d.IsDirty() {
			t.Error("no-op delete marked document dirty")
		}
		if got := d.Row(0).Text(); got != "hello" {
			t.Errorf("row = %q, want hello", got)
		}
	})

	t.Run("past last row is no-op", func(t *testing.T) {
		d := docFromLines(t, "hello")
		d.Delete(Position{X: 0, Y: 5})
		if d.IsDirty() || d.Len() != 1 {
			t.Errorf("delete past end changed document: dirty=%v len=%d", d.IsDirty(), d.Len())
		}
	})
}

func TestInsertDeleteInverse(t *testing.T) {
	// Inserting a character and deleting at the same position restores the
	// row for any in-row position.
	lines := []string{"hello", "wörld", "end"}
	for y, line := range lines {
		for x := 0; x <= len([]rune(line)); x++ {
			d := docFromLines(t, lines...)
			before := d.Row(y).Text()
			if err := d.Insert(Position{X: x, Y: y}, 'x'); err != nil {
				t.Fatalf("Insert at (%d,%d): %v", x, y, err)
			}
			d.Delete(Position{X: x, Y: y})
			if got := d.Row(y).Text(); got != before {
				t.Errorf("insert+delete at (%d,%d) = %q, want %q", x, y, got, before)
			}
		}
	}
}

func TestFileType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"main.go", "Go"},
		{"lib.rs", "Rust"},
		{"app.c", "C"},
		{"script.py", "Python"},
		{"run.sh", "Shell"},
		{"notes.txt", "No Type"},
		{"", "No Type"},
	}

	for _, tt := range tests {
		d := NewDocument()
		d.SetFilename(tt.filename)
		if got := d.FileType(); got != tt.want {
			t.Errorf("FileType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

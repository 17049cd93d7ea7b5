package main

// The document is the ordered sequence of rows backing the editor: file
// identity, the dirty flag, load/save, and all buffer mutations. A document
// with zero rows is valid and is not the same thing as a document with one
// empty row.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Position is a logical (column, row) location in a document. Columns count
// characters, not bytes. Y == Len() is the "past the last row" sentinel used
// for insertion at the end of the document.
type Position struct {
	X int
	Y int
}

// ErrOutOfBounds reports a mutation at a row index the document does not
// have. Reaching it means the caller's cursor tracking is broken; the row
// list is left untouched.
var ErrOutOfBounds = errors.New("position is outside the document")

// Document holds the rows of one open file.
type Document struct {
	rows     []*Row
	Filename string
	dirty    bool
	fileType *FileType
}

// NewDocument creates an empty, unnamed document.
func NewDocument() *Document {
	return &Document{fileType: getFileType("")}
}

// OpenDocument reads a file from disk. On failure no document is returned and
// nothing is modified.
func OpenDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := readDocument(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d.Filename = path
	d.fileType = getFileType(path)
	return d, nil
}

// readDocument splits a stream into rows, one per newline-delimited line with
// the line ending stripped. An empty stream yields zero rows.
func readDocument(r io.Reader) (*Document, error) {
	d := NewDocument()
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if err == io.EOF && line == "" {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		d.rows = append(d.rows, newRow(line))

		if err == io.EOF {
			break
		}
	}
	return d, nil
}

// Save writes the rows back to the document's file, joined by newlines, and
// clears the dirty flag on success. A failed write leaves the flag set.
func (d *Document) Save() error {
	if d.Filename == "" {
		return fmt.Errorf("save: no filename")
	}

	f, err := os.Create(d.Filename)
	if err != nil {
		return fmt.Errorf("save %s: %w", d.Filename, err)
	}

	w := bufio.NewWriter(f)
	for i, row := range d.rows {
		if i > 0 {
			if _, err := w.WriteString("\n"); err != nil {
				f.Close()
				return fmt.Errorf("save %s: %w", d.Filename, err)
			}
		}
		if _, err := w.WriteString(row.Text()); err != nil {
			f.Close()
			return fmt.Errorf("save %s: %w", d.Filename, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", d.Filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", d.Filename, err)
	}

	d.dirty = false
	return nil
}

// Insert places ch at the given position. A newline splits the row there; any
// other character at the sentinel row appends a new row holding just that
// character. Rows past the sentinel are a caller bug.
func (d *Document) Insert(at Position, ch rune) error {
	if at.Y < 0 || at.Y > len(d.rows) {
		return fmt.Errorf("insert at row %d of %d: %w", at.Y, len(d.rows), ErrOutOfBounds)
	}

	switch {
	case ch == '\n':
		d.insertNewline(at)
	case at.Y == len(d.rows):
		d.rows = append(d.rows, newRow(string(ch)))
	default:
		d.rows[at.Y].InsertChar(at.X, ch)
	}
	d.dirty = true
	return nil
}

// insertNewline splits the row at the position, placing the remainder on a
// new row directly below. At the sentinel row it appends an empty row.
func (d *Document) insertNewline(at Position) {
	if at.Y == len(d.rows) {
		d.rows = append(d.rows, newRow(""))
		return
	}

	rest := d.rows[at.Y].Split(at.X)
	d.rows = append(d.rows, nil)
	copy(d.rows[at.Y+2:], d.rows[at.Y+1:])
	d.rows[at.Y+1] = rest
}

// Delete removes the character at the position. Past the last row it is a
// no-op. At the end of a row it joins the next row up, modelling
// delete-at-end-of-line. The dirty flag is set only when something was
// actually removed.
func (d *Document) Delete(at Position) {
	if at.Y < 0 || at.Y >= len(d.rows) {
		return
	}

	row := d.rows[at.Y]
	if at.X >= row.Len() {
		if at.Y+1 >= len(d.rows) {
			return
		}
		row.Merge(d.rows[at.Y+1])
		d.rows = append(d.rows[:at.Y+1], d.rows[at.Y+2:]...)
		d.dirty = true
		return
	}

	row.DeleteChar(at.X)
	d.dirty = true
}

// Row returns the row at index, or nil when out of range. Read-only access
// for display and measurement.
func (d *Document) Row(index int) *Row {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index]
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return len(d.rows)
}

// IsEmpty reports whether the document has zero rows.
func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

// IsDirty reports whether the document has unsaved mutations.
func (d *Document) IsDirty() bool {
	return d.dirty
}

// FileType returns the display name of the document's file type.
func (d *Document) FileType() string {
	return d.fileType.Name
}

// SetFilename renames the document and re-derives its file type.
func (d *Document) SetFilename(name string) {
	d.Filename = name
	d.fileType = getFileType(name)
	// The rule set changed, so every cached span is suspect.
	for _, row := range d.rows {
		row.hlStale = true
	}
}

// Highlight recomputes highlight spans for rows [0, until), or for the whole
// document when until is negative or past the end. The search overlay word is
// baked into the spans; rows are re-lexed only when their content, incoming
// continuation state, or overlay word changed since the last pass.
func (d *Document) Highlight(word string, until int) {
	if until < 0 || until > len(d.rows) {
		until = len(d.rows)
	}

	opts := d.fileType.Highlight
	state := lexNormal
	for i := 0; i < until; i++ {
		row := d.rows[i]
		if row.hlStale || row.hlIn != state || row.hlWord != word {
			row.lex(opts, state, word)
		}
		state = row.hlOut
	}
}

package main

// A single line of document content. Rows store runes rather than bytes so
// column arithmetic never splits a multi-byte character, and keep two derived
// caches: the render cells used for drawing (tabs expanded, wide runes padded)
// and the highlight spans computed by the lexer.

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// renderCell is one terminal column of a row's rendered form. A zero rune
// marks the trailing pad column of a double-width rune; src points back at the
// content column the cell was produced from, which is how highlight categories
// follow tab expansion.
type renderCell struct {
	r   rune
	src int
}

// Row is one line of text plus its derived render and highlight state.
type Row struct {
	content     []rune
	render      []renderCell
	renderStale bool

	// Highlight cache. spans is the last lexer output; hlIn/hlOut are the
	// continuation states the row was lexed with and left behind; hlWord is
	// the search overlay word baked into spans. The document driver re-lexes
	// whenever any of these no longer match.
	spans   []Span
	hlStale bool
	hlIn    lexState
	hlOut   lexState
	hlWord  string
}

// newRow creates a row from raw text.
func newRow(text string) *Row {
	return &Row{
		content:     []rune(text),
		renderStale: true,
		hlStale:     true,
	}
}

// Len returns the number of characters in the row. This is the unit cursor
// clamping works in; it is not the rendered width.
func (r *Row) Len() int {
	return len(r.content)
}

// Text returns the raw character content, used for save and copy.
func (r *Row) Text() string {
	return string(r.content)
}

// invalidate marks both derived caches stale after a content mutation.
func (r *Row) invalidate() {
	r.renderStale = true
	r.hlStale = true
}

// InsertChar inserts ch before character index col. Out-of-range columns are
// clamped to the row boundaries.
func (r *Row) InsertChar(col int, ch rune) {
	if col < 0 {
		col = 0
	}
	if col > len(r.content) {
		col = len(r.content)
	}
	r.content = append(r.content, 0)
	copy(r.content[col+1:], r.content[col:])
	r.content[col] = ch
	r.invalidate()
}

// DeleteChar removes the character at col. Out-of-range columns are a no-op.
func (r *Row) DeleteChar(col int) {
	if col < 0 || col >= len(r.content) {
		return
	}
	r.content = append(r.content[:col], r.content[col+1:]...)
	r.invalidate()
}

// Split truncates the row at col and returns a new row holding the remainder.
// Used when a newline is inserted mid-row.
func (r *Row) Split(col int) *Row {
	if col < 0 {
		col = 0
	}
	if col > len(r.content) {
		col = len(r.content)
	}
	rest := newRow(string(r.content[col:]))
	r.content = r.content[:col]
	r.invalidate()
	return rest
}

// Merge appends another row's content to this one. Used when a line boundary
// is deleted.
func (r *Row) Merge(other *Row) {
	r.content = append(r.content, other.content...)
	r.invalidate()
}

// renderCells rebuilds the render cache if it is stale and returns it.
func (r *Row) renderCells() []renderCell {
	if !r.renderStale {
		return r.render
	}

	cells := make([]renderCell, 0, len(r.content))
	for ci, ch := range r.content {
		switch {
		case ch == '\t':
			// Expand to at least one space, up to the next tab stop.
			cells = append(cells, renderCell{r: ' ', src: ci})
			for len(cells)%Config.TabStop != 0 {
				cells = append(cells, renderCell{r: ' ', src: ci})
			}
		case !unicode.IsPrint(ch):
			cells = append(cells, renderCell{r: '?', src: ci})
		default:
			cells = append(cells, renderCell{r: ch, src: ci})
			if runewidth.RuneWidth(ch) > 1 {
				cells = append(cells, renderCell{r: 0, src: ci})
			}
		}
	}
	r.render = cells
	r.renderStale = false
	return r.render
}

// RenderWidth returns the width of the row in terminal columns.
func (r *Row) RenderWidth() int {
	return len(r.renderCells())
}

// RenderColumn maps a content column to its render column, accounting for tab
// stops and double-width runes. A cx at or past the end of the row maps to the
// column just past the rendered content.
func (r *Row) RenderColumn(cx int) int {
	rx := 0
	for i, ch := range r.content {
		if i >= cx {
			break
		}
		switch {
		case ch == '\t':
			rx += Config.TabStop - (rx % Config.TabStop)
		case !unicode.IsPrint(ch):
			rx++
		default:
			rx += runewidth.RuneWidth(ch)
		}
	}
	return rx
}

// Render returns the visible slice of the rendered row between render columns
// start and end (end exclusive). Out-of-range bounds are clamped, never an
// error. A double-width rune cut in half at either edge renders as a space.
func (r *Row) Render(start, end int) string {
	cells := r.renderCells()
	if start < 0 {
		start = 0
	}
	if end > len(cells) {
		end = len(cells)
	}
	if start >= end {
		return ""
	}

	out := make([]rune, 0, end-start)
	for i := start; i < end; i++ {
		c := cells[i]
		if c.r == 0 {
			// Pad column: only visible as a space when its wide rune was
			// clipped off the left edge.
			if i == start {
				out = append(out, ' ')
			}
			continue
		}
		if runewidth.RuneWidth(c.r) > 1 && i+1 >= end {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.r)
	}
	return string(out)
}

// CategoryAt returns the highlight category covering the given content column.
// Columns outside every span carry the normal category.
func (r *Row) CategoryAt(col int) Category {
	for _, s := range r.spans {
		if col >= s.Start && col < s.End {
			return s.Cat
		}
		if s.Start > col {
			break
		}
	}
	return CategoryNormal
}

package main

import "testing"

func TestRowInsertChar(t *testing.T) {
	tests := []struct {
		name string
		text string
		col  int
		ch   rune
		want string
	}{
		{"middle", "hello", 2, 'x', "hexllo"},
		{"start", "hello", 0, 'x', "xhello"},
		{"end", "hello", 5, 'x', "hellox"},
		{"past end clamps", "hello", 99, 'x', "hellox"},
		{"negative clamps", "hello", -3, 'x', "xhello"},
		{"empty row", "", 0, 'x', "x"},
		{"multibyte content", "héllo", 2, 'x', "héxllo"},
		{"multibyte char", "abc", 1, 'é', "aébc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := newRow(tt.text)
			row.InsertChar(tt.col, tt.ch)
			if got := row.Text(); got != tt.want {
				t.Errorf("InsertChar(%d, %q) = %q, want %q", tt.col, tt.ch, got, tt.want)
			}
		})
	}
}

func TestRowDeleteChar(t *testing.T) {
	tests := []struct {
		name string
		text string
		col  int
		want string
	}{
		{"middle", "hello", 1, "hllo"},
		{"start", "hello", 0, "ello"},
		{"last", "hello", 4, "hell"},
		{"at length is no-op", "hello", 5, "hello"},
		{"past end is no-op", "hello", 99, "hello"},
		{"negative is no-op", "hello", -1, "hello"},
		{"multibyte", "héllo", 1, "hllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := newRow(tt.text)
			row.DeleteChar(tt.col)
			if got := row.Text(); got != tt.want {
				t.Errorf("DeleteChar(%d) = %q, want %q", tt.col, got, tt.want)
			}
		})
	}
}

func TestRowSplitMerge(t *testing.T) {
	row := newRow("hello world")
	rest := row.Split(5)
	if row.Text() != "hello" || rest.Text() != " world" {
		t.Fatalf("Split(5) = %q + %q, want %q + %q", row.Text(), rest.Text(), "hello", " world")
	}

	row.Merge(rest)
	if row.Text() != "hello world" {
		t.Errorf("Merge = %q, want %q", row.Text(), "hello world")
	}

	// Split at the boundaries.
	row = newRow("abc")
	rest = row.Split(0)
	if row.Text() != "" || rest.Text() != "abc" {
		t.Errorf("Split(0) = %q + %q", row.Text(), rest.Text())
	}
	row = newRow("abc")
	rest = row.Split(3)
	if row.Text() != "abc" || rest.Text() != "" {
		t.Errorf("Split(3) = %q + %q", row.Text(), rest.Text())
	}
	row = newRow("abc")
	rest = row.Split(99)
	if row.Text() != "abc" || rest.Text() != "" {
		t.Errorf("Split(99) = %q + %q", row.Text(), rest.Text())
	}
}

func TestRowLenCountsRunes(t *testing.T) {
	row := newRow("héllo 世界")
	if got := row.Len(); got != 8 {
		t.Errorf("Len() = %d, want 8", got)
	}
}

func TestRowRenderExpandsTabs(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		want       string
	}{
		{"tab to stop", "a\tb", 0, 10, "a   b"},
		{"tab at stop boundary", "abcd\te", 0, 10, "abcd    e"},
		{"only tab", "\t", 0, 10, "    "},
		{"slice middle", "a\tb", 2, 5, "  b"},
		{"clamped start", "abc", -4, 2, "ab"},
		{"clamped end", "abc", 1, 99, "bc"},
		{"inverted range", "abc", 3, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := newRow(tt.text)
			if got := row.Render(tt.start, tt.end); got != tt.want {
				t.Errorf("Render(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestRowRenderWideRunes(t *testing.T) {
	row := newRow("世a")
	if got := row.RenderWidth(); got != 3 {
		t.Fatalf("RenderWidth() = %d, want 3", got)
	}
	if got := row.Render(0, 3); got != "世a" {
		t.Errorf("Render(0, 3) = %q, want %q", got, "世a")
	}
	// A wide rune clipped at either edge renders as a space.
	if got := row.Render(0, 1); got != " " {
		t.Errorf("Render(0, 1) = %q, want %q", got, " ")
	}
	if got := row.Render(1, 3); got != " a" {
		t.Errorf("Render(1, 3) = %q, want %q", got, " a")
	}
}

func TestRowRenderNonPrintable(t *testing.T) {
	row := newRow("a\x01b")
	if got := row.Render(0, 10); got != "a?b" {
		t.Errorf("Render = %q, want %q", got, "a?b")
	}
}

func TestRowRenderColumn(t *testing.T) {
	tests := []struct {
		name string
		text string
		cx   int
		want int
	}{
		{"plain", "abc", 2, 2},
		{"before tab", "a\tb", 1, 1},
		{"after tab", "a\tb", 2, 4},
		{"past tab", "a\tb", 3, 5},
		{"wide rune", "世a", 1, 2},
		{"past end", "ab", 99, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := newRow(tt.text)
			if got := row.RenderColumn(tt.cx); got != tt.want {
				t.Errorf("RenderColumn(%d) = %d, want %d", tt.cx, got, tt.want)
			}
		})
	}
}

func TestRowMutationInvalidatesRender(t *testing.T) {
	row := newRow("ab")
	if got := row.Render(0, 10); got != "ab" {
		t.Fatalf("Render = %q", got)
	}
	row.InsertChar(1, '\t')
	if got := row.Render(0, 10); got != "a   b" {
		t.Errorf("Render after insert = %q, want %q", got, "a   b")
	}
}

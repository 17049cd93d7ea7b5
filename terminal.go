package main

// Thin wrapper around termbox. The editor core only talks to this surface:
// raw mode, size, blocking event reads, cell drawing, cursor placement, and
// flushing. Nothing outside this file touches the terminal directly, the two
// aux screens (-colors, -info) aside.

import (
	"fmt"

	"github.com/nsf/termbox-go"
)

// Terminal owns the raw-mode terminal for the lifetime of the editor.
type Terminal struct{}

// NewTerminal puts the terminal into raw mode with 256-color output.
func NewTerminal() (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return &Terminal{}, nil
}

// Close restores the terminal to its previous mode.
func (t *Terminal) Close() {
	termbox.Close()
}

// Size returns the text viewport dimensions: the full terminal minus the two
// chrome rows (status bar and message bar).
func (t *Terminal) Size() (cols, rows int) {
	w, h := termbox.Size()
	h -= 2
	if h < 0 {
		h = 0
	}
	return w, h
}

// ReadEvent blocks until the next input event.
func (t *Terminal) ReadEvent() termbox.Event {
	return termbox.PollEvent()
}

// Clear wipes the back buffer to the default colors.
func (t *Terminal) Clear() {
	fg, bg := GetThemeColor(ColorDefault)
	termbox.Clear(fg, bg)
}

// SetCell draws one rune at a screen coordinate.
func (t *Terminal) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

// SetCursor places the hardware cursor at a screen coordinate.
func (t *Terminal) SetCursor(p Position) {
	termbox.SetCursor(p.X, p.Y)
}

// HideCursor removes the hardware cursor until the next SetCursor.
func (t *Terminal) HideCursor() {
	termbox.HideCursor()
}

// Flush pushes the back buffer to the screen.
func (t *Terminal) Flush() error {
	return termbox.Flush()
}

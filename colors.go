package main

// Utility to preview the theme. This is useful for debugging color choices
// and ensuring the terminal supports the expected color range.

import (
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
)

// themePreview lists every theme entry with a label, in display order.
var themePreview = []struct {
	label string
	name  ColorName
}{
	{"default text", ColorDefault},
	{"number literal", ColorSourceNumber},
	{"string literal", ColorSourceString},
	{"character literal", ColorSourceCharacter},
	{"comment", ColorSourceComment},
	{"keyword", ColorSourceKeyword},
	{"type", ColorSourceType},
	{"search match", ColorSearchMatch},
	{"status bar", ColorStatusBar},
	{"empty line marker", ColorEmptyLineMarker},
	{"welcome line", ColorWelcome},
}

// PrintColors initializes termbox and draws a sample of every theme entry.
func PrintColors() {
	err := termbox.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		return
	}
	defer termbox.Close()

	termbox.SetOutputMode(termbox.Output256)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	for row, entry := range themePreview {
		fg, bg := GetThemeColor(entry.name)
		text := fmt.Sprintf(" %-20s The quick brown fox ", entry.label)
		for col, r := range text {
			termbox.SetCell(col, row, r, fg, bg)
		}
	}

	msg := "Press any key to exit..."
	for i, r := range msg {
		termbox.SetCell(i, len(themePreview)+1, r, termbox.ColorWhite, termbox.ColorDefault)
	}

	termbox.Flush()
	// Wait for any key press before closing.
	termbox.PollEvent()
}

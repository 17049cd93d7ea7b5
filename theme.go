package main

// Color palette and theme used by the editor. Maps semantic color names (like
// ColorStatusBar) to specific terminal attributes (foreground and background).

import "github.com/nsf/termbox-go"

// To see the theme in your terminal execute `revise -colors`.

// Color represents a pair of foreground and background terminal attributes.
type Color struct {
	Background termbox.Attribute
	Foreground termbox.Attribute
}

// ColorName is an enum-like type for semantic color identifiers.
type ColorName int

const (
	ColorDefault ColorName = iota // Default terminal colors.

	// Syntax categories.
	ColorSourceNumber
	ColorSourceString
	ColorSourceCharacter
	ColorSourceComment
	ColorSourceKeyword
	ColorSourceType

	ColorSearchMatch     // Highlighting for found search terms.
	ColorStatusBar       // Main status bar at the bottom.
	ColorEmptyLineMarker // The '~' marker for lines beyond EOF.
	ColorWelcome         // Centered welcome line on an empty document.
)

// Theme maps each ColorName to its actual visual attributes.
var Theme = map[ColorName]Color{
	ColorDefault: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254)},

	// Syntax
	ColorSourceNumber:    {Background: termbox.ColorDefault, Foreground: termbox.Attribute(135)},
	ColorSourceString:    {Background: termbox.ColorDefault, Foreground: termbox.Attribute(37)},
	ColorSourceCharacter: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(72)},
	ColorSourceComment:   {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorSourceKeyword:   {Background: termbox.ColorDefault, Foreground: termbox.Attribute(178)},
	ColorSourceType:      {Background: termbox.ColorDefault, Foreground: termbox.Attribute(112)},

	// UI
	ColorSearchMatch:     {Background: termbox.Attribute(166), Foreground: termbox.Attribute(1)},
	ColorStatusBar:       {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorEmptyLineMarker: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorWelcome:         {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
}

// GetThemeColor returns the foreground and background attributes for a given
// semantic name.
func GetThemeColor(name ColorName) (termbox.Attribute, termbox.Attribute) {
	if c, ok := Theme[name]; ok {
		return c.Foreground, c.Background
	}
	// Fallback to default if name is not found.
	return termbox.ColorDefault, termbox.ColorDefault
}

// categoryColor maps a highlight category to its theme entry.
func categoryColor(cat Category) (termbox.Attribute, termbox.Attribute) {
	var cn ColorName
	switch cat {
	case CategoryNumber:
		cn = ColorSourceNumber
	case CategoryString:
		cn = ColorSourceString
	case CategoryCharacter:
		cn = ColorSourceCharacter
	case CategoryComment:
		cn = ColorSourceComment
	case CategoryKeyword:
		cn = ColorSourceKeyword
	case CategoryType:
		cn = ColorSourceType
	case CategoryMatch:
		cn = ColorSearchMatch
	default:
		cn = ColorDefault
	}
	return GetThemeColor(cn)
}

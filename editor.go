package main

// Core of the application. Holds the editor state (cursor, scroll offset,
// status message, quit countdown), implements cursor movement and the
// minimal-jump scroll rule, and draws the screen: document rows, the welcome
// line, the status bar, and the message bar. The interactive prompts (save-as
// and incremental search) also live here.

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/nsf/termbox-go"
)

// StatusMessage is a transient notice shown in the message bar until it
// expires.
type StatusMessage struct {
	Text string
	Time time.Time
}

// PromptMode selects the per-keystroke behavior of the prompt loop. A plain
// prompt just collects text; a search prompt re-runs the search and moves the
// cursor on every keystroke.
type PromptMode int

const (
	PromptPlain PromptMode = iota
	PromptSearch
)

// moveKey identifies a cursor movement command.
type moveKey int

const (
	MoveUp moveKey = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveHome
	MoveEnd
)

// Editor is the main controller struct that holds all global state.
type Editor struct {
	term            *Terminal
	doc             *Document
	cursor          Position // Current edit point, in content coordinates.
	offset          Position // Top-left visible cell; X is a render column.
	screenCols      int      // Viewport width, refreshed on every redraw.
	screenRows      int      // Viewport height (terminal minus chrome rows).
	message         StatusMessage
	quitTimes       int  // Remaining Ctrl-Q presses before discarding changes.
	shouldQuit      bool // Set once the event loop should stop.
	highlightedWord string
	logMessages     []string // Internal debug log ring buffer.
	maxLogMessages  int
}

// NewEditor creates an editor over a document. The terminal may be nil in
// tests; only the event loop and drawing require it.
func NewEditor(term *Terminal, doc *Document) *Editor {
	e := &Editor{
		term:           term,
		doc:            doc,
		quitTimes:      Config.QuitTimes,
		maxLogMessages: 50,
	}
	if term != nil {
		e.screenCols, e.screenRows = term.Size()
	}
	e.setMessage("HELP: Ctrl-F = find | Ctrl-S = save | Ctrl-Q = quit")
	e.addLog("Editor", "Editor initialized")
	return e
}

// setMessage replaces the status message and restarts its expiry clock.
func (e *Editor) setMessage(format string, args ...any) {
	e.message = StatusMessage{Text: fmt.Sprintf(format, args...), Time: time.Now()}
}

// addLog records a debug message in the ring buffer and, when enabled,
// appends it to the log file.
func (e *Editor) addLog(group, msg string) {
	t := time.Now()
	logMsg := fmt.Sprintf("[%02d:%02d:%02d] [%s] %s", t.Hour(), t.Minute(), t.Second(), group, msg)
	e.logMessages = append(e.logMessages, logMsg)

	if len(e.logMessages) > e.maxLogMessages {
		e.logMessages = e.logMessages[len(e.logMessages)-e.maxLogMessages:]
	}

	if Config.UseLogFile {
		f, err := os.OpenFile(Config.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			f.WriteString(logMsg + "\n")
		}
	}
}

// rowLen returns the length of row y, with rows beyond the buffer counting
// as empty.
func (e *Editor) rowLen(y int) int {
	if row := e.doc.Row(y); row != nil {
		return row.Len()
	}
	return 0
}

// moveCursor applies one movement command and clamps the result to the
// document shape. Left at column 0 wraps to the end of the previous row;
// right at end of row wraps to column 0 of the next, including the sentinel
// row just past the document.
func (e *Editor) moveCursor(k moveKey) {
	x, y := e.cursor.X, e.cursor.Y
	height := e.doc.Len()
	width := e.rowLen(y)

	switch k {
	case MoveUp:
		if y > 0 {
			y--
		}
	case MoveDown:
		if y < height {
			y++
		}
	case MoveLeft:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = e.rowLen(y)
		}
	case MoveRight:
		if x < width {
			x++
		} else if y < height {
			y++
			x = 0
		}
	case MovePageUp:
		if y > e.screenRows {
			y -= e.screenRows
		} else {
			y = 0
		}
	case MovePageDown:
		if y+e.screenRows < height {
			y += e.screenRows
		} else {
			y = height
		}
	case MoveHome:
		x = 0
	case MoveEnd:
		x = width
	}

	// Vertical moves land on rows of a different length.
	if w := e.rowLen(y); x > w {
		x = w
	}
	e.cursor = Position{X: x, Y: y}
}

// renderX returns the cursor's render column, which is where it actually sits
// on screen once tabs and wide runes are accounted for.
func (e *Editor) renderX() int {
	if row := e.doc.Row(e.cursor.Y); row != nil {
		return row.RenderColumn(e.cursor.X)
	}
	return 0
}

// scroll brings the cursor back into the viewport with the smallest possible
// offset change: snap up/left when the cursor moved before the offset,
// advance down/right by exactly the overshoot otherwise.
func (e *Editor) scroll() {
	rx := e.renderX()

	if e.cursor.Y < e.offset.Y {
		e.offset.Y = e.cursor.Y
	} else if e.screenRows > 0 && e.cursor.Y >= e.offset.Y+e.screenRows {
		e.offset.Y = e.cursor.Y - e.screenRows + 1
	}

	if rx < e.offset.X {
		e.offset.X = rx
	} else if e.screenCols > 0 && rx >= e.offset.X+e.screenCols {
		e.offset.X = rx - e.screenCols + 1
	}
}

// refreshScreen redraws everything: rows, status bar, message bar, cursor.
func (e *Editor) refreshScreen() {
	e.screenCols, e.screenRows = e.term.Size()
	e.term.HideCursor()
	e.term.Clear()

	if e.shouldQuit {
		e.term.Flush()
		return
	}

	// Only the visible range needs fresh highlight spans.
	e.doc.Highlight(e.highlightedWord, e.offset.Y+e.screenRows)

	e.drawRows()
	e.drawStatusBar()
	e.drawMessageBar()
	e.term.SetCursor(Position{
		X: e.renderX() - e.offset.X,
		Y: e.cursor.Y - e.offset.Y,
	})
	if err := e.term.Flush(); err != nil {
		e.addLog("Term", err.Error())
	}
}

// drawRows draws the visible slice of the document, a '~' marker for rows
// past the end, and the welcome line when the document is empty.
func (e *Editor) drawRows() {
	for sy := 0; sy < e.screenRows; sy++ {
		fy := e.offset.Y + sy
		if row := e.doc.Row(fy); row != nil {
			e.drawRow(row, sy)
		} else if e.doc.IsEmpty() && sy == e.screenRows/3 {
			e.drawWelcome(sy)
		} else {
			fg, bg := GetThemeColor(ColorEmptyLineMarker)
			e.term.SetCell(0, sy, '~', fg, bg)
		}
	}
}

// drawRow draws one document row at screen row sy, colored by its highlight
// spans. The horizontal offset is in render columns, so tab stops stay
// aligned while scrolling.
func (e *Editor) drawRow(row *Row, sy int) {
	cells := row.renderCells()
	start := e.offset.X
	end := start + e.screenCols
	if end > len(cells) {
		end = len(cells)
	}

	for i := start; i < end; i++ {
		c := cells[i]
		if c.r == 0 {
			// Pad column of a wide rune. Visible only when the rune itself
			// was clipped off the left edge.
			if i == start {
				fg, bg := GetThemeColor(ColorDefault)
				e.term.SetCell(0, sy, ' ', fg, bg)
			}
			continue
		}
		fg, bg := categoryColor(row.CategoryAt(c.src))
		e.term.SetCell(i-start, sy, c.r, fg, bg)
	}
}

// drawWelcome centers the name and version on an otherwise empty screen.
func (e *Editor) drawWelcome(sy int) {
	msg := fmt.Sprintf("Revise | v%s", Version)
	padding := (e.screenCols - len(msg)) / 2
	if padding < 1 {
		padding = 1
	}
	line := "~" + strings.Repeat(" ", padding-1) + msg
	fg, bg := GetThemeColor(ColorWelcome)
	for i, ch := range line {
		if i >= e.screenCols {
			break
		}
		e.term.SetCell(i, sy, ch, fg, bg)
	}
}

// drawStatusBar draws the inverted bar with the filename, line count, dirty
// indicator, file type, and cursor position.
func (e *Editor) drawStatusBar() {
	fg, bg := GetThemeColor(ColorStatusBar)

	filename := "[No Name]"
	if e.doc.Filename != "" {
		filename = e.doc.Filename
		if r := []rune(filename); len(r) > 20 {
			filename = string(r[:20])
		}
	}
	modified := ""
	if e.doc.IsDirty() {
		modified = " (modified)"
	}

	left := fmt.Sprintf("%s - %d lines%s", filename, e.doc.Len(), modified)
	right := fmt.Sprintf("%s | %d/%d", e.doc.FileType(), e.cursor.Y+1, e.doc.Len())

	bar := []rune(left)
	for len(bar)+len([]rune(right)) < e.screenCols {
		bar = append(bar, ' ')
	}
	bar = append(bar, []rune(right)...)

	for x := 0; x < e.screenCols; x++ {
		ch := ' '
		if x < len(bar) {
			ch = bar[x]
		}
		e.term.SetCell(x, e.screenRows, ch, fg, bg)
	}
}

// drawMessageBar draws the status message until it expires.
func (e *Editor) drawMessageBar() {
	if e.message.Text == "" || time.Since(e.message.Time) >= Config.MessageTimeout {
		return
	}
	fg, bg := GetThemeColor(ColorDefault)
	for i, ch := range []rune(e.message.Text) {
		if i >= e.screenCols {
			break
		}
		e.term.SetCell(i, e.screenRows+1, ch, fg, bg)
	}
}

// prompt collects a line of input in the message bar. Esc cancels and
// discards the input; Enter accepts it. In search mode every keystroke also
// drives the incremental search hook.
func (e *Editor) prompt(label string, mode PromptMode) (string, bool) {
	var input []rune
	dir := SearchForward

	for {
		e.setMessage("%s%s", label, string(input))
		e.refreshScreen()

		ev := e.term.ReadEvent()
		if ev.Type != termbox.EventKey {
			continue
		}

		switch {
		case ev.Key == termbox.KeyEsc:
			e.setMessage("")
			return "", false
		case ev.Key == termbox.KeyEnter:
			e.setMessage("")
			return string(input), true
		case ev.Key == termbox.KeyBackspace || ev.Key == termbox.KeyBackspace2:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case ev.Key == termbox.KeySpace:
			input = append(input, ' ')
		case ev.Ch != 0 && !unicode.IsControl(ev.Ch):
			input = append(input, ev.Ch)
		}

		if mode == PromptSearch {
			e.searchStep(ev, string(input), &dir)
		}
	}
}

// searchStep is the per-keystroke hook of incremental search: arrows pick the
// direction (Right/Down forward, Left/Up backward), everything else searches
// forward from the current cursor. The cursor follows the match and the
// overlay word tracks the query.
func (e *Editor) searchStep(ev termbox.Event, query string, dir *SearchDirection) {
	moved := false
	switch ev.Key {
	case termbox.KeyArrowRight, termbox.KeyArrowDown:
		*dir = SearchForward
		// Step off the current match so the next one is found.
		e.moveCursor(MoveRight)
		moved = true
	case termbox.KeyArrowLeft, termbox.KeyArrowUp:
		*dir = SearchBackward
	default:
		*dir = SearchForward
	}

	if pos, ok := e.doc.Find(query, e.cursor, *dir); ok {
		e.cursor = pos
		e.scroll()
	} else if moved {
		e.moveCursor(MoveLeft)
	}
	e.highlightedWord = query
}

// search runs the incremental search prompt. Cancelling restores the cursor
// and scroll position from before the search started.
func (e *Editor) search() {
	savedCursor := e.cursor
	savedOffset := e.offset

	query, ok := e.prompt("Search (ESC to cancel, Arrows to navigate): ", PromptSearch)
	if !ok || query == "" {
		e.cursor = savedCursor
		e.offset = savedOffset
		e.scroll()
	}
	e.highlightedWord = ""
}

// save writes the document, prompting for a filename first when it has none.
func (e *Editor) save() {
	if e.doc.Filename == "" {
		name, ok := e.prompt("Save as: ", PromptPlain)
		if !ok || name == "" {
			e.setMessage("Save aborted.")
			return
		}
		e.doc.SetFilename(name)
	}

	if err := e.doc.Save(); err != nil {
		e.addLog("IO", err.Error())
		e.setMessage("Error writing file!")
		return
	}
	e.setMessage("File saved successfully.")
}

// quit stops the editor, demanding confirmation while unsaved changes exist.
func (e *Editor) quit() {
	if e.quitTimes > 0 && e.doc.IsDirty() {
		e.setMessage("WARNING! File has unsaved changes. Press Ctrl-Q %d more time to quit.", e.quitTimes)
		e.quitTimes--
		return
	}
	e.shouldQuit = true
}

// insertRune inserts one character at the cursor and advances past it. A
// newline advances onto the new row.
func (e *Editor) insertRune(ch rune) {
	if err := e.doc.Insert(e.cursor, ch); err != nil {
		e.addLog("Edit", err.Error())
		e.setMessage("Insert failed: %v", err)
		return
	}
	e.moveCursor(MoveRight)
}

// deleteBackward implements Backspace: step left (joining lines at column 0)
// and delete there. At the very start of the document it does nothing.
func (e *Editor) deleteBackward() {
	if e.cursor.X == 0 && e.cursor.Y == 0 {
		return
	}
	e.moveCursor(MoveLeft)
	e.doc.Delete(e.cursor)
}

// deleteForward implements Delete: remove the character under the cursor,
// joining the next line up when at end of row.
func (e *Editor) deleteForward() {
	e.doc.Delete(e.cursor)
}

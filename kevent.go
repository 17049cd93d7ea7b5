package main

// Input processing: the main event loop and the command table. Every key
// event is normalized to a termbox key chord and looked up once; printable
// runes are not in the table and insert themselves.

import (
	"unicode"

	"github.com/nsf/termbox-go"
)

// action is a single editor command bound to a key chord.
type action func(*Editor)

// moveAction adapts a cursor movement to an action.
func moveAction(k moveKey) action {
	return func(e *Editor) { e.moveCursor(k) }
}

// insertAction adapts a fixed-character insert to an action.
func insertAction(ch rune) action {
	return func(e *Editor) { e.insertRune(ch) }
}

// keymap is the command table. Note that termbox reports Tab as Ctrl-I and
// Enter as Ctrl-M; the constants below are those aliases.
var keymap = map[termbox.Key]action{
	termbox.KeyCtrlQ: (*Editor).quit,
	termbox.KeyCtrlS: (*Editor).save,
	termbox.KeyCtrlF: (*Editor).search,
	termbox.KeyCtrlC: (*Editor).copyRow,
	termbox.KeyCtrlV: (*Editor).paste,

	termbox.KeyArrowUp:    moveAction(MoveUp),
	termbox.KeyArrowDown:  moveAction(MoveDown),
	termbox.KeyArrowLeft:  moveAction(MoveLeft),
	termbox.KeyArrowRight: moveAction(MoveRight),
	termbox.KeyPgup:       moveAction(MovePageUp),
	termbox.KeyPgdn:       moveAction(MovePageDown),
	termbox.KeyHome:       moveAction(MoveHome),
	termbox.KeyEnd:        moveAction(MoveEnd),

	termbox.KeyEnter: insertAction('\n'),
	termbox.KeyTab:   insertAction('\t'),
	termbox.KeySpace: insertAction(' '),

	termbox.KeyBackspace:  (*Editor).deleteBackward,
	termbox.KeyBackspace2: (*Editor).deleteBackward,
	termbox.KeyDelete:     (*Editor).deleteForward,
}

// HandleEvents is the central loop that waits for and processes all user
// input: redraw, block on one event, fully process it, repeat.
func (e *Editor) HandleEvents() {
	for {
		e.refreshScreen()
		if e.shouldQuit {
			break
		}

		ev := e.term.ReadEvent()
		switch ev.Type {
		case termbox.EventKey:
			e.handleKey(ev)
		case termbox.EventResize:
			// Size is re-read on the next redraw.
		}
	}
}

// handleKey dispatches one key event through the command table, then
// recomputes scrolling. Any key other than another quit press rewinds the
// quit confirmation countdown.
func (e *Editor) handleKey(ev termbox.Event) {
	before := e.quitTimes

	if act, ok := keymap[ev.Key]; ok && ev.Ch == 0 {
		act(e)
	} else if ev.Ch != 0 && !unicode.IsControl(ev.Ch) {
		e.insertRune(ev.Ch)
	}

	e.scroll()

	if e.quitTimes == before && e.quitTimes < Config.QuitTimes {
		e.quitTimes = Config.QuitTimes
		e.setMessage("")
	}
}

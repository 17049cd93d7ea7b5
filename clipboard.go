package main

// System clipboard integration. Clipboard access can fail (headless session,
// no clipboard tool installed); every failure surfaces as a status message
// and never touches the document.

import "github.com/atotto/clipboard"

// copyRow places the current row's text on the system clipboard.
func (e *Editor) copyRow() {
	row := e.doc.Row(e.cursor.Y)
	if row == nil {
		e.setMessage("Nothing to copy")
		return
	}
	if err := clipboard.WriteAll(row.Text()); err != nil {
		e.addLog("Clipboard", err.Error())
		e.setMessage("Cannot copy content: clipboard unavailable")
		return
	}
	e.setMessage("Copied line to clipboard")
}

// paste inserts the clipboard contents at the cursor, character by character,
// leaving the cursor after the pasted text. Carriage returns are dropped so
// CRLF clipboards paste cleanly.
func (e *Editor) paste() {
	text, err := clipboard.ReadAll()
	if err != nil {
		e.addLog("Clipboard", err.Error())
		e.setMessage("Cannot paste content: clipboard unavailable")
		return
	}
	for _, ch := range text {
		if ch == '\r' {
			continue
		}
		e.insertRune(ch)
	}
}

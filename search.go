package main

// Directional substring search over the document. Both directions wrap around
// the buffer boundary and visit the buffer at most once per call; on the row
// the search starts from, forward only accepts matches strictly after the
// current column and backward strictly before it, so repeated searches never
// re-match the position they started at.

// SearchDirection selects which way Find scans from the starting position.
type SearchDirection int

const (
	SearchForward SearchDirection = iota
	SearchBackward
)

// indexFrom returns the first start column >= from where query occurs in
// content, or -1.
func indexFrom(content, query []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(query) <= len(content); i++ {
		if runesMatch(content, i, query) {
			return i
		}
	}
	return -1
}

// lastIndexBefore returns the last start column < before where query occurs
// in content, or -1.
func lastIndexBefore(content, query []rune, before int) int {
	i := len(content) - len(query)
	if before-1 < i {
		i = before - 1
	}
	for ; i >= 0; i-- {
		if runesMatch(content, i, query) {
			return i
		}
	}
	return -1
}

func runesMatch(content []rune, at int, query []rune) bool {
	for j, q := range query {
		if content[at+j] != q {
			return false
		}
	}
	return true
}

// Find returns the position of the next occurrence of query as a literal
// substring, scanning in the given direction from the starting position. An
// empty query or an absent term reports no match.
func (d *Document) Find(query string, from Position, dir SearchDirection) (Position, bool) {
	q := []rune(query)
	n := len(d.rows)
	if len(q) == 0 || n == 0 {
		return Position{}, false
	}

	// Clamp the sentinel row to the end of the last row so the scan below
	// always starts on a real row.
	if from.Y >= n {
		from.Y = n - 1
		from.X = d.rows[from.Y].Len()
	}

	if dir == SearchForward {
		if col := indexFrom(d.rows[from.Y].content, q, from.X+1); col >= 0 {
			return Position{X: col, Y: from.Y}, true
		}
		// Wrap through the buffer once; the starting row is revisited in
		// full so a lone match at or before the cursor is still found.
		for k := 1; k <= n; k++ {
			y := (from.Y + k) % n
			if col := indexFrom(d.rows[y].content, q, 0); col >= 0 {
				return Position{X: col, Y: y}, true
			}
		}
		return Position{}, false
	}

	if col := lastIndexBefore(d.rows[from.Y].content, q, from.X); col >= 0 {
		return Position{X: col, Y: from.Y}, true
	}
	for k := 1; k <= n; k++ {
		y := ((from.Y-k)%n + n) % n
		row := d.rows[y].content
		if col := lastIndexBefore(row, q, len(row)+1); col >= 0 {
			return Position{X: col, Y: y}, true
		}
	}
	return Position{}, false
}

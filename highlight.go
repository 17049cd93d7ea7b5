package main

// Per-row syntax classification. Each row is lexed on its own, with the only
// cross-row dependency carried as an explicit continuation state: the lexer
// takes the state left behind by the previous row and returns the state it
// leaves for the next one. Recomputing a row with the same content, options,
// incoming state, and overlay word always yields identical spans.

import (
	"strings"
	"unicode"
)

// Category classifies a run of characters for colorized rendering.
type Category byte

const (
	CategoryNormal Category = iota
	CategoryNumber
	CategoryString
	CategoryCharacter
	CategoryComment
	CategoryKeyword
	CategoryType
	CategoryMatch // Search overlay; takes precedence over lexical categories.
)

// Span is a half-open character range [Start, End) within a row carrying one
// highlight category. Gaps between spans are implicitly CategoryNormal.
type Span struct {
	Start int
	End   int
	Cat   Category
}

// lexState is the continuation state threaded from the end of one row into
// the start of the next.
type lexState byte

const (
	lexNormal lexState = iota
	lexInBlockComment
)

// HighlightOptions selects which constructs a file type highlights.
type HighlightOptions struct {
	Numbers           bool     // Numeric literals.
	Strings           bool     // Double-quoted strings.
	Characters        bool     // Single-quoted character literals.
	LineComment       string   // Single-line comment prefix, empty to disable.
	BlockCommentStart string   // Block comment opener, empty to disable.
	BlockCommentEnd   string   // Block comment closer.
	Keywords          []string // Primary keywords.
	Types             []string // Type names and secondary keywords.
}

// isSeparator reports whether ch terminates a word for keyword and number
// detection purposes.
func isSeparator(ch rune) bool {
	return unicode.IsSpace(ch) || strings.ContainsRune(",.()+-/*=~%<>[]{};:&|!?", ch)
}

// hasAt reports whether the runes of s appear in content starting at i.
func hasAt(content []rune, i int, s string) bool {
	for _, ch := range s {
		if i >= len(content) || content[i] != ch {
			return false
		}
		i++
	}
	return true
}

// matchKeyword returns the rune length and category of a keyword starting at
// i, or zero when nothing matches. The character after the keyword must be a
// separator (or the end of the row).
func matchKeyword(content []rune, i int, opts HighlightOptions) (int, Category) {
	try := func(words []string, cat Category) (int, Category) {
		for _, kw := range words {
			n := len([]rune(kw))
			if !hasAt(content, i, kw) {
				continue
			}
			if i+n < len(content) && !isSeparator(content[i+n]) {
				continue
			}
			return n, cat
		}
		return 0, CategoryNormal
	}
	if n, cat := try(opts.Keywords, CategoryKeyword); n > 0 {
		return n, cat
	}
	return try(opts.Types, CategoryType)
}

// classify assigns a category to every character of a row, starting from the
// given continuation state, and returns the state left for the next row.
func classify(content []rune, opts HighlightOptions, in lexState) ([]Category, lexState) {
	cats := make([]Category, len(content))
	state := in
	prevSep := true
	var quote rune // Active string/character delimiter, 0 when outside.

	i := 0
	for i < len(content) {
		ch := content[i]

		if state == lexInBlockComment {
			cats[i] = CategoryComment
			if opts.BlockCommentEnd != "" && hasAt(content, i, opts.BlockCommentEnd) {
				n := len([]rune(opts.BlockCommentEnd))
				for j := 0; j < n; j++ {
					cats[i+j] = CategoryComment
				}
				i += n
				state = lexNormal
				prevSep = true
				continue
			}
			i++
			continue
		}

		if quote != 0 {
			cat := CategoryString
			if quote == '\'' {
				cat = CategoryCharacter
			}
			cats[i] = cat
			// A backslash escapes the next character, including the quote.
			if ch == '\\' && i+1 < len(content) {
				cats[i+1] = cat
				i += 2
				continue
			}
			if ch == quote {
				quote = 0
				prevSep = true
			}
			i++
			continue
		}

		if opts.Strings && ch == '"' {
			quote = ch
			cats[i] = CategoryString
			prevSep = false
			i++
			continue
		}
		if opts.Characters && ch == '\'' {
			quote = ch
			cats[i] = CategoryCharacter
			prevSep = false
			i++
			continue
		}

		if opts.LineComment != "" && prevSep && hasAt(content, i, opts.LineComment) {
			for j := i; j < len(content); j++ {
				cats[j] = CategoryComment
			}
			break
		}

		if opts.BlockCommentStart != "" && hasAt(content, i, opts.BlockCommentStart) {
			n := len([]rune(opts.BlockCommentStart))
			for j := 0; j < n; j++ {
				cats[i+j] = CategoryComment
			}
			i += n
			state = lexInBlockComment
			prevSep = false
			continue
		}

		if opts.Numbers {
			afterNumber := i > 0 && cats[i-1] == CategoryNumber
			if (unicode.IsDigit(ch) && (prevSep || afterNumber)) || (ch == '.' && afterNumber) {
				cats[i] = CategoryNumber
				prevSep = false
				i++
				continue
			}
		}

		if prevSep {
			if n, cat := matchKeyword(content, i, opts); n > 0 {
				for j := 0; j < n; j++ {
					cats[i+j] = cat
				}
				prevSep = false
				i += n
				continue
			}
		}

		prevSep = isSeparator(ch)
		i++
	}

	return cats, state
}

// overlayMatches retags every literal, case-sensitive occurrence of word with
// the match category. Occurrences do not overlap: scanning resumes after each
// match.
func overlayMatches(cats []Category, content []rune, word string) {
	w := []rune(word)
	if len(w) == 0 {
		return
	}
	for i := 0; i+len(w) <= len(content); {
		if !hasAt(content, i, word) {
			i++
			continue
		}
		for j := 0; j < len(w); j++ {
			cats[i+j] = CategoryMatch
		}
		i += len(w)
	}
}

// compressSpans folds a per-character category array into ordered spans,
// dropping normal runs.
func compressSpans(cats []Category) []Span {
	var spans []Span
	for i := 0; i < len(cats); {
		if cats[i] == CategoryNormal {
			i++
			continue
		}
		j := i + 1
		for j < len(cats) && cats[j] == cats[i] {
			j++
		}
		spans = append(spans, Span{Start: i, End: j, Cat: cats[i]})
		i = j
	}
	return spans
}

// highlightRow lexes one row: classification, search overlay, and span
// compression. Exposed as a pure function so callers and tests can verify
// idempotence directly.
func highlightRow(content []rune, opts HighlightOptions, in lexState, word string) ([]Span, lexState) {
	cats, out := classify(content, opts, in)
	overlayMatches(cats, content, word)
	return compressSpans(cats), out
}

// lex recomputes the row's highlight cache.
func (r *Row) lex(opts HighlightOptions, in lexState, word string) {
	r.spans, r.hlOut = highlightRow(r.content, opts, in, word)
	r.hlIn = in
	r.hlWord = word
	r.hlStale = false
}

package main

// Supported file types, their extensions, and the highlight rules each one
// enables. The file type only selects a highlighting rule set; it never
// changes editing behavior.

import "path/filepath"

// FileType represents the configuration for a specific language.
type FileType struct {
	Name       string           // Display name of the file type.
	Extensions []string         // File extensions (e.g. .go) or exact filenames (e.g. Makefile).
	Highlight  HighlightOptions // Which constructs to highlight.
}

// fileTypes is a global list of all supported languages. The last entry is the
// fallback for unrecognized files and highlights nothing.
var fileTypes = []*FileType{
	{
		Name:       "Go",
		Extensions: []string{".go"},
		Highlight: HighlightOptions{
			Numbers:           true,
			Strings:           true,
			Characters:        true,
			LineComment:       "//",
			BlockCommentStart: "/*",
			BlockCommentEnd:   "*/",
			Keywords: []string{
				"break", "case", "chan", "const", "continue", "default",
				"defer", "else", "fallthrough", "for", "func", "go", "goto",
				"if", "import", "interface", "map", "package", "range",
				"return", "select", "struct", "switch", "type", "var",
			},
			Types: []string{
				"bool", "byte", "complex64", "complex128", "error", "float32",
				"float64", "int", "int8", "int16", "int32", "int64", "rune",
				"string", "uint", "uint8", "uint16", "uint32", "uint64",
				"uintptr", "true", "false", "nil", "iota",
			},
		},
	},
	{
		Name:       "Rust",
		Extensions: []string{".rs"},
		Highlight: HighlightOptions{
			Numbers:           true,
			Strings:           true,
			Characters:        true,
			LineComment:       "//",
			BlockCommentStart: "/*",
			BlockCommentEnd:   "*/",
			Keywords: []string{
				"as", "break", "const", "continue", "crate", "dyn", "else",
				"enum", "extern", "fn", "for", "if", "impl", "in", "let",
				"loop", "match", "mod", "move", "mut", "pub", "ref", "return",
				"self", "static", "struct", "trait", "type", "unsafe", "use",
				"where", "while",
			},
			Types: []string{
				"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64",
				"i128", "isize", "str", "u8", "u16", "u32", "u64", "u128",
				"usize", "String", "Vec", "Option", "Result", "Some", "None",
				"Ok", "Err", "true", "false",
			},
		},
	},
	{
		Name:       "C",
		Extensions: []string{".c", ".h"},
		Highlight: HighlightOptions{
			Numbers:           true,
			Strings:           true,
			Characters:        true,
			LineComment:       "//",
			BlockCommentStart: "/*",
			BlockCommentEnd:   "*/",
			Keywords: []string{
				"break", "case", "continue", "default", "do", "else", "enum",
				"extern", "for", "goto", "if", "return", "sizeof", "static",
				"struct", "switch", "typedef", "union", "while",
			},
			Types: []string{
				"char", "const", "double", "float", "int", "long", "short",
				"signed", "unsigned", "void",
			},
		},
	},
	{
		Name:       "Python",
		Extensions: []string{".py"},
		Highlight: HighlightOptions{
			Numbers:     true,
			Strings:     true,
			LineComment: "#",
			Keywords: []string{
				"and", "as", "assert", "async", "await", "break", "class",
				"continue", "def", "del", "elif", "else", "except", "finally",
				"for", "from", "global", "if", "import", "in", "is", "lambda",
				"not", "or", "pass", "raise", "return", "try", "while",
				"with", "yield",
			},
			Types: []string{
				"bool", "bytes", "dict", "float", "int", "list", "set", "str",
				"tuple", "True", "False", "None",
			},
		},
	},
	{
		Name:       "Shell",
		Extensions: []string{".sh", ".bash"},
		Highlight: HighlightOptions{
			Numbers:     true,
			Strings:     true,
			LineComment: "#",
			Keywords: []string{
				"case", "do", "done", "elif", "else", "esac", "fi", "for",
				"function", "if", "in", "local", "return", "then", "until",
				"while",
			},
		},
	},
	{
		Name:       "No Type",
		Extensions: []string{},
	},
}

// getFileType detects the file type based on the filename or extension.
func getFileType(filename string) *FileType {
	ext := filepath.Ext(filename)
	base := filepath.Base(filename)
	for _, ft := range fileTypes {
		for _, e := range ft.Extensions {
			// Match either the extension or the exact base name.
			if e == ext || e == base {
				return ft
			}
		}
	}
	return fileTypes[len(fileTypes)-1]
}

package main

// Provides a way to view all detected file types and the highlight rules
// each one enables.

import (
	"fmt"
	"strings"
)

// PrintInfo prints a summary table of all supported languages and their
// highlight setup.
func PrintInfo() {
	// Table header.
	fmt.Printf("%-10s %-25s %-10s %-10s %s\n", "Name", "Extensions", "Comment", "Block", "Keywords")
	fmt.Println(strings.Repeat("-", 80))

	for _, ft := range fileTypes {
		block := ""
		if ft.Highlight.BlockCommentStart != "" {
			block = ft.Highlight.BlockCommentStart + " " + ft.Highlight.BlockCommentEnd
		}

		fmt.Printf("%-10s %-25s %-10s %-10s %d\n",
			ft.Name,
			strings.Join(ft.Extensions, " "),
			ft.Highlight.LineComment,
			block,
			len(ft.Highlight.Keywords)+len(ft.Highlight.Types))
	}
}

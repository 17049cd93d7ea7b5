package main

// The entry point of the revise editor. It handles command-line flags,
// initializes the terminal, loads the file given on the command line, and
// starts the main editor loop.

import (
	"flag"
	"fmt"
	"os"
)

// Version of the editor, injected at build time.
var Version = "dev"

func main() {
	// Initialize configuration from flags.
	InitConfig()

	// If -version flag is provided, print version and exit.
	if Config.ShowVersion {
		fmt.Println(Version)
		return
	}

	// Print the file type table if -info flag is provided.
	if Config.ShowInfo {
		PrintInfo()
		return
	}

	// Preview theme colors if -colors flag is provided.
	if Config.ShowColors {
		PrintColors()
		return
	}

	// An unreadable file still opens the editor, on an empty document, with
	// the failure reported in the message bar.
	doc := NewDocument()
	var loadErr error
	if flag.NArg() > 0 {
		if d, err := OpenDocument(flag.Arg(0)); err != nil {
			loadErr = err
		} else {
			doc = d
		}
	}

	term, err := NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Close()

	editor := NewEditor(term, doc)
	if loadErr != nil {
		editor.addLog("IO", loadErr.Error())
		editor.setMessage("ERR: Could not open file: %s", flag.Arg(0))
	}

	// Enter the main event loop.
	editor.HandleEvents()
}

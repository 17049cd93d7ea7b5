package main

// Global configuration of the editor. Settings are populated from command-line
// flags during initialization.

import (
	"flag"
	"time"
)

// Configuration holds all adjustable settings for the editor.
type Configuration struct {
	TabStop        int           // Number of render columns a tab character expands to.
	QuitTimes      int           // Extra Ctrl-Q presses required to discard unsaved changes.
	MessageTimeout time.Duration // How long a status message stays visible.
	UseLogFile     bool          // Whether to write debug logs to a file.
	LogFilePath    string        // Where to store the debug logs.
	ShowColors     bool          // Command-line flag to preview the theme and exit.
	ShowInfo       bool          // Command-line flag to show file types and exit.
	ShowVersion    bool          // Command-line flag to show version and exit.
}

// Config is the global configuration instance. The defaults here also apply
// when InitConfig is never called (tests).
var Config = Configuration{
	TabStop:        4,
	QuitTimes:      1,
	MessageTimeout: 5 * time.Second,
	LogFilePath:    "/tmp/revise-debug.log",
}

// InitConfig sets up command-line flags and parses them into the global Config.
func InitConfig() {
	flag.IntVar(&Config.TabStop, "tab-stop", Config.TabStop, "Tab stop width")
	flag.IntVar(&Config.QuitTimes, "quit-times", Config.QuitTimes, "Confirmations needed to quit with unsaved changes")
	flag.DurationVar(&Config.MessageTimeout, "message-timeout", Config.MessageTimeout, "Status message timeout")
	flag.BoolVar(&Config.UseLogFile, "log", false, "Enable logging to file")
	flag.StringVar(&Config.LogFilePath, "log-path", Config.LogFilePath, "Path to log file")
	flag.BoolVar(&Config.ShowColors, "colors", false, "Preview theme colors")
	flag.BoolVar(&Config.ShowInfo, "info", false, "Show file type associations")
	flag.BoolVar(&Config.ShowVersion, "version", false, "Show version")

	flag.Parse()
}

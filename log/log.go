package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// defaultLogFileName can be overridden with the LEETTERM_LOG env var.
const defaultLogFileName = "leetterm.log"

var globalLogFile *os.File

var (
	InfoLog    *log.Logger
	WarningLog *log.Logger
	ErrorLog   *log.Logger
)

func init() {
	// Loggers must be usable before Initialize (config loading logs), so
	// start them discarded and rewire them to the file on Initialize.
	InfoLog = log.New(io.Discard, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(io.Discard, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(io.Discard, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// Initialize sets up file logging. The TUI owns stdout/stderr, so everything
// goes to a log file in the user's home directory. Must be called once at
// startup; pair with a deferred Close.
func Initialize() {
	path := os.Getenv("LEETTERM_LOG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		path = filepath.Join(home, ".leetterm", defaultLogFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}

	InfoLog.SetOutput(f)
	WarningLog.SetOutput(f)
	ErrorLog.SetOutput(f)
	globalLogFile = f
}

// Close flushes and closes the log file.
func Close() {
	if globalLogFile != nil {
		if err := globalLogFile.Close(); err != nil {
			fmt.Printf("failed to close log file: %v\n", err)
		}
		globalLogFile = nil
	}
}

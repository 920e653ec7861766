package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	debugLogger *log.Logger
	logFiles    []*os.File
)

// setupLogging sends the standard logger to stdout and, when logDir is set,
// to a timestamped file as well. Debug output gets its own file.
func setupLogging(logDir string, debug bool) {
	var out io.Writer = os.Stdout
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Printf("Warning: could not create log directory: %v", err)
		}
		if f := createLogFile(logDir, "adventure"); f != nil {
			out = io.MultiWriter(os.Stdout, f)
		}
	}
	log.SetOutput(out)

	setDebugLogging(logDir, debug)
}

func setDebugLogging(logDir string, enabled bool) {
	if !enabled {
		debugLogger = nil
		return
	}

	var dbgWriter io.Writer = os.Stdout
	if logDir != "" {
		if f := createLogFile(logDir, "debug"); f != nil {
			dbgWriter = io.MultiWriter(os.Stdout, f)
		}
	}
	debugLogger = log.New(dbgWriter, "DEBUG ", log.LstdFlags)
}

// createLogFile opens prefix-<timestamp>.log in dir, or returns nil after
// warning on stdout
func createLogFile(dir, prefix string) *os.File {
	ts := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.log", prefix, ts))
	f, err := os.Create(path)
	if err != nil {
		log.Printf("Warning: could not create log file %s: %v", path, err)
		return nil
	}
	logFiles = append(logFiles, f)
	return f
}

// closeLogs flushes and closes every log file and points the loggers back
// at stdout
func closeLogs() {
	log.SetOutput(os.Stdout)
	if debugLogger != nil {
		debugLogger.SetOutput(os.Stdout)
	}
	for _, f := range logFiles {
		if err := f.Sync(); err != nil {
			log.Printf("Warning: could not flush %s: %v", f.Name(), err)
		}
		if err := f.Close(); err != nil {
			log.Printf("Warning: could not close %s: %v", f.Name(), err)
		}
	}
	logFiles = nil
}

func logDebug(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/jba/redblack/conf"
)

var logFile *os.File

// Up configures logging from the Logging section of confMap:
//
//	Logging.LogFilePath        file to append logs to (default stderr)
//	Logging.LogToConsole       also log to stderr when LogFilePath is set
//	Logging.TraceLevelLogging  packages whose trace logs are emitted, or none
//	Logging.DebugLevelLogging  packages whose debug logs are emitted, or none
func Up(confMap conf.ConfMap) error {
	log.SetFormatter(&log.TextFormatter{DisableColors: true})

	logFilePath, _ := confMap.FetchOptionValueString("Logging", "LogFilePath")
	if logFilePath != "" {
		f, err := os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Errorf("couldn't open log file: %v", err)
			return err
		}
		logFile = f

		logToConsole, err := confMap.FetchOptionValueBool("Logging", "LogToConsole")
		if err != nil {
			logToConsole = false
		}
		if logToConsole {
			log.SetOutput(io.MultiWriter(logFile, os.Stderr))
		} else {
			log.SetOutput(logFile)
		}
	}

	// We always enable max logging in logrus and decide in this package whether to log.
	log.SetLevel(log.DebugLevel)

	traceConfSlice, _ := confMap.FetchOptionValueStringSlice("Logging", "TraceLevelLogging")
	setTraceLoggingLevel(traceConfSlice)

	debugConfSlice, _ := confMap.FetchOptionValueStringSlice("Logging", "DebugLevelLogging")
	setDebugLoggingLevel(debugConfSlice)

	return nil
}

// Down closes the log file opened by Up, if any, and restores stderr output.
func Down() error {
	setTraceLoggingLevel(nil)
	setDebugLoggingLevel(nil)
	log.SetOutput(os.Stderr)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// SetOutput redirects all logs to w.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger provides logging wrappers
//
// These wrappers standardize logging while still using a third-party
// logging package, github.com/sirupsen/logrus.
//
// The APIs here add the calling package and function to all logs.
// Trace and debug logs are enabled or disabled on a per package basis.
package logger

import (
	"fmt"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Level int

// Our logging levels. TraceLevel and DebugLevel are gated per package and
// map onto logrus.InfoLevel and logrus.DebugLevel respectively.
const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	TraceLevel
	DebugLevel
)

// Flag to disable all logging, for benchmarks.
var disableLoggingForPerfTesting = false

// These default to disabled unless enabled by Up.
var traceLevelEnabled = false
var debugLevelEnabled = false

// packageTraceSettings controls whether tracing is enabled for particular packages.
// Only packages present in this map can be enabled by "Logging.TraceLevelLogging".
var packageTraceSettings = map[string]bool{
	"rbtree":   false,
	"redblack": false,
	"main":     false,
}

// packageDebugSettings is the debug counterpart of packageTraceSettings.
var packageDebugSettings = map[string]bool{
	"rbtree":   false,
	"redblack": false,
	"main":     false,
}

func setTraceLoggingLevel(pkgs []string) {
	traceLevelEnabled = setPackageLevels(packageTraceSettings, pkgs)
	for pkg, isEnabled := range packageTraceSettings {
		if isEnabled {
			Infof("Package %v trace logging is enabled.", pkg)
		}
	}
}

func setDebugLoggingLevel(pkgs []string) {
	debugLevelEnabled = setPackageLevels(packageDebugSettings, pkgs)
	for pkg, isEnabled := range packageDebugSettings {
		if isEnabled {
			Infof("Package %v debug logging is enabled.", pkg)
		}
	}
}

// setPackageLevels enables the listed packages in settings and reports
// whether any package ended up enabled. "none" disables everything.
func setPackageLevels(settings map[string]bool, pkgs []string) (anyEnabled bool) {
	for pkg := range settings {
		settings[pkg] = false
	}
	for _, pkg := range pkgs {
		if pkg == "none" {
			for p := range settings {
				settings[p] = false
			}
			return false
		}
		if _, ok := settings[pkg]; ok {
			settings[pkg] = true
			anyEnabled = true
		}
	}
	return anyEnabled
}

// TraceEnabled reports whether trace logs from pkg would be emitted.
// Callers use it to avoid formatting arguments on hot paths.
func TraceEnabled(pkg string) bool {
	return !disableLoggingForPerfTesting && traceLevelEnabled && packageTraceSettings[pkg]
}

// Log fields supported by logger.
const (
	packageKey  = "package"
	functionKey = "function"
	errorKey    = "error"
)

// FuncCtx holds the fields common to log calls from one function.
type FuncCtx struct {
	entry *log.Entry
}

func (ctx *FuncCtx) getPackage() string {
	pkg, _ := ctx.entry.Data[packageKey].(string)
	return pkg
}

// getFuncPackage extracts the function and package names of the caller
// level frames above its own caller. "github.com/x/y/rbtree.(*Tree[...]).Check"
// yields ("Check", "rbtree").
func getFuncPackage(level int) (fn string, pkg string) {
	pc, _, _, ok := runtime.Caller(level + 1)
	if !ok {
		return "", ""
	}
	name := runtime.FuncForPC(pc).Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	pkg, fn, _ = strings.Cut(name, ".")
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	return fn, pkg
}

func newFuncCtx(level int, fields log.Fields) *FuncCtx {
	fn, pkg := getFuncPackage(level + 1)
	if fields == nil {
		fields = make(log.Fields)
	}
	fields[functionKey] = fn
	fields[packageKey] = pkg
	return &FuncCtx{entry: log.WithFields(fields)}
}

func (ctx *FuncCtx) log(level Level, msg string) {
	switch level {
	case PanicLevel:
		ctx.entry.Panic(msg)
	case FatalLevel:
		ctx.entry.Fatal(msg)
	case ErrorLevel:
		ctx.entry.Error(msg)
	case WarnLevel:
		ctx.entry.Warn(msg)
	case InfoLevel:
		ctx.entry.Info(msg)
	case TraceLevel:
		if packageTraceSettings[ctx.getPackage()] {
			ctx.entry.Info(msg)
		}
	case DebugLevel:
		if packageDebugSettings[ctx.getPackage()] {
			ctx.entry.Debug(msg)
		}
	}
}

func logEnabled(level Level) bool {
	if disableLoggingForPerfTesting {
		return false
	}
	if level == TraceLevel && !traceLevelEnabled {
		return false
	}
	if level == DebugLevel && !debugLevelEnabled {
		return false
	}
	return true
}

// backtraceOneLevel skips the exported API function itself.
const backtraceOneLevel = 1

func logf(level Level, err error, format string, args ...interface{}) {
	if !logEnabled(level) {
		return
	}
	var fields log.Fields
	if err != nil {
		fields = log.Fields{errorKey: err}
	}
	// Skip logf and the exported wrapper.
	ctx := newFuncCtx(backtraceOneLevel+1, fields)
	ctx.log(level, fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...interface{}) { logf(DebugLevel, nil, format, args...) }
func Errorf(format string, args ...interface{}) { logf(ErrorLevel, nil, format, args...) }
func Fatalf(format string, args ...interface{}) { logf(FatalLevel, nil, format, args...) }
func Infof(format string, args ...interface{})  { logf(InfoLevel, nil, format, args...) }
func Tracef(format string, args ...interface{}) { logf(TraceLevel, nil, format, args...) }
func Warnf(format string, args ...interface{})  { logf(WarnLevel, nil, format, args...) }

func ErrorfWithError(err error, format string, args ...interface{}) {
	logf(ErrorLevel, err, format, args...)
}

func InfofWithError(err error, format string, args ...interface{}) {
	logf(InfoLevel, err, format, args...)
}

func TracefWithError(err error, format string, args ...interface{}) {
	logf(TraceLevel, err, format, args...)
}

func WarnfWithError(err error, format string, args ...interface{}) {
	logf(WarnLevel, err, format, args...)
}

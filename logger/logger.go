// Copyright (c) 2021 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package logger defines the interface the container packages report
// through (invariant checkers, monitoring) without depending on either
// golang/glog or aristanetworks/glog.
package logger

// Logger is a generic leveled logger.
type Logger interface {
	// Info logs at the info level
	Info(args ...interface{})
	// Infof logs at the info level, with format
	Infof(format string, args ...interface{})
	// Error logs at the error level
	Error(args ...interface{})
	// Errorf logs at the error level, with format
	Errorf(format string, args ...interface{})
	// Fatal logs at the fatal level
	Fatal(args ...interface{})
	// Fatalf logs at the fatal level, with format
	Fatalf(format string, args ...interface{})
}

// Nop is a Logger that discards everything. Useful as a default and in
// tests that only care about a checker's verdict.
type Nop struct{}

// Info implements Logger.
func (Nop) Info(args ...interface{}) {}

// Infof implements Logger.
func (Nop) Infof(format string, args ...interface{}) {}

// Error implements Logger.
func (Nop) Error(args ...interface{}) {}

// Errorf implements Logger.
func (Nop) Errorf(format string, args ...interface{}) {}

// Fatal implements Logger.
func (Nop) Fatal(args ...interface{}) {}

// Fatalf implements Logger.
func (Nop) Fatalf(format string, args ...interface{}) {}

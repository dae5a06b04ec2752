// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
)

// Option modifies the settings of a logger. Options given to a child
// logger take precedence over the settings inherited from its parent.
type Option func(s *settings)

// CallerField is a part of the call site that can be appended to lines.
type CallerField uint8

const (
	// CallerFile is the base name of the source file.
	CallerFile CallerField = iota
	// CallerLine is the line number, prefixed with L.
	CallerLine
	// CallerFunc is the function name, without its package path.
	CallerFunc
)

// SetLevel drops lines below level. Defaults to Info.
func SetLevel(level Level) Option {
	return func(s *settings) { s.level = &level }
}

// SetFormat sets the line format. Defaults to FormatConsole.
func SetFormat(format Format) Option {
	return func(s *settings) { s.format = &format }
}

// SetWriter sets where lines are written. Defaults to os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) { s.writer = writer }
}

// SetCaller appends the given fields of the call site to every line and
// hides the others. Without fields no call site is shown, which is the
// default.
func SetCaller(fields ...CallerField) Option {
	return func(s *settings) {
		var file, line, funC bool
		for _, field := range fields {
			switch field {
			case CallerFile:
				file = true
			case CallerLine:
				line = true
			case CallerFunc:
				funC = true
			}
		}
		s.caller = callerSettings{file: &file, line: &line, funC: &funC}
	}
}

// AddContext appends key=value to every line. Values added for an existing
// key are joined with commas, in the order they were added.
func AddContext(key, value string) Option {
	return func(s *settings) {
		s.context = mergeContexts(s.context,
			[]contextKeyValues{{key: key, values: []string{value}}})
	}
}

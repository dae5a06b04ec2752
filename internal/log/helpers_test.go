// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"bytes"
	"sync"
)

// timePrefixRegex matches the RFC3339 timestamp and the space starting
// every line.
const timePrefixRegex = `[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}` +
	`(Z|[+-][0-9]{2}:[0-9]{2}) `

func levelPtr(l Level) *Level { return &l }

func formatPtr(f Format) *Format { return &f }

func newCallerSettings(file, line, funC bool) callerSettings {
	return callerSettings{file: &file, line: &line, funC: &funC}
}

// newBufferLogger returns a root logger at the given level writing to the
// returned buffer.
func newBufferLogger(level Level, options ...Option) (*Logger, *bytes.Buffer) {
	buffer := bytes.NewBuffer(nil)
	options = append([]Option{SetWriter(buffer), SetLevel(level)}, options...)
	return New(options...), buffer
}

// rootSettings are the settings of New without options, writer aside.
func rootSettings() settings {
	return settings{
		level:  levelPtr(Info),
		format: formatPtr(FormatConsole),
		caller: newCallerSettings(false, false, false),
	}
}

func newTestLogger(s settings) *Logger {
	return &Logger{settings: s, mutex: new(sync.Mutex)}
}

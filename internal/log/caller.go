// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

type callerSettings struct {
	file *bool
	line *bool
	funC *bool
}

// mergeWith sets the fields not set yet using the other settings.
func (c *callerSettings) mergeWith(other callerSettings) {
	c.file = mergeBool(c.file, other.file)
	c.line = mergeBool(c.line, other.line)
	c.funC = mergeBool(c.funC, other.funC)
}

// overrideWith sets the fields set in the other settings.
func (c *callerSettings) overrideWith(other callerSettings) {
	c.file = mergeBool(other.file, c.file)
	c.line = mergeBool(other.line, c.line)
	c.funC = mergeBool(other.funC, c.funC)
}

func mergeBool(preferred, fallback *bool) *bool {
	switch {
	case preferred != nil:
		value := *preferred
		return &value
	case fallback != nil:
		value := *fallback
		return &value
	default:
		return nil
	}
}

func (c *callerSettings) setDefaults() {
	disabled := false
	c.mergeWith(callerSettings{file: &disabled, line: &disabled, funC: &disabled})
}

func getCallerString(settings callerSettings) (s string) {
	if !*settings.file && !*settings.line && !*settings.funC {
		return ""
	}

	const depth = 3
	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "error"
	}

	var fields []string

	if *settings.file {
		fields = append(fields, filepath.Base(file))
	}

	if *settings.line {
		fields = append(fields, "L"+strconv.Itoa(line))
	}

	if *settings.funC {
		details := runtime.FuncForPC(pc)
		if details != nil {
			// github.com/org/repo/pkg.Type.Method -> Type.Method
			name := details.Name()
			name = name[strings.LastIndex(name, "/")+1:]
			_, name, _ = strings.Cut(name, ".")
			fields = append(fields, name)
		}
	}

	return strings.Join(fields, ":")
}

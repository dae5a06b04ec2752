// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	format  *Format
	caller  callerSettings
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

// newSettings returns settings using the options given.
func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values in the receiving settings
// only if they are not set, using the other settings.
// Context key values are appended after the ones
// of the other settings.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	if s.format == nil && other.format != nil {
		value := *other.format
		s.format = &value
	}

	s.caller.mergeWith(other.caller)

	s.context = mergeContexts(other.context, s.context)
}

// overrideWith sets values in the receiving settings
// using the values set in the other settings.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.format != nil {
		value := *other.format
		s.format = &value
	}

	s.caller.overrideWith(other.caller)

	s.context = mergeContexts(s.context, other.context)
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		value := Info
		s.level = &value
	}

	if s.format == nil {
		value := FormatConsole
		s.format = &value
	}

	s.caller.setDefaults()
}

// mergeContexts returns a copy of base with the key values of extra
// appended, values of an existing key being added to that key.
func mergeContexts(base, extra []contextKeyValues) (merged []contextKeyValues) {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}

	merged = make([]contextKeyValues, 0, len(base)+len(extra))
	for _, kv := range base {
		merged = append(merged, contextKeyValues{
			key:    kv.key,
			values: append([]string(nil), kv.values...),
		})
	}

	for _, kv := range extra {
		found := false
		for i := range merged {
			if merged[i].key == kv.key {
				merged[i].values = append(merged[i].values, kv.values...)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, contextKeyValues{
				key:    kv.key,
				values: append([]string(nil), kv.values...),
			})
		}
	}
	return merged
}

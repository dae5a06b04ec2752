// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// addStringFlagBindViper adds a string flag to the given flag set and binds it to the given viper key
func addStringFlagBindViper(flags *pflag.FlagSet, v *viper.Viper, name, defaultValue, usage string) error {
	flags.String(name, defaultValue, usage)
	return v.BindPFlag(name, flags.Lookup(name))
}

// addIntFlagBindViper adds an int flag to the given flag set and binds it to the given viper key
func addIntFlagBindViper(flags *pflag.FlagSet, v *viper.Viper, name string, defaultValue int, usage string) error {
	flags.Int(name, defaultValue, usage)
	return v.BindPFlag(name, flags.Lookup(name))
}

// addBoolFlagBindViper adds a bool flag to the given flag set and binds it to the given viper key
func addBoolFlagBindViper(flags *pflag.FlagSet, v *viper.Viper, name string, defaultValue bool, usage string) error {
	flags.Bool(name, defaultValue, usage)
	return v.BindPFlag(name, flags.Lookup(name))
}

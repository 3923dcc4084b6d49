// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings that control the interpreter:
// the prompt, debug tracing, where output goes, and the precision
// used for floating-point power and exponential.
package config // import "robpike.io/apl/config"

import (
	"io"
	"os"
	"sort"
)

// DefaultFloatPrec is the number of mantissa bits used by the
// extended-precision power and exponential when none is configured.
const DefaultFloatPrec = 128

// DebugFlags lists the names accepted by SetDebug and in config files.
var DebugFlags = []string{
	"cpu",    // print CPU time used by each line
	"parse",  // print the expression tree
	"tokens", // print tokens as they are scanned
	"types",  // print the Go type of each result
}

type Config struct {
	prompt    string
	debug     map[string]bool
	floatPrec uint
	output    io.Writer
	errOutput io.Writer
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Debug reports whether the named debug flag is set.
// A nil Config has no flags set.
func (c *Config) Debug(s string) bool {
	if c == nil {
		return false
	}
	return c.debug[s]
}

// SetDebug sets the state of the named debug flag. It reports
// whether the name is known.
func (c *Config) SetDebug(s string, state bool) bool {
	if !IsDebugFlag(s) {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	return true
}

// IsDebugFlag reports whether s names a debug flag.
func IsDebugFlag(s string) bool {
	i := sort.SearchStrings(DebugFlags, s)
	return i < len(DebugFlags) && DebugFlags[i] == s
}

// FloatPrec returns the mantissa precision, in bits, for
// extended-precision arithmetic.
func (c *Config) FloatPrec() uint {
	if c == nil || c.floatPrec == 0 {
		return DefaultFloatPrec
	}
	return c.floatPrec
}

func (c *Config) SetFloatPrec(prec uint) {
	c.floatPrec = prec
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c == nil || c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c == nil || c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}

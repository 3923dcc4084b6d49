// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MinFloatPrec and MaxFloatPrec bound the configurable precision.
// Below 53 bits the result would be worse than float64.
const (
	MinFloatPrec = 53
	MaxFloatPrec = 4096
)

// File is the layout of a configuration file:
//
//	prompt: "      "
//	debug: [parse, types]
//	floatprec: 256
type File struct {
	Prompt    *string  `yaml:"prompt"`
	Debug     []string `yaml:"debug"`
	FloatPrec uint     `yaml:"floatprec"`
}

// Load reads the named YAML file and applies its settings to c.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := c.Parse(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Parse applies the settings in the YAML text to c. Settings not
// mentioned are left alone. Nothing is applied if the text is invalid.
func (c *Config) Parse(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	for _, name := range f.Debug {
		if !IsDebugFlag(name) {
			return fmt.Errorf("unknown debug flag %q", name)
		}
	}
	if f.FloatPrec != 0 && (f.FloatPrec < MinFloatPrec || MaxFloatPrec < f.FloatPrec) {
		return fmt.Errorf("floatprec %d out of range [%d, %d]", f.FloatPrec, MinFloatPrec, MaxFloatPrec)
	}
	if f.Prompt != nil {
		c.SetPrompt(*f.Prompt)
	}
	for _, name := range f.Debug {
		c.SetDebug(name, true)
	}
	if f.FloatPrec != 0 {
		c.SetFloatPrec(f.FloatPrec)
	}
	return nil
}

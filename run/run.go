// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for the interpreter.
// It is factored out of main so it can be used for tests.
package run // import "robpike.io/apl/run"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"robpike.io/apl/config"
	"robpike.io/apl/parse"
	"robpike.io/apl/scan"
	"robpike.io/apl/value"
)

// cpuTime reports the user and system time used by the process.
// It is nil where that is not available.
var cpuTime func() (user, sys time.Duration)

// Evaluator evaluates one line of source. It implements value.Context.
type Evaluator struct {
	conf   *config.Config
	parser *parse.Parser
}

// New returns an Evaluator for the line. The name is used in
// debugging output.
func New(conf *config.Config, name, line string) *Evaluator {
	return &Evaluator{
		conf:   conf,
		parser: parse.NewParser(conf, scan.New(conf, name, line)),
	}
}

func (e *Evaluator) Config() *config.Config {
	return e.conf
}

// Eval parses one statement and evaluates it. A blank line
// gives parse.ErrEOF.
func (e *Evaluator) Eval() (value.Value, error) {
	expr, err := e.parser.Statement()
	if err != nil {
		return nil, err
	}
	return expr.Eval(e)
}

// Run evaluates each line read from r until EOF, printing results to
// the configured output and errors to the configured error output.
// An error ends only the line it occurs on. The return value reports
// whether every line succeeded.
func Run(conf *config.Config, name string, r io.Reader, interactive bool) (success bool) {
	success = true
	br := bufio.NewReader(r)
	for lineNum := 1; ; lineNum++ {
		if interactive {
			fmt.Fprint(conf.Output(), conf.Prompt())
		}
		line, err := br.ReadString('\n')
		if line != "" && !Line(conf, fmt.Sprintf("%s:%d", name, lineNum), line) {
			success = false
		}
		if err == io.EOF {
			return success
		}
		if err != nil {
			fmt.Fprintf(conf.ErrOutput(), "%s: %v\n", name, err)
			return false
		}
	}
}

// Line evaluates one line of input and prints the result, or the error
// prefixed by loc. A blank line prints nothing. It reports whether the
// line succeeded.
func Line(conf *config.Config, loc, line string) bool {
	start := time.Now()
	var user, sys time.Duration
	if cpuTime != nil {
		user, sys = cpuTime()
	}
	v, err := New(conf, loc, line).Eval()
	if errors.Is(err, parse.ErrEOF) {
		return true
	}
	if err != nil {
		fmt.Fprintf(conf.ErrOutput(), "%s: %s\n", loc, err)
		return false
	}
	printValue(conf, v)
	if conf.Debug("cpu") {
		elapsed := time.Since(start)
		if cpuTime != nil {
			u, s := cpuTime()
			fmt.Fprintf(conf.Output(), "(%s; %s user, %s sys)\n", elapsed, u-user, s-sys)
		} else {
			fmt.Fprintf(conf.Output(), "(%s)\n", elapsed)
		}
	}
	return true
}

// printValue prints the value followed by a newline.
// It also handles the types debug output.
func printValue(conf *config.Config, v value.Value) {
	w := conf.Output()
	if conf.Debug("types") {
		fmt.Fprintf(w, "%T\n", v)
	}
	fmt.Fprintln(w, v)
}

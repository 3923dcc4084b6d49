// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the I/O for running the -demo tour.
// The script for the demo is in demo.apl in this directory.
// Its content is embedded in this source file.
package demo // import "robpike.io/apl/demo"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	_ "embed"
)

//go:embed demo.apl
var demoText []byte

// Text returns the input text for the standard demo.
func Text() string {
	return string(demoText)
}

// Run runs the demo. The arguments are the user's input, a Writer used
// to deliver lines to an interpreter, and a Writer for the output. It
// assumes the interpreter writes to the same output. When the user hits
// a blank line, the next line of the script is shown and delivered. If
// the user's line has text, that is delivered instead and the script
// does not advance. The first line of the script, the instructions, is
// shown without being delivered.
// A nil userInput ignores the user and just runs the script.
func Run(userInput io.Reader, toAPL io.Writer, output io.Writer) error {
	text := demoText // Don't overwrite the global!
	var scan *bufio.Scanner
	if userInput != nil {
		scan = bufio.NewScanner(userInput)
	}
	nextLine := func() (line []byte) {
		nl := bytes.IndexByte(text, '\n')
		if nl < 0 { // EOF or incomplete line.
			return nil
		}
		line, text = text[:nl+1], text[nl+1:]
		return line
	}
	if _, err := output.Write(nextLine()); err != nil {
		return err
	}
	for userInput == nil || scan.Scan() {
		if userInput != nil && len(scan.Bytes()) > 0 {
			line := []byte(fmt.Sprintf("%s\n", scan.Bytes()))
			// "quit" terminates.
			if string(bytes.TrimSpace(line)) == "quit" {
				break
			}
			if _, err := toAPL.Write(line); err != nil {
				return err
			}
			continue
		}
		line := nextLine()
		if line == nil {
			break
		}
		if _, err := output.Write(line); err != nil {
			return err
		}
		if _, err := toAPL.Write(line); err != nil {
			return err
		}
	}
	if scan == nil {
		return nil
	}
	return scan.Err()
}

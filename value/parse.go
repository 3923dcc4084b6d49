// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strconv"
	"strings"
)

// Parse converts the text of a Number token to a value.
// A high minus ¯ negates the component it precedes; J separates
// the real and imaginary parts of a complex number; a number with
// a period is a Float and one with neither is an Int.
func Parse(s string) (Value, error) {
	if re, im, ok := strings.Cut(s, "J"); ok {
		x, err := parseFloat(s, re)
		if err != nil {
			return nil, err
		}
		y, err := parseFloat(s, im)
		if err != nil {
			return nil, err
		}
		return Complex(complex(x, y)), nil
	}
	if strings.Contains(s, ".") {
		x, err := parseFloat(s, s)
		if err != nil {
			return nil, err
		}
		return Float(x), nil
	}
	i, err := strconv.ParseInt(minus(s), 10, 64)
	if err != nil {
		return nil, Errorf(Lexical, "invalid number %s", s)
	}
	return Int(i), nil
}

func parseFloat(num, s string) (float64, error) {
	x, err := strconv.ParseFloat(minus(s), 64)
	if err != nil {
		return 0, Errorf(Lexical, "invalid number %s", num)
	}
	return x, nil
}

// minus turns a leading high minus into the ASCII minus strconv wants.
func minus(s string) string {
	if rest, ok := strings.CutPrefix(s, "¯"); ok {
		return "-" + rest
	}
	return s
}

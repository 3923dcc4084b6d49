// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"strconv"
)

// Int is the bottom of the ladder. Arithmetic that overflows int64
// is redone in floating point rather than wrapping.
type Int int64

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i Int) Rank() int {
	return 0
}

func (i Int) toType(which valueType) Value {
	switch which {
	case intType:
		return i
	case floatType:
		return Float(i)
	case complexType:
		return Complex(complex(float64(i), 0))
	}
	panic("int toType " + which.String())
}

func addInt(x, y Int) Value {
	s := x + y
	if (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0) {
		return Float(x) + Float(y)
	}
	return s
}

func subInt(x, y Int) Value {
	d := x - y
	if (x >= 0 && y < 0 && d < 0) || (x < 0 && y > 0 && d >= 0) {
		return Float(x) - Float(y)
	}
	return d
}

func mulInt(x, y Int) Value {
	if x == 0 || y == 0 {
		return Int(0)
	}
	p := x * y
	if p/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return Float(x) * Float(y)
	}
	return p
}

func negInt(x Int) Value {
	if x == math.MinInt64 {
		return -Float(x)
	}
	return -x
}

func absInt(x Int) Value {
	if x < 0 {
		return negInt(x)
	}
	return x
}

func signInt(x Int) Int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"strconv"
)

type Float float64

// String prints the shortest decimal that reads back as f, never
// in exponent form.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

func (f Float) Rank() int {
	return 0
}

func (f Float) toType(which valueType) Value {
	switch which {
	case floatType:
		return f
	case complexType:
		return Complex(complex(float64(f), 0))
	}
	panic("float toType " + which.String())
}

// toInt returns f as an Int if it is integral and in range.
// Otherwise it returns f unchanged.
func (f Float) toInt() Value {
	x := float64(f)
	if math.IsInf(x, 0) || math.IsNaN(x) || x != math.Trunc(x) {
		return f
	}
	if x < math.MinInt64 || x >= math.MaxInt64 {
		return f
	}
	return Int(x)
}

func signFloat(f Float) Int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

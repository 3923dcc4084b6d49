// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"math/cmplx"
)

type Complex complex128

// String prints the value as reJim, each part formatted as a Float.
func (c Complex) String() string {
	return Float(real(c)).String() + "J" + Float(imag(c)).String()
}

func (c Complex) Rank() int {
	return 0
}

func (c Complex) toType(which valueType) Value {
	if which == complexType {
		return c
	}
	panic("complex toType " + which.String())
}

func (c Complex) isZero() bool {
	return c == 0
}

// isReal reports whether c has no imaginary part.
func (c Complex) isReal() bool {
	return imag(c) == 0
}

func (c Complex) abs() Float {
	return Float(cmplx.Abs(complex128(c)))
}

func (c Complex) conj() Complex {
	return Complex(cmplx.Conj(complex128(c)))
}

// ceil and floor round each component separately.
func (c Complex) ceil() Complex {
	return Complex(complex(math.Ceil(real(c)), math.Ceil(imag(c))))
}

func (c Complex) floor() Complex {
	return Complex(complex(math.Floor(real(c)), math.Floor(imag(c))))
}

func (c Complex) div(d Complex) (Value, error) {
	if d.isZero() {
		return nil, Errorf(Domain, "division by zero")
	}
	return c / d, nil
}

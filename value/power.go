// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/zephyrtronium/bigfloat"

	"robpike.io/apl/config"
)

// maxExpArg bounds the argument passed to bigfloat.Exp. Beyond it
// float64 over- or underflows anyway.
const maxExpArg = 700

func floatPrec(c Context) uint {
	if c == nil {
		return config.DefaultFloatPrec
	}
	return c.Config().FloatPrec()
}

func newBigFloat(prec uint, x float64) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// powInt raises an Int to an Int power exactly. A result too large
// for an Int is returned as a Float, as is any result with a negative
// exponent and a base other than ±1.
func powInt(c Context, u, v Value) (Value, error) {
	i, j := u.(Int), v.(Int)
	switch {
	case i == 0 && j < 0:
		return nil, Errorf(Domain, "cannot take 0 to a negative power")
	case j == 0 || i == 1:
		return Int(1), nil
	case i == 0:
		return Int(0), nil
	case i == -1:
		if j%2 == 0 {
			return Int(1), nil
		}
		return Int(-1), nil
	case j < 0 || j >= 64:
		// |i| >= 2, so j >= 64 cannot fit.
		return powFloat(c, Float(i), Float(j))
	}
	z := new(big.Int).Exp(big.NewInt(int64(i)), big.NewInt(int64(j)), nil)
	if z.IsInt64() {
		return Int(z.Int64()), nil
	}
	f, _ := new(big.Float).SetInt(z).Float64()
	return Float(f), nil
}

// powFloat computes u⋆v for Floats. For a positive base with a result
// in range it is computed at the configured precision and rounded.
func powFloat(c Context, u, v Value) (Value, error) {
	x, y := float64(u.(Float)), float64(v.(Float))
	switch {
	case x == 0 && y < 0:
		return nil, Errorf(Domain, "cannot take 0 to a negative power")
	case x < 0 && y != math.Trunc(y) && !math.IsInf(y, 0):
		return nil, Errorf(Domain, "cannot take negative number %s to fractional power %s", Float(x), Float(y))
	}
	r := math.Pow(x, y)
	if x <= 0 || math.IsInf(y, 0) || r == 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return Float(r), nil
	}
	prec := floatPrec(c)
	z := bigfloat.Pow(new(big.Float).SetPrec(prec), newBigFloat(prec, x), newBigFloat(prec, y))
	f, _ := z.Float64()
	return Float(f), nil
}

// powComplex computes u⋆v as e^(v×ln u). The base must be real.
func powComplex(c Context, u, v Value) (Value, error) {
	base, z := u.(Complex), v.(Complex)
	if !base.isReal() {
		return nil, Errorf(Unsupported, "power is not supported on complex numbers")
	}
	if base.isZero() {
		if real(z) > 0 {
			return Complex(0), nil
		}
		return nil, Errorf(Domain, "cannot take 0 to a power with non-positive real part")
	}
	return Complex(cmplx.Exp(complex128(z) * cmplx.Log(complex128(base)))), nil
}

// expFloat computes e⋆x, at the configured precision when the
// result is in range.
func expFloat(c Context, x Float) Float {
	if math.IsNaN(float64(x)) || math.Abs(float64(x)) > maxExpArg {
		return Float(math.Exp(float64(x)))
	}
	prec := floatPrec(c)
	z := bigfloat.Exp(new(big.Float).SetPrec(prec), newBigFloat(prec, float64(x)))
	f, _ := z.Float64()
	return Float(f)
}

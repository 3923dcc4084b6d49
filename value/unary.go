// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"math/cmplx"
)

// Unary operators.

// To avoid initialization cycles when we refer to the ops from inside
// themselves, we use an init function to initialize the ops.

var (
	conjugate, negate, reciprocal, sign *unaryOp
	magnitude, ceiling, floor, exp      *unaryOp
)

// one is the left operand of reciprocal.
var one Value = Int(1)

func init() {
	conjugate = &unaryOp{
		name: "conjugate",
		fn: [numType]unaryFn{
			intType:   func(c Context, v Value) (Value, error) { return v, nil },
			floatType: func(c Context, v Value) (Value, error) { return v, nil },
			complexType: func(c Context, v Value) (Value, error) {
				return v.(Complex).conj(), nil
			},
		},
	}

	negate = &unaryOp{
		name: "negate",
		fn: [numType]unaryFn{
			intType: func(c Context, v Value) (Value, error) {
				return negInt(v.(Int)), nil
			},
			floatType: func(c Context, v Value) (Value, error) {
				return -v.(Float), nil
			},
			complexType: func(c Context, v Value) (Value, error) {
				return -v.(Complex), nil
			},
		},
	}

	// Reciprocal is 1÷v, including its domain check.
	recip := func(c Context, v Value) (Value, error) {
		return div.EvalBinary(c, one, v)
	}
	reciprocal = &unaryOp{
		name: "reciprocal",
		fn: [numType]unaryFn{
			intType:     recip,
			floatType:   recip,
			complexType: recip,
		},
	}

	sign = &unaryOp{
		name: "sign",
		fn: [numType]unaryFn{
			intType: func(c Context, v Value) (Value, error) {
				return signInt(v.(Int)), nil
			},
			floatType: func(c Context, v Value) (Value, error) {
				return signFloat(v.(Float)), nil
			},
			// v÷|v|, so zero is a domain error.
			complexType: func(c Context, v Value) (Value, error) {
				m, err := magnitude.EvalUnary(c, v)
				if err != nil {
					return nil, err
				}
				return div.EvalBinary(c, v, m)
			},
		},
	}

	magnitude = &unaryOp{
		name: "magnitude",
		fn: [numType]unaryFn{
			intType: func(c Context, v Value) (Value, error) {
				return absInt(v.(Int)), nil
			},
			floatType: func(c Context, v Value) (Value, error) {
				return Float(math.Abs(float64(v.(Float)))), nil
			},
			complexType: func(c Context, v Value) (Value, error) {
				return v.(Complex).abs(), nil
			},
		},
	}

	ceiling = &unaryOp{
		name: "ceiling",
		fn: [numType]unaryFn{
			intType: func(c Context, v Value) (Value, error) { return v, nil },
			floatType: func(c Context, v Value) (Value, error) {
				return Float(math.Ceil(float64(v.(Float)))).toInt(), nil
			},
			complexType: func(c Context, v Value) (Value, error) {
				return v.(Complex).ceil(), nil
			},
		},
	}

	floor = &unaryOp{
		name: "floor",
		fn: [numType]unaryFn{
			intType: func(c Context, v Value) (Value, error) { return v, nil },
			floatType: func(c Context, v Value) (Value, error) {
				return Float(math.Floor(float64(v.(Float)))).toInt(), nil
			},
			complexType: func(c Context, v Value) (Value, error) {
				return v.(Complex).floor(), nil
			},
		},
	}

	exp = &unaryOp{
		name: "exponential",
		fn: [numType]unaryFn{
			intType: func(c Context, v Value) (Value, error) {
				return expFloat(c, Float(v.(Int))), nil
			},
			floatType: func(c Context, v Value) (Value, error) {
				return expFloat(c, v.(Float)), nil
			},
			complexType: func(c Context, v Value) (Value, error) {
				return Complex(cmplx.Exp(complex128(v.(Complex)))), nil
			},
		},
	}

	for _, op := range []*unaryOp{conjugate, negate, reciprocal, sign, magnitude, ceiling, floor, exp} {
		UnaryOps[op.name] = op
	}
}

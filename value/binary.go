// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Binary operators.

// To avoid initialization cycles when we refer to the ops from inside
// themselves, we use an init function to initialize the ops.

var (
	add, sub, mul, div, pow *binaryOp
	maxOp, minOp            *binaryOp
)

func init() {
	add = &binaryOp{
		name:      "add",
		whichType: binaryArithType,
		fn: [numType]binaryFn{
			intType: func(c Context, u, v Value) (Value, error) {
				return addInt(u.(Int), v.(Int)), nil
			},
			floatType: func(c Context, u, v Value) (Value, error) {
				return u.(Float) + v.(Float), nil
			},
			complexType: func(c Context, u, v Value) (Value, error) {
				return u.(Complex) + v.(Complex), nil
			},
		},
	}

	sub = &binaryOp{
		name:      "subtract",
		whichType: binaryArithType,
		fn: [numType]binaryFn{
			intType: func(c Context, u, v Value) (Value, error) {
				return subInt(u.(Int), v.(Int)), nil
			},
			floatType: func(c Context, u, v Value) (Value, error) {
				return u.(Float) - v.(Float), nil
			},
			complexType: func(c Context, u, v Value) (Value, error) {
				return u.(Complex) - v.(Complex), nil
			},
		},
	}

	mul = &binaryOp{
		name:      "multiply",
		whichType: binaryArithType,
		fn: [numType]binaryFn{
			intType: func(c Context, u, v Value) (Value, error) {
				return mulInt(u.(Int), v.(Int)), nil
			},
			floatType: func(c Context, u, v Value) (Value, error) {
				return u.(Float) * v.(Float), nil
			},
			complexType: func(c Context, u, v Value) (Value, error) {
				return u.(Complex) * v.(Complex), nil
			},
		},
	}

	div = &binaryOp{
		name:      "divide",
		whichType: binaryArithType,
		fn: [numType]binaryFn{
			intType: func(c Context, u, v Value) (Value, error) {
				i, j := u.(Int), v.(Int)
				if j == 0 {
					return nil, Errorf(Domain, "division by zero")
				}
				if j == -1 {
					return negInt(i), nil
				}
				if i%j != 0 {
					return Float(i) / Float(j), nil
				}
				return i / j, nil
			},
			floatType: func(c Context, u, v Value) (Value, error) {
				if v.(Float) == 0 {
					return nil, Errorf(Domain, "division by zero")
				}
				return u.(Float) / v.(Float), nil
			},
			complexType: func(c Context, u, v Value) (Value, error) {
				return u.(Complex).div(v.(Complex))
			},
		},
	}

	pow = &binaryOp{
		name:      "power",
		whichType: binaryArithType,
		fn: [numType]binaryFn{
			intType:     powInt,
			floatType:   powFloat,
			complexType: powComplex,
		},
	}

	maxOp = &binaryOp{
		name:      "maximum",
		whichType: binaryArithType,
		fn: [numType]binaryFn{
			intType: func(c Context, u, v Value) (Value, error) {
				return max(u.(Int), v.(Int)), nil
			},
			floatType: func(c Context, u, v Value) (Value, error) {
				if u.(Float) > v.(Float) {
					return u, nil
				}
				return v, nil
			},
		},
		mixed: func(c Context, u, v Value) (Value, error) {
			if realValue(u) > realValue(v) {
				return u, nil
			}
			return v, nil
		},
	}

	minOp = &binaryOp{
		name:      "minimum",
		whichType: binaryArithType,
		fn: [numType]binaryFn{
			intType: func(c Context, u, v Value) (Value, error) {
				return min(u.(Int), v.(Int)), nil
			},
			floatType: func(c Context, u, v Value) (Value, error) {
				if u.(Float) < v.(Float) {
					return u, nil
				}
				return v, nil
			},
		},
		mixed: func(c Context, u, v Value) (Value, error) {
			if realValue(u) < realValue(v) {
				return u, nil
			}
			return v, nil
		},
	}

	for _, op := range []*binaryOp{add, sub, mul, div, pow, maxOp, minOp} {
		BinaryOps[op.name] = op
	}
}

// realValue returns the value of an Int or Float as a float64.
func realValue(v Value) float64 {
	switch v := v.(type) {
	case Int:
		return float64(v)
	case Float:
		return float64(v)
	}
	panic("realValue of " + whichType(v).String())
}

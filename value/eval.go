// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "fmt"

// valueType is a rung of the promotion ladder. A value can be
// widened to any higher rung except arrayType, which is reached
// only by broadcasting.
type valueType int

const (
	intType valueType = iota
	floatType
	complexType
	arrayType
	numType
)

var typeName = [...]string{"int", "float", "complex", "array"}

func (t valueType) String() string {
	if t < 0 || t >= numType {
		return fmt.Sprintf("valueType(%d)", int(t))
	}
	return typeName[t]
}

func whichType(v Value) valueType {
	switch v.(type) {
	case Int:
		return intType
	case Float:
		return floatType
	case Complex:
		return complexType
	case *Array:
		return arrayType
	}
	panic(fmt.Sprintf("which type: %T", v))
}

type unaryFn func(Context, Value) (Value, error)

type unaryOp struct {
	name string
	fn   [numType]unaryFn
}

// EvalUnary applies the function to v. Arrays are handled
// element by element.
func (op *unaryOp) EvalUnary(c Context, v Value) (Value, error) {
	which := whichType(v)
	if which == arrayType {
		return each(v.(*Array), func(e Value) (Value, error) {
			return op.EvalUnary(c, e)
		})
	}
	fn := op.fn[which]
	if fn == nil {
		return nil, Errorf(Unsupported, "%s is not supported on %s numbers", op.name, which)
	}
	return fn(c, v)
}

type binaryFn func(Context, Value, Value) (Value, error)

type binaryOp struct {
	name      string
	whichType func(a, b valueType) valueType
	fn        [numType]binaryFn
	// mixed, if set, is called for one Int and one Float
	// operand instead of widening the Int.
	mixed binaryFn
}

// EvalBinary applies the function to u and v. The lower operand is
// widened to the type chosen by whichType; arrays are broadcast.
func (op *binaryOp) EvalBinary(c Context, u, v Value) (Value, error) {
	tu, tv := whichType(u), whichType(v)
	which := op.whichType(tu, tv)
	if which == arrayType {
		return op.evalArray(c, u, v)
	}
	if op.mixed != nil && tu != tv && which == floatType {
		return op.mixed(c, u, v)
	}
	fn := op.fn[which]
	if fn == nil {
		return nil, Errorf(Unsupported, "%s is not supported on %s numbers", op.name, which)
	}
	return fn(c, u.toType(which), v.toType(which))
}

// evalArray broadcasts a scalar operand against an array, or pairs
// up the elements of two arrays.
func (op *binaryOp) evalArray(c Context, u, v Value) (Value, error) {
	fn := func(x, y Value) (Value, error) {
		return op.EvalBinary(c, x, y)
	}
	a, uArray := u.(*Array)
	b, vArray := v.(*Array)
	switch {
	case uArray && vArray:
		return dual(a, b, fn)
	case uArray:
		return inverseSimple(a, v, fn)
	default:
		return simple(u, b, fn)
	}
}

// binaryArithType returns the maximum of the two types,
// so the smaller value is appropriately up-converted.
func binaryArithType(t1, t2 valueType) valueType {
	if t1 > t2 {
		return t1
	}
	return t2
}

// UnaryOps and BinaryOps map the name of each primitive function
// to its implementation.
var (
	UnaryOps  = make(map[string]UnaryOp)
	BinaryOps = make(map[string]BinaryOp)
)

// UnaryOp is the interface implemented by a monadic function.
type UnaryOp interface {
	EvalUnary(c Context, right Value) (Value, error)
}

// BinaryOp is the interface implemented by a dyadic function.
type BinaryOp interface {
	EvalBinary(c Context, left, right Value) (Value, error)
}

// Unary applies the named monadic function to v.
func Unary(c Context, name string, v Value) (Value, error) {
	op := UnaryOps[name]
	if op == nil {
		return nil, Errorf(Syntax, "unknown monadic function %s", name)
	}
	return op.EvalUnary(c, v)
}

// Binary applies the named dyadic function to u and v.
func Binary(c Context, u Value, name string, v Value) (Value, error) {
	op := BinaryOps[name]
	if op == nil {
		return nil, Errorf(Syntax, "unknown dyadic function %s", name)
	}
	return op.EvalBinary(c, u, v)
}

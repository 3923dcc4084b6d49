// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"slices"
	"strings"
)

// Array is a vector of values. Its depth is one more than the
// deepest element, so an array of scalars has depth 1. The shape
// always has a single entry, the number of elements.
type Array struct {
	depth int
	shape []int
	elems []Value
}

// NewArray returns an array holding the elements, which it takes
// ownership of. An empty list gives the empty array.
func NewArray(elems []Value) *Array {
	depth := 0
	for _, e := range elems {
		depth = max(depth, e.Rank())
	}
	return &Array{
		depth: depth + 1,
		shape: []int{len(elems)},
		elems: elems,
	}
}

// newShaped returns an array with the given depth and shape.
func newShaped(depth int, shape []int, elems []Value) *Array {
	return &Array{
		depth: depth,
		shape: shape,
		elems: elems,
	}
}

// String prints the elements separated by spaces. Nested arrays
// have no printed form.
func (a *Array) String() string {
	if a.depth != 1 {
		panic("value: cannot print array of depth " + Int(a.depth).String())
	}
	var b strings.Builder
	for i, e := range a.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	return b.String()
}

func (a *Array) Rank() int {
	return a.depth
}

// Shape returns a copy of the shape vector.
func (a *Array) Shape() []int {
	return slices.Clone(a.shape)
}

func (a *Array) Len() int {
	return len(a.elems)
}

// At returns the i'th element.
func (a *Array) At(i int) Value {
	return a.elems[i]
}

// Elems returns the elements. The slice must not be modified.
func (a *Array) Elems() []Value {
	return a.elems
}

func (a *Array) toType(which valueType) Value {
	if which == arrayType {
		return a
	}
	panic("array toType " + which.String())
}

// The helpers below apply a function across arrays. Each result has
// the depth and shape of its array operand, and the first element to
// fail aborts the whole operation.

// each applies fn to every element of a.
func each(a *Array, fn func(Value) (Value, error)) (Value, error) {
	elems := make([]Value, len(a.elems))
	for i, e := range a.elems {
		v, err := fn(e)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return newShaped(a.depth, a.Shape(), elems), nil
}

// simple applies fn to the scalar s and every element of a, with s on the left.
func simple(s Value, a *Array, fn func(u, v Value) (Value, error)) (Value, error) {
	return each(a, func(e Value) (Value, error) {
		return fn(s, e)
	})
}

// inverseSimple is like simple but with s on the right.
func inverseSimple(a *Array, s Value, fn func(u, v Value) (Value, error)) (Value, error) {
	return each(a, func(e Value) (Value, error) {
		return fn(e, s)
	})
}

// dual applies fn to corresponding elements of a and b, which must
// agree in depth and shape.
func dual(a, b *Array, fn func(u, v Value) (Value, error)) (Value, error) {
	if a.depth != b.depth {
		return nil, Errorf(Rank, "depths %d and %d", a.depth, b.depth)
	}
	if !slices.Equal(a.shape, b.shape) {
		return nil, Errorf(Length, "shapes %v and %v", a.shape, b.shape)
	}
	elems := make([]Value, len(a.elems))
	for i := range a.elems {
		v, err := fn(a.elems[i], b.elems[i])
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return newShaped(a.depth, a.Shape(), elems), nil
}

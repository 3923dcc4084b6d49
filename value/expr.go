// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "strings"

// BinaryExpr is a dyadic function applied to two expressions.
type BinaryExpr struct {
	Op    string // The glyph as written.
	Fn    string // The name of the function in BinaryOps.
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) ProgString() string {
	return b.Left.ProgString() + " " + b.Op + " " + b.Right.ProgString()
}

// Eval evaluates the left operand, then the right, then applies the function.
func (b *BinaryExpr) Eval(c Context) (Value, error) {
	left, err := b.Left.Eval(c)
	if err != nil {
		return nil, err
	}
	right, err := b.Right.Eval(c)
	if err != nil {
		return nil, err
	}
	return Binary(c, left, b.Fn, right)
}

// UnaryExpr is a monadic function applied to everything on its right.
type UnaryExpr struct {
	Op    string // The glyph as written.
	Fn    string // The name of the function in UnaryOps.
	Right Expr
}

func (u *UnaryExpr) ProgString() string {
	return u.Op + u.Right.ProgString()
}

func (u *UnaryExpr) Eval(c Context) (Value, error) {
	right, err := u.Right.Eval(c)
	if err != nil {
		return nil, err
	}
	return Unary(c, u.Fn, right)
}

// ArrayExpr holds the text of a run of numbers. A single number
// evaluates to a scalar, more than one to an array.
type ArrayExpr []string

func (a ArrayExpr) ProgString() string {
	return strings.Join(a, " ")
}

func (a ArrayExpr) Eval(Context) (Value, error) {
	elems := make([]Value, len(a))
	for i, s := range a {
		v, err := Parse(s)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	if len(elems) == 1 {
		return elems[0], nil
	}
	return NewArray(elems), nil
}

// VarExpr is a reference to a named variable.
type VarExpr struct {
	Name string
}

func (v *VarExpr) ProgString() string {
	return v.Name
}

// Eval always fails: there is nowhere to store variables.
func (v *VarExpr) Eval(Context) (Value, error) {
	return nil, Errorf(Syntax, "undefined variable %s", v.Name)
}

// ZildeExpr is the empty array ⍬.
type ZildeExpr struct{}

func (ZildeExpr) ProgString() string {
	return "⍬"
}

func (ZildeExpr) Eval(Context) (Value, error) {
	return NewArray(nil), nil
}

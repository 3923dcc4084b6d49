// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"math"
	"math/cmplx"
	"reflect"
	"testing"

	"robpike.io/apl/config"
)

type testContext struct {
	conf config.Config
}

func (c *testContext) Config() *config.Config {
	return &c.conf
}

func arr(elems ...Value) *Array {
	return NewArray(elems)
}

// fail marks a test case that must fail with an error of that kind.
type fail ErrorKind

func check(t *testing.T, what string, got Value, err error, want interface{}) {
	t.Helper()
	if kind, ok := want.(fail); ok {
		if err == nil {
			t.Errorf("%s: expected %s error; got %v", what, ErrorKind(kind), got)
			return
		}
		if !errors.Is(err, Error{Kind: ErrorKind(kind)}) {
			t.Errorf("%s: expected %s error; got %v", what, ErrorKind(kind), err)
		}
		return
	}
	if err != nil {
		t.Errorf("%s: unexpected error: %v", what, err)
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s: got %T %v; want %T %v", what, got, got, want, want)
	}
}

func TestBinary(t *testing.T) {
	nested := arr(arr(Int(1), Int(2)), arr(Int(3), Int(4)))
	var tests = []struct {
		u    Value
		op   string
		v    Value
		want interface{}
	}{
		{Int(2), "add", Int(3), Int(5)},
		{Float(2), "add", Int(3), Float(5)},
		{Int(2), "add", Complex(1 + 1i), Complex(3 + 1i)},
		{Int(math.MaxInt64), "add", Int(1), Float(9223372036854775808)},
		{Int(5), "subtract", Int(7), Int(-2)},
		{Int(math.MinInt64), "subtract", Int(1), Float(-9223372036854775809)},
		{Float(0.5), "subtract", Complex(1i), Complex(0.5 - 1i)},
		{Complex(1 + 2i), "multiply", Complex(3 + 4i), Complex(-5 + 10i)},
		{Int(1 << 62), "multiply", Int(4), Float(1 << 64)},
		{Int(-3), "multiply", Int(4), Int(-12)},
		{Int(6), "divide", Int(3), Int(2)},
		{Int(7), "divide", Int(2), Float(3.5)},
		{Int(5), "divide", Int(0), fail(Domain)},
		{Float(5), "divide", Float(0), fail(Domain)},
		{Float(5), "divide", Int(0), fail(Domain)},
		{Complex(1 + 1i), "divide", Int(0), fail(Domain)},
		{Complex(2 + 4i), "divide", Int(2), Complex(1 + 2i)},
		{Int(math.MinInt64), "divide", Int(-1), Float(9223372036854775808)},
		{Int(2), "power", Int(10), Int(1024)},
		{Int(2), "power", Int(62), Int(1 << 62)},
		{Int(3), "power", Int(40), Float(12157665459056928801)},
		{Int(2), "power", Int(100), Float(1 << 100)},
		{Int(0), "power", Int(-1), fail(Domain)},
		{Float(0), "power", Int(-2), fail(Domain)},
		{Int(0), "power", Float(-0.5), fail(Domain)},
		{Int(0), "power", Int(0), Int(1)},
		{Int(2), "power", Int(-1), Float(0.5)},
		{Int(10), "power", Int(-2), Float(0.01)},
		{Int(-1), "power", Int(-3), Int(-1)},
		{Int(-2), "power", Int(3), Int(-8)},
		{Float(2), "power", Float(0.5), Float(math.Sqrt2)},
		{Float(-8), "power", Float(0.5), fail(Domain)},
		{Float(-2), "power", Int(2), Float(4)},
		{Complex(1 + 1i), "power", Int(2), fail(Unsupported)},
		{Int(0), "power", Complex(1i), fail(Domain)},
		{Int(0), "power", Complex(2 + 1i), Complex(0)},
		{Int(3), "maximum", Float(2.5), Int(3)},
		{Int(2), "maximum", Float(2.5), Float(2.5)},
		{Float(2), "maximum", Int(2), Int(2)},
		{Int(2), "maximum", Int(7), Int(7)},
		{Float(2), "maximum", Float(-7), Float(2)},
		{Int(2), "minimum", Float(2.5), Int(2)},
		{Float(-1.5), "minimum", Int(0), Float(-1.5)},
		{Int(2), "minimum", Int(7), Int(2)},
		{Complex(1i), "maximum", Int(1), fail(Unsupported)},
		{Int(1), "minimum", Complex(1i), fail(Unsupported)},

		// Arrays.
		{arr(Int(1), Int(2), Int(3)), "add", arr(Int(4), Int(5), Int(6)), arr(Int(5), Int(7), Int(9))},
		{Int(1), "add", arr(Int(1), Int(2)), arr(Int(2), Int(3))},
		{arr(Int(1), Int(2)), "subtract", Int(1), arr(Int(0), Int(1))},
		{Int(10), "subtract", arr(Int(1), Int(2)), arr(Int(9), Int(8))},
		{arr(Int(1), Int(2)), "divide", Int(2), arr(Float(0.5), Int(1))},
		{arr(Int(1), Float(2.5)), "maximum", Float(2), arr(Float(2), Float(2.5))},
		{Complex(1i), "multiply", arr(Int(2), Float(0.5)), arr(Complex(2i), Complex(0.5i))},
		{arr(Int(1), Int(2)), "add", arr(Int(1), Int(2), Int(3)), fail(Length)},
		{arr(Int(1), Int(2)), "add", nested, fail(Rank)},
		{nested, "add", arr(Int(1), Int(2)), fail(Rank)},
		{Int(1), "divide", arr(Int(1), Int(0)), fail(Domain)},
		{arr(Int(1), Int(2)), "power", arr(Int(0), Int(-1)), arr(Int(1), Float(0.5))},
		{arr(Complex(1i)), "maximum", arr(Int(1)), fail(Unsupported)},
		{NewArray(nil), "add", NewArray(nil), NewArray([]Value{})},
		{NewArray(nil), "add", Int(1), NewArray([]Value{})},
		{nested, "multiply", Int(2), arr(arr(Int(2), Int(4)), arr(Int(6), Int(8)))},
		{nested, "add", nested, arr(arr(Int(2), Int(4)), arr(Int(6), Int(8)))},
	}
	for _, test := range tests {
		got, err := Binary(nil, test.u, test.op, test.v)
		check(t, test.op, got, err, test.want)
	}
}

func TestUnary(t *testing.T) {
	var tests = []struct {
		op   string
		v    Value
		want interface{}
	}{
		{"conjugate", Int(3), Int(3)},
		{"conjugate", Float(-2.5), Float(-2.5)},
		{"conjugate", Complex(3 + 4i), Complex(3 - 4i)},
		{"negate", Int(3), Int(-3)},
		{"negate", Int(math.MinInt64), Float(9223372036854775808)},
		{"negate", Complex(3 - 4i), Complex(-3 + 4i)},
		{"reciprocal", Int(4), Float(0.25)},
		{"reciprocal", Int(1), Int(1)},
		{"reciprocal", Int(-1), Int(-1)},
		{"reciprocal", Float(0.5), Float(2)},
		{"reciprocal", Int(0), fail(Domain)},
		{"reciprocal", Float(0), fail(Domain)},
		{"reciprocal", Complex(0), fail(Domain)},
		{"reciprocal", Complex(2i), Complex(-0.5i)},
		{"sign", Float(-2.5), Int(-1)},
		{"sign", Float(0.1), Int(1)},
		{"sign", Int(0), Int(0)},
		{"sign", Int(-7), Int(-1)},
		{"sign", Complex(3 + 4i), Complex(0.6 + 0.8i)},
		{"sign", Complex(0), fail(Domain)},
		{"magnitude", Int(-3), Int(3)},
		{"magnitude", Float(-2.5), Float(2.5)},
		{"magnitude", Complex(3 + 4i), Float(5)},
		{"magnitude", Int(math.MinInt64), Float(9223372036854775808)},
		{"ceiling", Float(2.3), Int(3)},
		{"ceiling", Float(-2.3), Int(-2)},
		{"ceiling", Int(5), Int(5)},
		{"ceiling", Float(1e300), Float(1e300)},
		{"ceiling", Complex(1.5 - 1.5i), Complex(2 - 1i)},
		{"floor", Float(2.3), Int(2)},
		{"floor", Float(-2.3), Int(-3)},
		{"floor", Int(-5), Int(-5)},
		{"floor", Complex(1.5 - 1.5i), Complex(1 - 2i)},
		{"exponential", Int(0), Float(1)},
		{"exponential", Float(1), Float(math.E)},
		{"exponential", Float(1000), Float(math.Inf(1))},
		{"exponential", Complex(0), Complex(1)},
		{"negate", arr(Int(1), Float(2.5)), arr(Int(-1), Float(-2.5))},
		{"floor", arr(Float(1.5), Complex(1.5i)), arr(Int(1), Complex(1i))},
		{"reciprocal", arr(Int(2), Int(0)), fail(Domain)},
		{"sign", NewArray(nil), NewArray([]Value{})},
	}
	for _, test := range tests {
		got, err := Unary(nil, test.op, test.v)
		check(t, test.op, got, err, test.want)
	}
}

func TestComplexPower(t *testing.T) {
	// 2⋆0J1 is e⋆0J1×ln 2.
	got, err := Binary(nil, Int(2), "power", Complex(1i))
	if err != nil {
		t.Fatal(err)
	}
	want := complex(math.Cos(math.Ln2), math.Sin(math.Ln2))
	if cmplx.Abs(complex128(got.(Complex))-want) > 1e-15 {
		t.Errorf("2⋆0J1 = %v; want %v", got, want)
	}
	// A negative real base uses the principal logarithm.
	got, err = Binary(nil, Float(-1), "power", Complex(0.5))
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(complex128(got.(Complex))-1i) > 1e-15 {
		t.Errorf("¯1⋆0.5J0 = %v; want 0J1", got)
	}
}

func TestFloatPrec(t *testing.T) {
	// The result is rounded to a float64 whatever the working precision.
	c := new(testContext)
	for _, prec := range []uint{128, 256, 1000} {
		c.conf.SetFloatPrec(prec)
		got, err := Binary(c, Float(2), "power", Float(0.5))
		if err != nil {
			t.Fatal(err)
		}
		if got != Float(math.Sqrt2) {
			t.Errorf("prec %d: 2⋆0.5 = %v", prec, got)
		}
	}
}

func TestConjugateIdentity(t *testing.T) {
	for _, v := range []Value{Int(0), Int(-17), Int(math.MaxInt64), Float(2.5), Float(-0.125), Float(math.Inf(-1))} {
		once, err := Unary(nil, "conjugate", v)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Unary(nil, "conjugate", once)
		if err != nil {
			t.Fatal(err)
		}
		if once != v || twice != v {
			t.Errorf("conjugate %v: once %v, twice %v", v, once, twice)
		}
	}
	c := Complex(3 - 4i)
	twice, _ := Unary(nil, "conjugate", c.conj())
	if twice != c {
		t.Errorf("conjugate twice of %v is %v", c, twice)
	}
}

func TestCeilingFloorIdentity(t *testing.T) {
	for _, i := range []Int{0, 1, -1, math.MaxInt64, math.MinInt64} {
		for _, op := range []string{"ceiling", "floor"} {
			got, err := Unary(nil, op, i)
			if err != nil || got != i {
				t.Errorf("%s %d = %v, %v", op, i, got, err)
			}
		}
	}
}

func TestString(t *testing.T) {
	var tests = []struct {
		v    Value
		want string
	}{
		{Int(-5), "-5"},
		{Int(12), "12"},
		{Float(5), "5"},
		{Float(0.1), "0.1"},
		{Float(-2.5), "-2.5"},
		{Float(1e21), "1000000000000000000000"},
		{Complex(3 + 4i), "3J4"},
		{Complex(-1.5 - 2i), "-1.5J-2"},
		{arr(Int(1), Float(2.5), Complex(3 + 4i)), "1 2.5 3J4"},
		{NewArray(nil), ""},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Errorf("%#v: got %q; want %q", test.v, got, test.want)
		}
	}
}

func TestNestedStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic printing nested array")
		}
	}()
	_ = arr(arr(Int(1))).String()
}

func TestArray(t *testing.T) {
	a := arr(Int(1), Int(2), Int(3))
	if a.Rank() != 1 || !reflect.DeepEqual(a.Shape(), []int{3}) || a.Len() != 3 {
		t.Errorf("flat array: rank %d shape %v", a.Rank(), a.Shape())
	}
	if a.At(1) != Int(2) {
		t.Errorf("At(1) = %v", a.At(1))
	}
	n := arr(a, Int(4))
	if n.Rank() != 2 || !reflect.DeepEqual(n.Shape(), []int{2}) {
		t.Errorf("nested array: rank %d shape %v", n.Rank(), n.Shape())
	}
	z := NewArray(nil)
	if z.Rank() != 1 || !reflect.DeepEqual(z.Shape(), []int{0}) {
		t.Errorf("empty array: rank %d shape %v", z.Rank(), z.Shape())
	}
	// The result of an elementwise operation is a new array.
	neg, err := Unary(nil, "negate", a)
	if err != nil {
		t.Fatal(err)
	}
	if a.At(0) != Int(1) || neg.(*Array).At(0) != Int(-1) {
		t.Errorf("operand modified: %v %v", a, neg)
	}
}

func TestParse(t *testing.T) {
	var tests = []struct {
		text string
		want interface{}
	}{
		{"5", Int(5)},
		{"¯5", Int(-5)},
		{"0", Int(0)},
		{".5", Float(0.5)},
		{"¯2.25", Float(-2.25)},
		{"3J4", Complex(3 + 4i)},
		{"¯1.5J¯2", Complex(-1.5 - 2i)},
		{"0J.5", Complex(0.5i)},
		{"9223372036854775807", Int(math.MaxInt64)},
		{"99999999999999999999", fail(Lexical)},
	}
	for _, test := range tests {
		got, err := Parse(test.text)
		check(t, test.text, got, err, test.want)
	}
}

func TestError(t *testing.T) {
	err := error(Errorf(Domain, "division by zero"))
	if err.Error() != "domain error: division by zero" {
		t.Errorf("message %q", err)
	}
	if !errors.Is(err, ErrDomain) || errors.Is(err, ErrLength) {
		t.Error("errors.Is does not match on kind")
	}
	if !errors.Is(err, Errorf(Domain, "division by zero")) || errors.Is(err, Errorf(Domain, "other")) {
		t.Error("errors.Is does not match on message")
	}
	if got := Errorf(Unsupported, "nope").Error(); got != "unsupported operation: nope" {
		t.Errorf("message %q", got)
	}
	if got := ErrRank.Error(); got != "rank error" {
		t.Errorf("message %q", got)
	}
}

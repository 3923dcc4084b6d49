// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Apl is an interpreter for a small subset of APL. It reads lines from its
arguments or standard input and evaluates each as a single expression,
printing the result or an error. An error ends only the line it occurs on.

Usage:

	apl [-e] [-demo] [-config file] [-debug names] [-floatprec bits] [-prompt string] [file ...]

With -e, the arguments are joined and evaluated as one expression.
With -demo, apl runs a guided tour of the language.

Functions are evaluated right to left with no precedence, so 2×3+4 is 14.
A monadic function applies to everything on its right.

Values are integers (3, ¯1), floating-point numbers (2.5, .5, ¯1.25),
complex numbers written with J (3J4, ¯1.5J¯2), and vectors of those
written side by side (1 2 3). The high minus ¯ is part of a number; the
minus sign - or − is a function. ⍬ is the empty vector. Arithmetic on a
vector applies to each element; two vectors must be the same length.

Integer arithmetic is exact while the result fits in 64 bits and
becomes floating point when it does not, or when a division is inexact.
Power and exponential on real arguments are computed in extended
precision (set by -floatprec or the floatprec setting, default 128 bits)
and rounded to a float64.

Unary functions.

	Name         APL   Meaning
	Identity     +B    B; the complex conjugate of a complex B
	Negation     -B    Changes sign of B (also −B)
	Signum       ×B    ¯1 if B<0; 0 if B=0; 1 if B>0; B÷|B if complex
	Reciprocal   ÷B    1 divided by B
	Magnitude    |B    Absolute value of B (also ∣B)
	Ceiling      ⌈B    Least integer greater than or equal to B
	Floor        ⌊B    Greatest integer less than or equal to B
	Exponential  ⋆B    e to the B power (also *B)

Binary functions.

	Name         APL   Meaning
	Add          A+B   Sum of A and B
	Subtract     A-B   A minus B (also A−B)
	Multiply     A×B   A multiplied by B
	Divide       A÷B   A divided by B
	Power        A⋆B   A raised to the B power (also A*B)
	Maximum      A⌈B   The larger of A and B
	Minimum      A⌊B   The smaller of A and B

Maximum and minimum are not defined for complex numbers, nor is power
with a complex base. A comparison of an integer with a float yields
whichever value wins, unconverted.

Comments begin with ⍝ and run to the end of the line.

Settings may be read from a YAML file with -config:

	prompt: "      "
	debug: [parse, types]
	floatprec: 256

Command-line flags override the file. The debug settings are

	cpu     print the time used by each line
	parse   print the expression tree
	tokens  print each token as it is scanned
	types   print the Go type of each result
*/
package main

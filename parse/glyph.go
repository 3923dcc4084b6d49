// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

// The glyph tables map each primitive to the name of the function it
// selects in value.UnaryOps or value.BinaryOps. Some glyphs have an
// ASCII spelling as well.

var monadicGlyphs = map[string]string{
	"+": "conjugate",
	"-": "negate",
	"−": "negate",
	"×": "sign",
	"÷": "reciprocal",
	"|": "magnitude",
	"∣": "magnitude",
	"⌈": "ceiling",
	"⌊": "floor",
	"⋆": "exponential",
	"*": "exponential",
}

var dyadicGlyphs = map[string]string{
	"+": "add",
	"-": "subtract",
	"−": "subtract",
	"×": "multiply",
	"÷": "divide",
	"⌈": "maximum",
	"⌊": "minimum",
	"⋆": "power",
	"*": "power",
}

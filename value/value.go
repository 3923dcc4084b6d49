// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the run-time values of the interpreter,
// the numeric tower they live on, and the primitive functions that
// operate on them.
package value // import "robpike.io/apl/value"

import (
	"fmt"

	"robpike.io/apl/config"
)

// Value is a run-time value: an Int, Float, Complex or *Array.
// Values are never modified once made.
type Value interface {
	// String returns the printed form of the value.
	String() string

	// Rank returns the nesting depth: 0 for a scalar, 1 for a
	// flat array.
	Rank() int

	// toType widens the value to the given rung of the ladder.
	toType(valueType) Value
}

// Context is the evaluation context. It gives the primitives access
// to the configuration.
type Context interface {
	Config() *config.Config
}

// Expr is a node of the expression tree built by the parser.
type Expr interface {
	// ProgString returns a form of the expression that could be
	// scanned and parsed again.
	ProgString() string

	Eval(Context) (Value, error)
}

// ErrorKind classifies an Error.
type ErrorKind int

const (
	Lexical     ErrorKind = iota + 1 // malformed number or string, stray character
	Syntax                           // input that does not parse
	Domain                           // argument outside the function's domain
	Rank                             // arrays of different depth
	Length                           // arrays of different shape
	Unsupported                      // function not defined for the type
)

var kindNames = [...]string{
	Lexical:     "lexical",
	Syntax:      "syntax",
	Domain:      "domain",
	Rank:        "rank",
	Length:      "length",
	Unsupported: "unsupported",
}

func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// Error is the error type for everything that can go wrong scanning,
// parsing or evaluating a line.
type Error struct {
	Kind ErrorKind
	Msg  string
}

// Sentinels for use with errors.Is. An Error matches a sentinel
// of the same Kind whatever its message.
var (
	ErrLexical     = Error{Kind: Lexical}
	ErrSyntax      = Error{Kind: Syntax}
	ErrDomain      = Error{Kind: Domain}
	ErrRank        = Error{Kind: Rank}
	ErrLength      = Error{Kind: Length}
	ErrUnsupported = Error{Kind: Unsupported}
)

func (err Error) Error() string {
	if err.Kind == Unsupported {
		return "unsupported operation: " + err.Msg
	}
	if err.Msg == "" {
		return err.Kind.String() + " error"
	}
	return err.Kind.String() + " error: " + err.Msg
}

// Is reports whether target is an Error of the same kind
// with either no message or the same message.
func (err Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Kind == err.Kind && (t.Msg == "" || t.Msg == err.Msg)
}

// Errorf returns an Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

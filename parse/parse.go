// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse builds expression trees from scanned tokens.
//
// There is no precedence: functions bind right to left, so
//
//	2×3+4
//
// is 2×(3+4) and a monadic function applies to everything on its right.
package parse // import "robpike.io/apl/parse"

import (
	"fmt"
	"strings"

	"robpike.io/apl/config"
	"robpike.io/apl/scan"
	"robpike.io/apl/value"
)

// ErrEOF is returned by Statement when the input holds no statement.
var ErrEOF = value.Errorf(value.Syntax, "end of file")

// Tree formats an expression in an unambiguous form for debugging.
// It generates the output for the parse debug flag.
func Tree(e value.Expr) string {
	switch e := e.(type) {
	case value.ArrayExpr:
		if len(e) == 1 {
			return number(e[0])
		}
		return "<" + strings.Join(e, " ") + ">"
	case *value.VarExpr:
		return fmt.Sprintf("<var %s>", e.Name)
	case value.ZildeExpr:
		return "<⍬>"
	case *value.UnaryExpr:
		return fmt.Sprintf("(%s %s)", e.Op, Tree(e.Right))
	case *value.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", Tree(e.Left), e.Op, Tree(e.Right))
	default:
		return fmt.Sprintf("%T", e)
	}
}

// number formats a single number with its type.
func number(s string) string {
	v, err := value.Parse(s)
	if err != nil {
		return fmt.Sprintf("<bad %s>", s)
	}
	switch v.(type) {
	case value.Int:
		return fmt.Sprintf("<int %s>", s)
	case value.Float:
		return fmt.Sprintf("<float %s>", s)
	case value.Complex:
		return fmt.Sprintf("<complex %s>", s)
	}
	return fmt.Sprintf("<%T %s>", v, s)
}

// Parser stores the state for the parser. It holds one token of
// lookahead: tok is always the first token not yet consumed by a
// completed production.
type Parser struct {
	scanner *scan.Scanner
	conf    *config.Config
	tok     scan.Token
}

// NewParser returns a new parser that will read from the scanner.
func NewParser(conf *config.Config, scanner *scan.Scanner) *Parser {
	return &Parser{
		scanner: scanner,
		conf:    conf,
	}
}

func (p *Parser) next() error {
	tok, err := p.scanner.Next()
	p.tok = tok
	return err
}

// atEnd reports whether the input, or the statement, is exhausted.
func (p *Parser) atEnd() bool {
	return p.tok.Type == scan.EOF || p.tok.Type == scan.Newline
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return value.Errorf(value.Syntax, format, args...)
}

// Statement parses one statement. It returns ErrEOF if the input is
// blank. A statement must be followed by a newline or the end of input.
//
//	statement:
//		dyadic
func (p *Parser) Statement() (value.Expr, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.atEnd() {
		return nil, ErrEOF
	}
	expr, err := p.dyadic()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.errorf("unexpected token %s", p.tok.Text)
	}
	if p.conf.Debug("parse") {
		fmt.Fprintln(p.conf.Output(), Tree(expr))
	}
	return expr, nil
}

// dyadic
//
//	monadic
//	monadic primitive dyadic
func (p *Parser) dyadic() (value.Expr, error) {
	if p.atEnd() {
		return nil, p.errorf("unexpected end of source")
	}
	left, err := p.monadic()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != scan.Primitive {
		return left, nil
	}
	op := p.tok.Text
	fn := dyadicGlyphs[op]
	if fn == "" {
		return nil, p.errorf("unknown operator %s", op)
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	right, err := p.dyadic()
	if err != nil {
		return nil, err
	}
	return &value.BinaryExpr{
		Op:    op,
		Fn:    fn,
		Left:  left,
		Right: right,
	}, nil
}

// monadic
//
//	primitive dyadic
//	base
func (p *Parser) monadic() (value.Expr, error) {
	if p.atEnd() {
		return nil, p.errorf("unexpected end of source")
	}
	if p.tok.Type == scan.Primitive {
		if fn := monadicGlyphs[p.tok.Text]; fn != "" {
			op := p.tok.Text
			if err := p.next(); err != nil {
				return nil, err
			}
			right, err := p.dyadic()
			if err != nil {
				return nil, err
			}
			return &value.UnaryExpr{
				Op:    op,
				Fn:    fn,
				Right: right,
			}, nil
		}
	}
	return p.base()
}

// base
//
//	number...
//	variable
//	⍬
func (p *Parser) base() (value.Expr, error) {
	if p.atEnd() {
		return nil, p.errorf("unexpected end of source")
	}
	switch p.tok.Type {
	case scan.Number:
		var nums value.ArrayExpr
		for p.tok.Type == scan.Number {
			nums = append(nums, p.tok.Text)
			if err := p.next(); err != nil {
				return nil, err
			}
		}
		return nums, nil
	case scan.Variable:
		v := &value.VarExpr{Name: p.tok.Text}
		return v, p.next()
	case scan.Primitive:
		switch p.tok.Text {
		case "⍬":
			return value.ZildeExpr{}, p.next()
		case "(":
			return nil, p.errorf("parenthesized expressions not yet implemented")
		}
		return nil, p.errorf("unexpected primitive %s", p.tok.Text)
	}
	return nil, p.errorf("unexpected token %s", p.tok.Text)
}

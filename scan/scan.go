// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate stringer -type Type

// Package scan splits a line of APL source into tokens.
package scan // import "robpike.io/apl/scan"

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"robpike.io/apl/config"
	"robpike.io/apl/value"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type   Type   // The type of this item.
	Offset int    // Byte offset of the token in the input.
	Text   string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF     Type = iota // end of input
	Newline             // "\n", "\r" or "\r\n"
	// Interesting things
	Number    // number, possibly complex, like ¯1.5J2
	String    // quoted string (includes quotes)
	Primitive // primitive glyph
	Variable  // identifier
)

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// primitives holds every glyph the scanner accepts as a primitive,
// whether or not the interpreter can evaluate it.
const primitives = "+-−×÷⌈⌊∣|⍳?⋆*⍟○!⌹<≤=≥>≠≡≢∊⍷∪∩~∨∧⍱⍲⍴,⍪⌽⊖⍉↑↓⊂⊃⌷⍋⍒⊤⊥⍺⍕⍎⊣⊢▯⍞/\\⍀⌿∘¨[]⍬⋄∇⍫()←{}⍵"

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	conf      *config.Config
	name      string // the name of the input; used only for error reports
	input     string // the line of text being scanned.
	lastWidth int    // size of most recent return from next()
	pos       int    // current position in the input
	start     int    // start position of this item
	token     Token
	err       error // set by errorf; the scanner is then exhausted
}

// New creates and returns a new scanner for the input.
func New(conf *config.Config, name, input string) *Scanner {
	return &Scanner{
		conf:  conf,
		name:  name,
		input: input,
	}
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if l.pos >= len(l.input) {
		l.lastWidth = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.lastWidth = w
	l.pos += w
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	l.pos -= l.lastWidth
	l.lastWidth = 0
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	l.token = Token{t, l.start, l.input[l.start:l.pos]}
	if l.conf.Debug("tokens") {
		fmt.Fprintf(l.conf.Output(), "%s:%d: emit %s\n", l.name, l.start, l.token)
	}
	l.start = l.pos
	return nil
}

// accept consumes the next rune if it's from the valid set.
func (l *Scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// errorf records a lexical error and empties the input.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.err = value.Errorf(value.Lexical, format, args...)
	l.input = ""
	l.start = 0
	l.pos = 0
	return nil
}

// Next returns the next token. After an error every call returns EOF.
func (l *Scanner) Next() (Token, error) {
	l.token = Token{EOF, len(l.input), ""}
	state := lexAny
	for state != nil {
		state = state(l)
	}
	if err := l.err; err != nil {
		l.err = nil
		return Token{EOF, l.start, ""}, err
	}
	return l.token, nil
}

// state functions

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == ' ':
		return lexSpace
	case r == '⍝':
		return lexComment
	case r == '\r':
		l.accept("\n")
		return l.emit(Newline)
	case r == '\n':
		return l.emit(Newline)
	case r == '.':
		// A period followed by a digit starts a number.
		if isDigit(l.peek()) {
			l.backup()
			return lexNumber
		}
		return l.emit(Primitive)
	case r == '¯' || isDigit(r):
		l.backup()
		return lexNumber
	case r == '\'' || r == '"':
		l.backup() // So lexQuote can read the quote character.
		return lexQuote
	case isPrimitive(r):
		if r == '∘' {
			l.accept(".") // outer product
		}
		return l.emit(Primitive)
	case isVariable(r):
		return lexVariable
	default:
		return l.errorf("unrecognized character %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for l.peek() == ' ' {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexComment scans a comment. The comment marker has been consumed.
// The line terminator, if any, is left for lexAny.
func lexComment(l *Scanner) stateFn {
	for {
		r := l.peek()
		if r == eof || r == '\n' || r == '\r' {
			break
		}
		l.next()
	}
	l.start = l.pos
	return lexAny
}

// lexNumber scans a number: digits with at most one period, each
// part optionally negated by a high minus, with J separating the real
// and imaginary parts. A number may not end with a period, J or high minus.
func lexNumber(l *Scanner) stateFn {
	last := l.next()
	periodSeen := last == '.'
	complexSeen := false
	negativeAllowed := false
	for {
		switch r := l.peek(); {
		case r == '¯':
			if !negativeAllowed {
				l.next()
				return l.errorf("invalid number %s", l.input[l.start:l.pos])
			}
			negativeAllowed = false
		case r == 'J':
			if complexSeen {
				l.next()
				return l.errorf("invalid number %s", l.input[l.start:l.pos])
			}
			complexSeen = true
			periodSeen = false
			negativeAllowed = true
		case r == '.':
			if periodSeen {
				l.next()
				return l.errorf("invalid number %s", l.input[l.start:l.pos])
			}
			periodSeen = true
			negativeAllowed = false
		case isDigit(r):
			negativeAllowed = false
		default:
			if last == '.' || last == 'J' || last == '¯' {
				return l.errorf("invalid number %s", l.input[l.start:l.pos])
			}
			return l.emit(Number)
		}
		last = l.next()
	}
}

// lexQuote scans a quoted string. A doubled quote stands for itself.
// The next character is the quote.
func lexQuote(l *Scanner) stateFn {
	quote := l.next()
	for {
		switch l.next() {
		case eof:
			return l.errorf("unexpected end of file")
		case quote:
			if l.peek() != quote {
				return l.emit(String)
			}
			l.next()
		}
	}
}

// lexVariable scans an identifier. The first character has been consumed.
func lexVariable(l *Scanner) stateFn {
	for isVariable(l.peek()) {
		l.next()
	}
	return l.emit(Variable)
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isPrimitive reports whether r is a primitive glyph.
func isPrimitive(r rune) bool {
	return r != eof && strings.ContainsRune(primitives, r)
}

// isVariable reports whether r may appear in an identifier.
// The ASCII range runs from A through z inclusive, so it takes in [ \ ] ^ _ and `,
// though the brackets and backslash are claimed first as primitives.
func isVariable(r rune) bool {
	return r == '∆' || r == '⍙' || 'A' <= r && r <= 'z'
}

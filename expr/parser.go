// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

// Parser limits; both keep compile and evaluation bounded.
const (
	// MaxLength is the longest accepted source text in bytes.
	MaxLength = 1024

	// MaxDepth is the deepest accepted nesting of unary/parenthesised terms.
	MaxDepth = 64
)

// parser is a single-use recursive-descent parser over text/scanner tokens.
type parser struct {
	src   string
	sc    scanner.Scanner
	tok   rune   // current token
	text  string // current token text
	pos   int    // byte offset of current token
	depth int
	scErr error // first error reported by the scanner
}

func newParser(src string) *parser {
	p := &parser{src: src}
	p.sc.Init(strings.NewReader(src))
	p.sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	p.sc.Error = func(s *scanner.Scanner, msg string) {
		if p.scErr == nil {
			p.scErr = compileError(p.src, s.Pos().Offset, fmt.Errorf("%w: %s", ErrSyntax, msg))
		}
	}
	p.next()

	return p
}

// next advances to the following token.
func (p *parser) next() {
	p.tok = p.sc.Scan()
	p.text = p.sc.TokenText()
	p.pos = p.sc.Position.Offset
	if p.tok == scanner.EOF {
		p.pos = len(p.src)
	}
}

func (p *parser) errorf(sentinel error, format string, args ...any) error {
	return compileError(p.src, p.pos, fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...))
}

func (p *parser) unexpected() error {
	if p.tok == scanner.EOF {
		return p.errorf(ErrSyntax, "unexpected end of input")
	}

	return p.errorf(ErrSyntax, "unexpected %q", p.text)
}

// parse consumes the whole input or reports the first violation.
func (p *parser) parse() (node, error) {
	n, err := p.parseExpr()
	if err == nil && p.tok != scanner.EOF {
		err = p.unexpected()
	}
	// A scanner-level error (e.g. "1e+") takes precedence: it is the root cause.
	if p.scErr != nil {
		return nil, p.scErr
	}
	if err != nil {
		return nil, err
	}

	return n, nil
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok == '+' || p.tok == '-' {
		op := p.tok
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}

	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok == '*' || p.tok == '/' {
		op := p.tok
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}

	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxDepth {
		return nil, p.errorf(ErrTooComplex, "nesting deeper than %d", MaxDepth)
	}

	if p.tok == '+' || p.tok == '-' {
		op := p.tok
		p.next()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return unaryNode{op: op, arg: arg}, nil
	}

	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	switch {
	case p.tok == '^':
		p.next()
	case p.tok == '*' && p.sc.Peek() == '*': // "**", adjacent stars only
		p.next()
		p.next()
	default:
		return base, nil
	}

	exp, err := p.parseUnary() // right associative: 2^3^2 == 2^(3^2)
	if err != nil {
		return nil, err
	}

	return binaryNode{op: '^', left: base, right: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.tok {
	case scanner.Int, scanner.Float:
		if err := p.checkLiteral(); err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(p.text, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, p.errorf(ErrSyntax, "number %s out of range", p.text)
			}

			return nil, p.errorf(ErrSyntax, "malformed number %s", p.text)
		}
		p.next()

		return numberNode(v), nil

	case scanner.Ident:
		return p.parseIdent()

	case '(':
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok != ')' {
			return nil, p.errorf(ErrSyntax, "missing ')'")
		}
		p.next()

		return inner, nil

	default:
		return nil, p.unexpected()
	}
}

// checkLiteral limits numbers to plain decimal forms. The scanner also
// accepts Go literals (0x10, 0b1, 0o7, 1_000, 0x1p-2) and integers with
// leading zeros such as 010; none of these are valid decimal input.
func (p *parser) checkLiteral() error {
	t := p.text
	if strings.ContainsRune(t, '_') {
		return p.errorf(ErrSyntax, "malformed number %s", t)
	}
	if len(t) < 2 || t[0] != '0' {
		return nil
	}
	switch t[1] {
	case 'x', 'X', 'b', 'B', 'o', 'O':
		return p.errorf(ErrSyntax, "base-prefixed number %s", t)
	}
	if p.tok == scanner.Int && strings.Trim(t, "0") != "" {
		return p.errorf(ErrSyntax, "leading zeros in integer %s", t)
	}

	return nil
}

// parseIdent resolves a name strictly against the allow-list.
func (p *parser) parseIdent() (node, error) {
	name := p.text
	if name == compatPrefix && p.sc.Peek() == '.' {
		p.next() // '.'
		p.next()
		if p.tok != scanner.Ident {
			return nil, p.errorf(ErrSyntax, "expected a name after %s.", compatPrefix)
		}
		name = p.text
		if _, ok := functions[name]; !ok {
			if _, ok = constants[name]; !ok {
				return nil, p.errorf(ErrUnknownIdentifier, "%q", compatPrefix+"."+name)
			}
		}
	}

	if name == Variable {
		p.next()
		return variableNode{}, nil
	}
	if v, ok := constants[name]; ok {
		p.next()
		return constantNode{name: name, value: v}, nil
	}
	fn, ok := functions[name]
	if !ok {
		return nil, p.errorf(ErrUnknownIdentifier, "%q", name)
	}

	p.next()
	if p.tok != '(' {
		return nil, p.errorf(ErrSyntax, "expected '(' after %s", name)
	}
	p.next()

	args := make([]node, 0, fn.arity)
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.tok != ',' {
			break
		}
		p.next()
	}
	if p.tok != ')' {
		return nil, p.errorf(ErrSyntax, "missing ')' after arguments of %s", name)
	}
	if len(args) != fn.arity {
		return nil, p.errorf(ErrArity, "%s takes %d, got %d", name, fn.arity, len(args))
	}
	p.next()

	return callNode{fn: fn, args: args}, nil
}

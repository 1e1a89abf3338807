// Package expr evaluates the restricted arithmetic expressions found in
// grade files. The grammar is an explicit allow-list: numeric literals,
// the operators + - * /, parentheses, tuple and list literals, keyword
// arguments, and calls to exactly three builtin functions plus the bare
// identifier "unknown". Anything else is rejected. There is deliberately
// no attribute access, no imports and no general identifier lookup; the
// grammar itself is the security boundary.
package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Token kinds produced by the lexer.
type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenIdent
	tokenPunct // one of ( ) [ ] , = + - * /
	tokenEOF
)

// token is a single lexeme with its source position for error reporting.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// AST node types. The evaluator switches exhaustively over these.
type (
	node interface{ isNode() }

	// numberNode is a numeric literal.
	numberNode struct{ value float64 }

	// nameNode is a bare identifier reference (only "unknown" resolves).
	nameNode struct{ name string }

	// listNode is a [a, b, ...] literal.
	listNode struct{ items []node }

	// tupleNode is a (a, b, ...) literal.
	tupleNode struct{ items []node }

	// unaryNode is a prefix minus.
	unaryNode struct{ operand node }

	// binaryNode is one of + - * /.
	binaryNode struct {
		op          byte
		left, right node
	}

	// callNode is fn(args..., name=value...). Keyword order is preserved
	// so argument binding stays deterministic.
	callNode struct {
		fn      string
		args    []node
		kwNames []string
		kwargs  map[string]node
	}
)

func (numberNode) isNode() {}
func (nameNode) isNode()   {}
func (listNode) isNode()   {}
func (tupleNode) isNode()  {}
func (unaryNode) isNode()  {}
func (binaryNode) isNode() {}
func (callNode) isNode()   {}

// lex splits an expression string into tokens.
func lex(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case strings.IndexByte("()[],=+-*/", c) >= 0:
			tokens = append(tokens, token{kind: tokenPunct, text: string(c), pos: i})
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			seenDot := false
			for i < len(input) && (input[i] >= '0' && input[i] <= '9' || input[i] == '.') {
				if input[i] == '.' {
					if seenDot {
						return nil, fmt.Errorf("malformed number at position %d", start)
					}
					seenDot = true
				}
				i++
			}
			text := input[start:i]
			if text == "." {
				return nil, fmt.Errorf("malformed number at position %d", start)
			}
			tokens = append(tokens, token{kind: tokenNumber, text: text, pos: start})
		case isIdentStart(rune(c)):
			start := i
			for i < len(input) && isIdentPart(rune(input[i])) {
				i++
			}
			tokens = append(tokens, token{kind: tokenIdent, text: input[start:i], pos: start})
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", c, i)
		}
	}
	tokens = append(tokens, token{kind: tokenEOF, pos: len(input)})
	return tokens, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// parser is a recursive-descent parser over the token stream.
type parser struct {
	tokens []token
	pos    int
}

// parse builds the AST for a full expression and requires that the entire
// input is consumed.
func parse(input string) (node, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokenEOF {
		return nil, fmt.Errorf("unexpected token %q at position %d", p.peek().text, p.peek().pos)
	}
	return n, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

// acceptPunct consumes the next token when it is the given punctuation.
func (p *parser) acceptPunct(text string) bool {
	if t := p.peek(); t.kind == tokenPunct && t.text == text {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expectPunct(text string) error {
	if !p.acceptPunct(text) {
		t := p.peek()
		return fmt.Errorf("expected %q at position %d", text, t.pos)
	}
	return nil
}

// parseExpression := term (('+' | '-') term)*
func (p *parser) parseExpression() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op byte
		switch {
		case p.acceptPunct("+"):
			op = '+'
		case p.acceptPunct("-"):
			op = '-'
		default:
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

// parseTerm := unary (('*' | '/') unary)*
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op byte
		switch {
		case p.acceptPunct("*"):
			op = '*'
		case p.acceptPunct("/"):
			op = '/'
		default:
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

// parseUnary := '-' unary | primary
func (p *parser) parseUnary() (node, error) {
	if p.acceptPunct("-") {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{operand: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary := NUMBER | IDENT ['(' callArgs ')'] | '(' exprList ')' | '[' exprList ']'
func (p *parser) parsePrimary() (node, error) {
	t := p.peek()
	switch t.kind {
	case tokenNumber:
		p.next()
		value, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed number %q at position %d", t.text, t.pos)
		}
		return numberNode{value: value}, nil

	case tokenIdent:
		p.next()
		if p.acceptPunct("(") {
			return p.parseCall(t.text)
		}
		return nameNode{name: t.text}, nil

	case tokenPunct:
		switch t.text {
		case "(":
			p.next()
			return p.parseParenthesized()
		case "[":
			p.next()
			items, err := p.parseExprList("]")
			if err != nil {
				return nil, err
			}
			return listNode{items: items}, nil
		}
	}
	return nil, fmt.Errorf("unexpected token %q at position %d", t.text, t.pos)
}

// parseParenthesized handles grouping vs tuple literals: "(x)" groups while
// "(x,)" and "(x, y)" build tuples. The opening paren is already consumed.
func (p *parser) parseParenthesized() (node, error) {
	if p.acceptPunct(")") {
		return tupleNode{}, nil
	}
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.acceptPunct(",") {
		if err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		return first, nil
	}
	items := []node{first}
	for {
		if p.acceptPunct(")") {
			return tupleNode{items: items}, nil
		}
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.acceptPunct(",") {
			if err := p.expectPunct(")"); err != nil {
				return nil, err
			}
			return tupleNode{items: items}, nil
		}
	}
}

// parseExprList parses a comma-separated expression list up to the given
// closing punctuation, allowing a trailing comma.
func (p *parser) parseExprList(closing string) ([]node, error) {
	var items []node
	if p.acceptPunct(closing) {
		return items, nil
	}
	for {
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.acceptPunct(",") {
			if p.acceptPunct(closing) {
				return items, nil
			}
			continue
		}
		if err := p.expectPunct(closing); err != nil {
			return nil, err
		}
		return items, nil
	}
}

// parseCall parses the argument list of fn(...). The opening paren is
// already consumed. Positional arguments must precede keyword arguments.
func (p *parser) parseCall(fn string) (node, error) {
	call := callNode{fn: fn, kwargs: make(map[string]node)}
	if p.acceptPunct(")") {
		return call, nil
	}
	for {
		// A keyword argument is IDENT '=' expression.
		if t := p.peek(); t.kind == tokenIdent && p.tokens[p.pos+1].kind == tokenPunct && p.tokens[p.pos+1].text == "=" {
			p.pos += 2
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, dup := call.kwargs[t.text]; dup {
				return nil, fmt.Errorf("duplicate keyword argument %q", t.text)
			}
			call.kwNames = append(call.kwNames, t.text)
			call.kwargs[t.text] = value
		} else {
			if len(call.kwNames) > 0 {
				return nil, fmt.Errorf("positional argument after keyword argument at position %d", t.pos)
			}
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			call.args = append(call.args, arg)
		}
		if p.acceptPunct(",") {
			if p.acceptPunct(")") {
				return call, nil
			}
			continue
		}
		if err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		return call, nil
	}
}

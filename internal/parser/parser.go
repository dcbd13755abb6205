package parser

import (
	"strconv"

	"github.com/HicaroD/clite/internal/ast"
	"github.com/HicaroD/clite/internal/diagnostics"
	"github.com/HicaroD/clite/internal/lexer"
	"github.com/HicaroD/clite/internal/lexer/token"
)

// TokenSource hands out one token per call. Past the end of input it must
// keep returning a token that matches nothing, such as token.Sentinel.
type TokenSource interface {
	Next() *token.Token
}

// Parser is a predictive recursive-descent parser with a single token of
// lookahead. A Parser is good for one parse.
type Parser struct {
	src       TokenSource
	collector *diagnostics.Collector

	cur *token.Token
	end token.Pos
}

func New(src TokenSource, collector *diagnostics.Collector) *Parser {
	if collector == nil {
		collector = diagnostics.New()
	}
	parser := new(Parser)
	parser.src = src
	parser.collector = collector
	parser.next()
	return parser
}

// FromTokens wraps an already scanned token slice.
func FromTokens(tokens []*token.Token) TokenSource {
	var end token.Pos
	if len(tokens) > 0 {
		end = tokens[len(tokens)-1].Pos
	}
	return lexer.NewStream(tokens, end)
}

func (p *Parser) next() {
	tok := p.src.Next()
	if tok == nil {
		tok = token.Sentinel(p.end)
	}
	p.end = tok.Pos
	p.cur = tok
}

func (p *Parser) at(kind token.Kind, lexeme string) bool {
	return p.cur.Is(kind, lexeme)
}

func (p *Parser) expect(kind token.Kind, lexeme string) (*token.Token, bool) {
	tok := p.cur
	if !tok.Is(kind, lexeme) {
		return tok, false
	}
	p.next()
	return tok, true
}

func (p *Parser) syntaxError(expected string) error {
	err := diagnostics.NewSyntaxError(expected, p.cur)
	p.collector.ReportAndSave(diagnostics.NewDiag(err.Pos, err))
	return err
}

func (p *Parser) Program() (*ast.Program, error) {
	if _, ok := p.expect(token.KEYWORD, "main"); !ok {
		return nil, p.syntaxError("main")
	}
	if _, ok := p.expect(token.SEPARATOR, "{"); !ok {
		return nil, p.syntaxError("{")
	}

	decpart, err := p.declarations()
	if err != nil {
		return nil, err
	}

	body := new(ast.Block)
	err = p.statements(body)
	if err != nil {
		return nil, err
	}

	if _, ok := p.expect(token.SEPARATOR, "}"); !ok {
		return nil, p.syntaxError("}")
	}

	return &ast.Program{Decpart: decpart, Body: body}, nil
}

func (p *Parser) declarations() (ast.Declarations, error) {
	decs := ast.Declarations{}

	for p.cur.Kind == token.KEYWORD {
		t, ok := ast.TypeFromKeyword(p.cur.Lexeme)
		if !ok {
			break
		}
		p.next()

		if p.cur.Kind != token.IDENTIFIER {
			return nil, p.syntaxError("Identifier")
		}
		for {
			decs = append(decs, &ast.Declaration{V: &ast.Variable{ID: p.cur.Lexeme}, T: t})
			p.next()

			if !p.at(token.SEPARATOR, ",") {
				break
			}
			p.next()
			if p.cur.Kind != token.IDENTIFIER {
				return nil, p.syntaxError("Identifier")
			}
		}

		if _, ok := p.expect(token.SEPARATOR, ";"); !ok {
			return nil, p.syntaxError(";")
		}
	}

	return decs, nil
}

// statements fills b until the closing "}" of the enclosing block; the
// brace itself is left for the caller.
func (p *Parser) statements(b *ast.Block) error {
	for !p.at(token.SEPARATOR, "}") {
		stmt, err := p.statement()
		if err != nil {
			return err
		}
		b.Members = append(b.Members, stmt)
	}
	return nil
}

func (p *Parser) statement() (ast.Statement, error) {
	switch {
	case p.at(token.KEYWORD, "if"):
		return p.conditional()
	case p.at(token.KEYWORD, "while"):
		return p.loop()
	case p.cur.Kind == token.IDENTIFIER:
		return p.assignment()
	default:
		return nil, p.syntaxError("Statement")
	}
}

func (p *Parser) assignment() (*ast.Assignment, error) {
	target := &ast.Variable{ID: p.cur.Lexeme}
	p.next()

	if _, ok := p.expect(token.OPERATOR, ":="); !ok {
		return nil, p.syntaxError(":=")
	}

	source, err := p.Expression()
	if err != nil {
		return nil, err
	}

	if _, ok := p.expect(token.SEPARATOR, ";"); !ok {
		return nil, p.syntaxError(";")
	}

	return &ast.Assignment{Target: target, Source: source}, nil
}

func (p *Parser) conditional() (*ast.Conditional, error) {
	p.next() // if

	test, err := p.parenthesized()
	if err != nil {
		return nil, err
	}

	thenBranch, err := p.block()
	if err != nil {
		return nil, err
	}

	cond := &ast.Conditional{Test: test, ThenBranch: thenBranch}
	if p.at(token.KEYWORD, "else") {
		p.next()
		cond.ElseBranch, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	return cond, nil
}

func (p *Parser) loop() (*ast.Loop, error) {
	p.next() // while

	test, err := p.parenthesized()
	if err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.Loop{Test: test, Body: body}, nil
}

func (p *Parser) parenthesized() (ast.Expression, error) {
	if _, ok := p.expect(token.SEPARATOR, "("); !ok {
		return nil, p.syntaxError("(")
	}
	expr, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if _, ok := p.expect(token.SEPARATOR, ")"); !ok {
		return nil, p.syntaxError(")")
	}
	return expr, nil
}

// block parses the body of an if, else or while. It never accepts
// declarations: a type keyword here fails as a bad statement.
func (p *Parser) block() (*ast.Block, error) {
	if _, ok := p.expect(token.SEPARATOR, "{"); !ok {
		return nil, p.syntaxError("{")
	}

	b := new(ast.Block)
	if err := p.statements(b); err != nil {
		return nil, err
	}

	if _, ok := p.expect(token.SEPARATOR, "}"); !ok {
		return nil, p.syntaxError("}")
	}
	return b, nil
}

// Expression parses one expression and stops at the first token that
// cannot continue it. Whatever follows is left for the caller.
func (p *Parser) Expression() (ast.Expression, error) {
	return p.or()
}

func (p *Parser) or() (ast.Expression, error) {
	lhs, err := p.and()
	if err != nil {
		return nil, err
	}

	for p.at(token.OPERATOR, "||") {
		p.next()
		rhs, err := p.and()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Binary{Op: ast.OR, Term1: lhs, Term2: rhs}
	}
	return lhs, nil
}

func (p *Parser) and() (ast.Expression, error) {
	lhs, err := p.relation()
	if err != nil {
		return nil, err
	}

	for p.at(token.OPERATOR, "&&") {
		p.next()
		rhs, err := p.relation()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Binary{Op: ast.AND, Term1: lhs, Term2: rhs}
	}
	return lhs, nil
}

// relation accepts at most one comparison: "a < b < c" stops after "a < b".
func (p *Parser) relation() (ast.Expression, error) {
	lhs, err := p.addition()
	if err != nil {
		return nil, err
	}

	if p.cur.Kind != token.OPERATOR {
		return lhs, nil
	}
	op, ok := ast.RELATIONAL[p.cur.Lexeme]
	if !ok {
		return lhs, nil
	}
	p.next()

	rhs, err := p.addition()
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Op: op, Term1: lhs, Term2: rhs}, nil
}

func (p *Parser) addition() (ast.Expression, error) {
	lhs, err := p.multiplication()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind == token.OPERATOR {
		op, ok := ast.ADDITIVE[p.cur.Lexeme]
		if !ok {
			break
		}
		p.next()
		rhs, err := p.multiplication()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Binary{Op: op, Term1: lhs, Term2: rhs}
	}
	return lhs, nil
}

func (p *Parser) multiplication() (ast.Expression, error) {
	lhs, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind == token.OPERATOR {
		op, ok := ast.MULTIPLICATIVE[p.cur.Lexeme]
		if !ok {
			break
		}
		p.next()
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Binary{Op: op, Term1: lhs, Term2: rhs}
	}
	return lhs, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	if p.cur.Kind == token.OPERATOR {
		if op, ok := ast.UNARY[p.cur.Lexeme]; ok {
			p.next()
			term, err := p.unary()
			if err != nil {
				return nil, err
			}
			return &ast.Unary{Op: op, Term: term}, nil
		}
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expression, error) {
	switch {
	case p.cur.Kind == token.IDENTIFIER:
		v := &ast.Variable{ID: p.cur.Lexeme}
		p.next()
		return v, nil
	case p.cur.Kind == token.LITERAL:
		v, err := p.literal()
		if err != nil {
			return nil, err
		}
		p.next()
		return v, nil
	case p.at(token.SEPARATOR, "("):
		p.next()
		expr, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if _, ok := p.expect(token.SEPARATOR, ")"); !ok {
			return nil, p.syntaxError(")")
		}
		return expr, nil
	default:
		return nil, p.syntaxError("Expression")
	}
}

// literal converts the current Literal token without consuming it. Both
// spellings of the booleans are accepted so that hand-built token streams
// carrying "true"/"false" literals work too.
func (p *Parser) literal() (*ast.Value, error) {
	switch p.cur.Lexeme {
	case "True", "true":
		return ast.BoolValue(true), nil
	case "False", "false":
		return ast.BoolValue(false), nil
	}
	n, err := strconv.ParseInt(p.cur.Lexeme, 10, 32)
	if err != nil {
		return nil, p.syntaxError("integer literal")
	}
	return ast.IntValue(int(n)), nil
}

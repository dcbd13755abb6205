package parser

import (
	"github.com/HicaroD/clite/internal/ast"
	"github.com/HicaroD/clite/internal/diagnostics"
	"github.com/HicaroD/clite/internal/lexer"
)

// ParseFile runs the whole front end over an already configured lexer.
// An unreadable file surfaces as the usual syntax error at "main"; callers
// that want the I/O error can ask lex.ReadErr.
func ParseFile(lex *lexer.Lexer, collector *diagnostics.Collector) (*ast.Program, error) {
	p := New(lex.Stream(), collector)
	return p.Program()
}

// Useful for testing
func ParseProgramFrom(input, filename string) (*ast.Program, error) {
	lex := lexer.New(filename, []byte(input))
	return ParseFile(lex, diagnostics.New())
}

// ParseExpr parses a standalone expression. Unlike Parser.Expression it
// requires the whole input to be consumed.
func ParseExpr(lex *lexer.Lexer, collector *diagnostics.Collector) (ast.Expression, error) {
	p := New(lex.Stream(), collector)

	e, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if !p.cur.IsSentinel() {
		return nil, p.syntaxError("end of input")
	}
	return e, nil
}

// Useful for testing
func ParseExprFrom(expr, filename string) (ast.Expression, error) {
	lex := lexer.New(filename, []byte(expr))
	return ParseExpr(lex, diagnostics.New())
}

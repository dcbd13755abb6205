package testutil

import (
	"github.com/HicaroD/clite/internal/ast"
	"github.com/HicaroD/clite/internal/lexer"
	"github.com/HicaroD/clite/internal/lexer/token"
)

const DefaultFilename = "test.cl"

func NewLexer(src string, filename string) *lexer.Lexer {
	if filename == "" {
		filename = DefaultFilename
	}
	return lexer.New(filename, []byte(src))
}

// Tok builds a token at line 1, column 1 of the default file. Tests that
// only compare kinds and lexemes use it with token.Equivalent.
func Tok(kind token.Kind, lexeme string) *token.Token {
	return token.New(lexeme, kind, token.NewPosition(DefaultFilename, 1, 1))
}

func Var(id string) *ast.Variable {
	return &ast.Variable{ID: id}
}

func Int(n int) *ast.Value {
	return ast.IntValue(n)
}

func Bool(b bool) *ast.Value {
	return ast.BoolValue(b)
}

func Bin(op ast.Operator, term1, term2 ast.Expression) *ast.Binary {
	return &ast.Binary{Op: op, Term1: term1, Term2: term2}
}

func Un(op ast.Operator, term ast.Expression) *ast.Unary {
	return &ast.Unary{Op: op, Term: term}
}

func Assign(target string, source ast.Expression) *ast.Assignment {
	return &ast.Assignment{Target: Var(target), Source: source}
}

func If(test ast.Expression, thenBranch, elseBranch *ast.Block) *ast.Conditional {
	return &ast.Conditional{Test: test, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func While(test ast.Expression, body *ast.Block) *ast.Loop {
	return &ast.Loop{Test: test, Body: body}
}

func Block(stmts ...ast.Statement) *ast.Block {
	return &ast.Block{Members: stmts}
}

func Decl(id string, t ast.Type) *ast.Declaration {
	return &ast.Declaration{V: Var(id), T: t}
}

func Program(decls []*ast.Declaration, body *ast.Block) *ast.Program {
	if decls == nil {
		decls = ast.Declarations{}
	}
	return &ast.Program{Decpart: decls, Body: body}
}

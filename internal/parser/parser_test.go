package parser

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/HicaroD/clite/internal/ast"
	"github.com/HicaroD/clite/internal/diagnostics"
	"github.com/HicaroD/clite/internal/lexer"
	"github.com/HicaroD/clite/internal/lexer/token"
	tu "github.com/HicaroD/clite/internal/testutil"
)

type exprTest struct {
	input string
	expr  ast.Expression
}

func TestExpressions(t *testing.T) {
	filename := "test.cl"

	tests := []exprTest{
		{"x", tu.Var("x")},
		{"42", tu.Int(42)},
		{"007", tu.Int(7)},
		{"True", tu.Bool(true)},
		{"False", tu.Bool(false)},
		{"(x)", tu.Var("x")},
		{"((1))", tu.Int(1)},

		// precedence
		{"1+2*3", tu.Bin(ast.PLUS, tu.Int(1), tu.Bin(ast.TIMES, tu.Int(2), tu.Int(3)))},
		{"1*2+3", tu.Bin(ast.PLUS, tu.Bin(ast.TIMES, tu.Int(1), tu.Int(2)), tu.Int(3))},
		{"(1+2)*3", tu.Bin(ast.TIMES, tu.Bin(ast.PLUS, tu.Int(1), tu.Int(2)), tu.Int(3))},
		{"a+1 < b*2", tu.Bin(ast.LT,
			tu.Bin(ast.PLUS, tu.Var("a"), tu.Int(1)),
			tu.Bin(ast.TIMES, tu.Var("b"), tu.Int(2)),
		)},
		{"a || b && c", tu.Bin(ast.OR, tu.Var("a"), tu.Bin(ast.AND, tu.Var("b"), tu.Var("c")))},
		{"a && b || c", tu.Bin(ast.OR, tu.Bin(ast.AND, tu.Var("a"), tu.Var("b")), tu.Var("c"))},
		{"a < b && c >= d", tu.Bin(ast.AND,
			tu.Bin(ast.LT, tu.Var("a"), tu.Var("b")),
			tu.Bin(ast.GE, tu.Var("c"), tu.Var("d")),
		)},

		// left associativity
		{"1-2-3", tu.Bin(ast.MINUS, tu.Bin(ast.MINUS, tu.Int(1), tu.Int(2)), tu.Int(3))},
		{"8/4/2", tu.Bin(ast.DIV, tu.Bin(ast.DIV, tu.Int(8), tu.Int(4)), tu.Int(2))},
		{"a||b||c", tu.Bin(ast.OR, tu.Bin(ast.OR, tu.Var("a"), tu.Var("b")), tu.Var("c"))},
		{"a&&b&&c", tu.Bin(ast.AND, tu.Bin(ast.AND, tu.Var("a"), tu.Var("b")), tu.Var("c"))},

		// unary
		{"-x", tu.Un(ast.MINUS, tu.Var("x"))},
		{"!!x", tu.Un(ast.NOT, tu.Un(ast.NOT, tu.Var("x")))},
		{"--1", tu.Un(ast.MINUS, tu.Un(ast.MINUS, tu.Int(1)))},
		{"-x*y", tu.Bin(ast.TIMES, tu.Un(ast.MINUS, tu.Var("x")), tu.Var("y"))},
		{"!(a < b)", tu.Un(ast.NOT, tu.Bin(ast.LT, tu.Var("a"), tu.Var("b")))},
		{"1 - -1", tu.Bin(ast.MINUS, tu.Int(1), tu.Un(ast.MINUS, tu.Int(1)))},

		// relational operators
		{"x < y", tu.Bin(ast.LT, tu.Var("x"), tu.Var("y"))},
		{"x <= y", tu.Bin(ast.LE, tu.Var("x"), tu.Var("y"))},
		{"x > y", tu.Bin(ast.GT, tu.Var("x"), tu.Var("y"))},
		{"x >= y", tu.Bin(ast.GE, tu.Var("x"), tu.Var("y"))},
		{"x == y", tu.Bin(ast.EQ, tu.Var("x"), tu.Var("y"))},
		{"x != y", tu.Bin(ast.NE, tu.Var("x"), tu.Var("y"))},
		{"(a < b) < c", tu.Bin(ast.LT, tu.Bin(ast.LT, tu.Var("a"), tu.Var("b")), tu.Var("c"))},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestExpressions(%q)", test.input), func(t *testing.T) {
			got, err := ParseExprFrom(test.input, filename)
			if err != nil {
				t.Fatalf("unexpected error '%v'", err)
			}
			if !reflect.DeepEqual(got, test.expr) {
				t.Errorf("expected %s, but got %s", test.expr, got)
			}
		})
	}
}

func TestNotEqualIsStoredAsDiamond(t *testing.T) {
	expr, err := ParseExprFrom("x != y", "test.cl")
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	bin, ok := expr.(*ast.Binary)
	if !ok {
		t.Fatalf("expected *ast.Binary, but got %T", expr)
	}
	if bin.Op != "<>" {
		t.Errorf("expected operator <>, but got %s", bin.Op)
	}

	expr, err = ParseExprFrom("x == y", "test.cl")
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	if op := expr.(*ast.Binary).Op; op != "==" {
		t.Errorf("expected == to be kept, but got %s", op)
	}
}

func TestPrecedenceString(t *testing.T) {
	expr, err := ParseExprFrom("1+2*3", "test.cl")
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	expected := "Binary(+, Value(1), Binary(*, Value(2), Value(3)))"
	if expr.String() != expected {
		t.Errorf("expected %s, but got %s", expected, expr)
	}
}

type programTest struct {
	input   string
	program *ast.Program
}

func TestPrograms(t *testing.T) {
	filename := "test.cl"

	tests := []programTest{
		{
			input:   "main { }",
			program: tu.Program(nil, tu.Block()),
		},
		{
			input: "main { integer a, b, c; bool d; }",
			program: tu.Program([]*ast.Declaration{
				tu.Decl("a", ast.INTEGER),
				tu.Decl("b", ast.INTEGER),
				tu.Decl("c", ast.INTEGER),
				tu.Decl("d", ast.BOOL),
			}, tu.Block()),
		},
		{
			input: "main { integer x; bool y; x := 1 + 2 * 3; y := x > 0 && True; }",
			program: tu.Program(
				[]*ast.Declaration{tu.Decl("x", ast.INTEGER), tu.Decl("y", ast.BOOL)},
				tu.Block(
					tu.Assign("x", tu.Bin(ast.PLUS, tu.Int(1), tu.Bin(ast.TIMES, tu.Int(2), tu.Int(3)))),
					tu.Assign("y", tu.Bin(ast.AND,
						tu.Bin(ast.GT, tu.Var("x"), tu.Int(0)),
						tu.Bool(true),
					)),
				),
			),
		},
		{
			input: "main { integer n; while (n > 0) { n := n - 1; } }",
			program: tu.Program(
				[]*ast.Declaration{tu.Decl("n", ast.INTEGER)},
				tu.Block(
					tu.While(
						tu.Bin(ast.GT, tu.Var("n"), tu.Int(0)),
						tu.Block(tu.Assign("n", tu.Bin(ast.MINUS, tu.Var("n"), tu.Int(1)))),
					),
				),
			),
		},
		{
			input: "main { if (a) { x := 1; } }",
			program: tu.Program(nil, tu.Block(
				tu.If(tu.Var("a"), tu.Block(tu.Assign("x", tu.Int(1))), nil),
			)),
		},
		{
			input: "main { if (a) { x := 1; } else { x := 2; y := 3; } }",
			program: tu.Program(nil, tu.Block(
				tu.If(
					tu.Var("a"),
					tu.Block(tu.Assign("x", tu.Int(1))),
					tu.Block(tu.Assign("x", tu.Int(2)), tu.Assign("y", tu.Int(3))),
				),
			)),
		},
		{
			input: "main { if (a) { } else { } }",
			program: tu.Program(nil, tu.Block(
				tu.If(tu.Var("a"), tu.Block(), tu.Block()),
			)),
		},
		{
			input: "main { while (i < 10) { if (i == 5) { i := i + 2; } else { i := i + 1; } } }",
			program: tu.Program(nil, tu.Block(
				tu.While(
					tu.Bin(ast.LT, tu.Var("i"), tu.Int(10)),
					tu.Block(tu.If(
						tu.Bin(ast.EQ, tu.Var("i"), tu.Int(5)),
						tu.Block(tu.Assign("i", tu.Bin(ast.PLUS, tu.Var("i"), tu.Int(2)))),
						tu.Block(tu.Assign("i", tu.Bin(ast.PLUS, tu.Var("i"), tu.Int(1)))),
					)),
				),
			)),
		},
		{
			// nothing after the closing brace of main is looked at
			input:   "main { } trailing ; stuff",
			program: tu.Program(nil, tu.Block()),
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestPrograms(%q)", test.input), func(t *testing.T) {
			got, err := ParseProgramFrom(test.input, filename)
			if err != nil {
				t.Fatalf("unexpected error '%v'", err)
			}
			if !reflect.DeepEqual(got, test.program) {
				t.Errorf("expected\n%s\nbut got\n%s", test.program, got)
			}
		})
	}
}

type syntaxErrorTest struct {
	input    string
	expected string
	kind     token.Kind
	lexeme   string
}

func TestSyntaxErrors(t *testing.T) {
	filename := "test.cl"

	tests := []syntaxErrorTest{
		{"", "main", token.OTHER, ""},
		{"program { }", "main", token.IDENTIFIER, "program"},
		{"main", "{", token.OTHER, ""},
		{"main (", "{", token.SEPARATOR, "("},
		{"main {", "Statement", token.OTHER, ""},
		{"main { integer ; }", "Identifier", token.SEPARATOR, ";"},
		{"main { integer x, ; }", "Identifier", token.SEPARATOR, ";"},
		{"main { integer x x := 1; }", ";", token.IDENTIFIER, "x"},
		{"main { bool b }", ";", token.SEPARATOR, "}"},
		{"main { x = 1; }", ":=", token.OTHER, "="},
		{"main { x := ; }", "Expression", token.SEPARATOR, ";"},
		{"main { x := 1 }", ";", token.SEPARATOR, "}"},
		{"main { x := a < b < c; }", ";", token.OPERATOR, "<"},
		{"main { x := a == b != c; }", ";", token.OPERATOR, "!="},
		{"main { x := (1 + 2; }", ")", token.SEPARATOR, ";"},
		{"main { x := 1 +", "Expression", token.OTHER, ""},
		{"main { x := 99999999999; }", "integer literal", token.LITERAL, "99999999999"},
		{"main { x := 1; @ }", "Statement", token.OTHER, "@"},
		{"main { 1 := x; }", "Statement", token.LITERAL, "1"},
		{"main { if x { } }", "(", token.IDENTIFIER, "x"},
		{"main { if (x) y := 1; }", "{", token.IDENTIFIER, "y"},
		{"main { if (True) { x := 1; } else x := 2; }", "{", token.IDENTIFIER, "x"},
		{"main { while (x { } }", ")", token.SEPARATOR, "{"},
		{"main { while (x) { } ", "Statement", token.OTHER, ""},
		{"main { if (True) { integer x; } }", "Statement", token.KEYWORD, "integer"},
		{"main { while (True) { bool b; } }", "Statement", token.KEYWORD, "bool"},
		{"main { bool b; b := True; integer j; }", "Statement", token.KEYWORD, "integer"},
		{"main { else { } }", "Statement", token.KEYWORD, "else"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestSyntaxErrors(%q)", test.input), func(t *testing.T) {
			program, err := ParseProgramFrom(test.input, filename)
			if err == nil {
				t.Fatalf("expected a syntax error, but parsed %s", program)
			}
			if program != nil {
				t.Errorf("expected no partial tree, but got %s", program)
			}

			syntaxErr, ok := diagnostics.AsSyntaxError(err)
			if !ok {
				t.Fatalf("expected *diagnostics.SyntaxError, but got %T", err)
			}
			if syntaxErr.Expected != test.expected {
				t.Errorf("expected %q to be expected, but got %q", test.expected, syntaxErr.Expected)
			}
			if syntaxErr.Kind != test.kind {
				t.Errorf("expected actual kind %s, but got %s", test.kind, syntaxErr.Kind)
			}
			if syntaxErr.Lexeme != test.lexeme {
				t.Errorf("expected actual lexeme %q, but got %q", test.lexeme, syntaxErr.Lexeme)
			}
		})
	}
}

func TestMissingSeparatorMessage(t *testing.T) {
	_, err := ParseProgramFrom("main { integer x x := 1; }", "test.cl")
	if err == nil {
		t.Fatal("expected a syntax error")
	}

	expected := "Syntax error - Expecting: ; But saw: Identifier = x"
	if err.Error() != expected {
		t.Errorf("expected %q, but got %q", expected, err.Error())
	}

	syntaxErr, _ := diagnostics.AsSyntaxError(err)
	want := token.NewPosition("test.cl", 1, 18)
	if syntaxErr.Pos != want {
		t.Errorf("expected position %s, but got %s", want, syntaxErr.Pos)
	}
}

func TestChainedRelationalInExpression(t *testing.T) {
	_, err := ParseExprFrom("a < b < c", "test.cl")
	syntaxErr, ok := diagnostics.AsSyntaxError(err)
	if !ok {
		t.Fatalf("expected a syntax error, but got %v", err)
	}
	if syntaxErr.Expected != "end of input" || syntaxErr.Lexeme != "<" {
		t.Errorf("unexpected error %v", syntaxErr)
	}

	// Expression on its own stops before the second comparison
	lex := lexer.New("test.cl", []byte("a < b < c"))
	p := New(lex.Stream(), nil)
	expr, err := p.Expression()
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	if expr.String() != "Binary(<, Variable(a), Variable(b))" {
		t.Errorf("unexpected expression %s", expr)
	}
	if !p.cur.Is(token.OPERATOR, "<") {
		t.Errorf("expected the second < to be left unconsumed, but current is %s", p.cur)
	}
}

func TestAtEnd(t *testing.T) {
	tests := []struct {
		input string
		atEnd bool
	}{
		{"main { x := 1 +", true},
		{"main { if (a", true},
		{"main { integer x", true},
		{"main { x := 1 + ; }", false},
		{"main { x := 1 }", false},
	}

	for _, test := range tests {
		_, err := ParseProgramFrom(test.input, "test.cl")
		syntaxErr, ok := diagnostics.AsSyntaxError(err)
		if !ok {
			t.Fatalf("%q: expected a syntax error, but got %v", test.input, err)
		}
		if syntaxErr.AtEnd() != test.atEnd {
			t.Errorf("%q: expected AtEnd() == %v for %v", test.input, test.atEnd, syntaxErr)
		}
	}
}

func TestCollectorReceivesDiag(t *testing.T) {
	collector := diagnostics.New()
	lex := lexer.New("prog.cl", []byte("main {\n  x := ;\n}"))

	_, err := ParseFile(lex, collector)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if len(collector.Diags) != 1 {
		t.Fatalf("expected one diagnostic, but got %v", collector.Diags)
	}

	diag := collector.Diags[0]
	if !strings.HasPrefix(diag.Message, "prog.cl:2:8: Syntax error") {
		t.Errorf("unexpected diagnostic message %q", diag.Message)
	}
	if diag.Err != err {
		t.Errorf("expected diagnostic to carry the returned error")
	}
}

func TestReparseIsIdempotent(t *testing.T) {
	src := "main { integer n; bool done; n := 10; while (!done) { n := n - 1; if (n <= 0) { done := True; } } }"
	tokens := tu.NewLexer(src, "").Tokenize()

	first, err := New(FromTokens(tokens), nil).Program()
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	second, err := New(FromTokens(tokens), nil).Program()
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical trees\n%s\n%s", first, second)
	}
	if first == second || first.Body == second.Body {
		t.Error("expected two independently built trees")
	}
}

func TestHandBuiltLowercaseBooleans(t *testing.T) {
	tokens := []*token.Token{
		tu.Tok(token.LITERAL, "true"),
		tu.Tok(token.OPERATOR, "||"),
		tu.Tok(token.LITERAL, "false"),
	}

	expr, err := New(FromTokens(tokens), nil).Expression()
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	expected := tu.Bin(ast.OR, tu.Bool(true), tu.Bool(false))
	if !reflect.DeepEqual(expr, expected) {
		t.Errorf("expected %s, but got %s", expected, expr)
	}

	// from source, lowercase booleans are plain identifiers
	expr, err = ParseExprFrom("true", "test.cl")
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	if !reflect.DeepEqual(expr, tu.Var("true")) {
		t.Errorf("expected Variable(true), but got %s", expr)
	}
}

type nilSource struct{}

func (nilSource) Next() *token.Token { return nil }

func TestNilTokenSource(t *testing.T) {
	_, err := New(nilSource{}, nil).Program()
	syntaxErr, ok := diagnostics.AsSyntaxError(err)
	if !ok || !syntaxErr.AtEnd() || syntaxErr.Expected != "main" {
		t.Errorf("expected an end-of-input error at main, but got %v", err)
	}
}

func TestStrictClassifierSurfacesAsSyntaxError(t *testing.T) {
	lex := lexer.New("test.cl", []byte("main { x := 1.5; }"))
	lex.Classifier = lexer.STRICT

	_, err := ParseFile(lex, nil)
	syntaxErr, ok := diagnostics.AsSyntaxError(err)
	if !ok {
		t.Fatalf("expected a syntax error, but got %v", err)
	}
	if syntaxErr.Expected != "Expression" || syntaxErr.Kind != token.OTHER || syntaxErr.Lexeme != "1.5" {
		t.Errorf("unexpected error %v", syntaxErr)
	}
}

// Package itest drives the whole front end over files on disk for the
// integration tests.
package itest

import (
	"fmt"

	"github.com/HicaroD/clite/internal/ast"
	"github.com/HicaroD/clite/internal/diagnostics"
	"github.com/HicaroD/clite/internal/lexer"
	"github.com/HicaroD/clite/internal/parser"
)

func CompileFile(path string) (*ast.Program, *diagnostics.Collector) {
	return CompileFileWithClassifier(path, lexer.PERMISSIVE)
}

func CompileFileWithClassifier(path string, classifier lexer.Classifier) (*ast.Program, *diagnostics.Collector) {
	collector := diagnostics.New()

	lex := lexer.NewFromFilePath(path)
	if err := lex.ReadErr(); err != nil {
		collector.ReportAndSave(diagnostics.Diag{Message: fmt.Sprintf("failed to read source: %v", err), Err: err})
		return nil, collector
	}
	lex.Classifier = classifier

	program, err := parser.ParseFile(lex, collector)
	if err != nil {
		return nil, collector
	}
	return program, collector
}

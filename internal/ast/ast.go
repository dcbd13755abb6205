// Package ast defines the abstract syntax tree produced by the parser.
//
// Statements and expressions are closed sets: the marker methods are
// unexported, so only the node types declared here satisfy Statement and
// Expression.
package ast

type Node interface {
	String() string
	astNode()
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

package ast

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first, source order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, decl := range n.Decpart {
			Walk(v, decl)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *Declaration:
		Walk(v, n.V)
	case *Block:
		for _, stmt := range n.Members {
			Walk(v, stmt)
		}
	case *Assignment:
		Walk(v, n.Target)
		Walk(v, n.Source)
	case *Conditional:
		Walk(v, n.Test)
		Walk(v, n.ThenBranch)
		if n.ElseBranch != nil {
			Walk(v, n.ElseBranch)
		}
	case *Loop:
		Walk(v, n.Test)
		Walk(v, n.Body)
	case *Binary:
		Walk(v, n.Term1)
		Walk(v, n.Term2)
	case *Unary:
		Walk(v, n.Term)
	case *Variable, *Value:
		// leaves
	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f(node) for node and, while f returns true, for every
// child. After the children of a node are done f(nil) is called.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
